package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukerupert/mercado/internal/config"
	"github.com/dukerupert/mercado/internal/database"
	"github.com/dukerupert/mercado/internal/logging"
	"github.com/dukerupert/mercado/internal/session"
	"github.com/dukerupert/mercado/internal/store"
)

// app holds what every command needs once configuration is loaded.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sql.DB
}

// session opens the saved state for one-shot commands.
func (a *app) session() *session.Session {
	kv := store.NewKVStore(a.db)
	return session.New(
		store.NewListStore(kv, a.logger.With("component", "store")),
		store.NewThemeStore(kv, a.cfg.Theme()),
		session.Options{
			Location: a.cfg.Location(),
			Logger:   a.logger.With("component", "session"),
		},
	)
}

// close releases the database. It runs even when a command fails.
func (a *app) close() {
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mercado",
		Short:         "Shopping lists with running totals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.logger = logging.Setup(cfg.LogLevel)

		db, err := database.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		a.db = db
		return nil
	}

	cmd.AddCommand(
		newServeCmd(a),
		newListsCmd(a),
		newExportCmd(a),
		newSuggestCmd(),
		newResetCmd(a),
		newBackupCmd(a),
		newRestoreCmd(a),
	)
	return cmd
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
