package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukerupert/mercado/internal/backup"
)

// passphrase prefers the flag over MERCADO_BACKUP_PASSPHRASE.
func (a *app) passphrase(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if a.cfg.BackupPassphrase != "" {
		return a.cfg.BackupPassphrase, nil
	}
	return "", backup.ErrNoPassphrase
}

func newBackupCmd(a *app) *cobra.Command {
	var pass string

	cmd := &cobra.Command{
		Use:   "backup <file>",
		Short: "Write an encrypted copy of all lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.passphrase(pass)
			if err != nil {
				return err
			}
			lists := a.session().Lists()
			if err := backup.WriteFile(args[0], lists, p); err != nil {
				return err
			}
			a.logger.Info("backup written", "path", args[0], "lists", len(lists))
			fmt.Fprintf(cmd.OutOrStdout(), "%d lista(s) salva(s) em %s\n", len(lists), args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&pass, "passphrase", "", "encryption passphrase")
	return cmd
}

func newRestoreCmd(a *app) *cobra.Command {
	var pass string

	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace all lists with the contents of a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.passphrase(pass)
			if err != nil {
				return err
			}
			lists, err := backup.ReadFile(args[0], p)
			if err != nil {
				return err
			}
			a.session().Restore(lists)
			a.logger.Info("backup restored", "path", args[0], "lists", len(lists))
			fmt.Fprintf(cmd.OutOrStdout(), "%d lista(s) restaurada(s).\n", len(lists))
			return nil
		},
	}
	cmd.Flags().StringVar(&pass, "passphrase", "", "decryption passphrase")
	return cmd
}
