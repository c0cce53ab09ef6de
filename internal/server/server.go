package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/mercado/internal/handler"
	"github.com/dukerupert/mercado/internal/market"
	"github.com/dukerupert/mercado/internal/middleware"
	"github.com/dukerupert/mercado/internal/model"
	"github.com/dukerupert/mercado/internal/session"
	"github.com/dukerupert/mercado/internal/store"
	ws "github.com/dukerupert/mercado/internal/websocket"
)

// Options carries the settings the server needs from configuration.
type Options struct {
	DefaultTheme model.Theme
	Location     *time.Location
	// Stamper overrides id and clock sources; tests use it for stable output.
	Stamper market.Stamper
}

type Server struct {
	db      *sql.DB
	hub     *ws.Hub
	session *session.Session
	h       *handler.Handler
	logger  *slog.Logger
}

func New(db *sql.DB, opts Options, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	kv := store.NewKVStore(db)
	listStore := store.NewListStore(kv, logger.With("component", "store"))
	themeStore := store.NewThemeStore(kv, opts.DefaultTheme)

	sess := session.New(listStore, themeStore, session.Options{
		Stamper:  opts.Stamper,
		Location: opts.Location,
		Logger:   logger.With("component", "session"),
		OnChange: func(snap session.Snapshot) {
			hub.Broadcast(ws.NewMessage("state", "updated", snap.CurrentListID, map[string]any{
				"mode":  string(snap.Mode),
				"lists": len(snap.Lists),
			}))
		},
	})

	return &Server{
		db:      db,
		hub:     hub,
		session: sess,
		h:       handler.New(sess, logger.With("component", "api")),
		logger:  logger,
	}
}

// Session returns the state the server operates on.
func (s *Server) Session() *session.Session {
	return s.session
}

// Hub returns the WebSocket hub that receives state notifications.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.logger.With("component", "websocket")))

	// State and navigation
	mux.HandleFunc("GET /api/state", s.h.State)
	mux.HandleFunc("POST /api/nav/{mode}", s.h.Navigate)
	mux.HandleFunc("POST /api/theme/toggle", s.h.ToggleTheme)

	// Draft (create screen)
	mux.HandleFunc("POST /api/draft/items", s.h.AddDraftItem)
	mux.HandleFunc("PUT /api/draft/name", s.h.SetDraftName)
	mux.HandleFunc("POST /api/draft/finalize", s.h.FinalizeDraft)

	// Lists
	mux.HandleFunc("GET /api/lists", s.h.Lists)
	mux.HandleFunc("DELETE /api/lists", s.h.ResetAll)
	mux.HandleFunc("DELETE /api/lists/{id}", s.h.DeleteList)
	mux.HandleFunc("POST /api/lists/{id}/duplicate", s.h.DuplicateList)
	mux.HandleFunc("GET /api/lists/{id}/export", s.h.ExportList)

	// Open list
	mux.HandleFunc("POST /api/current/items", s.h.AddItem)
	mux.HandleFunc("DELETE /api/current/items/{id}", s.h.RemoveItem)
	mux.HandleFunc("POST /api/current/items/{id}/toggle", s.h.ToggleAcquired)
	mux.HandleFunc("PUT /api/current/items/{id}/quantity", s.h.SetQuantity)
	mux.HandleFunc("PUT /api/current/items/{id}/price", s.h.SetUnitPrice)
	mux.HandleFunc("POST /api/current/mark-all", s.h.MarkAllAcquired)
	mux.HandleFunc("POST /api/current/clear-acquired", s.h.ClearAcquired)
	mux.HandleFunc("POST /api/current/sort", s.h.SortPendingFirst)
	mux.HandleFunc("PUT /api/current/name", s.h.Rename)
	mux.HandleFunc("PUT /api/current/adding", s.h.SetAddingItem)
	mux.HandleFunc("GET /api/current/export", s.h.ExportList)

	mux.HandleFunc("GET /api/suggestions", s.h.Suggestions)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := s.db.PingContext(r.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}
