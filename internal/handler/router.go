package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"turibot/internal/service/session"
	"turibot/pkg/utils"
)

// NewRouter exposes the ops surface: liveness and a small status report.
// The bot itself talks to Telegram, not to this listener.
func NewRouter(sessions *session.Store, startedAt time.Time) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/status", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
			"sessions": sessions.Count(),
		})
	})

	return r
}
