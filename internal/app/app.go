package app

import (
	"fmt"
	"net/http"
	"time"
	"waterreminder/internal/app/deps"
	"waterreminder/internal/app/services"
	"waterreminder/internal/http/handlers/health"
	sendreminder "waterreminder/internal/http/handlers/reminders/send_reminder"
	"waterreminder/internal/http/handlers/response"
	"waterreminder/internal/http/handlers/webhooks/inbound"
	"waterreminder/internal/http/handlers/webhooks/status"
	"waterreminder/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	router.Method(http.MethodPost, "/status", status.New(deps.Logger))
	router.Method(http.MethodPost, "/inbound", inbound.New(deps.Logger, s.ConfirmReminder))
	router.Method(http.MethodPost, "/reminders", sendreminder.New(s.SendReminder))
	router.Method(http.MethodGet, "/_/health", health.New())

	router.NotFound(func(rw http.ResponseWriter, r *http.Request) {
		response.RenderNotFound(rw)
	})
	router.MethodNotAllowed(func(rw http.ResponseWriter, r *http.Request) {
		response.RenderNotFound(rw)
	})

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           router,
		Addr:              address,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       5 * time.Second,
	}
}
