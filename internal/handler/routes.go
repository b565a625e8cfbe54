package handler

import (
	"log/slog"
	"net/http"
	"time"

	"files-manager/internal/common"
	"files-manager/internal/ports"
	"files-manager/internal/security"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers : всё, что нужно для маршрутов API
type Handlers struct {
	Users          *UserHandler
	Authentication *AuthenticationHandler
	Files          *FileHandler
	Status         *StatusHandler
	Auth           ports.AuthenticationService
	Logger         *slog.Logger
	RequestTimeout time.Duration
}

// SetupRoutes : маршруты API, под X-Token всё, кроме регистрации, входа, статуса и содержимого файла
func SetupRoutes(router chi.Router, h Handlers) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router.Use(middleware.RequestID)
	router.Use(RequestLogger(logger))
	router.Use(middleware.Recoverer)
	if h.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.RequestTimeout))
	}

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Get("/status", h.Status.GetStatus)
	router.Get("/stats", h.Status.GetStats)

	router.Post("/users", h.Users.PostNew)
	router.Get("/connect", h.Authentication.GetConnect)
	router.Get("/disconnect", h.Authentication.GetDisconnect)
	router.Get("/files/{id}/data", h.Files.GetFile)

	router.Group(func(r chi.Router) {
		r.Use(security.TokenMiddleware(h.Auth))

		r.Get("/users/me", h.Users.GetMe)

		r.Post("/files", h.Files.PostUpload)
		r.Get("/files", h.Files.GetIndex)
		r.Get("/files/{id}", h.Files.GetShow)
		r.Put("/files/{id}/publish", h.Files.PutPublish)
		r.Put("/files/{id}/unpublish", h.Files.PutUnpublish)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		sendServiceError(w, r, common.ErrNotFound)
	})
}
