package router

import (
	"github.com/Totarae/URLShortenerClient/internal/handlers"
	"github.com/Totarae/URLShortenerClient/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор веб-интерфейса
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие

	r.Get("/", handler.Page)
	r.Post("/shorten", handler.Shorten)
	r.Post("/copy", handler.Copy)
	r.Get("/api/state", handler.State)
	return r
}
