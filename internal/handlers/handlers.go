package handlers

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/Totarae/URLShortenerClient/internal/controller"
	"github.com/Totarae/URLShortenerClient/internal/view"
	"go.uber.org/zap"
)

//go:embed templates/index.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/index.html"))

// Controller операции контроллера, которые нужны веб-интерфейсу.
type Controller interface {
	Submit(ctx context.Context, url string) error
	Copy(ctx context.Context) (bool, error)
	Snapshot() controller.State
}

// Handler отдаёт страницу и принимает действия пользователя.
type Handler struct {
	ctrl   Controller
	logger *zap.Logger
}

// NewHandler создаёт Handler поверх контроллера.
func NewHandler(ctrl Controller, logger *zap.Logger) *Handler {
	return &Handler{ctrl: ctrl, logger: logger}
}

// Page рисует текущее состояние.
func (h *Handler) Page(res http.ResponseWriter, req *http.Request) {
	v := view.Render(h.ctrl.Snapshot())

	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.Header().Set("Cache-Control", "no-store")
	if err := page.Execute(res, v); err != nil {
		h.logger.Error("render page", zap.Error(err))
	}
}

// Shorten принимает форму с полем url и начинает отправку.
func (h *Handler) Shorten(res http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		http.Error(res, "Bad Request", http.StatusBadRequest)
		return
	}

	// Браузер проверяет поле сам; здесь то же для запросов не из браузера.
	raw := req.PostForm.Get("url")
	if !view.ValidInput(raw) {
		http.Error(res, "Please enter a URL.", http.StatusBadRequest)
		return
	}

	if err := h.ctrl.Submit(req.Context(), raw); err != nil {
		h.unavailable(res, err)
		return
	}
	http.Redirect(res, req, "/", http.StatusSeeOther)
}

// Copy копирует короткую ссылку в буфер обмена.
func (h *Handler) Copy(res http.ResponseWriter, req *http.Request) {
	if _, err := h.ctrl.Copy(req.Context()); err != nil {
		h.unavailable(res, err)
		return
	}
	http.Redirect(res, req, "/", http.StatusSeeOther)
}

// State отдаёт отображаемые поля в JSON.
func (h *Handler) State(res http.ResponseWriter, req *http.Request) {
	v := view.Render(h.ctrl.Snapshot())

	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(res).Encode(v); err != nil {
		h.logger.Error("encode state", zap.Error(err))
	}
}

func (h *Handler) unavailable(res http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	h.logger.Warn("controller unavailable", zap.Error(err))
	http.Error(res, "Service Unavailable", http.StatusServiceUnavailable)
}
