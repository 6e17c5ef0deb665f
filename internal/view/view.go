// Package view выводит отображаемые поля из состояния контроллера.
package view

import (
	"net/url"
	"strings"

	"github.com/Totarae/URLShortenerClient/internal/client"
	"github.com/Totarae/URLShortenerClient/internal/controller"
)

// Тексты интерфейса.
const (
	Title       = "Minimal AI URL Shortener"
	Placeholder = "Paste your link here..."

	SubmitLabel     = "Shorten"
	SubmittingLabel = "Shortening..."
	ResultLabel     = "Shortened URL:"
	CopyLabel       = "Copy"
	CopiedLabel     = "Copied!"

	MsgInvalidURL = "Invalid URL"
	MsgGeneric    = "Failed to shorten URL"
)

// View всё, что видит пользователь при данном состоянии.
type View struct {
	Title       string `json:"title"`
	Placeholder string `json:"placeholder"`

	SubmitLabel    string `json:"submit_label"`
	SubmitDisabled bool   `json:"submit_disabled"`

	ShowResult  bool   `json:"show_result"`
	ResultLabel string `json:"result_label,omitempty"`
	ShortURL    string `json:"short_url,omitempty"`
	CopyLabel   string `json:"copy_label,omitempty"`

	ShowError bool   `json:"show_error"`
	ErrorText string `json:"error_text,omitempty"`

	// Pending true, пока экран меняется без участия пользователя.
	Pending bool `json:"pending"`
}

// Render чистая функция от состояния.
func Render(s controller.State) View {
	v := View{
		Title:       Title,
		Placeholder: Placeholder,
		SubmitLabel: SubmitLabel,
	}

	switch s.Status {
	case controller.Submitting:
		v.SubmitLabel = SubmittingLabel
		v.SubmitDisabled = true
		v.Pending = true
	case controller.Success:
		v.ShowResult = true
		v.ResultLabel = ResultLabel
		v.ShortURL = s.Result
		v.CopyLabel = CopyLabel
		if s.Copied {
			v.CopyLabel = CopiedLabel
			v.Pending = true
		}
	case controller.Failure:
		v.ShowError = true
		v.ErrorText = ErrorMessage(s.Kind)
	}

	return v
}

// ErrorMessage фиксированный текст для вида ошибки.
func ErrorMessage(kind client.ErrorKind) string {
	if kind == client.KindInvalidURL {
		return MsgInvalidURL
	}
	return MsgGeneric
}

// ValidInput повторяет проверку поля <input type="url" required>:
// непустая абсолютная ссылка со схемой и хостом.
func ValidInput(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
