// Package clipboard пишет в системный буфер обмена.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable на платформе нет утилиты для работы с буфером обмена.
var ErrUnavailable = errors.New("clipboard unavailable")

// System буфер обмена операционной системы.
type System struct {
	unsupported bool
	write       func(string) error
}

// NewSystem создаёт System поверх github.com/atotto/clipboard.
func NewSystem() *System {
	return &System{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
	}
}

// WriteText кладёт text в буфер обмена.
func (s *System) WriteText(text string) error {
	if s.unsupported {
		return ErrUnavailable
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
