package client

import "errors"

// Ошибки, которые клиент возвращает наружу. Других ошибок Shorten не отдаёт.
var (
	// ErrInvalidURL сервис отклонил адрес как некорректный.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrGeneric любой другой сбой: сеть, статус, тело ответа.
	ErrGeneric = errors.New("failed to shorten URL")
)

// invalidURLMessage текст ошибки валидации, который присылает сервис.
const invalidURLMessage = "Invalid URL"

// ErrorKind закрытый набор видов ошибок для слоя отображения.
type ErrorKind int

const (
	KindGeneric ErrorKind = iota
	KindInvalidURL
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidURL:
		return "InvalidUrl"
	default:
		return "Generic"
	}
}

// KindOf сводит ошибку к ErrorKind. Всё, что не ErrInvalidURL, считается KindGeneric.
func KindOf(err error) ErrorKind {
	if errors.Is(err, ErrInvalidURL) {
		return KindInvalidURL
	}
	return KindGeneric
}
