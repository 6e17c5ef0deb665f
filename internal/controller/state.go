package controller

import "github.com/Totarae/URLShortenerClient/internal/client"

// Status основное состояние взаимодействия.
type Status int

const (
	Idle Status = iota
	Submitting
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Submitting:
		return "Submitting"
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// State зафиксированное состояние контроллера.
//
// Result заполнен только в Success, Kind имеет смысл только в Failure.
// Copied временный флаг поверх Success. Seq номер последней отправки.
type State struct {
	Status Status
	Result string
	Kind   client.ErrorKind
	Copied bool
	Seq    uint64
}
