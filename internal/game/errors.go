package game

import (
	"errors"
	"fmt"
)

// ErrInvalidMaskCode is returned when a mask holds a code outside {0,1,2}
// or has the wrong length.
var ErrInvalidMaskCode = errors.New("invalid mask code")

// User-facing messages shown in the session's message slot.
const (
	MsgServiceUnavailable = "ОШИБКА: Сервер не отвечает."
	MsgMalformedResponse  = "ОШИБКА: Некорректный ответ сервера."
)

// ValidationError is the service rejecting a guess (e.g. unknown word).
// Message is shown to the player as is.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("guess rejected status=%d", e.Status)
	}
	return e.Message
}

// ServiceUnavailableError wraps a transport failure talking to the service.
type ServiceUnavailableError struct {
	Op  string
	Err error
}

func (e *ServiceUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("service unavailable op=%s", e.Op)
	}
	return fmt.Sprintf("service unavailable op=%s: %v", e.Op, e.Err)
}

func (e *ServiceUnavailableError) Unwrap() error { return e.Err }

// userMessage converts any error reaching the orchestrator boundary into
// the single message the player sees.
func userMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var uerr *ServiceUnavailableError
	if errors.As(err, &uerr) {
		return MsgServiceUnavailable
	}
	return MsgMalformedResponse
}
