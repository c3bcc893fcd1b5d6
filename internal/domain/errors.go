package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated is returned when an authenticated operation is
	// attempted with no stored session. Produced locally, never reaches
	// the network.
	ErrUnauthenticated = errors.New("usuário não autenticado")

	// ErrAPIUnreachable wraps transport-level failures (DNS, connection
	// refused, timeout) talking to the Hunter API.
	ErrAPIUnreachable = errors.New("hunter api unreachable")
)

// BackendError is a non-2xx response from the Hunter API with whatever
// error payload the backend attached.
type BackendError struct {
	StatusCode int
	Detail     string
}

func (e *BackendError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("hunter api error (status %d)", e.StatusCode)
}

// UserMessage translates any service-level error into a string meant for
// direct display. Backend-provided messages pass through untouched.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		if backendErr.Detail != "" {
			return backendErr.Detail
		}
		return "Não foi possível completar a operação."
	}

	if errors.Is(err, ErrUnauthenticated) {
		return "Usuário não autenticado."
	}
	if errors.Is(err, ErrAPIUnreachable) {
		return "Falha de conexão com o servidor."
	}

	return err.Error()
}
