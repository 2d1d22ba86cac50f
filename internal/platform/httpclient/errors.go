package httpclient

import (
	"fmt"
	"time"
)

const (
	timeoutMessage    = "La petición tardó demasiado. Por favor, verifica tu conexión."
	connectionMessage = "No se pudo conectar con el servidor. Verifica que el backend esté corriendo en %s"
)

// TimeoutError se devuelve cuando el request supera su deadline.
type TimeoutError struct {
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string { return timeoutMessage }
func (e *TimeoutError) Unwrap() error { return e.Err }

// ConnectionError representa fallas de red (refused, DNS, unreachable).
type ConnectionError struct {
	BaseURL string
	Err     error
}

func (e *ConnectionError) Error() string { return fmt.Sprintf(connectionMessage, e.BaseURL) }
func (e *ConnectionError) Unwrap() error { return e.Err }

// APIError representa una respuesta no-2xx. Message ya viene normalizado
// para mostrarse al usuario.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }
