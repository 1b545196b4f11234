package rest

import "errors"

// Failure classes of the upstream gateway. Messages match what the UI shows
// verbatim, so they double as user-facing text.
var (
	// ErrSessionExpired maps any 401 from the gateway. The client has already
	// invoked the unauthorized hook by the time this is returned.
	ErrSessionExpired = errors.New("Sesión expirada")

	// ErrConnection maps transport-level connectivity failures.
	ErrConnection = errors.New("Error de conexión. Verifique su conexión a internet.")

	// ErrUnknown is the fallback when the failure carries no usable message.
	ErrUnknown = errors.New("Error desconocido")
)

// APIError carries a structured message reported by the gateway itself
// (validation rejections, business rules, not-found and the like).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }
