package errors

import "fmt"

// HTTPError is a domain error annotated with the HTTP status it maps to.
// Delivery layers produce these; pkg/response consumes them.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}
