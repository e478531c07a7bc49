package domain

import "net/http"

// Error is the typed failure every component raises. Code doubles as the HTTP
// status and is mirrored verbatim in the response body, so clients see
// {"detail": Message, "code": Code}.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func BadRequest(message string) *Error {
	return newError(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return newError(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return newError(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return newError(http.StatusNotFound, message)
}

func Internal(message string) *Error {
	return newError(http.StatusInternalServerError, message)
}

// Sentinel instances compared with errors.Is across layers.
var (
	ErrInvalidToken  = Unauthorized("Invalid token")
	ErrUserNotFound  = NotFound("User not found")
	ErrDuplicateUser = BadRequest("Username or email already exists")
)
