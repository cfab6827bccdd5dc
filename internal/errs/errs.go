// Package errs defines the typed errors the API reports to clients.
//
// Each Error carries the HTTP status and the envelope code/message it is
// rendered with by the error advice middleware.
package errs

import "net/http"

type Error struct {
	Status  int
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error with the same code, so errors.Is works against the
// sentinels below even after WithMessage.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithMessage returns a copy with Message replaced.
func (e *Error) WithMessage(message string) *Error {
	return &Error{Status: e.Status, Code: e.Code, Message: message}
}

const (
	CodeUserNotFound       = -1000
	CodeProductNotFound    = -1001
	CodeCategoryNotFound   = -1002
	CodeUnauthorized       = -1003
	CodeInvalidCredentials = -1004
	CodeConflict           = -1005
	CodeBadRequest         = -1006
	CodeFileNotFound       = -1007
	CodeTooManyRequests    = -1008
	CodeInternal           = -9999
)

var (
	ErrUserNotFound       = &Error{http.StatusNotFound, CodeUserNotFound, "user does not exist"}
	ErrProductNotFound    = &Error{http.StatusNotFound, CodeProductNotFound, "product does not exist"}
	ErrCategoryNotFound   = &Error{http.StatusNotFound, CodeCategoryNotFound, "category does not exist"}
	ErrFileNotFound       = &Error{http.StatusNotFound, CodeFileNotFound, "file does not exist"}
	ErrUnauthorized       = &Error{http.StatusUnauthorized, CodeUnauthorized, "login required"}
	ErrInvalidCredentials = &Error{http.StatusUnauthorized, CodeInvalidCredentials, "account id or password is incorrect"}
	ErrConflict           = &Error{http.StatusConflict, CodeConflict, "resource already exists"}
	ErrBadRequest         = &Error{http.StatusBadRequest, CodeBadRequest, "invalid request"}
	ErrTooManyRequests    = &Error{http.StatusTooManyRequests, CodeTooManyRequests, "too many requests, try again later"}
	ErrInternal           = &Error{http.StatusInternalServerError, CodeInternal, "internal server error"}
)

func BadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}
