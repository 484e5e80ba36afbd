package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the HTTP layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindNotFound
	KindConflict
)

// HTTPStatus maps a kind to its response status. Conflicts answer 400, not 409.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure. Two errors with the same Code match under
// errors.Is regardless of Message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithMessage returns a copy of e carrying msg.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

var (
	ErrValidation         = &Error{Kind: KindValidation, Code: "validation-error", Message: "Invalid request"}
	ErrInvalidID          = &Error{Kind: KindValidation, Code: "invalid-id", Message: "Invalid todo ID format"}
	ErrPasswordTooLong    = &Error{Kind: KindValidation, Code: "password-too-long", Message: "Password must be at most 72 bytes"}
	ErrInvalidCredentials = &Error{Kind: KindAuthentication, Code: "invalid-credentials", Message: "Invalid email or password"}
	ErrInvalidToken       = &Error{Kind: KindAuthentication, Code: "invalid-token", Message: "Could not validate credentials"}
	ErrTodoNotFound       = &Error{Kind: KindNotFound, Code: "todo-not-found", Message: "Todo not found"}
	ErrDuplicateEmail     = &Error{Kind: KindConflict, Code: "duplicate-email", Message: "Email already registered"}
	ErrDuplicateUsername  = &Error{Kind: KindConflict, Code: "duplicate-username", Message: "Username already taken"}
)

// Validation builds a validation error with a specific message.
func Validation(msg string) *Error {
	return ErrValidation.WithMessage(msg)
}

// HTTPStatus returns the status for err and the message that is safe to show
// the client. Unclassified errors become a generic 500.
func HTTPStatus(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Kind == KindInternal {
			return http.StatusInternalServerError, "Internal server error"
		}
		return appErr.Kind.HTTPStatus(), appErr.Message
	}
	return http.StatusInternalServerError, "Internal server error"
}
