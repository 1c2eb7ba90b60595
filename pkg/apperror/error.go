package apperror

import "net/http"

// Kind classifies an error into the taxonomy the API exposes. Every error
// leaving a usecase carries a (kind, reason) pair.
type Kind string

const (
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindDuplicate      Kind = "duplicate"
	KindStorage        Kind = "storage"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may retry the request as-is.
// Only storage failures qualify; every other kind is definitive.
func (e *AppError) Retryable() bool {
	return e.Kind == KindStorage
}

func New(code int, kind Kind, reason, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Reason:  reason,
		Message: message,
		Err:     err,
	}
}

func Authentication(reason, message string) *AppError {
	return New(http.StatusUnauthorized, KindAuthentication, reason, message, nil)
}

func Authorization(reason, message string) *AppError {
	return New(http.StatusForbidden, KindAuthorization, reason, message, nil)
}

// Validation reports malformed input caught before any mutation.
// The reason is "<field>:<rule>", e.g. "title:required".
func Validation(field, rule, message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, field+":"+rule, message, nil)
}

func NotFound(resource, message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, resource, message, nil)
}

func Duplicate(reason, message string) *AppError {
	return New(http.StatusConflict, KindDuplicate, reason, message, nil)
}

func Storage(err error) *AppError {
	return New(http.StatusInternalServerError, KindStorage, "storage_failure", "Storage operation failed", err)
}
