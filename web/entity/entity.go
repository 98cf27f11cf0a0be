// Package entity defines the uniform API response envelope and the closed
// error taxonomy every handler outcome maps through.
package entity

import "net/http"

// ApiResponse is the envelope applied to every response, success or failure.
type ApiResponse struct {
	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Kind enumerates the failure classes a handler may produce. The HTTP
// mapping lives here and nowhere else.
type Kind int

const (
	KindUnauthenticated Kind = iota
	KindForbidden
	KindNotFound
	KindValidation
	KindFault
)

// ApiError is a classified failure carried from services and middleware to
// the response boundary.
type ApiError struct {
	Kind    Kind
	Message string
	Errors  map[string][]string
}

func (e *ApiError) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind onto its status code.
func (e *ApiError) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Response renders the failure envelope for this error.
func (e *ApiError) Response() ApiResponse {
	return ApiResponse{
		Status:  false,
		Message: e.Message,
		Errors:  e.Errors,
	}
}

func Unauthenticated(message string) *ApiError {
	return &ApiError{Kind: KindUnauthenticated, Message: message}
}

func Forbidden(message string) *ApiError {
	return &ApiError{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *ApiError {
	return &ApiError{Kind: KindNotFound, Message: message}
}

func Validation(errors map[string][]string) *ApiError {
	return &ApiError{Kind: KindValidation, Message: "Validation failed", Errors: errors}
}

// Fault hides internal detail from the client; the cause is logged at the
// response boundary instead.
func Fault() *ApiError {
	return &ApiError{Kind: KindFault, Message: "Server error"}
}
