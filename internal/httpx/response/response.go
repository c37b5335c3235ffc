package response

import (
	"encoding/json"
	"net/http"
)

// Machine-readable error codes surfaced to UI callers. The two business
// rule codes are stable contract values; everything else collapses into
// the generic codes.
const (
	CodeInvalidDate   = "INVALID_DATE"
	CodePostPublished = "POST_PUBLISHED"
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeUpstream      = "UPSTREAM_ERROR"
	CodeInternal      = "INTERNAL_ERROR"
)

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error sends an error response without a code
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, ErrorBody{Error: message})
}

// ErrorCode sends an error response carrying a machine-readable code
func ErrorCode(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorBody{Error: message, Code: code})
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// NoContent sends a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Created sends a 201 Created response with JSON body
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

// OK sends a 200 OK response with JSON body
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

// BadRequest sends a 400 Bad Request error with the validation code
func BadRequest(w http.ResponseWriter, message string) {
	ErrorCode(w, http.StatusBadRequest, CodeValidation, message)
}

// NotFound sends a 404 Not Found error
func NotFound(w http.ResponseWriter, message string) {
	ErrorCode(w, http.StatusNotFound, CodeNotFound, message)
}

// InternalError sends a 500 Internal Server Error
func InternalError(w http.ResponseWriter, message string) {
	ErrorCode(w, http.StatusInternalServerError, CodeInternal, message)
}

// BadGateway sends a 502 error for upstream provider failures
func BadGateway(w http.ResponseWriter, message string) {
	ErrorCode(w, http.StatusBadGateway, CodeUpstream, message)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}
