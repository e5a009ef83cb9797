package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nhalm/canonlog"
	"github.com/yourorg/inventory/internal/query"
)

const (
	codeInvalidJSON      = "invalid_json"
	codeValidationFailed = "validation_failed"
	codeResourceMissing  = "resource_missing"
	codeConflict         = "resource_conflict"
	codeInternal         = "internal_error"
)

func renderJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, err error, code, message, param string) {
	canonlog.AddRequestError(r.Context(), err)
	sanitizedMessage := sanitizeErrorMessage(message, statusCode)
	renderJSON(w, statusCode, NewErrorResponse(statusCode, code, sanitizedMessage, param))
}

func sanitizeErrorMessage(message string, statusCode int) string {
	lowerMsg := strings.ToLower(message)

	if strings.Contains(lowerMsg, "sql") ||
		strings.Contains(lowerMsg, "database") ||
		strings.Contains(lowerMsg, "postgres") {
		if statusCode >= 500 {
			return "An internal error occurred"
		}
		return "Invalid request"
	}

	if statusCode >= 500 {
		return "An internal error occurred"
	}

	return message
}

func Success(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusCreated, data)
}

func List(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusOK, &ListResponse{Data: data})
}

func Paginated(w http.ResponseWriter, data any, meta query.Meta) {
	renderJSON(w, http.StatusOK, NewPageResponse(data, meta))
}

func BadRequest(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusBadRequest, err, codeInvalidJSON, message, "")
}

func UnprocessableEntity(w http.ResponseWriter, r *http.Request, err error, message, param string) {
	renderError(w, r, http.StatusUnprocessableEntity, err, codeValidationFailed, message, param)
}

func NotFound(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusNotFound, err, codeResourceMissing, message, "")
}

func InternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusInternalServerError, err, codeInternal, message, "")
}

func ConflictError(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusConflict, err, codeConflict, message, "")
}
