package api

import "github.com/yourorg/inventory/internal/query"

// PageResponse wraps one page of a collection with its position in the
// full result set.
// @Description Paginated collection response
type PageResponse struct {
	Data any      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// PageMeta carries pagination metadata.
// @Description Pagination metadata
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// ListResponse wraps unpaginated collection responses.
// @Description Collection response
type ListResponse struct {
	Data any `json:"data"`
}

// ErrorResponse represents all API error responses.
// @Description Standard error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the specifics of an API error.
// @Description Error details
type ErrorDetail struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
}

func NewPageResponse(data any, meta query.Meta) *PageResponse {
	return &PageResponse{
		Data: data,
		Meta: PageMeta{
			CurrentPage: meta.CurrentPage,
			LastPage:    meta.LastPage,
			PerPage:     meta.PerPage,
			Total:       meta.Total,
			From:        meta.From,
			To:          meta.To,
		},
	}
}

func NewErrorResponse(httpStatusCode int, code, message, param string) *ErrorResponse {
	errorType := "api_error"
	if httpStatusCode >= 400 && httpStatusCode < 500 {
		errorType = "invalid_request_error"
	}

	if code == "" {
		code = "unknown_error"
	}

	return &ErrorResponse{
		Error: ErrorDetail{
			Type:    errorType,
			Code:    code,
			Message: message,
			Param:   param,
		},
	}
}
