// Package dto provides data transfer objects for HTTP requests/responses
package dto

// Pagination holds pagination parameters
type Pagination struct {
	Limit  int   `json:"limit" form:"limit"`
	Offset int   `json:"offset" form:"offset"`
	Total  int64 `json:"total"`
}

// Response is a generic API response wrapper
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo holds error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OK wraps data in a successful response envelope.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Err builds a failed response envelope.
func Err(code, message string) Response {
	return Response{Success: false, Error: &ErrorInfo{Code: code, Message: message}}
}
