package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the standard envelope for all API payloads.
type Response struct {
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the standardized error body.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error codes
const (
	ErrInternalCode   = "INTERNAL_ERROR"
	ErrBadRequestCode = "BAD_REQUEST"
	ErrNotFoundCode   = "NOT_FOUND"
)

// RequestError represents errors that occur during request handling.
type RequestError struct {
	Reason     string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	return e.Reason
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError creates a new RequestError.
func NewRequestError(statusCode int, reason string, err error) *RequestError {
	return &RequestError{StatusCode: statusCode, Reason: reason, Err: err}
}

// GetErrorInfo extracts error information for the standardized response.
func (e *RequestError) GetErrorInfo() *ErrorInfo {
	var details string
	if e.Err != nil {
		details = e.Err.Error()
	}
	code := ErrInternalCode
	switch e.StatusCode {
	case http.StatusBadRequest:
		code = ErrBadRequestCode
	case http.StatusNotFound:
		code = ErrNotFoundCode
	}
	return &ErrorInfo{Code: code, Message: e.Reason, Details: details}
}

// RespondOK writes a 200 envelope with data and message.
func RespondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Data: data, Message: message})
}

// RespondWithError writes the standardized error envelope.
func RespondWithError(c *gin.Context, statusCode int, reqErr *RequestError) {
	c.JSON(statusCode, Response{Error: reqErr.GetErrorInfo()})
}
