package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ResponseError is an error with a defined wire form. Handlers return these
// and the router boundary renders them.
type ResponseError struct {
	Status  int
	Reason  string
	Headers map[string]string
}

// Error implements the error interface
func (e *ResponseError) Error() string {
	return e.Reason
}

// responseErrorBody is the JSON body of an error response
type responseErrorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// Body returns the JSON body sent for the error
func (e *ResponseError) Body() []byte {
	body, err := json.Marshal(responseErrorBody{Error: e.Reason, Status: e.Status})
	if err != nil {
		return []byte(fmt.Sprintf(`{"error":"internal server error","status":%d}`, http.StatusInternalServerError))
	}
	return body
}

// Write renders the error with the common headers
func (e *ResponseError) Write(w http.ResponseWriter, common *ResponseHeaders) {
	h := w.Header()
	if common != nil {
		common.Apply(h)
	}
	h.Set(HeaderContentType, "application/json")
	for key, value := range e.Headers {
		h.Set(key, value)
	}
	h.Del(HeaderContentLength)
	w.WriteHeader(e.Status)
	_, _ = w.Write(e.Body())
}

// NewNotFoundError is returned when a locator does not resolve or the object
// is missing from every store
func NewNotFoundError(url string) *ResponseError {
	return &ResponseError{
		Status: http.StatusNotFound,
		Reason: fmt.Sprintf("File %s not found.", url),
	}
}

// NewMethodNotAllowedError is returned for methods other than the allowed ones
func NewMethodNotAllowedError(actual string, allowed []string) *ResponseError {
	return &ResponseError{
		Status: http.StatusMethodNotAllowed,
		Reason: fmt.Sprintf("Method %s not allowed.", actual),
		Headers: map[string]string{
			HeaderAllow: strings.Join(allowed, ", "),
		},
	}
}

// NewRangeNotSatisfiableError is returned for malformed or unsatisfiable ranges
func NewRangeNotSatisfiableError(reason string) *ResponseError {
	return &ResponseError{
		Status: http.StatusRequestedRangeNotSatisfiable,
		Reason: fmt.Sprintf("Invalid or unsupported range request: %s", reason),
	}
}

// NewUnexpectedError is returned for internal failures. The reason is shown
// to clients, so never pass internal error text.
func NewUnexpectedError(reason string) *ResponseError {
	return &ResponseError{
		Status: http.StatusInternalServerError,
		Reason: reason,
	}
}

// AsResponseError returns err as a ResponseError. Anything that is not
// already one becomes a generic 500.
func AsResponseError(err error) *ResponseError {
	var responseErr *ResponseError
	if errors.As(err, &responseErr) {
		return responseErr
	}
	return NewUnexpectedError("Internal server error.")
}
