package resp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ncobase/pager/ecode"
)

// Exception represents the response structure.
type Exception struct {
	Status  int    `json:"status,omitempty"`  // HTTP status
	Code    int    `json:"code,omitempty"`    // Business code
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
	Data    any    `json:"data,omitempty"`    // Response data
}

// Success handles success responses.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode handles success responses with custom status code.
// A string payload becomes the message.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	r := &Exception{Status: statusCode}
	if len(data) > 0 {
		if msg, ok := data[0].(string); ok {
			r.Message = msg
		} else {
			r.Data = data[0]
		}
	}
	status, result := buildSuccessResponse(r)
	writeJSON(w, status, result)
}

// buildSuccessResponse builds the success response.
func buildSuccessResponse(r *Exception) (int, any) {
	status := http.StatusOK
	if r.Status != 0 {
		status = r.Status
	}
	if status < 200 || status >= 400 {
		return buildFailureResponse(r)
	}
	if r.Data != nil {
		return status, r.Data
	}

	message := ecode.Text(ecode.OK)
	if r.Message != "" {
		message = r.Message
	}
	return status, map[string]any{"message": message}
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = InternalServer(ecode.Text(ecode.ServerErr))
	}
	status, result := buildFailureResponse(r)
	writeJSON(w, status, result)
}

// buildFailureResponse builds the failure response.
func buildFailureResponse(r *Exception) (int, any) {
	status := http.StatusBadRequest
	code := ecode.RequestErr

	if r.Status != 0 {
		status = r.Status
	}
	if r.Code != 0 {
		code = r.Code
	}
	message := ecode.Text(code)
	if r.Message != "" {
		message = r.Message
	}

	return status, &Exception{
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	}
}

// BadRequest builds a 400 exception with optional error details.
func BadRequest(message string, errs ...any) *Exception {
	return failure(http.StatusBadRequest, ecode.RequestErr, message, errs...)
}

// NotFound builds a 404 exception.
func NotFound(message string) *Exception {
	return failure(http.StatusNotFound, ecode.NotFound, message)
}

// InternalServer builds a 500 exception.
func InternalServer(message string) *Exception {
	return failure(http.StatusInternalServerError, ecode.ServerErr, message)
}

// FromError maps a coded error to an exception.
// Parameter errors become 400s; uncoded errors become 500s.
func FromError(err error) *Exception {
	switch code := ecode.Cause(err); code {
	case ecode.ParamErr, ecode.RequestErr:
		return failure(http.StatusBadRequest, code, message(err))
	case ecode.NotFound:
		return failure(http.StatusNotFound, code, message(err))
	default:
		return InternalServer(ecode.Text(ecode.ServerErr))
	}
}

func message(err error) string {
	var e *ecode.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func failure(status, code int, message string, errs ...any) *Exception {
	r := &Exception{Status: status, Code: code, Message: message}
	if len(errs) > 0 {
		r.Errors = errs[0]
	}
	return r
}

// writeJSON writes res with the given status code.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(res)
}
