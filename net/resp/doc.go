// Package resp provides standardized JSON response helpers for the pager
// HTTP API.
//
// Successful responses carry the payload as is. Failures share one
// envelope:
//
//	{
//	  "code": -401,                       // Business error code
//	  "message": "page size must be positive",
//	  "errors": {...}                     // Optional details
//	}
//
// # Usage
//
//	resp.Success(w, result)
//	resp.WithStatusCode(w, http.StatusCreated, state)
//	resp.Fail(w, resp.BadRequest("invalid page"))
//	resp.Fail(w, resp.FromError(err)) // maps ecode codes to HTTP status
//
// Business error codes are defined in the ecode package.
package resp
