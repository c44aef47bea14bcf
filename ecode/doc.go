// Package ecode defines the business error codes shared by the pager
// packages and provides helpers for building consistent error messages.
//
// # Error Code Convention
//
// Error codes follow the ncore numbering scheme:
//   - 0: Success (OK)
//   - -400 to -499: Request and parameter errors
//   - -500+: Server errors
//
// # Common Error Codes
//
//	ecode.RequestErr  // -400: Invalid request
//	ecode.ParamErr    // -401: Invalid parameters
//	ecode.NotFound    // -404: Resource not found
//	ecode.ServerErr   // -500: Internal server error
//
// # Coded Errors
//
// Wrap a code and a message into an error value:
//
//	var ErrInvalidPageSize = ecode.New(ecode.ParamErr, ecode.FieldIsInvalid("page size"))
//
// Coded errors match with errors.Is when their codes and messages are equal,
// and ecode.Cause recovers the code from any wrapped error:
//
//	if ecode.Cause(err) == ecode.ParamErr {
//	    // reject the request
//	}
package ecode
