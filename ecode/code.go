package ecode

// Business codes
const (
	OK         = 0
	RequestErr = -400
	ParamErr   = -401
	NotFound   = -404
	ServerErr  = -500
)

var texts = map[int]string{
	OK:         "ok",
	RequestErr: "Invalid request",
	ParamErr:   "Invalid parameters",
	NotFound:   "Resource not found",
	ServerErr:  "Internal server error",
}

// Text returns the default message of a code, or an empty string for unknown codes.
func Text(code int) string {
	return texts[code]
}
