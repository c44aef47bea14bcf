package ecode

import (
	"fmt"
)

const (
	emptyMsg      = "empty"
	requiredMsg   = "required"
	invalidMsg    = "invalid"
	notExistMsg   = "does not exist"
	outOfRangeMsg = "out of range"
	positiveMsg   = "must be positive"
)

// withField prefixes msg with the optional field name
func withField(msg string, k ...string) string {
	if len(k) > 0 && k[0] != "" {
		return fmt.Sprintf("%s %s", k[0], msg)
	}
	return msg
}

// FieldIsEmpty returns field empty message
func FieldIsEmpty(k ...string) string { return withField(emptyMsg, k...) }

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string { return withField(requiredMsg, k...) }

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string { return withField(invalidMsg, k...) }

// FieldMustBePositive returns field must be positive message
func FieldMustBePositive(k ...string) string { return withField(positiveMsg, k...) }

// NotExist returns not exist message
func NotExist(k ...string) string { return withField(notExistMsg, k...) }

// OutOfRange returns out of range message
func OutOfRange(k ...string) string { return withField(outOfRangeMsg, k...) }
