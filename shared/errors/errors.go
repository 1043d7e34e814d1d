package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func Forbidden(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

func BadRequest(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func Unauthorized(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, code int) bool {
	var e *ErrorWithStatusCode
	return errors.As(err, &e) && e.StatusCode == code
}

// ErrNotImplemented is returned by a storage contract method that has no concrete backing.
var ErrNotImplemented = errors.New("method not implemented")

type ValidationReason int

const (
	MissingProperty ValidationReason = iota
	WrongType
)

func (r ValidationReason) String() string {
	switch r {
	case MissingProperty:
		return "NOT_CONTAIN_NEEDED_PROPERTY"
	case WrongType:
		return "NOT_MEET_DATA_TYPE_SPECIFICATION"
	default:
		return "UNKNOWN"
	}
}

// ValidationError rejects a payload at a boundary. Entity is an upper-case code
// such as ADD_THREAD, Field is the json name of the offending property.
type ValidationError struct {
	Entity string
	Field  string
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case MissingProperty:
		return fmt.Sprintf("cannot create %s: required property %q is missing", entityName(e.Entity), e.Field)
	case WrongType:
		return fmt.Sprintf("cannot create %s: property %q has the wrong data type", entityName(e.Entity), e.Field)
	default:
		return fmt.Sprintf("cannot create %s: property %q is invalid", entityName(e.Entity), e.Field)
	}
}

// Code returns the machine readable form, e.g. ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY.
func (e *ValidationError) Code() string {
	return e.Entity + "." + e.Reason.String()
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// ValidationReasonOf reports the reason of a validation error anywhere in err's chain.
func ValidationReasonOf(err error) (ValidationReason, bool) {
	var e *ValidationError
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Reason, true
}

var entityNames = map[string]string{
	"ADD_THREAD":           "thread",
	"ADD_COMMENT":          "comment",
	"ADD_REPLY":            "reply",
	"REGISTER_USER":        "user",
	"LOGIN_USER":           "login",
	"MATERIALIZED_THREAD":  "thread view",
	"MATERIALIZED_COMMENT": "comment view",
	"MATERIALIZED_REPLY":   "reply view",
}

func entityName(entity string) string {
	if name, ok := entityNames[entity]; ok {
		return name
	}
	return entity
}
