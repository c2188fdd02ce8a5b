package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrNoAvailableNode means that no live node of the requested kind is registered.
	ErrNoAvailableNode = "no_available_node"
	// ErrUpstreamUnavailable means that every forward attempt against live nodes failed.
	ErrUpstreamUnavailable = "upstream_unavailable"
	// ErrMalformedAnnouncement means that a discovery datagram could not be decoded.
	ErrMalformedAnnouncement = "malformed_announcement"
	// ErrRegistryInternal means that a registry or sweeper operation failed unexpectedly.
	ErrRegistryInternal = "registry_internal_error"
)

// MyError represents an error within the context of lmserver services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Attempted lists the node identities tried before giving up; set only for upstream_unavailable.
	Attempted []string `json:"attempted,omitempty"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrInternalServerError, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrBadParameter, message, inner)
}

func NewNoAvailableNodeError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrNoAvailableNode, message, inner)
}

// NewUpstreamUnavailableError creates an upstream_unavailable error carrying the
// ordered list of node identities that were tried.
func NewUpstreamUnavailableError(message string, attempted []string, inner error) *MyError {
	err := NewMyError(ErrUpstreamUnavailable, message, inner)
	err.Attempted = attempted
	return err
}

func NewRegistryInternalError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrRegistryInternal, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a lmserver error, or nil if it is not a lmserver error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsNoAvailableNodeError(err error) bool {
	return IsMyError(err, ErrNoAvailableNode)
}

func IsUpstreamUnavailableError(err error) bool {
	return IsMyError(err, ErrUpstreamUnavailable)
}
