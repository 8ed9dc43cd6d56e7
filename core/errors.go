package core

import "fmt"

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

// ErrorNotAuthorized means authentication was attempted and failed.
// It must propagate; it is never downgraded to an empty principal set.
type ErrorNotAuthorized struct {
}

func (e ErrorNotAuthorized) Error() string {
	return "Not Authorized"
}

func NewErrorNotAuthorized() ErrorNotAuthorized {
	return ErrorNotAuthorized{}
}

// ErrorUnexpectedAuthStatus signals a contract violation between this
// engine and its identity source.
type ErrorUnexpectedAuthStatus struct {
	Status AuthStatus
}

func (e ErrorUnexpectedAuthStatus) Error() string {
	return fmt.Sprintf("Unexpected Authorization Status: %s", e.Status)
}

func NewErrorUnexpectedAuthStatus(status AuthStatus) ErrorUnexpectedAuthStatus {
	return ErrorUnexpectedAuthStatus{Status: status}
}

type ErrorUnsupportedScan struct {
}

func (e ErrorUnsupportedScan) Error() string {
	return "Unsupported Scan Source"
}
