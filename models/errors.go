package models

import (
	"fmt"
	"strings"
)

const MsgInvalidInput = "Invalid input"

// ErrorNotFound is raised when a referenced entity is absent.
type ErrorNotFound struct {
	Entity string
	Value  interface{}
}

func (e ErrorNotFound) Error() string {
	return fmt.Sprintf("%s: %v not found", e.Entity, e.Value)
}

// ErrorInvalidInput covers malformed client data: bad types, missing keys,
// unknown keys, out of range pagination.
type ErrorInvalidInput struct {
	Reason string
}

func (e ErrorInvalidInput) Error() string {
	return MsgInvalidInput
}

// Detail returns the internal reason, for logs only.
func (e ErrorInvalidInput) Detail() string {
	if e.Reason == "" {
		return MsgInvalidInput
	}
	return e.Reason
}

// ErrorInvalidOrder is raised for an order direction other than asc/desc.
type ErrorInvalidOrder struct {
	Resource string
}

func (e ErrorInvalidOrder) Error() string {
	resource := e.Resource
	if resource != "" {
		resource = strings.ToUpper(resource[:1]) + resource[1:]
	}
	return fmt.Sprintf("%s can only be ordered asc or desc", resource)
}

func InvalidInput(format string, args ...interface{}) error {
	return ErrorInvalidInput{Reason: fmt.Sprintf(format, args...)}
}

func NotFound(entity string, value interface{}) error {
	return ErrorNotFound{Entity: entity, Value: value}
}
