/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity is not found in a datastore
	ErrNotFound = errors.New("entity not found")

	// ErrReentrantMutation is returned when a mutation is issued from
	// inside a listener notification
	ErrReentrantMutation = errors.New("reentrant mutation during notification")

	// ErrInvalidPartial is returned when a partial update cannot be applied
	ErrInvalidPartial = errors.New("invalid partial update")

	// ErrListenerFault is reported when a listener panics during notification
	ErrListenerFault = errors.New("listener fault")

	// ErrNoKeyMap is returned when no key map is registered for a type
	ErrNoKeyMap = errors.New("no key map registered for type")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PartialError represents a partial update that cannot be applied to the
// target entity
type PartialError struct {
	Field   string
	Message string
}

func (e *PartialError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("cannot apply partial update to field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("cannot apply partial update: %s", e.Message)
}

func (e *PartialError) Is(target error) bool {
	return target == ErrInvalidPartial
}

// ListenerFaultError reports a listener that panicked during notification.
// Listener identifies the registration by its subscription token.
type ListenerFaultError struct {
	Listener uint64
	Value    any
}

func (e *ListenerFaultError) Error() string {
	return fmt.Sprintf("listener %d panicked during notification: %v", e.Listener, e.Value)
}

func (e *ListenerFaultError) Is(target error) bool {
	return target == ErrListenerFault
}

// KeyMapError represents a missing key map registration for an entity type
type KeyMapError struct {
	Type string
}

func (e *KeyMapError) Error() string {
	return fmt.Sprintf("no key map registered for type %s", e.Type)
}

func (e *KeyMapError) Is(target error) bool {
	return target == ErrNoKeyMap
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewPartialError creates a new PartialError
func NewPartialError(field, message string) error {
	return &PartialError{Field: field, Message: message}
}

// NewListenerFaultError creates a new ListenerFaultError
func NewListenerFaultError(listener uint64, value any) error {
	return &ListenerFaultError{Listener: listener, Value: value}
}

// NewKeyMapError creates a new KeyMapError
func NewKeyMapError(entityType string) error {
	return &KeyMapError{Type: entityType}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsReentrantMutation checks if an error is a reentrant mutation error
func IsReentrantMutation(err error) bool {
	return errors.Is(err, ErrReentrantMutation)
}

// IsInvalidPartial checks if an error is an invalid partial update error
func IsInvalidPartial(err error) bool {
	return errors.Is(err, ErrInvalidPartial)
}

// IsListenerFault checks if an error is a listener fault
func IsListenerFault(err error) bool {
	return errors.Is(err, ErrListenerFault)
}

// IsNoKeyMap checks if an error is a missing key map error
func IsNoKeyMap(err error) bool {
	return errors.Is(err, ErrNoKeyMap)
}
