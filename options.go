/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package dataset

import (
	"log/slog"
)

// settings holds construction-time configuration shared by every DataSet
// instantiation regardless of entity type.
type settings struct {
	capacity     int
	logger       *slog.Logger
	errorHandler func(error)
}

func defaultSettings() settings {
	return settings{
		capacity: 0,
		logger:   slog.Default(),
	}
}

// Option is a functional option for configuring a DataSet.
type Option func(*settings)

// WithCapacity pre-sizes the underlying map for an expected entity count.
func WithCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithLogger sets the logger used by the default listener fault handler.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithErrorHandler replaces the default fault handler. The handler receives
// an *errors.ListenerFaultError whenever a listener panics during
// notification; the failure is never propagated out of the mutation call
// that triggered it.
func WithErrorHandler(fn func(error)) Option {
	return func(s *settings) {
		s.errorHandler = fn
	}
}
