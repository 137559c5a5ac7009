// Package services holds the workflow and aggregation logic that sits on
// top of the record store: progress derivation, the assignment state
// machine, lesson notes, mentor messages, the session gate and dashboard
// aggregates. Each service is constructed with the store it mutates and a
// logger; none of them keep state of their own.
package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation marks recoverable input errors. The call is reported to
	// the caller without any state change.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition is returned when the assignment workflow is
	// invoked out of order. State is left unchanged.
	ErrInvalidTransition = errors.New("invalid assignment transition")
)

var validate = validator.New()
