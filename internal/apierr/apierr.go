// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

// Package apierr defines the tagged error type shared by the API clients
// and view controllers.
//
// Every failure a view can observe collapses into one of three kinds:
// transport failure (Network), a non-success HTTP status with or without a
// structured body (HTTP), and a client-side form check (Validation). The
// presentation layer decides what the operator sees; views never branch on
// error kind beyond choosing a fallback message.
package apierr

import (
	"errors"
	"fmt"
)

// Kind discriminates the error categories.
type Kind int

const (
	// KindNetwork is a transport-level failure: the request never produced
	// an HTTP response.
	KindNetwork Kind = iota + 1

	// KindHTTP is a non-success HTTP status. Message carries the backend's
	// message field when the body was parseable.
	KindHTTP

	// KindValidation is a client-side form check that blocked the request
	// before any network call.
	KindValidation
)

// String returns the kind's name for logging.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the tagged error propagated by API clients and views.
type Error struct {
	// Kind is the error category.
	Kind Kind

	// StatusCode is the HTTP status, set only for KindHTTP.
	StatusCode int

	// Field is the offending form field, set only for KindValidation.
	Field string

	// Message is the operator-facing text: the backend's message verbatim
	// for KindHTTP, the translated check message for KindValidation. Empty
	// when the backend body was absent or unparseable.
	Message string

	// Err is the wrapped cause, set for KindNetwork.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		if e.Err != nil {
			return fmt.Sprintf("network error: %v", e.Err)
		}
		return "network error"
	case KindHTTP:
		if e.Message != "" {
			return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("http %d", e.StatusCode)
	case KindValidation:
		if e.Field != "" {
			return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
		}
		return fmt.Sprintf("validation: %s", e.Message)
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Network wraps a transport failure.
func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

// HTTPStatus builds an error for a non-success response. message is the
// backend's message field, empty when the body was unparseable.
func HTTPStatus(code int, message string) *Error {
	return &Error{Kind: KindHTTP, StatusCode: code, Message: message}
}

// Validation builds a client-side form-check error.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// MessageOr returns the backend-supplied message verbatim when err carries
// one, and fallback otherwise. This is the single place the "message field
// if present, else generic string" presentation rule lives.
func MessageOr(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
