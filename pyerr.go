/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package pyerr explains interpreter error messages to novice programmers.
//
// The work is split across subpackages:
//
//   - explain: classifies a raw message into a kind and extracts its fields;
//   - catalog: renders a classified record into a localized header/details pair;
//   - service: classify + render in one call;
//   - httpx, grpcx: network surfaces over service.
//
// This package holds the rich error type shared by all of them. Note that a
// message no recognizer accepts is not an error: explain.Classify reports it
// with ok == false.
package pyerr

import (
	"errors"
	"fmt"

	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/code"
	"dirpx.dev/pyerr/kind"
	"dirpx.dev/pyerr/locale"
)

// Error is the failure type returned by every pyerr package.
//
// It carries:
//   - Code: why the operation failed (required);
//   - Kind: the error kind involved, when one was already determined;
//   - Locale: the locale involved, for rendering failures;
//   - Message: human-oriented description;
//   - Details: key/value payload (offending message, missing field, ...);
//   - Cause: wrapped underlying error.
//
// WithX helpers return a shallow copy, so values can be shared freely.
type Error struct {
	// Code classifies the failure. Must be one of the codes in pyerr/code.
	Code code.Code

	// Kind is set when the failure is tied to a recognized error kind, e.g.
	// a malformed_input from the assertionError recognizer.
	Kind kind.Kind

	// Locale is set for rendering failures.
	Locale locale.Code

	// Message is a human-readable explanation of the failure.
	Message string

	// Details is an optional, shallow map of extra fields. Treated as
	// immutable: WithDetail always copies it.
	Details map[string]any

	// Cause holds the wrapped underlying error, if any.
	Cause error
}

var _ apis.CodedError = (*Error)(nil)

// E is a convenience constructor for Error.
//
//	return pyerr.E(code.UnknownLocale, "no catalog for locale",
//	    pyerr.WithLocaleOption(loc),
//	)
func E(c code.Code, msg string, opts ...Option) *Error {
	e := &Error{Code: c, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is "<code>: <message>", or "<code>:<kind>: <message>" when a
// kind is attached.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind != "" {
		return fmt.Sprintf("%s:%s: %s", e.Code, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.Code) }

// Is reports whether target is an *Error with the same code. This lets
// callers write errors.Is(err, pyerr.E(code.UnknownLocale, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil || e == nil {
		return false
	}
	return t.Code == e.Code
}

// WithKind returns a copy of e with the given kind.
func (e *Error) WithKind(k kind.Kind) *Error {
	cp := *e
	cp.Kind = k
	return &cp
}

// WithLocale returns a copy of e with the given locale.
func (e *Error) WithLocale(l locale.Code) *Error {
	cp := *e
	cp.Locale = l
	return &cp
}

// WithDetail returns a copy of e with one extra key/value in Details.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithCause returns a copy of e wrapping err. A nil err returns e unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// CodeOf returns the code of the first *Error in err's chain, code.Internal
// for any other non-nil error, and code.Empty for nil.
func CodeOf(err error) code.Code {
	if err == nil {
		return code.Empty
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return code.Internal
}

// As returns the first *Error in err's chain. Foreign errors are wrapped
// into a code.Internal error so transport layers always have a code to map.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	return E(code.Internal, err.Error()).WithCause(err)
}
