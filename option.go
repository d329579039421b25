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

package pyerr

import (
	"dirpx.dev/pyerr/kind"
	"dirpx.dev/pyerr/locale"
)

// Option is a functional option applied by E.
type Option func(*Error) *Error

// WithKindOption sets the kind on the error being constructed.
func WithKindOption(k kind.Kind) Option {
	return func(e *Error) *Error {
		return e.WithKind(k)
	}
}

// WithLocaleOption sets the locale on the error being constructed.
func WithLocaleOption(l locale.Code) Option {
	return func(e *Error) *Error {
		return e.WithLocale(l)
	}
}

// WithDetailOption adds a single detail key/value on construction.
func WithDetailOption(k string, v any) Option {
	return func(e *Error) *Error {
		return e.WithDetail(k, v)
	}
}

// WithCauseOption attaches a cause on construction.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
