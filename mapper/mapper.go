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

package mapper

import (
	"fmt"
	"strings"

	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides).
//  3. Validate every configured code and status.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function name the offending code and value.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	for _, tbl := range []map[code.Code]int{b.httpDefaults, b.httpOverride} {
		for c, v := range tbl {
			if err := code.Validate(c); err != nil {
				return nil, fmt.Errorf("mapper: HTTP status for code %q: %w", c, err)
			}
			if v < 100 || v > 599 {
				return nil, fmt.Errorf("mapper: HTTP status %d for code %q is out of range", v, c)
			}
		}
	}
	for _, tbl := range []map[code.Code]codes.Code{b.grpcDefaults, b.grpcOverride} {
		for c, v := range tbl {
			if err := code.Validate(c); err != nil {
				return nil, fmt.Errorf("mapper: gRPC status for code %q: %w", c, err)
			}
			if v == codes.OK || v > codes.Unauthenticated {
				return nil, fmt.Errorf("mapper: gRPC status %d for code %q is not a failure status", v, c)
			}
		}
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freeze(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freeze(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// mapper combines per-code defaults and per-code exact overrides.
// Lookups are O(1) and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given code.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a code.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a code.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. per-code default (library or user overridden);
//  3. fallback (500).
func (m *mapper) HTTPStatus(c code.Code) int {
	if v, ok := m.httpOverride[c]; ok {
		return v
	}
	if v, ok := m.httpDefault[c]; ok {
		return v
	}
	// HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC for the same code.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for c.
//
// Example output:
//
//	code="unknown_locale"
//	http: source=override -> 422
//	grpc: source=default -> NOTFOUND(5)
//
// source is one of override, default or fallback.
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c))
	_, _ = fmt.Fprint(&b, m.explainGRPC(c))
	return b.String()
}

func (m *mapper) explainHTTP(c code.Code) string {
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpDefault[c]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

func (m *mapper) explainGRPC(c code.Code) string {
	if v, ok := m.grpcOverride[c]; ok {
		return "grpc: source=override -> " + grpcString(v)
	}
	if v, ok := m.grpcDefault[c]; ok {
		return "grpc: source=default -> " + grpcString(v)
	}
	return "grpc: source=fallback -> " + grpcString(m.fallbackGRPC)
}

func grpcString(v codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(v.String()), int(v))
}
