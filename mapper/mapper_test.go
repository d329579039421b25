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
	"strings"
	"sync"
	"testing"

	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/code"
	"google.golang.org/grpc/codes"
)

func TestDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(c code.Code, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(c)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(code.Invalid, 400, codes.InvalidArgument)
	check(code.InvalidLocale, 400, codes.InvalidArgument)
	check(code.UnknownLocale, 404, codes.NotFound)
	check(code.MalformedInput, 500, codes.Internal)
	check(code.Internal, 500, codes.Internal)
}

func TestDefaults_CoverEveryCode(t *testing.T) {
	for _, c := range code.All() {
		if _, ok := defaultHTTP[c]; !ok {
			t.Errorf("no default HTTP status for %q", c)
		}
		if _, ok := defaultGRPC[c]; !ok {
			t.Errorf("no default gRPC status for %q", c)
		}
		if code.Defect(c) && defaultHTTP[c] < 500 {
			t.Errorf("defect %q maps to client status %d", c, defaultHTTP[c])
		}
	}
}

func TestPriority_OverrideOverDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.UnknownLocale, 410),
		WithHTTPOverride(code.UnknownLocale, 422),
		WithGRPCDefault(code.UnknownLocale, codes.Unimplemented),
		WithGRPCOverride(code.UnknownLocale, codes.FailedPrecondition),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.UnknownLocale)
	if st.HTTP != 422 || st.GRPC != codes.FailedPrecondition {
		t.Fatalf("override must win; got %+v", st)
	}
}

func TestUserDefault_ReplacesLibraryDefault(t *testing.T) {
	m, err := New(WithHTTPDefault(code.UnknownLocale, 410))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.UnknownLocale); got != 410 {
		t.Fatalf("HTTPStatus = %d; want 410", got)
	}
	if got := m.GRPCStatus(code.UnknownLocale); got != codes.NotFound {
		t.Fatalf("GRPCStatus = %v; want NotFound", got)
	}
}

func TestUnknownCode_Fallback(t *testing.T) {
	m, _ := New()
	st := m.Status(code.Code("teapot"))
	if st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("fallback got %+v", st)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"unknown code", WithHTTPOverride(code.Code("teapot"), 418)},
		{"malformed code", WithGRPCOverride(code.Code("X"), codes.Internal)},
		{"http too low", WithHTTPOverride(code.Invalid, 99)},
		{"http too high", WithHTTPDefault(code.Invalid, 600)},
		{"grpc ok", WithGRPCDefault(code.Internal, codes.OK)},
		{"grpc out of range", WithGRPCOverride(code.Internal, codes.Code(99))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatalf("New(%s) succeeded; want error", tt.name)
			}
		})
	}
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(WithHTTPOverride(code.UnknownLocale, 422))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(code.UnknownLocale)
	if !strings.Contains(exp, "http: source=override -> 422") {
		t.Fatalf("Explain must show the override:\n%s", exp)
	}
	if !strings.Contains(exp, "grpc: source=default -> NOTFOUND(5)") {
		t.Fatalf("Explain must show the gRPC default:\n%s", exp)
	}
}

func TestNew_DoesNotShareBuilderState(t *testing.T) {
	m1, _ := New(WithHTTPOverride(code.Invalid, 422))
	m2, _ := New()
	if m1.HTTPStatus(code.Invalid) != 422 || m2.HTTPStatus(code.Invalid) != 400 {
		t.Fatalf("mappers leaked state: %d, %d", m1.HTTPStatus(code.Invalid), m2.HTTPStatus(code.Invalid))
	}
	if defaultHTTP[code.Invalid] != 400 {
		t.Fatalf("library defaults mutated")
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(WithHTTPOverride(code.UnknownLocale, 422))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(code.UnknownLocale)
				_ = m.Status(code.MalformedInput)
				_ = m.Status(code.Code("teapot"))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(t *testing.B) {
	m, _ := New()
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(code.InvalidLocale)
	}
}

func BenchmarkMapperStatus_Override(t *testing.B) {
	m, _ := New(
		WithHTTPOverride(code.UnknownLocale, 422),
		WithGRPCOverride(code.UnknownLocale, codes.FailedPrecondition),
	)
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(code.UnknownLocale)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
