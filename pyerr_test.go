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
	"errors"
	"fmt"
	"strings"
	"testing"

	"dirpx.dev/pyerr/code"
	"dirpx.dev/pyerr/kind"
	"dirpx.dev/pyerr/locale"
)

func TestError_Basics(t *testing.T) {
	e := E(code.MalformedInput, "extraction failed",
		WithKindOption(kind.AssertionError),
		WithDetailOption("message", "AssertionError: boom"),
	)

	if e.Code != code.MalformedInput {
		t.Fatal("code mismatch")
	}
	if e.Details["message"] != "AssertionError: boom" {
		t.Fatal("detail missing")
	}

	s := e.Error()
	for _, sub := range []string{"malformed_input", "assertionError", "extraction failed"} {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
	if got := E(code.Internal, "x").Error(); got != "internal: x" {
		t.Fatalf("Error() without kind = %q", got)
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := E(code.Invalid, "bad").WithDetail("k1", 1)
	e2 := e1.WithDetail("k2", 2)

	if len(e1.Details) != 1 || len(e2.Details) != 2 {
		t.Fatal("details size mismatch")
	}
	if _, ok := e1.Details["k2"]; ok {
		t.Fatal("original mutated")
	}

	e3 := e1.WithLocale(locale.Spanish)
	if e1.Locale != "" || e3.Locale != locale.Spanish {
		t.Fatal("WithLocale must copy")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(code.Internal, "x", WithCauseOption(root))
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap mismatch")
	}
	if e.WithCause(nil) != e {
		t.Fatal("WithCause(nil) must return the receiver")
	}
}

func TestError_IsByCode(t *testing.T) {
	err := fmt.Errorf("render: %w", E(code.UnknownLocale, "no catalog"))
	if !errors.Is(err, E(code.UnknownLocale, "")) {
		t.Fatal("errors.Is must match by code")
	}
	if errors.Is(err, E(code.UnknownKind, "")) {
		t.Fatal("errors.Is must not match a different code")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(nil); got != code.Empty {
		t.Fatalf("CodeOf(nil) = %q", got)
	}
	if got := CodeOf(errors.New("plain")); got != code.Internal {
		t.Fatalf("CodeOf(plain) = %q", got)
	}
	wrapped := fmt.Errorf("wrap: %w", E(code.InvalidLocale, "bad"))
	if got := CodeOf(wrapped); got != code.InvalidLocale {
		t.Fatalf("CodeOf(wrapped) = %q", got)
	}
}

func TestAs(t *testing.T) {
	if As(nil) != nil {
		t.Fatal("As(nil) must be nil")
	}
	plain := errors.New("plain")
	pe := As(plain)
	if pe.Code != code.Internal || !errors.Is(pe, plain) {
		t.Fatalf("As(plain) = %+v", pe)
	}
	orig := E(code.UnknownKind, "x")
	if As(fmt.Errorf("w: %w", orig)) != orig {
		t.Fatal("As must return the wrapped *Error")
	}
}
