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

package code

import (
	"encoding"
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  internal  ", "internal"},
		{"to lower", "Unknown_Locale", "unknown_locale"},
		{"dash to underscore", "malformed-input", "malformed_input"},
		{"mixed", "  INVALID-CATALOG  ", "invalid_catalog"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Code
		wantErr error
	}{
		{"malformed_input", MalformedInput, nil},
		{" Unknown-Locale ", UnknownLocale, nil},
		{"INTERNAL", Internal, nil},
		{"", Empty, ErrCodeInvalid},
		{"x", Empty, ErrCodeInvalid},
		{"1bad", Empty, ErrCodeInvalid},
		{"not_found", Empty, ErrCodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAllValidate(t *testing.T) {
	for _, c := range All() {
		if err := Validate(c); err != nil {
			t.Fatalf("declared code %q does not validate: %v", c, err)
		}
	}
}

func TestDefect(t *testing.T) {
	if Defect(UnknownLocale) || Defect(InvalidLocale) || Defect(Invalid) {
		t.Fatal("caller errors must not be defects")
	}
	if !Defect(MalformedInput) || !Defect(InvalidCatalog) {
		t.Fatal("malformed_input and invalid_catalog are defects")
	}
}

func TestTextRoundTrip(t *testing.T) {
	var _ encoding.TextMarshaler = MalformedInput

	b, err := MalformedInput.MarshalText()
	if err != nil || string(b) != "malformed_input" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}

	var c Code
	if err := c.UnmarshalText([]byte("  unknown-kind ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != UnknownKind {
		t.Fatalf("UnmarshalText = %q, want %q", c, UnknownKind)
	}

	if _, err := Empty.MarshalText(); err == nil {
		t.Fatal("empty code must not marshal")
	}
}
