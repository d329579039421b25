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

package locale

import (
	"bytes"
	"encoding"
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// Code is a canonical locale identifier.
type Code string

// Spanish is the locale the catalog has always shipped with.
const Spanish Code = "es"

// English is the second embedded locale.
const English Code = "en"

// ErrInvalid is returned when a value is not a well-formed language tag.
var ErrInvalid = errors.New("pyerr: invalid locale")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value locale, meaning "not provided".
var Empty Code = ""

// Normalize trims spaces and turns '_' into '-'. Casing is left to Parse,
// which knows which subtags are upper- or lowercase.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, "_", "-")
}

// Parse normalizes s and returns its canonical language tag.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, ErrInvalid
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Empty, errors.Join(ErrInvalid, err)
	}
	return Code(tag.String()), nil
}

// MustParse is the panic-on-error variant of Parse, meant for package-level
// declarations.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks that c is already in canonical form.
func Validate(c Code) error {
	parsed, err := Parse(string(c))
	if err != nil {
		return err
	}
	if parsed != c {
		return ErrInvalid
	}
	return nil
}

// Tag returns the language tag for c. Invalid codes yield language.Und.
func (c Code) Tag() language.Tag {
	tag, err := language.Parse(string(c))
	if err != nil {
		return language.Und
	}
	return tag
}

// String returns the canonical string representation of the locale.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
