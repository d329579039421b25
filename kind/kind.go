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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Kind identifies an error kind. The zero value is not a valid kind.
type Kind string

const (
	// Name is a reference to an identifier that is not defined.
	Name Kind = "name"

	// BooleanTypo is a reference to the lowercase literal true or false,
	// almost always meant as True or False.
	BooleanTypo Kind = "booleanTypo"

	// UnsupportedType is a binary operator applied to operands whose types
	// do not support it.
	UnsupportedType Kind = "unsupportedType"

	// Arguments is a call whose argument count does not match the callee's
	// positional parameters.
	Arguments Kind = "arguments"

	// IntConversion is a string that could not be parsed as a base 10 integer.
	IntConversion Kind = "intConversion"

	// AssertionError is a failed equality or boolean assertion.
	AssertionError Kind = "assertionError"

	// ListRemove is a remove-by-value on a list that does not hold the value.
	ListRemove Kind = "listRemove"

	// IndexOutOfRange is a list index past the end of the list.
	IndexOutOfRange Kind = "indexOutOfRange"
)

// Placeholder names. They appear in templates as "{name}".
const (
	FieldMissingReference       = "missingReference"
	FieldWrongValue             = "wrongValue"
	FieldRightValue             = "rightValue"
	FieldOperator               = "operator"
	FieldLeftType               = "leftType"
	FieldRightType              = "rightType"
	FieldReference              = "reference"
	FieldActualParametersCount  = "actualParametersCount"
	FieldExpectedArgumentsCount = "expectedArgumentsCount"
	FieldValue                  = "value"
	FieldActual                 = "actual"
	FieldExpected               = "expected"
)

// ErrUnknown is returned by Parse for anything outside the declared set.
var ErrUnknown = errors.New("pyerr: unknown kind")

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// declared holds the kinds in declaration order together with their fields.
var declared = []struct {
	kind   Kind
	fields []string
}{
	{Name, []string{FieldMissingReference}},
	{BooleanTypo, []string{FieldWrongValue, FieldRightValue}},
	{UnsupportedType, []string{FieldOperator, FieldLeftType, FieldRightType}},
	{Arguments, []string{FieldReference, FieldActualParametersCount, FieldExpectedArgumentsCount}},
	{IntConversion, []string{FieldValue}},
	{AssertionError, []string{FieldActual, FieldExpected}},
	{ListRemove, nil},
	{IndexOutOfRange, nil},
}

// All returns every declared kind in declaration order.
func All() []Kind {
	out := make([]Kind, 0, len(declared))
	for _, d := range declared {
		out = append(out, d.kind)
	}
	return out
}

// Parse returns the declared kind named by s. Surrounding spaces are
// ignored; the name itself is case-sensitive.
func Parse(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, d := range declared {
		if string(d.kind) == s {
			return d.kind, nil
		}
	}
	return "", ErrUnknown
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, err := Parse(string(k))
	return err == nil
}

// Fields returns a copy of the placeholder names declared for k, or nil for
// kinds without fields and for unknown kinds.
func (k Kind) Fields() []string {
	for _, d := range declared {
		if d.kind == k {
			if len(d.fields) == 0 {
				return nil
			}
			out := make([]string, len(d.fields))
			copy(out, d.fields)
			return out
		}
	}
	return nil
}

// Declares reports whether field is one of k's placeholders.
func (k Kind) Declares(field string) bool {
	for _, f := range k.Fields() {
		if f == field {
			return true
		}
	}
	return false
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, ErrUnknown
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
