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

package explain

import (
	"strconv"

	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/kind"
)

// Record is a classified message. The set of implementations is closed:
// only the variants in this file satisfy it.
type Record interface {
	apis.Record
	sealed()
}

var (
	_ Record = UndefinedName{}
	_ Record = BooleanTypo{}
	_ Record = UnsupportedType{}
	_ Record = Arguments{}
	_ Record = IntConversion{}
	_ Record = Assertion{}
	_ Record = ListRemove{}
	_ Record = IndexOutOfRange{}
)

// UndefinedName is a reference to an identifier that does not exist.
type UndefinedName struct {
	MissingReference string
}

func (UndefinedName) Kind() kind.Kind { return kind.Name }

func (r UndefinedName) Fields() []apis.Field {
	return []apis.Field{{Name: kind.FieldMissingReference, Value: r.MissingReference}}
}

func (UndefinedName) sealed() {}

// BooleanTypo is a lowercase true/false used where True/False was meant.
// WrongValue is the literal as written, RightValue its capitalized form.
type BooleanTypo struct {
	WrongValue string
	RightValue string
}

func (BooleanTypo) Kind() kind.Kind { return kind.BooleanTypo }

func (r BooleanTypo) Fields() []apis.Field {
	return []apis.Field{
		{Name: kind.FieldWrongValue, Value: r.WrongValue},
		{Name: kind.FieldRightValue, Value: r.RightValue},
	}
}

func (BooleanTypo) sealed() {}

// UnsupportedType is a binary operator applied to incompatible operands.
// Operator is one or two characters ("+", "/", "+=").
type UnsupportedType struct {
	Operator  string
	LeftType  string
	RightType string
}

func (UnsupportedType) Kind() kind.Kind { return kind.UnsupportedType }

func (r UnsupportedType) Fields() []apis.Field {
	return []apis.Field{
		{Name: kind.FieldOperator, Value: r.Operator},
		{Name: kind.FieldLeftType, Value: r.LeftType},
		{Name: kind.FieldRightType, Value: r.RightType},
	}
}

func (UnsupportedType) sealed() {}

// Arguments is a call with the wrong number of positional arguments.
//
// ActualParametersCount holds the interpreter's "takes N" and
// ExpectedArgumentsCount its "M were given". The names read inverted but are
// kept for compatibility with existing templates and consumers.
type Arguments struct {
	Reference              string
	ActualParametersCount  int
	ExpectedArgumentsCount int
}

func (Arguments) Kind() kind.Kind { return kind.Arguments }

func (r Arguments) Fields() []apis.Field {
	return []apis.Field{
		{Name: kind.FieldReference, Value: r.Reference},
		{Name: kind.FieldActualParametersCount, Value: strconv.Itoa(r.ActualParametersCount)},
		{Name: kind.FieldExpectedArgumentsCount, Value: strconv.Itoa(r.ExpectedArgumentsCount)},
	}
}

func (Arguments) sealed() {}

// IntConversion is a literal that could not be parsed as a base 10 integer.
type IntConversion struct {
	Value string
}

func (IntConversion) Kind() kind.Kind { return kind.IntConversion }

func (r IntConversion) Fields() []apis.Field {
	return []apis.Field{{Name: kind.FieldValue, Value: r.Value}}
}

func (IntConversion) sealed() {}

// Assertion is a failed equality or boolean assertion. Both values are the
// raw text from the message; no coercion is applied.
type Assertion struct {
	Actual   string
	Expected string
}

func (Assertion) Kind() kind.Kind { return kind.AssertionError }

func (r Assertion) Fields() []apis.Field {
	return []apis.Field{
		{Name: kind.FieldActual, Value: r.Actual},
		{Name: kind.FieldExpected, Value: r.Expected},
	}
}

func (Assertion) sealed() {}

// ListRemove is a list.remove(x) where x is not in the list.
type ListRemove struct{}

func (ListRemove) Kind() kind.Kind { return kind.ListRemove }

func (ListRemove) Fields() []apis.Field { return nil }

func (ListRemove) sealed() {}

// IndexOutOfRange is a list index past the end of the list.
type IndexOutOfRange struct{}

func (IndexOutOfRange) Kind() kind.Kind { return kind.IndexOutOfRange }

func (IndexOutOfRange) Fields() []apis.Field { return nil }

func (IndexOutOfRange) sealed() {}
