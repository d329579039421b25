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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"dirpx.dev/pyerr/kind"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// matcher is the dispatch test of a rule. It only decides membership; it
// never extracts anything.
type matcher interface {
	match(msg string) bool
	// String describes the test for Explain, e.g. `prefix "NameError:"`.
	String() string
}

// prefix accepts messages starting with the given text.
type prefix string

func (p prefix) match(msg string) bool { return strings.HasPrefix(msg, string(p)) }
func (p prefix) String() string        { return fmt.Sprintf("prefix %q", string(p)) }

// exact accepts only the given text.
type exact string

func (e exact) match(msg string) bool { return msg == string(e) }
func (e exact) String() string        { return fmt.Sprintf("exact %q", string(e)) }

// pattern accepts messages matching a regular expression.
type pattern struct{ re *regexp.Regexp }

func (p pattern) match(msg string) bool { return p.re.MatchString(msg) }
func (p pattern) String() string        { return fmt.Sprintf("pattern %q", p.re.String()) }

// extractor pulls the fields out of a message its rule already accepted.
// ok == false means the message did not have the expected shape.
type extractor func(msg string) (rec Record, ok bool)

// rule pairs a dispatch test with an extractor for one kind.
type rule struct {
	kind     kind.Kind
	dispatch matcher
	extract  extractor
}

// Extraction patterns. \A anchors at the start of the trimmed message; the
// dispatch test has already checked the leading text.
var (
	booleanTypoDispatch = regexp.MustCompile(`^NameError: name '(false|true)'`)

	booleanTypoRe     = regexp.MustCompile(`\ANameError: name '(false|true)' is not defined`)
	undefinedNameRe   = regexp.MustCompile(`\ANameError: name '(.*)' is not defined`)
	assertBooleanRe   = regexp.MustCompile(`\AAssertionError: (.*) is not ((?i:true|false))`)
	assertEqualityRe  = regexp.MustCompile(`\AAssertionError: (.*) != (.*)`)
	intConversionRe   = regexp.MustCompile(`\AValueError: invalid literal for int\(\) with base 10: (?:'(.*)'|"(.*)")`)
	unsupportedTypeRe = regexp.MustCompile(`\ATypeError: unsupported operand type\(s\) for (.{1,2}?): '(.*)' and '(.*)'`)
	argumentsRe       = regexp.MustCompile(`\ATypeError: (.*)\(\) takes (\d+) positional arguments? but (\d+) (?:were|was) given`)
)

// Exact messages of the structural kinds.
const (
	listRemoveMessage      = "ValueError: list.remove(x): x not in list"
	indexOutOfRangeMessage = "IndexError: list index out of range"
)

// defaultRules is the recognizer table in precedence order. More specific
// shapes come first: booleanTypo is a strict subset of name, and arguments
// accepts any TypeError, so it must stay last.
func defaultRules() []rule {
	return []rule{
		{kind.BooleanTypo, pattern{booleanTypoDispatch}, extractBooleanTypo},
		{kind.Name, prefix("NameError:"), extractUndefinedName},
		{kind.ListRemove, exact(listRemoveMessage), func(string) (Record, bool) { return ListRemove{}, true }},
		{kind.IndexOutOfRange, exact(indexOutOfRangeMessage), func(string) (Record, bool) { return IndexOutOfRange{}, true }},
		{kind.AssertionError, prefix("AssertionError:"), extractAssertion},
		{kind.IntConversion, prefix("ValueError: invalid literal"), extractIntConversion},
		{kind.UnsupportedType, prefix("TypeError: unsupported operand type"), extractUnsupportedType},
		{kind.Arguments, prefix("TypeError: "), extractArguments},
	}
}

func extractBooleanTypo(msg string) (Record, bool) {
	m := booleanTypoRe.FindStringSubmatch(msg)
	if m == nil {
		return nil, false
	}
	return BooleanTypo{WrongValue: m[1], RightValue: capitalize(m[1])}, true
}

func extractUndefinedName(msg string) (Record, bool) {
	m := undefinedNameRe.FindStringSubmatch(msg)
	if m == nil {
		return nil, false
	}
	return UndefinedName{MissingReference: m[1]}, true
}

// extractAssertion tries the boolean shape ("X is not true") before the
// equality shape ("X != Y"). Only the first line of the message counts; a
// trailing unittest note ("X is not true : note") is allowed.
func extractAssertion(msg string) (Record, bool) {
	line, _, _ := strings.Cut(msg, "\n")
	line = strings.TrimRight(line, "\r")
	if m := assertBooleanRe.FindStringSubmatch(line); m != nil {
		return Assertion{Actual: m[1], Expected: capitalize(m[2])}, true
	}
	if m := assertEqualityRe.FindStringSubmatch(line); m != nil {
		return Assertion{Actual: m[1], Expected: m[2]}, true
	}
	return nil, false
}

func extractIntConversion(msg string) (Record, bool) {
	m := intConversionRe.FindStringSubmatchIndex(msg)
	if m == nil {
		return nil, false
	}
	// One of the two alternatives captured; the other reports -1.
	if m[2] >= 0 {
		return IntConversion{Value: msg[m[2]:m[3]]}, true
	}
	return IntConversion{Value: msg[m[4]:m[5]]}, true
}

func extractUnsupportedType(msg string) (Record, bool) {
	m := unsupportedTypeRe.FindStringSubmatch(msg)
	if m == nil {
		return nil, false
	}
	return UnsupportedType{Operator: m[1], LeftType: m[2], RightType: m[3]}, true
}

func extractArguments(msg string) (Record, bool) {
	m := argumentsRe.FindStringSubmatch(msg)
	if m == nil {
		return nil, false
	}
	takes, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, false
	}
	given, err := strconv.Atoi(m[3])
	if err != nil {
		return nil, false
	}
	return Arguments{Reference: m[1], ActualParametersCount: takes, ExpectedArgumentsCount: given}, true
}

// capitalize upper-cases the first letter and lower-cases the rest:
// "false" -> "False", "TRUE" -> "True".
func capitalize(s string) string {
	// Casers keep state; one per call keeps capitalize safe for concurrent use.
	return cases.Title(language.Und).String(s)
}
