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

// Package explain classifies raw interpreter error messages and extracts
// their structured fields.
//
// # Model
//
// A classification result is a Record: a sealed sum type with one variant
// per kind.Kind, each holding exactly the fields its kind declares:
//
//	UndefinedName    missingReference
//	BooleanTypo      wrongValue, rightValue
//	UnsupportedType  operator, leftType, rightType
//	Arguments        reference, actualParametersCount, expectedArgumentsCount
//	IntConversion    value
//	Assertion        actual, expected
//	ListRemove       (none)
//	IndexOutOfRange  (none)
//
// # Resolution
//
// The message is trimmed, then an ordered list of recognizers is tried. Each
// recognizer pairs a cheap dispatch test (prefix, exact text or anchored
// pattern) with a field extractor. The first recognizer whose dispatch test
// accepts the message decides the outcome:
//
//  1. booleanTypo      ^NameError: name '(false|true)'
//  2. name             prefix "NameError:"
//  3. listRemove       exact "ValueError: list.remove(x): x not in list"
//  4. indexOutOfRange  exact "IndexError: list index out of range"
//  5. assertionError   prefix "AssertionError:"
//  6. intConversion    prefix "ValueError: invalid literal"
//  7. unsupportedType  prefix "TypeError: unsupported operand type"
//  8. arguments        prefix "TypeError: "
//
// If no dispatch test accepts the message, Classify reports ok == false.
// That is the normal "cannot explain" outcome, not an error.
//
// If a dispatch test accepts the message but the extractor cannot capture
// its groups, Classify returns a *pyerr.Error with code.MalformedInput. That
// points at an inconsistency in the recognizer table, so callers should log
// it and show nothing rather than retry.
//
// # Field semantics
//
// Counts in Arguments keep the historical naming: the interpreter's
// "takes N positional arguments" is ActualParametersCount and "but M were
// given" is ExpectedArgumentsCount. Consumers depend on it.
//
// # Diagnostics
//
// Classifier.Explain returns a trace of the rules tried for a message. It is
// meant for debugging and tests, not for machine parsing.
package explain
