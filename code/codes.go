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

// Caller errors
//
// These codes describe input the caller can fix.
const (
	// Invalid indicates a request that could not be decoded at all, e.g. a
	// malformed JSON body or a missing message field.
	//
	// Can be mapped to an HTTP 400.
	Invalid Code = "invalid"

	// InvalidLocale indicates a locale identifier that is not a well-formed
	// language tag ("e$", "--").
	//
	// Can be mapped to an HTTP 400.
	InvalidLocale Code = "invalid_locale"

	// UnknownLocale indicates a well-formed locale that has no catalog.
	//
	// Can be mapped to an HTTP 404.
	UnknownLocale Code = "unknown_locale"
)

// Defects
//
// These codes signal an inconsistency inside pyerr itself. Retrying with the
// same input always yields the same failure.
const (
	// MalformedInput indicates that a recognizer accepted a message at the
	// dispatch level but its extraction pattern could not capture the
	// required groups. The recognizer table needs fixing.
	MalformedInput Code = "malformed_input"

	// UnknownKind indicates that the catalog has no entry for the record's
	// kind in the requested locale.
	UnknownKind Code = "unknown_kind"

	// IncompleteRecord indicates a record that does not carry every field
	// its kind declares.
	IncompleteRecord Code = "incomplete_record"

	// InvalidCatalog indicates catalog data that failed the consistency
	// check: a missing (kind, locale) pair, an unknown kind key, or an
	// undeclared placeholder.
	InvalidCatalog Code = "invalid_catalog"

	// Internal is the fallback for anything not covered above.
	Internal Code = "internal"
)

// all lists every declared code in a stable order.
var all = []Code{
	Invalid,
	InvalidLocale,
	UnknownLocale,
	MalformedInput,
	UnknownKind,
	IncompleteRecord,
	InvalidCatalog,
	Internal,
}

// All returns a copy of the declared codes.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}

// Defect reports whether c signals an internal inconsistency rather than a
// caller mistake.
func Defect(c Code) bool {
	switch c {
	case MalformedInput, UnknownKind, IncompleteRecord, InvalidCatalog, Internal:
		return true
	default:
		return false
	}
}
