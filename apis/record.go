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

package apis

import "dirpx.dev/pyerr/kind"

// Record is a classified message: its kind plus the values of the
// placeholders that kind declares.
//
// Implementations are immutable. Fields must list every placeholder
// declared by Kind().Fields(), in any order; renderers reject records that
// do not.
type Record interface {
	// Kind returns the error kind of the record.
	Kind() kind.Kind

	// Fields returns the placeholder values of the record. Numbers are
	// already in plain decimal form.
	Fields() []Field
}

// Field is one placeholder value.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Rendered is a fully substituted explanation ready for display.
//
// Details may contain lightweight markup (inline code in backticks and
// "  * " list items); consumers display it as-is.
type Rendered struct {
	Header  string `json:"header"`
	Details string `json:"details"`
}
