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

// ErrorView is the serializable shape of a failure, shared by the HTTP and
// gRPC surfaces.
type ErrorView struct {
	// Code is the canonical failure code, e.g. "malformed_input".
	Code string `json:"code"`
	// Kind is the error kind involved, if any.
	Kind string `json:"kind,omitempty"`
	// Locale is the locale involved, if any.
	Locale string `json:"locale,omitempty"`
	// Message is a human-friendly description.
	Message string `json:"message,omitempty"`
	// Details carries stringified detail values.
	Details map[string]string `json:"details,omitempty"`
}

// ExplanationView is the serializable shape of a successful explain call.
// When Explained is false only Locale is set.
type ExplanationView struct {
	Explained bool              `json:"explained"`
	Kind      string            `json:"kind,omitempty"`
	Locale    string            `json:"locale,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	Header    string            `json:"header,omitempty"`
	Details   string            `json:"details,omitempty"`
}
