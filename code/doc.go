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

// Package code defines the failure codes reported by pyerr.
//
// A code answers "why could this message not be explained?". It is never
// used for the normal "no explanation available" outcome: a message that no
// recognizer accepts is reported as a plain miss, not as an error.
//
// Codes are:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated;
//   - suitable for JSON payloads, gRPC ErrorInfo reasons and status mapping.
//
// The set is closed. Parse accepts only the codes declared in codes.go.
package code
