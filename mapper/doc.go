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

// Package mapper provides deterministic, immutable mappings from pyerr
// failure codes (dirpx.dev/pyerr/code) to transport-level statuses for HTTP
// and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Code;
//  2. per-Code default (library or user-adjusted);
//  3. global fallback (500 / codes.Internal).
//
// # Library defaults
//
// Caller mistakes map to client statuses (code.Invalid and
// code.InvalidLocale -> 400 / InvalidArgument, code.UnknownLocale -> 404 /
// NotFound). Every defect code maps to 500 / Internal: the caller cannot fix
// it by changing the request.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.UnknownLocale, http.StatusUnprocessableEntity),
//	)
//	if err != nil {
//	    // unknown code or out-of-range status
//	}
//
//	st := m.Status(code.UnknownLocale)
//	// st.HTTP == 422, st.GRPC == codes.NotFound
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a code was resolved and which tier matched.
package mapper
