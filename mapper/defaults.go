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

package mapper

import (
	"net/http"

	"dirpx.dev/pyerr/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the built-in HTTP mappings for every declared code.
// Callers may adjust them at the boundary where HTTP is actually produced.
var defaultHTTP = map[code.Code]int{
	// 4xx: the caller can fix the request.
	code.Invalid:       http.StatusBadRequest, // Undecodable body or missing message.
	code.InvalidLocale: http.StatusBadRequest, // Locale is not a well-formed tag.
	code.UnknownLocale: http.StatusNotFound,   // Well-formed locale without a catalog.

	// 5xx: defects inside pyerr.
	code.MalformedInput:   http.StatusInternalServerError, // Recognizer table disagrees with itself.
	code.UnknownKind:      http.StatusInternalServerError,
	code.IncompleteRecord: http.StatusInternalServerError,
	code.InvalidCatalog:   http.StatusInternalServerError,
	code.Internal:         http.StatusInternalServerError,
}

// defaultGRPC defines the built-in gRPC mappings for every declared code.
var defaultGRPC = map[code.Code]codes.Code{
	code.Invalid:       codes.InvalidArgument,
	code.InvalidLocale: codes.InvalidArgument,
	code.UnknownLocale: codes.NotFound, // No catalog is the closest thing to a missing resource.

	code.MalformedInput:   codes.Internal,
	code.UnknownKind:      codes.Internal,
	code.IncompleteRecord: codes.Internal,
	code.InvalidCatalog:   codes.Internal,
	code.Internal:         codes.Internal,
}
