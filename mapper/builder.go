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
	"maps"
	"net/http"

	"dirpx.dev/pyerr/code"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// httpDefaults holds per-code HTTP defaults, seeded from defaultHTTP.
	httpDefaults map[code.Code]int
	// grpcDefaults holds per-code gRPC defaults, seeded from defaultGRPC.
	grpcDefaults map[code.Code]codes.Code

	// httpOverride holds exact per-code HTTP overrides (higher than defaults).
	httpOverride map[code.Code]int
	// grpcOverride holds exact per-code gRPC overrides.
	grpcOverride map[code.Code]codes.Code

	// global fallbacks used when a code has no default at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates a builder seeded with the library defaults.
func newBuilder() *builder {
	return &builder{
		httpDefaults: maps.Clone(defaultHTTP),
		grpcDefaults: maps.Clone(defaultGRPC),

		// overrides are usually few
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]codes.Code),

		// hard fallbacks if the code was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}

// freeze makes an immutable copy of a per-code table so later mutations to
// the builder cannot affect the mapper. Empty tables become nil.
func freeze[V any](src map[code.Code]V) map[code.Code]V {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}
