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

package grpcx

import (
	"context"

	"dirpx.dev/pyerr/adapter"
	"dirpx.dev/pyerr/apis"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Explain calls pyerr.v1.Explainer/Explain on cc. A failure status carrying
// ErrorInfo is returned as a *pyerr.Error (see FromStatus).
func Explain(ctx context.Context, cc grpc.ClientConnInterface, message, locale string, opts ...grpc.CallOption) (apis.ExplanationView, error) {
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, ExplainMethod, adapter.RequestToStruct(message, locale), out, opts...); err != nil {
		return apis.ExplanationView{}, FromStatus(err)
	}
	return adapter.ExplanationFromStruct(out)
}
