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
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"dirpx.dev/pyerr"
	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/code"
	"dirpx.dev/pyerr/kind"
	"dirpx.dev/pyerr/locale"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// ErrorDomain is the ErrorInfo domain of every pyerr failure.
const ErrorDomain = "pyerr.dirpx.dev"

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *pyerr.Error into gRPC statuses with an errdetails.ErrorInfo detail, plus
// an errdetails.BadRequest for caller mistakes.
//
// The provided apis.Mapper resolves the gRPC code. Errors that are not
// *pyerr.Error are returned as-is. Defects are logged at error level.
func UnaryServerInterceptor(m apis.Mapper, logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var pe *pyerr.Error
		if !errors.As(err, &pe) {
			// Not ours; return as-is.
			return nil, err
		}

		if code.Defect(pe.Code) {
			logger.Error("explain failed",
				zap.String("method", info.FullMethod),
				zap.String("code", string(pe.Code)),
				zap.Error(pe))
		}

		base := gstatus.New(m.GRPCStatus(pe.Code), pe.Message)
		details := []protoadapt.MessageV1{ErrorInfo(pe)}
		if br := badRequest(pe); br != nil {
			details = append(details, br)
		}
		// If attaching details fails, return the bare status.
		if with, err := base.WithDetails(details...); err == nil {
			return nil, with.Err()
		}
		return nil, base.Err()
	}
}

// ErrorInfo builds the ErrorInfo detail of e. Reason is the upper-cased
// code; metadata carries the kind, the locale and every stringified detail.
func ErrorInfo(e *pyerr.Error) *errdetails.ErrorInfo {
	md := make(map[string]string, len(e.Details)+3)
	md["code"] = string(e.Code)
	if e.Kind != "" {
		md["kind"] = string(e.Kind)
	}
	if e.Locale != "" {
		md["locale"] = string(e.Locale)
	}
	for k, v := range e.Details {
		if _, taken := md[k]; !taken {
			md[k] = fmt.Sprint(v)
		}
	}
	return &errdetails.ErrorInfo{
		Reason:   strings.ToUpper(string(e.Code)),
		Domain:   ErrorDomain,
		Metadata: md,
	}
}

// badRequest describes caller mistakes as field violations. It returns nil
// for every other code.
func badRequest(e *pyerr.Error) *errdetails.BadRequest {
	var field string
	switch e.Code {
	case code.InvalidLocale:
		field = "locale"
	case code.Invalid:
		if f, ok := e.Details["field"].(string); ok {
			field = f
		}
	default:
		return nil
	}
	return &errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       field,
			Description: e.Message,
		}},
	}
}

// ExtractErrorInfo pulls the errdetails.ErrorInfo out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := gstatus.FromError(err)
	if err == nil || !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ExtractBadRequest pulls the errdetails.BadRequest out of a gRPC error, if
// present.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	st, ok := gstatus.FromError(err)
	if err == nil || !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br, true
		}
	}
	return nil, false
}

// FromStatus rebuilds a *pyerr.Error from a gRPC error carrying ErrorInfo.
// Errors without it are wrapped as code.Internal.
func FromStatus(err error) *pyerr.Error {
	if err == nil {
		return nil
	}
	info, ok := ExtractErrorInfo(err)
	if !ok || info.GetDomain() != ErrorDomain {
		return pyerr.As(err)
	}
	c, perr := code.Parse(info.GetMetadata()["code"])
	if perr != nil {
		c = code.Internal
	}
	st, _ := gstatus.FromError(err)
	e := pyerr.E(c, st.Message())
	md := info.GetMetadata()
	for _, k := range slices.Sorted(maps.Keys(md)) {
		switch k {
		case "code":
		case "kind":
			e = e.WithKind(kind.Kind(md[k]))
		case "locale":
			e = e.WithLocale(locale.Code(md[k]))
		default:
			e = e.WithDetail(k, md[k])
		}
	}
	return e
}
