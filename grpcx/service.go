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

// Package grpcx exposes the explain service over gRPC.
//
// The service is declared by hand and exchanges google.protobuf.Struct
// messages, so no generated code is needed:
//
//	service pyerr.v1.Explainer {
//	  rpc Explain(google.protobuf.Struct) returns (google.protobuf.Struct);
//	}
//
// The request and response shapes match the HTTP surface (see httpx).
// Failures travel as gRPC statuses carrying errdetails.ErrorInfo; install
// UnaryServerInterceptor so that *pyerr.Error values are converted.
package grpcx

import (
	"context"

	"dirpx.dev/pyerr/adapter"
	"dirpx.dev/pyerr/service"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName is the fully-qualified gRPC service name.
	ServiceName = "pyerr.v1.Explainer"

	// ExplainMethod is the full method name of Explain.
	ExplainMethod = "/" + ServiceName + "/Explain"
)

// ExplainerServer is the server API of pyerr.v1.Explainer.
type ExplainerServer interface {
	Explain(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func explainHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExplainerServer).Explain(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExplainMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ExplainerServer).Explain(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// ServiceDesc is the grpc.ServiceDesc for pyerr.v1.Explainer.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ExplainerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Explain",
			Handler:    explainHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pyerr/v1/explainer.proto",
}

// Register registers srv with s.
func Register(s grpc.ServiceRegistrar, srv ExplainerServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Server implements ExplainerServer on top of a service.Service.
type Server struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewServer returns a Server. A nil logger is replaced by a no-op one.
func NewServer(svc *service.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{svc: svc, logger: logger}
}

var _ ExplainerServer = (*Server)(nil)

// Explain implements ExplainerServer. Failures are returned as *pyerr.Error
// for UnaryServerInterceptor to convert.
func (s *Server) Explain(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	message, loc, err := adapter.RequestFromStruct(req)
	if err != nil {
		return nil, err
	}
	res, err := s.svc.Explain(message, loc)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("explain served",
		zap.Bool("explained", res.Explained),
		zap.String("locale", string(res.Locale)))
	return adapter.ExplanationToStruct(adapter.ToExplanation(res))
}
