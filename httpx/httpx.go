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

// Package httpx exposes the explain service over HTTP.
//
//	POST /v1/explain
//	{"message": "NameError: name 'foo' is not defined", "locale": "es"}
//
// A recognized message yields 200 with the explanation; an unrecognized one
// yields 200 with {"explained": false}. Failures are written as an ErrorView
// with the status resolved by an apis.Mapper.
package httpx

import (
	"io"
	"net/http"

	"dirpx.dev/pyerr"
	"dirpx.dev/pyerr/adapter"
	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/code"
	"dirpx.dev/pyerr/service"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ExplainPath is the route served by Handler.
const ExplainPath = "/v1/explain"

// maxBody caps request bodies; error messages are short.
const maxBody = 1 << 20

// Meta carries extra context that the HTTP layer adds on top of a
// pyerr.Error. All fields are optional.
type Meta struct {
	// Correlation echoes the caller's X-Request-Id.
	Correlation string
}

// Writer turns a pyerr.Error into an HTTP response using the provided status
// mapper.
type Writer struct {
	Mapper apis.Mapper
	Logger *zap.Logger
}

// Write serializes the error view with protojson and writes it with the
// mapped status. No redaction is performed: whatever is present in the error
// is exposed as-is.
func (w Writer) Write(rw http.ResponseWriter, err *pyerr.Error, meta Meta) {
	if err == nil {
		return
	}
	st := w.Mapper.Status(err.Code)
	if code.Defect(err.Code) && w.Logger != nil {
		w.Logger.Error("explain failed",
			zap.String("code", string(err.Code)),
			zap.String("correlation", meta.Correlation),
			zap.Error(err))
	}

	s, mErr := adapter.ViewToStruct(adapter.ToView(err))
	if mErr != nil {
		s, _ = adapter.ViewToStruct(apis.ErrorView{Code: string(code.Internal)})
		st.HTTP = http.StatusInternalServerError
	}
	if meta.Correlation != "" {
		s.Fields["correlation"] = structpb.NewStringValue(meta.Correlation)
	}
	writeJSON(rw, st.HTTP, s)
}

func writeJSON(rw http.ResponseWriter, status int, m proto.Message) {
	// protobuf JSON must go through protojson for well-known types.
	b, _ := protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(m)
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(b)
}

// Handler serves ExplainPath. It is safe for concurrent use.
type Handler struct {
	svc    *service.Service
	w      Writer
	logger *zap.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler returns a Handler backed by svc, resolving failure statuses
// with m.
func NewHandler(svc *service.Service, m apis.Mapper, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}
	h.w = Writer{Mapper: m, Logger: h.logger}
	return h
}

// Mux returns a ServeMux with the handler mounted at ExplainPath.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(ExplainPath, h)
	return mux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	meta := Meta{Correlation: r.Header.Get("X-Request-Id")}

	if r.Method != http.MethodPost {
		rw.Header().Set("Allow", http.MethodPost)
		s, _ := adapter.ViewToStruct(apis.ErrorView{
			Code:    string(code.Invalid),
			Message: "method " + r.Method + " not allowed",
		})
		writeJSON(rw, http.StatusMethodNotAllowed, s)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, maxBody))
	if err != nil {
		h.w.Write(rw, pyerr.E(code.Invalid, "failed to read body", pyerr.WithCauseOption(err)), meta)
		return
	}
	var req structpb.Struct
	if err := protojson.Unmarshal(body, &req); err != nil {
		h.w.Write(rw, pyerr.E(code.Invalid, "body is not a JSON object", pyerr.WithCauseOption(err)), meta)
		return
	}
	message, loc, err := adapter.RequestFromStruct(&req)
	if err != nil {
		h.w.Write(rw, pyerr.As(err), meta)
		return
	}

	res, err := h.svc.Explain(message, loc)
	if err != nil {
		h.w.Write(rw, pyerr.As(err), meta)
		return
	}
	out, err := adapter.ExplanationToStruct(adapter.ToExplanation(res))
	if err != nil {
		h.w.Write(rw, pyerr.E(code.Internal, "failed to encode result", pyerr.WithCauseOption(err)), meta)
		return
	}
	h.logger.Debug("explain served",
		zap.Bool("explained", res.Explained),
		zap.String("locale", string(res.Locale)),
		zap.String("correlation", meta.Correlation))
	writeJSON(rw, http.StatusOK, out)
}
