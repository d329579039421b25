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

// Package service joins classification and rendering into the single call
// transports and the CLI use.
package service

import (
	"dirpx.dev/pyerr"
	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/catalog"
	"dirpx.dev/pyerr/code"
	"dirpx.dev/pyerr/explain"
	"dirpx.dev/pyerr/locale"
	"go.uber.org/zap"
)

// Classifier turns a raw message into a record. *explain.Classifier
// satisfies it.
type Classifier interface {
	Classify(raw string) (explain.Record, bool, error)
}

// Renderer renders a record in a locale. *catalog.Catalog satisfies it.
type Renderer interface {
	Render(rec apis.Record, loc locale.Code) (apis.Rendered, error)
	Has(loc locale.Code) bool
}

// Result is the outcome of Explain. When Explained is false the message was
// not recognized and Record and Rendered are zero.
type Result struct {
	Explained bool
	Record    explain.Record
	Locale    locale.Code
	Rendered  apis.Rendered
}

// Service is safe for concurrent use.
type Service struct {
	cls    Classifier
	cat    Renderer
	def    locale.Code
	logger *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithDefaultLocale sets the locale used when Explain gets an empty one.
// The default is locale.Spanish.
func WithDefaultLocale(loc locale.Code) Option {
	return func(s *Service) {
		if loc != locale.Empty {
			s.def = loc
		}
	}
}

// WithLogger sets the service logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Service. A nil cls or cat falls back to explain.New() and
// catalog.Default().
func New(cls Classifier, cat Renderer, opts ...Option) *Service {
	if cls == nil {
		cls = explain.New()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	s := &Service{
		cls:    cls,
		cat:    cat,
		def:    locale.Spanish,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Explain parses localeStr, classifies message and, on a match, renders it.
//
// The locale is checked against the catalog before classification, so a
// locale without a catalog fails with code.UnknownLocale whether or not the
// message is recognized. An unrecognized message is not an error: it yields
// Result{Explained: false} with the resolved locale. Other failures carry a
// *pyerr.Error: code.InvalidLocale for a malformed locale,
// code.MalformedInput from the classifier, and the catalog codes from
// rendering.
func (s *Service) Explain(message, localeStr string) (Result, error) {
	loc := s.def
	if localeStr != "" {
		parsed, err := locale.Parse(localeStr)
		if err != nil {
			return Result{}, pyerr.E(code.InvalidLocale, "invalid locale "+localeStr,
				pyerr.WithCauseOption(err),
				pyerr.WithDetailOption("locale", localeStr))
		}
		loc = parsed
	}
	if !s.cat.Has(loc) {
		return Result{}, pyerr.E(code.UnknownLocale, "locale not in catalog",
			pyerr.WithLocaleOption(loc))
	}

	rec, ok, err := s.cls.Classify(message)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		s.logger.Debug("message not recognized", zap.Int("length", len(message)))
		return Result{Locale: loc}, nil
	}

	out, err := s.cat.Render(rec, loc)
	if err != nil {
		return Result{}, err
	}
	s.logger.Debug("message explained",
		zap.String("kind", string(rec.Kind())),
		zap.String("locale", string(loc)))
	return Result{Explained: true, Record: rec, Locale: loc, Rendered: out}, nil
}
