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

package catalog

import (
	"io/fs"

	"dirpx.dev/pyerr/kind"
	"dirpx.dev/pyerr/locale"
	"go.uber.org/zap"
)

// Option configures the Catalog at build time.
// All options are applied to an internal builder and then frozen into an
// immutable Catalog.
type Option func(*builder)

// sourceFS is one fs.FS to load, in registration order.
type sourceFS struct {
	name string
	fsys fs.FS
}

// entryOverride is a single template registered in code.
type entryOverride struct {
	loc   locale.Code
	kind  kind.Kind
	entry Entry
}

type builder struct {
	embedded  bool
	sources   []sourceFS
	overrides []entryOverride
	logger    *zap.Logger
}

func newBuilder() *builder {
	return &builder{
		embedded: true,
		logger:   zap.NewNop(),
	}
}

// WithFS loads additional locale files from fsys. Files loaded later
// override earlier ones kind by kind, so a directory can replace a single
// template of the embedded catalog or add a whole new locale.
func WithFS(fsys fs.FS) Option {
	return func(b *builder) {
		if fsys != nil {
			b.sources = append(b.sources, sourceFS{name: "fs", fsys: fsys})
		}
	}
}

// WithEntry registers one template in code. Entries are applied after all
// file systems.
func WithEntry(loc locale.Code, k kind.Kind, header, details string) Option {
	return func(b *builder) {
		b.overrides = append(b.overrides, entryOverride{loc: loc, kind: k, entry: Entry{Header: header, Details: details}})
	}
}

// WithoutEmbedded skips the embedded catalogs. The caller must then supply
// every kind for every locale itself.
func WithoutEmbedded() Option {
	return func(b *builder) { b.embedded = false }
}

// WithLogger sets the logger used for load and render reporting.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}
