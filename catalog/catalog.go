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
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"dirpx.dev/pyerr"
	"dirpx.dev/pyerr/apis"
	"dirpx.dev/pyerr/code"
	"dirpx.dev/pyerr/kind"
	"dirpx.dev/pyerr/locale"
	"go.uber.org/zap"
)

// Entry is the template pair of one kind in one locale.
type Entry struct {
	Header  string `yaml:"header"`
	Details string `yaml:"details"`
}

// Catalog is an immutable, validated set of templates indexed by locale
// and kind. It is safe for concurrent use.
type Catalog struct {
	entries map[locale.Code]map[kind.Kind]Entry
	locales []locale.Code
	logger  *zap.Logger
}

var placeholderRe = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9]*)\}`)

// New loads the embedded catalogs (unless WithoutEmbedded), then every
// WithFS source, then every WithEntry template, and validates the result.
// Any load or consistency problem is reported with code.InvalidCatalog.
func New(opts ...Option) (*Catalog, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	sources := b.sources
	if b.embedded {
		sources = append([]sourceFS{{name: "embedded", fsys: Embedded}}, sources...)
	}

	entries := make(map[locale.Code]map[kind.Kind]Entry)
	for _, src := range sources {
		loaded, err := loadFS(src.fsys)
		if err != nil {
			return nil, pyerr.E(code.InvalidCatalog, "failed to load "+src.name+" catalog",
				pyerr.WithCauseOption(err))
		}
		for loc, byKind := range loaded {
			merge(entries, loc, byKind)
		}
		b.logger.Debug("catalog source loaded",
			zap.String("source", src.name),
			zap.Int("locales", len(loaded)))
	}
	for _, o := range b.overrides {
		if err := locale.Validate(o.loc); err != nil {
			return nil, pyerr.E(code.InvalidCatalog, "invalid locale in entry",
				pyerr.WithLocaleOption(o.loc), pyerr.WithCauseOption(err))
		}
		if !o.kind.Valid() {
			return nil, pyerr.E(code.InvalidCatalog, "unknown kind in entry",
				pyerr.WithDetailOption("kind", string(o.kind)))
		}
		merge(entries, o.loc, map[kind.Kind]Entry{o.kind: o.entry})
	}

	c := &Catalog{entries: entries, logger: b.logger}
	for loc := range entries {
		c.locales = append(c.locales, loc)
	}
	slices.Sort(c.locales)

	if err := c.Check(); err != nil {
		return nil, err
	}
	return c, nil
}

func merge(dst map[locale.Code]map[kind.Kind]Entry, loc locale.Code, src map[kind.Kind]Entry) {
	m := dst[loc]
	if m == nil {
		m = make(map[kind.Kind]Entry, len(src))
		dst[loc] = m
	}
	for k, e := range src {
		m[k] = e
	}
}

// Check verifies that the catalog is complete and consistent:
//   - at least one locale is present;
//   - every kind has an entry in every locale;
//   - every entry has a non-empty header;
//   - every placeholder in header and details is declared by the kind.
func (c *Catalog) Check() error {
	if len(c.locales) == 0 {
		return pyerr.E(code.InvalidCatalog, "catalog has no locales")
	}
	for _, loc := range c.locales {
		byKind := c.entries[loc]
		for _, k := range kind.All() {
			e, ok := byKind[k]
			if !ok {
				return pyerr.E(code.InvalidCatalog, "missing entry",
					pyerr.WithKindOption(k), pyerr.WithLocaleOption(loc))
			}
			if strings.TrimSpace(e.Header) == "" {
				return pyerr.E(code.InvalidCatalog, "empty header",
					pyerr.WithKindOption(k), pyerr.WithLocaleOption(loc))
			}
			for _, tmpl := range [...]string{e.Header, e.Details} {
				for _, m := range placeholderRe.FindAllStringSubmatch(tmpl, -1) {
					if !k.Declares(m[1]) {
						return pyerr.E(code.InvalidCatalog, "undeclared placeholder",
							pyerr.WithKindOption(k),
							pyerr.WithLocaleOption(loc),
							pyerr.WithDetailOption("placeholder", m[1]))
					}
				}
			}
		}
	}
	return nil
}

// Locales returns the locales of the catalog in sorted order.
func (c *Catalog) Locales() []locale.Code {
	return slices.Clone(c.locales)
}

// Has reports whether loc is present in the catalog.
func (c *Catalog) Has(loc locale.Code) bool {
	_, ok := c.entries[loc]
	return ok
}

// Lookup returns the unrendered templates of k in loc.
func (c *Catalog) Lookup(loc locale.Code, k kind.Kind) (Entry, bool) {
	e, ok := c.entries[loc][k]
	return e, ok
}

// Render substitutes the fields of rec into the templates of its kind in
// loc. Every occurrence of every declared placeholder is replaced; values
// are inserted verbatim and are not re-scanned for placeholders.
//
// Errors:
//   - code.UnknownLocale when loc is not in the catalog;
//   - code.UnknownKind when the record's kind has no entry;
//   - code.IncompleteRecord when rec lacks a field its kind declares;
//   - code.Internal when rec is nil.
func (c *Catalog) Render(rec apis.Record, loc locale.Code) (apis.Rendered, error) {
	if rec == nil {
		return apis.Rendered{}, pyerr.E(code.Internal, "nil record")
	}
	byKind, ok := c.entries[loc]
	if !ok {
		return apis.Rendered{}, pyerr.E(code.UnknownLocale, "locale not in catalog",
			pyerr.WithLocaleOption(loc))
	}
	k := rec.Kind()
	e, ok := byKind[k]
	if !ok {
		return apis.Rendered{}, pyerr.E(code.UnknownKind, "kind not in catalog",
			pyerr.WithKindOption(k), pyerr.WithLocaleOption(loc))
	}

	declared := k.Fields()
	if len(declared) == 0 {
		return apis.Rendered{Header: e.Header, Details: e.Details}, nil
	}

	values := make(map[string]string, len(declared))
	for _, f := range rec.Fields() {
		values[f.Name] = f.Value
	}
	pairs := make([]string, 0, 2*len(declared))
	for _, name := range declared {
		v, ok := values[name]
		if !ok {
			c.logger.Error("record is missing a declared field",
				zap.String("kind", string(k)),
				zap.String("field", name))
			return apis.Rendered{}, pyerr.E(code.IncompleteRecord, "record is missing field "+name,
				pyerr.WithKindOption(k), pyerr.WithDetailOption("field", name))
		}
		pairs = append(pairs, "{"+name+"}", v)
	}
	r := strings.NewReplacer(pairs...)
	return apis.Rendered{
		Header:  r.Replace(e.Header),
		Details: r.Replace(e.Details),
	}, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return c
})

// Default returns the catalog built from the embedded locale files.
// It panics if the embedded files are inconsistent, which is a build defect.
func Default() *Catalog {
	return defaultCatalog()
}
