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
	"io/fs"
	"path"
	"strings"

	"dirpx.dev/pyerr/kind"
	"dirpx.dev/pyerr/locale"
	"gopkg.in/yaml.v3"
)

// localeFile is the on-disk shape of one locale.
type localeFile struct {
	// Locale is the locale code. When empty, the file name without its
	// extension is used ("es.yaml" -> "es").
	Locale string `yaml:"locale"`

	// Kinds maps kind wire names to their templates.
	Kinds map[string]Entry `yaml:"kinds"`
}

// loadFS reads every .yaml/.yml file in fsys and returns the templates per
// locale. Later files override earlier ones kind by kind; WalkDir visits
// files in lexical order, so the result is deterministic.
func loadFS(fsys fs.FS) (map[locale.Code]map[kind.Kind]Entry, error) {
	out := make(map[locale.Code]map[kind.Kind]Entry)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", p, err)
		}

		raw := file.Locale
		if raw == "" {
			raw = strings.TrimSuffix(path.Base(p), ext)
		}
		loc, err := locale.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: locale %q: %w", p, raw, err)
		}

		entries := out[loc]
		if entries == nil {
			entries = make(map[kind.Kind]Entry, len(file.Kinds))
			out[loc] = entries
		}
		for name, e := range file.Kinds {
			k, err := kind.Parse(name)
			if err != nil {
				return fmt.Errorf("%s: kind %q: %w", p, name, err)
			}
			entries[k] = e
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
