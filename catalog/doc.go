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

// Package catalog holds the localized explanation templates and renders
// classified records with them.
//
// # Data
//
// Each locale is one YAML document:
//
//	locale: es
//	kinds:
//	  name:
//	    header: "Se está referenciando a `{missingReference}`, ..."
//	    details: |-
//	      Esto se puede deber a que `{missingReference}`:
//	      ...
//
// The "es" and "en" catalogs are embedded in the binary. WithFS adds or
// overrides locales from any fs.FS, e.g. os.DirFS of a deployment directory.
//
// # Consistency
//
// New refuses to build a catalog with gaps: every kind must have an entry in
// every locale, and every "{placeholder}" must be declared by its kind
// (kind.Kind.Fields). A bad catalog fails at startup with
// code.InvalidCatalog instead of failing later on the first render.
//
// # Rendering
//
// Render replaces every occurrence of every declared placeholder in both
// templates in a single pass, so substituted values are never re-expanded.
// Numbers arrive already formatted in plain decimal.
//
// # Immutability
//
// A Catalog is a snapshot. It is safe for concurrent use and never changes
// after New returns.
package catalog
