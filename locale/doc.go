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

// Package locale provides parsing and normalization for the locale codes
// that select a catalog.
//
// A locale code is a BCP 47 language tag in its canonical form as produced
// by golang.org/x/text/language: "es", "en", "es-AR", "pt-BR". Parse is
// lenient about case and accepts '_' as a separator, so user input such as
// " ES ", "es_ar" or "EN-us" is accepted and canonicalized.
//
// Lookups in the catalog are exact: "es-AR" does not fall back to "es".
package locale
