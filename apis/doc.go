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

// Package apis defines the small Go-level contracts shared across pyerr.
//
// Classified records, rendered explanations, status mapping and the error
// view all meet here so that the catalog, the transports and the classifier
// can depend on shapes rather than on each other's concrete types.
//
// This package must stay lightweight: interfaces and tiny view types only.
package apis
