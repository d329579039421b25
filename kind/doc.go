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

// Package kind defines the closed set of error kinds pyerr can explain.
//
// Each kind names one family of interpreter messages and declares the
// placeholder fields its catalog templates may reference. The wire names
// ("name", "booleanTypo", "arguments", ...) are part of the contract with
// existing consumers and must not change.
//
// Adding a kind means adding a constant here, a recognizer in package explain
// and an entry for every locale in package catalog. Kinds are never inferred
// at runtime.
package kind
