// Copyright 2019 eBay Inc.
// Primary authors: Simon Fell, Diego Ongaro,
//                  Raymond Kroeker, and Sathish Kandasamy.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package owl

import (
	"github.com/ebay/kanaga/util/unicode"
)

// Normalize returns the canonical spelling of an IRI, property name, or
// individual name. All identifiers pass through here on the way into the
// model, so differently composed spellings of the same name are one name.
func Normalize(iri string) string {
	return unicode.Normalize(iri)
}
