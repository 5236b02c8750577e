/*
Copyright 2026 Nscale.

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

package api

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// IdentifierKeys returns the conventional identifier field names, in the
// order they are consulted.
func IdentifierKeys() []string {
	return []string{"product_id", "id", "productId", "productID"}
}

// NormalizeID returns the first present identifier in the object.  Null
// values and empty strings are treated as absent, anything else, including
// zero, is a valid identifier.
func NormalizeID(obj map[string]interface{}) (interface{}, bool) {
	for _, key := range IdentifierKeys() {
		value, ok := obj[key]
		if !ok || value == nil {
			continue
		}

		if s, ok := value.(string); ok && s == "" {
			continue
		}

		return value, true
	}

	return nil, false
}

// IDString renders an identifier for use in paths and comparisons.
func IDString(id interface{}) string {
	switch t := id.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}

	return fmt.Sprint(id)
}

// ExtractIDs returns the rendered identifiers of every object that has one.
func ExtractIDs(objects []map[string]interface{}) []string {
	ids := make([]string, 0, len(objects))

	for _, object := range objects {
		if id, ok := NormalizeID(object); ok {
			ids = append(ids, IDString(id))
		}
	}

	return ids
}
