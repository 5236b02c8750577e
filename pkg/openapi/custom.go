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

package openapi

import (
	"errors"
	"regexp"
)

var ErrInvalidProductID = errors.New("invalid product id: must be a UUID or a positive integer")

var productIDValidationRegex = regexp.MustCompile(`^([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}|[1-9][0-9]{0,18})$`)

// ProductID is the path parameter type for product resources.
type ProductID struct {
	Value string
}

func (n *ProductID) UnmarshalText(text []byte) error {
	if !productIDValidationRegex.Match(text) {
		return ErrInvalidProductID
	}

	*n = ProductID{
		Value: string(text),
	}

	return nil
}

func (n ProductID) String() string {
	return n.Value
}
