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
	"fmt"
	"maps"

	"github.com/shopspring/decimal"
)

// ProductPayloadBuilder builds product creation payloads for testing.
type ProductPayloadBuilder struct {
	payload map[string]interface{}
}

// NewProductPayload creates a new product payload builder with a name.
func NewProductPayload(name string) *ProductPayloadBuilder {
	return &ProductPayloadBuilder{
		payload: map[string]interface{}{
			"name": name,
		},
	}
}

// WithDescription sets the product description.
func (b *ProductPayloadBuilder) WithDescription(desc string) *ProductPayloadBuilder {
	b.payload["description"] = desc
	return b
}

// WithPrice sets the price as a JSON number.
func (b *ProductPayloadBuilder) WithPrice(price decimal.Decimal) *ProductPayloadBuilder {
	b.payload["price"] = price.InexactFloat64()
	return b
}

// WithPriceString sets the price as a JSON string, for services that
// coerce decimals from text.
func (b *ProductPayloadBuilder) WithPriceString(price decimal.Decimal) *ProductPayloadBuilder {
	b.payload["price"] = price.String()
	return b
}

// WithInStock sets the boolean stock flag.
func (b *ProductPayloadBuilder) WithInStock(inStock bool) *ProductPayloadBuilder {
	b.payload["in_stock"] = inStock
	return b
}

// WithStockQuantity sets the integer stock level.
func (b *ProductPayloadBuilder) WithStockQuantity(quantity int) *ProductPayloadBuilder {
	b.payload["stock_quantity"] = quantity
	return b
}

// Build returns a copy of the completed payload.
func (b *ProductPayloadBuilder) Build() map[string]interface{} {
	return maps.Clone(b.payload)
}

// Candidate is one hypothesis about the creation schema a service accepts.
type Candidate struct {
	// Label identifies the candidate in diagnostics.
	Label string

	// Payload is the request body.
	Payload map[string]interface{}
}

func candidatePayload(label string) *ProductPayloadBuilder {
	return NewProductPayload(fmt.Sprintf("HD Test Product %s", label)).
		WithDescription(fmt.Sprintf("acceptance test product (%s)", label))
}

// DefaultProductCandidates returns the ordered candidate payloads.  Order
// matters, the first accepted candidate wins.
func DefaultProductCandidates() []Candidate {
	price := decimal.RequireFromString("9.99")

	return []Candidate{
		{
			// The original payload.
			Label:   "A",
			Payload: candidatePayload("A").WithPrice(price).WithInStock(true).Build(),
		},
		{
			// Common schema with stock_quantity.
			Label:   "B",
			Payload: candidatePayload("B").WithPrice(price).WithStockQuantity(10).Build(),
		},
		{
			// Price as a string, some schemas coerce.
			Label:   "C",
			Payload: candidatePayload("C").WithPriceString(price).WithStockQuantity(10).Build(),
		},
		{
			// Minimal fields often required.
			Label:   "D",
			Payload: candidatePayload("D").WithPrice(price).Build(),
		},
	}
}
