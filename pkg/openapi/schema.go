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
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"k8s.io/utils/ptr"
)

var ErrUnknownSchema = errors.New("unknown product create schema")

// CreateSchema names a product creation body shape the service will accept.
type CreateSchema string

const (
	// CreateSchemaInStock expects a numeric price and a boolean in_stock flag.
	CreateSchemaInStock CreateSchema = "in-stock"
	// CreateSchemaStockQuantity expects a numeric price and an integer stock_quantity.
	CreateSchemaStockQuantity CreateSchema = "stock-quantity"
	// CreateSchemaStringPrice expects a decimal string price and an integer stock_quantity.
	CreateSchemaStringPrice CreateSchema = "string-price"
	// CreateSchemaMinimal expects only a name, description and numeric price.
	CreateSchemaMinimal CreateSchema = "minimal"
	// CreateSchemaRejectAll accepts nothing.
	CreateSchemaRejectAll CreateSchema = "reject-all"
)

// CreateSchemas lists all valid schema names, in the order a client is
// expected to probe them.
func CreateSchemas() []CreateSchema {
	return []CreateSchema{
		CreateSchemaInStock,
		CreateSchemaStockQuantity,
		CreateSchemaStringPrice,
		CreateSchemaMinimal,
		CreateSchemaRejectAll,
	}
}

func nameSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithMinLength(1)
}

func numericPriceSchema() *openapi3.Schema {
	return openapi3.NewFloat64Schema().WithMin(0)
}

func stringPriceSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithPattern(`^[0-9]+(\.[0-9]+)?$`)
}

func stockQuantitySchema() *openapi3.Schema {
	return openapi3.NewIntegerSchema().WithMin(0)
}

// closedObjectSchema returns an object schema that rejects unknown properties.
func closedObjectSchema(required []string, properties map[string]*openapi3.Schema) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()

	for name, property := range properties {
		schema.WithProperty(name, property)
	}

	schema.Required = required
	schema.AdditionalProperties = openapi3.AdditionalProperties{
		Has: ptr.To(false),
	}

	return schema
}

// ProductCreateSchema returns the request body schema for the named shape.
// A nil schema with no error means every body is rejected.
func ProductCreateSchema(name CreateSchema) (*openapi3.Schema, error) {
	switch name {
	case CreateSchemaInStock:
		return closedObjectSchema([]string{"name", "price", "in_stock"}, map[string]*openapi3.Schema{
			"name":        nameSchema(),
			"description": openapi3.NewStringSchema(),
			"price":       numericPriceSchema(),
			"in_stock":    openapi3.NewBoolSchema(),
		}), nil
	case CreateSchemaStockQuantity:
		return closedObjectSchema([]string{"name", "price", "stock_quantity"}, map[string]*openapi3.Schema{
			"name":           nameSchema(),
			"description":    openapi3.NewStringSchema(),
			"price":          numericPriceSchema(),
			"stock_quantity": stockQuantitySchema(),
		}), nil
	case CreateSchemaStringPrice:
		return closedObjectSchema([]string{"name", "price", "stock_quantity"}, map[string]*openapi3.Schema{
			"name":           nameSchema(),
			"description":    openapi3.NewStringSchema(),
			"price":          stringPriceSchema(),
			"stock_quantity": stockQuantitySchema(),
		}), nil
	case CreateSchemaMinimal:
		return closedObjectSchema([]string{"name", "description", "price"}, map[string]*openapi3.Schema{
			"name":        nameSchema(),
			"description": openapi3.NewStringSchema(),
			"price":       numericPriceSchema(),
		}), nil
	case CreateSchemaRejectAll:
		return nil, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
}
