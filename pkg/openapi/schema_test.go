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

package openapi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nscaledev/product-acceptance/pkg/openapi"
)

func decode(t *testing.T, body string) any {
	t.Helper()

	var value any

	require.NoError(t, json.Unmarshal([]byte(body), &value))

	return value
}

const (
	bodyInStock       = `{"name": "A", "description": "a", "price": 9.99, "in_stock": true}`
	bodyStockQuantity = `{"name": "B", "description": "b", "price": 9.99, "stock_quantity": 10}`
	bodyStringPrice   = `{"name": "C", "description": "c", "price": "9.99", "stock_quantity": 10}`
	bodyMinimal       = `{"name": "D", "description": "d", "price": 9.99}`
)

func TestProductCreateSchemas(t *testing.T) {
	t.Parallel()

	bodies := []string{bodyInStock, bodyStockQuantity, bodyStringPrice, bodyMinimal}

	// Each schema accepts exactly the body at the same index.
	schemas := []openapi.CreateSchema{
		openapi.CreateSchemaInStock,
		openapi.CreateSchemaStockQuantity,
		openapi.CreateSchemaStringPrice,
		openapi.CreateSchemaMinimal,
	}

	for i, name := range schemas {
		schema, err := openapi.ProductCreateSchema(name)
		require.NoError(t, err)
		require.NotNil(t, schema)

		for j, body := range bodies {
			err := schema.VisitJSON(decode(t, body))

			if i == j {
				require.NoError(t, err, "schema %s body %d", name, j)
			} else {
				require.Error(t, err, "schema %s body %d", name, j)
			}
		}
	}
}

func TestProductCreateSchemaRejectsBadValues(t *testing.T) {
	t.Parallel()

	schema, err := openapi.ProductCreateSchema(openapi.CreateSchemaStockQuantity)
	require.NoError(t, err)

	require.Error(t, schema.VisitJSON(decode(t, `{"name": "", "price": 1, "stock_quantity": 1}`)))
	require.Error(t, schema.VisitJSON(decode(t, `{"name": "x", "price": -1, "stock_quantity": 1}`)))
	require.Error(t, schema.VisitJSON(decode(t, `{"name": "x", "price": 1, "stock_quantity": 1.5}`)))
	require.Error(t, schema.VisitJSON(decode(t, `[]`)))
}

func TestProductCreateSchemaRejectAll(t *testing.T) {
	t.Parallel()

	schema, err := openapi.ProductCreateSchema(openapi.CreateSchemaRejectAll)
	require.NoError(t, err)
	require.Nil(t, schema)
}

func TestProductCreateSchemaUnknown(t *testing.T) {
	t.Parallel()

	_, err := openapi.ProductCreateSchema("bogus")
	require.ErrorIs(t, err, openapi.ErrUnknownSchema)
}

func TestProductIDUnmarshalText(t *testing.T) {
	t.Parallel()

	valid := []string{
		"f81d4fae-7dec-11d0-a765-00a0c91e6bf6",
		"1",
		"42",
	}

	for _, id := range valid {
		var productID openapi.ProductID

		require.NoError(t, productID.UnmarshalText([]byte(id)))
		require.Equal(t, id, productID.String())
	}

	invalid := []string{
		"",
		"0",
		"-1",
		"INVALID-UPPERCASE",
		"-invalid-start",
		"f81d4fae-7dec-11d0-a765",
	}

	for _, id := range invalid {
		var productID openapi.ProductID

		require.ErrorIs(t, productID.UnmarshalText([]byte(id)), openapi.ErrInvalidProductID, id)
	}
}
