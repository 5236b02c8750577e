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

package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/nscaledev/product-acceptance/pkg/constants"
	"github.com/nscaledev/product-acceptance/pkg/openapi"
	"github.com/nscaledev/product-acceptance/pkg/server"
	"github.com/nscaledev/product-acceptance/pkg/server/handler"
)

const bodyInStock = `{"name": "HD Test Product A", "description": "acceptance test product (A)", "price": 9.99, "in_stock": true}`

func newRouter(t *testing.T, mutate func(*handler.Options)) http.Handler {
	t.Helper()

	options := handler.NewOptions()

	if mutate != nil {
		mutate(options)
	}

	h, err := handler.New(options)
	require.NoError(t, err)

	return server.NewRouter(logr.Discard(), h)
}

func do(t *testing.T, router http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader

	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	var result map[string]any

	if resp.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	}

	return resp.Code, result
}

func TestRoot(t *testing.T) {
	t.Parallel()

	status, body := do(t, newRouter(t, nil), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, constants.WelcomeMessage, body["message"])
}

func TestCreateListDelete(t *testing.T) {
	t.Parallel()

	router := newRouter(t, nil)

	status, created := do(t, router, http.MethodPost, "/products/", bodyInStock)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "HD Test Product A", created["name"])
	require.Equal(t, "9.99", created["price"])
	require.Equal(t, true, created["in_stock"])

	id, ok := created["product_id"].(string)
	require.True(t, ok)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var products []map[string]any

	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &products))
	require.Len(t, products, 1)
	require.Equal(t, id, products[0]["product_id"])

	status, _ = do(t, router, http.MethodDelete, "/products/"+id, "")
	require.Equal(t, http.StatusOK, status)

	status, body := do(t, router, http.MethodDelete, "/products/"+id, "")
	require.Equal(t, http.StatusNotFound, status)
	require.Contains(t, body["detail"], "not found")
}

func TestCreateRejected(t *testing.T) {
	t.Parallel()

	router := newRouter(t, func(o *handler.Options) {
		o.Schema = string(openapi.CreateSchemaStockQuantity)
	})

	status, body := do(t, router, http.MethodPost, "/products/", bodyInStock)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.NotEmpty(t, body["detail"])

	status, _ = do(t, router, http.MethodPost, "/products/", "{")
	require.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestCreateRejectAll(t *testing.T) {
	t.Parallel()

	router := newRouter(t, func(o *handler.Options) {
		o.Schema = string(openapi.CreateSchemaRejectAll)
	})

	status, _ := do(t, router, http.MethodPost, "/products/", bodyInStock)
	require.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestIdentifierRendering(t *testing.T) {
	t.Parallel()

	router := newRouter(t, func(o *handler.Options) {
		o.IDField = "productId"
		o.IDFormat = "integer"
	})

	status, created := do(t, router, http.MethodPost, "/products/", bodyInStock)
	require.Equal(t, http.StatusCreated, status)
	require.InDelta(t, 1, created["productId"], 0)
	require.NotContains(t, created, "product_id")

	router = newRouter(t, func(o *handler.Options) {
		o.IDField = handler.IDFieldNone
	})

	status, created = do(t, router, http.MethodPost, "/products/", bodyInStock)
	require.Equal(t, http.StatusCreated, status)

	for _, key := range []string{"product_id", "id", "productId", "productID"} {
		require.NotContains(t, created, key)
	}
}

func TestDeleteNoContent(t *testing.T) {
	t.Parallel()

	router := newRouter(t, func(o *handler.Options) {
		o.IDFormat = "integer"
		o.DeleteStatus = http.StatusNoContent
	})

	status, _ := do(t, router, http.MethodPost, "/products/", bodyInStock)
	require.Equal(t, http.StatusCreated, status)

	status, body := do(t, router, http.MethodDelete, "/products/1", "")
	require.Equal(t, http.StatusNoContent, status)
	require.Nil(t, body)
}

func TestDeleteMalformedID(t *testing.T) {
	t.Parallel()

	status, body := do(t, newRouter(t, nil), http.MethodDelete, "/products/INVALID-UPPERCASE", "")
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body["detail"], "productID")
}

func TestInvalidOptions(t *testing.T) {
	t.Parallel()

	mutations := []func(*handler.Options){
		func(o *handler.Options) { o.Schema = "bogus" },
		func(o *handler.Options) { o.IDField = "uuid" },
		func(o *handler.Options) { o.IDFormat = "snowflake" },
		func(o *handler.Options) { o.DeleteStatus = http.StatusAccepted },
	}

	for _, mutate := range mutations {
		options := handler.NewOptions()
		mutate(options)

		_, err := handler.New(options)
		require.Error(t, err)
	}
}

func TestErrorResponse(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/products/2", nil)
	resp := httptest.NewRecorder()

	newRouter(t, func(o *handler.Options) {
		o.IDFormat = "integer"
	}).ServeHTTP(resp, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
	require.Equal(t, "application/json", resp.Header().Get("Content-Type"))
	require.JSONEq(t, `{"detail": "product 2 not found"}`, resp.Body.String())
}
