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

//nolint:revive
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/unikorn-cloud/core/pkg/server/util"

	"github.com/nscaledev/product-acceptance/pkg/constants"
	"github.com/nscaledev/product-acceptance/pkg/openapi"
	"github.com/nscaledev/product-acceptance/pkg/server/handler/product"
)

type Handler struct {
	// client is the product store.
	client *product.Client

	// options allows behaviour to be defined on the CLI.
	options *Options

	// schema validates creation bodies, nil rejects everything.
	schema *openapi3.Schema
}

func New(options *Options) (*Handler, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	schema, err := openapi.ProductCreateSchema(openapi.CreateSchema(options.Schema))
	if err != nil {
		return nil, err
	}

	h := &Handler{
		client:  product.NewClient(product.IDFormat(options.IDFormat)),
		options: options,
		schema:  schema,
	}

	return h, nil
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

// renderID emits integer identifiers as JSON numbers so clients see
// the same typing a database backed service would produce.
func (h *Handler) renderID(id string) any {
	if product.IDFormat(h.options.IDFormat) == product.IDFormatInteger {
		if n, err := strconv.ParseInt(id, 10, 64); err == nil {
			return n
		}
	}

	return id
}

func (h *Handler) convert(in *product.Product) map[string]any {
	out := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
	}

	if in.InStock != nil {
		out["in_stock"] = *in.InStock
	}

	if in.StockQuantity != nil {
		out["stock_quantity"] = *in.StockQuantity
	}

	if h.options.IDField != IDFieldNone {
		out[h.options.IDField] = h.renderID(in.ID)
	}

	return out
}

func (h *Handler) GetRoot(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
		"message": constants.WelcomeMessage,
	})
}

func (h *Handler) PostProducts(w http.ResponseWriter, r *http.Request) {
	var body any

	if err := util.ReadJSONBody(r, &body); err != nil {
		util.WriteJSONResponse(w, r, http.StatusUnprocessableEntity, openapi.NewError("request body is not valid JSON"))
		return
	}

	if h.schema == nil {
		util.WriteJSONResponse(w, r, http.StatusUnprocessableEntity, openapi.NewError("product creation body does not match any accepted schema"))
		return
	}

	if err := h.schema.VisitJSON(body); err != nil {
		util.WriteJSONResponse(w, r, http.StatusUnprocessableEntity, openapi.NewError(err.Error()))
		return
	}

	//nolint:forcetypeassert // safe: schema enforces an object
	request, err := product.NewCreateRequest(body.(map[string]any))
	if err != nil {
		util.WriteJSONResponse(w, r, http.StatusUnprocessableEntity, openapi.NewError(err.Error()))
		return
	}

	result := h.client.Create(r.Context(), request)

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusCreated, h.convert(result))
}

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products := h.client.List(r.Context())

	result := make([]map[string]any, len(products))

	for i := range products {
		result[i] = h.convert(&products[i])
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) DeleteProductsProductID(w http.ResponseWriter, r *http.Request, productID openapi.ProductID) {
	if err := h.client.Delete(r.Context(), productID.Value); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			util.WriteJSONResponse(w, r, http.StatusNotFound, openapi.NewError(fmt.Sprintf("product %s not found", productID)))
			return
		}

		util.WriteJSONResponse(w, r, http.StatusInternalServerError, openapi.NewError("unable to delete product"))

		return
	}

	if h.options.DeleteStatus == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	util.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("product %s deleted", productID),
	})
}
