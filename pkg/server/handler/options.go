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

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/spf13/pflag"

	"github.com/nscaledev/product-acceptance/pkg/openapi"
	"github.com/nscaledev/product-acceptance/pkg/server/handler/product"
)

var ErrInvalidOptions = errors.New("invalid handler options")

const (
	// IDFieldNone omits the identifier from responses entirely.
	IDFieldNone = "none"
)

// Options allows behaviour to be defined on the CLI.
type Options struct {
	// Schema is the only creation body shape that will be accepted.
	Schema string

	// IDField is the JSON key the product identifier is rendered under.
	IDField string

	// IDFormat controls how identifiers are minted.
	IDFormat string

	// DeleteStatus is the status code returned on successful deletion.
	DeleteStatus int
}

// NewOptions returns options accepting the in-stock creation schema.
func NewOptions() *Options {
	return &Options{
		Schema:       string(openapi.CreateSchemaInStock),
		IDField:      "product_id",
		IDFormat:     string(product.IDFormatUUID),
		DeleteStatus: http.StatusOK,
	}
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.Schema, "schema", o.Schema, "Product creation schema to accept, one of in-stock, stock-quantity, string-price, minimal or reject-all.")
	f.StringVar(&o.IDField, "id-field", o.IDField, "JSON key to render product identifiers under, one of product_id, id, productId, productID or none.")
	f.StringVar(&o.IDFormat, "id-format", o.IDFormat, "Product identifier format, one of uuid or integer.")
	f.IntVar(&o.DeleteStatus, "delete-status", o.DeleteStatus, "HTTP status returned on successful deletion, 200 or 204.")
}

// Validate checks the options are usable.
func (o *Options) Validate() error {
	if !slices.Contains([]string{"product_id", "id", "productId", "productID", IDFieldNone}, o.IDField) {
		return fmt.Errorf("%w: unsupported id field %q", ErrInvalidOptions, o.IDField)
	}

	if !slices.Contains([]product.IDFormat{product.IDFormatUUID, product.IDFormatInteger}, product.IDFormat(o.IDFormat)) {
		return fmt.Errorf("%w: unsupported id format %q", ErrInvalidOptions, o.IDFormat)
	}

	if o.DeleteStatus != http.StatusOK && o.DeleteStatus != http.StatusNoContent {
		return fmt.Errorf("%w: unsupported delete status %d", ErrInvalidOptions, o.DeleteStatus)
	}

	return nil
}
