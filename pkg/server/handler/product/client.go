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

package product

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	ErrNotFound = errors.New("product not found")

	ErrInvalidRequest = errors.New("invalid product request")
)

// IDFormat controls how new product identifiers are minted.
type IDFormat string

const (
	// IDFormatUUID mints random v4 UUIDs.
	IDFormatUUID IDFormat = "uuid"
	// IDFormatInteger mints monotonically increasing integers from 1.
	IDFormatInteger IDFormat = "integer"
)

// CreateRequest is the typed form of a validated creation body.
type CreateRequest struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	InStock       *bool
	StockQuantity *int64
}

// Product is a stored product.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	InStock       *bool
	StockQuantity *int64
}

// NewCreateRequest converts a decoded JSON body into a typed request.
// Prices may be JSON numbers or decimal strings.
func NewCreateRequest(body map[string]any) (*CreateRequest, error) {
	name, ok := body["name"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: name must be a string", ErrInvalidRequest)
	}

	request := &CreateRequest{
		Name: name,
	}

	if description, ok := body["description"].(string); ok {
		request.Description = description
	}

	price, err := parsePrice(body["price"])
	if err != nil {
		return nil, err
	}

	request.Price = price

	if inStock, ok := body["in_stock"].(bool); ok {
		request.InStock = ptr.To(inStock)
	}

	if quantity, ok := body["stock_quantity"].(float64); ok {
		request.StockQuantity = ptr.To(int64(quantity))
	}

	return request, nil
}

func parsePrice(value any) (decimal.Decimal, error) {
	switch t := value.(type) {
	case float64:
		return decimal.NewFromFloat(t), nil
	case string:
		price, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: price %q: %w", ErrInvalidRequest, t, err)
		}

		return price, nil
	}

	return decimal.Zero, fmt.Errorf("%w: price must be a number or decimal string", ErrInvalidRequest)
}

// Client is an in-memory product store.
type Client struct {
	lock     sync.RWMutex
	products map[string]*Product
	// order records insertion order so listings are stable.
	order    []string
	idFormat IDFormat
	sequence uint64
}

// NewClient returns a new, empty store.
func NewClient(idFormat IDFormat) *Client {
	return &Client{
		products: map[string]*Product{},
		idFormat: idFormat,
	}
}

func (c *Client) nextID() string {
	if c.idFormat == IDFormatInteger {
		c.sequence++

		return strconv.FormatUint(c.sequence, 10)
	}

	return uuid.New().String()
}

// Create stores a new product and returns it.
func (c *Client) Create(ctx context.Context, request *CreateRequest) *Product {
	c.lock.Lock()
	defer c.lock.Unlock()

	product := &Product{
		ID:            c.nextID(),
		Name:          request.Name,
		Description:   request.Description,
		Price:         request.Price,
		InStock:       request.InStock,
		StockQuantity: request.StockQuantity,
	}

	c.products[product.ID] = product
	c.order = append(c.order, product.ID)

	log.FromContext(ctx).Info("created product", "id", product.ID, "name", product.Name)

	return product
}

// List returns all products in creation order.
func (c *Client) List(_ context.Context) []Product {
	c.lock.RLock()
	defer c.lock.RUnlock()

	result := make([]Product, 0, len(c.order))

	for _, id := range c.order {
		result = append(result, *c.products[id])
	}

	return result
}

// Delete removes a product.
func (c *Client) Delete(ctx context.Context, id string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, ok := c.products[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	delete(c.products, id)

	c.order = slices.DeleteFunc(c.order, func(x string) bool {
		return x == id
	})

	log.FromContext(ctx).Info("deleted product", "id", id)

	return nil
}
