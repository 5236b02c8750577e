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

//nolint:revive // naming conventions acceptable in test code
package api

//go:generate mockgen -source=api_client.go -destination=mock/interfaces.go -package=mock

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

// HTTPDoer is the subset of *http.Client the API client relies on.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type APIClient struct {
	baseURL   string
	client    HTTPDoer
	authToken string
	config    *TestConfig
	endpoints *Endpoints
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		authToken: config.AuthToken,
		config:    config,
		endpoints: NewEndpoints(),
	}
}

func (c *APIClient) SetAuthToken(token string) {
	c.authToken = token
}

// SetHTTPDoer replaces the underlying transport, mainly for tests.
func (c *APIClient) SetHTTPDoer(doer HTTPDoer) {
	c.client = doer
}

func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// A fresh trace per request means any failure can be found in the service logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// newRequest builds a request with trace context and authentication headers.
func (c *APIClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, string, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	return req, traceParent, nil
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, expectedStatus int) (*http.Response, []byte, error) {
	req, traceParent, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, nil, err
	}

	if c.config.DebugLogging {
		ginkgo.GinkgoWriter.Printf("[%s %s] sending request traceparent=%s\n", method, path, traceParent)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)
		return resp, respBody, fmt.Errorf("%w: expected %d, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, expectedStatus, resp.StatusCode, string(respBody), extractTraceID(traceParent))
	}

	return resp, respBody, nil
}

// decodeJSON unmarshals preserving numbers as json.Number so integer
// identifiers survive a round trip unchanged.  The data must hold exactly
// one JSON value.
func decodeJSON(data []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	if err := decoder.Decode(v); err != nil {
		return err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	return nil
}

// ResponseHandlerConfig configures how different status codes should be handled.
type ResponseHandlerConfig struct {
	ResourceType string
}

// listResource is a generic helper for list operations.
func (c *APIClient) listResource(ctx context.Context, path string, config ResponseHandlerConfig) ([]map[string]interface{}, error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodGet, path, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", config.ResourceType, err)
	}

	return c.handleResourceListResponse(resp, respBody, config)
}

// handleResourceListResponse handles common response patterns for resource listing endpoints.
func (c *APIClient) handleResourceListResponse(resp *http.Response, respBody []byte, config ResponseHandlerConfig) ([]map[string]interface{}, error) {
	switch resp.StatusCode {
	case http.StatusOK:
		var resources []map[string]interface{}
		if err := decodeJSON(respBody, &resources); err != nil {
			return nil, fmt.Errorf("unmarshaling %s response: %w", config.ResourceType, err)
		}

		return resources, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s (status: %d)", ErrNotFound, config.ResourceType, resp.StatusCode)
	case http.StatusForbidden:
		return nil, fmt.Errorf("%s access denied (status: %d)", config.ResourceType, resp.StatusCode)
	case http.StatusInternalServerError:
		// Server error - always return empty list and error for test scenarios
		return []map[string]interface{}{}, fmt.Errorf("server error reading %s (status: %d): %s", config.ResourceType, resp.StatusCode, string(respBody))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
}

// Root fetches the welcome endpoint, returning the status and raw body.
func (c *APIClient) Root(ctx context.Context) (int, string, error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Root(), nil, 0)
	if err != nil {
		return 0, "", fmt.Errorf("getting root: %w", err)
	}

	return resp.StatusCode, string(respBody), nil
}

// Ping performs a single quiet readiness probe against the root endpoint.
// Unlike other calls failures are not logged, they are expected while the
// service is starting.
func (c *APIClient) Ping(ctx context.Context) error {
	req, traceParent, err := c.newRequest(ctx, http.MethodGet, c.endpoints.Root(), nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: expected %d, got %d (trace ID: %s)", ErrUnexpectedStatus, http.StatusOK, resp.StatusCode, extractTraceID(traceParent))
	}

	return nil
}

// RawResponse is an unprocessed HTTP result.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// CreateProduct posts a creation body and returns whatever the service said,
// interpretation is left to the caller as the accepted schema is unknown.
func (c *APIClient) CreateProduct(ctx context.Context, body map[string]interface{}) (*RawResponse, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling product body: %w", err)
	}

	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateProduct(), bytes.NewReader(bodyBytes), 0)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}

// ListProducts lists all products.
func (c *APIClient) ListProducts(ctx context.Context) ([]map[string]interface{}, error) {
	config := ResponseHandlerConfig{
		ResourceType: "products",
	}

	return c.listResource(ctx, c.endpoints.ListProducts(), config)
}

// DeleteProduct deletes a product, accepting either 200 or 204.
func (c *APIClient) DeleteProduct(ctx context.Context, productID string) error {
	path := c.endpoints.DeleteProduct(productID)

	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodDelete, path, nil, 0)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: product '%s' (status: %d)", ErrNotFound, productID, resp.StatusCode)
	default:
		return fmt.Errorf("%w: delete failed: %d %s", ErrUnexpectedStatus, resp.StatusCode, string(respBody))
	}
}
