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

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/nscaledev/product-acceptance/pkg/server"
	"github.com/nscaledev/product-acceptance/pkg/server/handler"
	"github.com/nscaledev/product-acceptance/test/api"
)

// newStubServer starts a reference product service configured by mutate.
func newStubServer(t *testing.T, mutate func(o *handler.Options)) *httptest.Server {
	t.Helper()

	options := handler.NewOptions()

	if mutate != nil {
		mutate(options)
	}

	h, err := handler.New(options)
	require.NoError(t, err)

	s := httptest.NewServer(server.NewRouter(logr.Discard(), h))
	t.Cleanup(s.Close)

	return s
}

func newTestConfig(baseURL string) *api.TestConfig {
	return &api.TestConfig{
		BaseURL:           baseURL,
		RequestTimeout:    3 * time.Second,
		ReadyTimeout:      5 * time.Second,
		ReadyPollInterval: 50 * time.Millisecond,
	}
}

func newTestClient(baseURL string) *api.APIClient {
	return api.NewAPIClientWithConfig(newTestConfig(baseURL))
}

func withSchema(schema string) func(*handler.Options) {
	return func(o *handler.Options) {
		o.Schema = schema
	}
}

// respond builds a bare response for mocked transports.
func respond(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       http.NoBody,
		Header:     http.Header{},
	}
}
