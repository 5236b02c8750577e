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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/onsi/ginkgo/v2"
	"go.uber.org/multierr"
)

// CreatedProduct is the outcome of a successful resilient creation.
type CreatedProduct struct {
	// ID is the normalized identifier as returned by the service.
	ID interface{}

	// Candidate is the payload the service accepted.
	Candidate Candidate

	// Response is the decoded creation response.
	Response map[string]interface{}

	// Diagnostics records why earlier candidates were passed over.
	Diagnostics []string
}

// IDString renders the identifier for paths and comparisons.
func (p *CreatedProduct) IDString() string {
	return IDString(p.ID)
}

// CandidatesError reports every candidate failure, not just the last.
type CandidatesError struct {
	errs error
}

func (e *CandidatesError) Error() string {
	return ErrAllCandidatesFailed.Error() + ".\n" + strings.Join(e.Diagnostics(), "\n")
}

func (e *CandidatesError) Unwrap() []error {
	return append([]error{ErrAllCandidatesFailed}, multierr.Errors(e.errs)...)
}

// Diagnostics returns one message per failed candidate, in the order tried.
func (e *CandidatesError) Diagnostics() []string {
	errs := multierr.Errors(e.errs)

	diagnostics := make([]string, len(errs))

	for i, err := range errs {
		diagnostics[i] = err.Error()
	}

	return diagnostics
}

func isCreated(statusCode int) bool {
	return statusCode == http.StatusOK || statusCode == http.StatusCreated
}

// describeBody renders an error body compactly if it is JSON, or as raw
// text otherwise.
func describeBody(body []byte) string {
	var detail interface{}

	if err := decodeJSON(body, &detail); err != nil {
		return string(body)
	}

	compact, err := json.Marshal(detail)
	if err != nil {
		return string(body)
	}

	return string(compact)
}

// CreateProductResilient creates a product using the default candidates.
func CreateProductResilient(ctx context.Context, client *APIClient) (*CreatedProduct, error) {
	return CreateProductFromCandidates(ctx, client, DefaultProductCandidates())
}

// CreateProductFromCandidates tries each candidate in order and returns the
// first that the service accepts with a recognisable identifier.  Candidates
// that are accepted without an identifier are skipped and the product they
// created is left behind.
func CreateProductFromCandidates(ctx context.Context, client *APIClient, candidates []Candidate) (*CreatedProduct, error) {
	var errs error

	record := func(candidate Candidate, format string, args ...interface{}) {
		err := fmt.Errorf("variant %s: %s", candidate.Label, fmt.Sprintf(format, args...))

		ginkgo.GinkgoWriter.Printf("Create candidate rejected: %v\n", err)

		errs = multierr.Append(errs, err)
	}

	for _, candidate := range candidates {
		resp, err := client.CreateProduct(ctx, candidate.Payload)
		if err != nil {
			record(candidate, "%v", err)
			continue
		}

		if !isCreated(resp.StatusCode) {
			record(candidate, "%d: %s", resp.StatusCode, describeBody(resp.Body))
			continue
		}

		var body map[string]interface{}

		if err := decodeJSON(resp.Body, &body); err != nil {
			record(candidate, "create OK but response is not a JSON object: %s", string(resp.Body))
			continue
		}

		id, ok := NormalizeID(body)
		if !ok {
			record(candidate, "create OK but no ID in response: %s", describeBody(resp.Body))
			continue
		}

		created := &CreatedProduct{
			ID:        id,
			Candidate: candidate,
			Response:  body,
		}

		for _, err := range multierr.Errors(errs) {
			created.Diagnostics = append(created.Diagnostics, err.Error())
		}

		ginkgo.GinkgoWriter.Printf("Created product %s using variant %s\n", created.IDString(), candidate.Label)

		return created, nil
	}

	return nil, &CandidatesError{errs: errs}
}
