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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"
)

// WaitForServiceReady blocks until the service answers its root endpoint,
// aborting the suite if it never does.
func WaitForServiceReady(client *APIClient, ctx context.Context, config *TestConfig) {
	GinkgoWriter.Printf("Waiting up to %s for %s to become ready\n", config.ReadyTimeout, client.BaseURL())

	err := WaitForReady(ctx, client, config.ReadyTimeout, config.ReadyPollInterval)

	if message, ok := notReadyMessage(err); ok {
		AbortSuite(message)
	}

	Expect(err).NotTo(HaveOccurred(), "Service must be ready before any assertions run")
}

// notReadyMessage reports whether err means the service never became ready,
// and if so the message the suite is aborted with.
func notReadyMessage(err error) (string, bool) {
	if !errors.Is(err, ErrNotReady) {
		return "", false
	}

	return "SERVICE NOT READY, no assertions were run: " + err.Error(), true
}

// CreateProductWithCleanup creates a product with the first accepted candidate
// and schedules its deletion.  Cleanup tolerates the test having deleted it.
func CreateProductWithCleanup(client *APIClient, ctx context.Context) *CreatedProduct {
	created, err := CreateProductResilient(ctx, client)
	Expect(err).NotTo(HaveOccurred(), "At least one payload variant should be accepted")

	productID := created.IDString()

	GinkgoWriter.Printf("Created product with ID: %s (variant %s)\n", productID, created.Candidate.Label)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func() {
		deleteErr := client.DeleteProduct(ctx, productID)

		switch {
		case deleteErr == nil:
			GinkgoWriter.Printf("Successfully deleted product: %s\n", productID)
		case errors.Is(deleteErr, ErrNotFound):
			GinkgoWriter.Printf("Product %s already deleted\n", productID)
		default:
			GinkgoWriter.Printf("Warning: Failed to delete product %s: %v\n", productID, deleteErr)
		}
	})

	return created
}

// missingProductIDs returns the expected identifiers not present in the list.
func missingProductIDs(products []map[string]interface{}, expectedProductIDs []string) []string {
	listed := set.New[string](ExtractIDs(products)...)
	expected := set.New[string](expectedProductIDs...)

	missing := slices.Collect(expected.Difference(listed).All())
	slices.Sort(missing)

	return missing
}

// VerifyProductPresence verifies that products are present in the list,
// matching identifiers under any of the conventional key names.
func VerifyProductPresence(products []map[string]interface{}, expectedProductIDs ...string) {
	missing := missingProductIDs(products, expectedProductIDs)
	Expect(missing).To(BeEmpty(), "Expected products %v to be present in the list; list=%v", missing, products)
}
