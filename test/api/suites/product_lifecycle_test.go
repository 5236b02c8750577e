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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/product-acceptance/test/api"
)

var _ = Describe("Product Lifecycle", func() {
	Context("When creating, listing and deleting a product", func() {
		It("should list the created product and then delete it", func() {
			// Create (schema-tolerant)
			created := api.CreateProductWithCleanup(client, ctx)
			productID := created.IDString()

			GinkgoWriter.Printf("Variant %s accepted, diagnostics for earlier variants: %v\n", created.Candidate.Label, created.Diagnostics)

			// List and ensure it appears
			products, err := client.ListProducts(ctx)
			Expect(err).NotTo(HaveOccurred(), "Should successfully list products (HTTP 200)")
			api.VerifyProductPresence(products, productID)

			// Delete
			err = client.DeleteProduct(ctx, productID)
			Expect(err).NotTo(HaveOccurred(), "Delete should return HTTP 200 or 204")
		})
	})
})
