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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Root Endpoint", func() {
	Context("When the service is ready", func() {
		It("should return the welcome message", func() {
			status, body, err := client.Root(ctx)
			Expect(err).NotTo(HaveOccurred(), "Root request should complete")
			Expect(status).To(Equal(http.StatusOK), "Root endpoint should return HTTP 200")
			Expect(body).To(ContainSubstring("Welcome to the Product Service"), "Root body should contain the welcome marker")
		})
	})
})
