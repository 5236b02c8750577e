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

// Package api provides acceptance test utilities for a Product Service.
//
// The service under test is owned elsewhere and its exact schema is not
// known in advance, so this package is deliberately tolerant:
//
//   - Readiness is probed by polling the root endpoint at a fixed interval,
//     see WaitForReady.
//   - Products are created by trying an ordered list of candidate payloads
//     until one is accepted, see CreateProductFromCandidates.
//   - Identifiers are read from whichever conventional key the service uses,
//     see NormalizeID.
//
// The HTTP client adds W3C trace context to every request and logs trace IDs
// on failure so requests can be found in the service logs.
//
// Configuration comes from the environment, optionally seeded from
// test/.env, see LoadTestConfig.
package api
