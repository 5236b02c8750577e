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
	"errors"
)

var (
	// ErrNotReady is returned when the service never answered its root
	// endpoint successfully before the readiness deadline.
	ErrNotReady = errors.New("product service not ready")

	// ErrAllCandidatesFailed is returned when no candidate payload produced
	// a product with a recognisable identifier.
	ErrAllCandidatesFailed = errors.New("all payload variants failed to create product")

	ErrUnexpectedStatus = errors.New("unexpected status code")

	ErrNotFound = errors.New("resource not found")

	ErrInvalidConfig = errors.New("invalid test configuration")

	ErrTrailingData = errors.New("unexpected data after JSON value")
)
