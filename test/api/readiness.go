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
	"fmt"
	"time"

	"github.com/onsi/ginkgo/v2"

	"k8s.io/apimachinery/pkg/util/wait"
)

// WaitForReady polls the root endpoint at a fixed interval until it answers
// 200 or the timeout elapses.  The first probe is immediate.  Transport
// errors and other statuses mean "not ready yet" and are retried.  Each
// probe is bounded by the poll deadline, so this never blocks much past the
// timeout.  On expiry the returned error wraps ErrNotReady.
func WaitForReady(ctx context.Context, client *APIClient, timeout, interval time.Duration) error {
	var (
		attempts int
		lastErr  error
	)

	start := time.Now()

	condition := func(ctx context.Context) (bool, error) {
		attempts++

		if err := client.Ping(ctx); err != nil {
			lastErr = err
			return false, nil
		}

		return true, nil
	}

	if err := wait.PollUntilContextTimeout(ctx, interval, timeout, true, condition); err != nil {
		if lastErr == nil {
			lastErr = err
		}

		return fmt.Errorf("%w: %s did not respond within %s after %d attempts: %v", ErrNotReady, client.BaseURL(), timeout, attempts, lastErr)
	}

	ginkgo.GinkgoWriter.Printf("Service %s ready after %d attempts in %s\n", client.BaseURL(), attempts, time.Since(start).Round(time.Millisecond))

	return nil
}
