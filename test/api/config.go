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
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type TestConfig struct {
	BaseURL           string        `envconfig:"PRODUCT_BASE_URL" default:"http://localhost:8000"`
	AuthToken         string        `envconfig:"PRODUCT_AUTH_TOKEN"`
	RequestTimeout    time.Duration `envconfig:"REQUEST_TIMEOUT" default:"3s"`
	ReadyTimeout      time.Duration `envconfig:"READY_TIMEOUT" default:"90s"`
	ReadyPollInterval time.Duration `envconfig:"READY_POLL_INTERVAL" default:"2s"`
	SkipIntegration   bool          `envconfig:"SKIP_INTEGRATION" default:"false"`
	DebugLogging      bool          `envconfig:"DEBUG_LOGGING" default:"false"`
	LogRequests       bool          `envconfig:"LOG_REQUESTS" default:"false"`
	LogResponses      bool          `envconfig:"LOG_RESPONSES" default:"false"`
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if a value cannot be parsed or fails validation.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{}

	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func loadEnvFile() {
	envPaths := []string{
		os.Getenv("TEST_ENV_FILE"),
		"../../../test/.env", // From test/api/suites and test/contracts/consumer directories
		"../../test/.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateConfig checks the loaded values are usable.
func validateConfig(config *TestConfig) error {
	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: PRODUCT_BASE_URL %q: %w", ErrInvalidConfig, config.BaseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: PRODUCT_BASE_URL %q must be an absolute http(s) URL", ErrInvalidConfig, config.BaseURL)
	}

	if config.RequestTimeout <= 0 || config.ReadyTimeout <= 0 || config.ReadyPollInterval <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT, READY_TIMEOUT and READY_POLL_INTERVAL must be positive", ErrInvalidConfig)
	}

	if config.ReadyPollInterval > config.ReadyTimeout {
		return fmt.Errorf("%w: READY_POLL_INTERVAL %s exceeds READY_TIMEOUT %s", ErrInvalidConfig, config.ReadyPollInterval, config.ReadyTimeout)
	}

	return nil
}
