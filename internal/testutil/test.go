// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package test provides utility functions to support the application's test
// suite: a common error-check helper and an in-code test configuration so
// tests never depend on TOML files being present on disk.
package test

import (
	"testing"

	"github.com/govardhan-digital/content-search/internal/config"
)

// HandleErr is a simple test helper function that checks if an error is not nil.
// If an error exists, it fails the test immediately by calling t.Errorf.
// This is a convenience function to reduce boilerplate error-checking code in tests.
//
// Inputs:
//   - err: The error to check.
//   - t: The *testing.T object from the current test.
func HandleErr(err error, t *testing.T) {
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// GetConfig returns a fully populated in-code configuration mirroring the
// checked-in base TOML file. Building it in code keeps unit tests independent
// of the working directory they run from.
//
// Outputs:
//   - *config.Config: A configuration ready for use in tests.
func GetConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Application.Name = "content-search"
	cfg.Application.Port = 8080
	cfg.YouTube.DefaultChannel = "Govardhan Math, Puri"
	cfg.YouTube.MaxResults = 20
	cfg.YouTube.RequestsPerSecond = 1
	cfg.YouTube.KnownChannels["Govardhan Math, Puri"] = "UCqFCrpSpeqbzYaJbRn6vTkg"
	return cfg
}
