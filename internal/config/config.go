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

// Package config defines the data structures for application configuration,
// loaded from TOML files. It provides a structured way to manage settings
// for the HTTP server and the external video provider, including the
// platform's default channel and its well-known channel-id seed mappings.
//
// Structs:
//   - YouTube: Provider settings (default channel, quota, known channels).
//   - Config: The top-level struct aggregating all configuration.
//
// Functions:
//   - NewConfig: A constructor that initializes a new Config with empty maps.
package config

// YouTube holds the settings for the external video provider. The API key is
// deliberately not part of the TOML surface; it is read from the
// YOUTUBE_API_KEY environment variable so it never lands in a config file.
type YouTube struct {
	DefaultChannel    string            `toml:"default_channel"`     // The platform's primary content source.
	MaxResults        int64             `toml:"max_results"`         // Result ceiling for provider searches.
	RequestsPerSecond int               `toml:"requests_per_second"` // Client-side quota ceiling for provider calls.
	KnownChannels     map[string]string `toml:"known_channels"`      // Seed mappings from channel display name to provider channel id.
}

// Config represents the overall configuration for the application, loaded
// from TOML files.
type Config struct {
	// Application holds general application settings.
	Application struct {
		Name string `toml:"name"` // The name of the application, used as the service name in telemetry.
		Port int    `toml:"port"` // The TCP port the HTTP server listens on.
	} `toml:"application"`
	YouTube YouTube `toml:"youtube"` // External video provider configuration.
}

// NewConfig creates a new, initialized Config instance. The map fields are
// initialized up front so the configuration loader never hits a nil map.
//
// Outputs:
//   - *Config: A pointer to a new Config with its map fields initialized.
func NewConfig() *Config {
	c := &Config{}
	c.YouTube.KnownChannels = make(map[string]string)
	return c
}
