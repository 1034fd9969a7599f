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

// Package main contains the setup and initialization logic for the
// application's state. This file is responsible for creating and managing a
// centralized state manager that holds all shared dependencies: the
// configuration, the seeded in-memory content store, the YouTube client, and
// the search services built over them.
//
// Functions:
//   - SetupOS: Points the configuration loader at the correct config files.
//   - GetConfig: A singleton accessor for the application configuration.
//   - InitState: Creates the store, the provider client, and the services.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/govardhan-digital/content-search/internal/config"
	"github.com/govardhan-digital/content-search/internal/core/services"
	"github.com/govardhan-digital/content-search/internal/core/store"
	"github.com/govardhan-digital/content-search/internal/youtube"
)

// StateManager holds all the shared dependencies for the application, acting
// as a centralized container for services and configuration. This avoids
// global variables scattered across handlers and keeps dependency wiring in
// one place.
type StateManager struct {
	config         *config.Config
	store          *store.ContentStore
	youtubeService *services.YouTubeService
	searchService  *services.SearchService
}

// state is the package-level singleton instance of StateManager. Route
// handlers read from it; tests replace it with fakes.
var state = &StateManager{}

// SetupOS sets the environment variables the configuration loader uses to
// find the TOML files: the config directory and the runtime environment
// (which selects the ".env.<runtime>.toml" override).
//
// Outputs:
//   - error: An error if setting any environment variable fails.
func SetupOS() (err error) {
	err = os.Setenv(config.EnvConfigFilePrefix, "configs")
	if err != nil {
		return err
	}
	err = os.Setenv(config.EnvConfigRuntime, "local")
	return err
}

// GetConfig provides a singleton instance of the application configuration,
// loading it from the TOML files on first call and returning the cached
// value afterwards.
//
// Outputs:
//   - *config.Config: A pointer to the loaded application configuration.
func GetConfig() *config.Config {
	if state.config == nil {
		err := SetupOS()
		if err != nil {
			log.Fatalf("failed to setup os: %v\n", err)
		}
		cfg := config.NewConfig()
		config.LoadConfig(cfg)
		state.config = cfg
	}
	return state.config
}

// InitState initializes the entire application state: the seeded catalog,
// the rate-limited YouTube client, the channel resolver with its well-known
// seed mappings, and the search orchestrator tying it all together.
//
// Inputs:
//   - ctx: The root context, used to construct the provider client.
func InitState(ctx context.Context) {
	cfg := GetConfig()

	// The API key lives in the environment, optionally via a dotenv file,
	// never in the TOML configs.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		slog.Warn("YouTube API key is missing, live search will return empty results")
	}

	client, err := youtube.NewClient(ctx, apiKey, cfg.YouTube.RequestsPerSecond)
	if err != nil {
		panic(err)
	}

	resolver := services.NewChannelResolver(client, cfg.YouTube.KnownChannels)

	state.store = store.NewWithCatalog()
	state.youtubeService = &services.YouTubeService{
		Provider:        client,
		Resolver:        resolver,
		FallbackChannel: cfg.YouTube.DefaultChannel,
	}
	state.searchService = services.NewSearchService(
		state.store,
		state.youtubeService,
		[]string{cfg.YouTube.DefaultChannel},
	)
}
