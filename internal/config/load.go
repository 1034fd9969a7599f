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

// Package config defines the application configuration. This file implements
// the hierarchical configuration loader: it first reads a base TOML file and
// then overwrites values with an environment-specific file (e.g.
// .env.local.toml, .env.test.toml). The config directory and the runtime
// environment are both selected through environment variables, so the same
// binary can run with different settings per environment.
//
// Functions:
//   - fileExists: A simple helper to check whether a file exists.
//   - LoadConfig: Decodes the base file and the runtime override into the
//     given configuration struct.
package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Configuration loading constants, primarily the file naming convention and
// the environment variables that select directory and runtime.
const (
	ConfigFileBaseName  = ".env"                  // The base name for configuration files (e.g. ".env.toml").
	ConfigFileExtension = ".toml"                 // The file extension for configuration files.
	ConfigSeparator     = "."                     // The separator in override file names (e.g. ".env.local.toml").
	EnvConfigFilePrefix = "CONTENT_CONFIG_PREFIX" // The environment variable for the config directory.
	EnvConfigRuntime    = "CONTENT_RUNTIME"       // The environment variable for the runtime context (e.g. "local", "test", "prod").
)

// fileExists checks whether a file or directory exists at the given path.
func fileExists(in string) bool {
	_, err := os.Stat(in)
	return !errors.Is(err, os.ErrNotExist)
}

// LoadConfig populates baseConfig from the TOML files on disk. The base file
// is decoded first; any values present in the runtime-specific override file
// then replace them. Missing files are skipped silently, so a repo checkout
// without a local override still starts with the base settings.
//
// Inputs:
//   - baseConfig: A pointer to the target configuration struct.
func LoadConfig(baseConfig interface{}) {
	configurationFilePrefix := os.Getenv(EnvConfigFilePrefix)
	if len(configurationFilePrefix) > 0 && !strings.HasSuffix(configurationFilePrefix, string(os.PathSeparator)) {
		configurationFilePrefix = configurationFilePrefix + string(os.PathSeparator)
	}

	runtimeEnvironment := os.Getenv(EnvConfigRuntime)
	if runtimeEnvironment == "" {
		runtimeEnvironment = "test"
	}

	baseConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigFileExtension
	envConfigFileName := configurationFilePrefix + ConfigFileBaseName + ConfigSeparator + runtimeEnvironment + ConfigFileExtension

	if fileExists(baseConfigFileName) {
		_, err := toml.DecodeFile(baseConfigFileName, baseConfig)
		if err != nil {
			log.Fatalf("failed to decode base configuration file %s with error: %s", baseConfigFileName, err)
		}
	}

	if fileExists(envConfigFileName) {
		_, err := toml.DecodeFile(envConfigFileName, baseConfig)
		if err != nil {
			log.Fatalf("failed to decode environment configuration file %s with error: %s", envConfigFileName, err)
		}
	}
}
