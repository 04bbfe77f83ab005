/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package config holds the user-editable configuration, persisted to a YAML
// file, with environment variables as read-only overrides at runtime.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GeometryConfig tunes the interaction tolerances of the selection and
// hit-testing core. All values are on-screen pixels at zoom 1; callers divide
// by the current zoom where zoom independence is wanted.
type GeometryConfig struct {
	// SideResizeThreshold is the grab distance for bounding-box sides.
	SideResizeThreshold float64 `yaml:"side_resize_threshold"`
	// SnapThreshold is the smart-guide snapping distance.
	SnapThreshold float64 `yaml:"snap_threshold"`
	// SelectionMargin expands rubber-band selection bounds on all sides.
	SelectionMargin float64 `yaml:"selection_margin"`
}

// LoggingConfig mirrors the options of the log package.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// AppConfig is the root configuration document.
//
// config_version: bump when the structure changes in a backward-incompatible
// way. Unknown fields are ignored on unmarshal.
type AppConfig struct {
	ConfigVersion int            `yaml:"config_version"`
	Geometry      GeometryConfig `yaml:"geometry"`
	Logging       LoggingConfig  `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Geometry: GeometryConfig{
			SideResizeThreshold: 8,
			SnapThreshold:       6,
			SelectionMargin:     0,
		},
		Logging: LoggingConfig{Level: "info", Format: "console", File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvSideResizeThreshold = "SKC_SIDE_RESIZE_THRESHOLD"
	EnvSnapThreshold       = "SKC_SNAP_THRESHOLD"
	EnvSelectionMargin     = "SKC_SELECTION_MARGIN"
	EnvLogLevel            = "SKC_LOG_LEVEL"
	EnvLogFormat           = "SKC_LOG_FORMAT"
	EnvLogFile             = "SKC_LOG_FILE"
)

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is not an error; the defaults are returned.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// fall through to env overrides
	default:
		return AppConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Save writes cfg as YAML to path with owner-only permissions.
func Save(path string, cfg AppConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *AppConfig) {
	if v, ok := envFloat(EnvSideResizeThreshold); ok {
		cfg.Geometry.SideResizeThreshold = v
	}
	if v, ok := envFloat(EnvSnapThreshold); ok {
		cfg.Geometry.SnapThreshold = v
	}
	if v, ok := envFloat(EnvSelectionMargin); ok {
		cfg.Geometry.SelectionMargin = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
}

func envFloat(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
