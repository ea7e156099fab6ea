// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// appConfig holds the solver's storage configuration.  Every
// field is optional; with none set the solver runs standalone.
type appConfig struct {
	CacheURL    string `json:"cache_url"`
	DatabaseURL string `json:"database_url"`
	Env         string `json:"env"`
}

// loadConfig loads configuration from the file at path, then lets
// the environment override it.  An empty path or a missing file
// just yields the environment values.
func loadConfig(path string) (appConfig, error) {
	var cfg appConfig

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return appConfig{}, fmt.Errorf("stat config: %w", err)
			}
		} else {
			k := koanf.New(".")
			if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
				return appConfig{}, fmt.Errorf("load config: %w", err)
			}
			if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
				return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
			}
		}
	}

	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.CacheURL = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("SUDOKU_ENV"); v != "" {
		cfg.Env = v
	}

	cfg.CacheURL = strings.TrimSpace(cfg.CacheURL)
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.Env = strings.TrimSpace(cfg.Env)
	return cfg, nil
}
