// Copyright (C) 2025 Mono Technologies Inc.
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.


// Package config stores the client configuration: where the Syncthing
// GUI listens, the API key, and how to trust its certificate.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/we-are-mono/stcli/validation"
)

const (
	// FileName is the name of the config file inside the user's home directory.
	FileName = ".stcall.json"

	// PathEnv overrides the config file location.
	PathEnv = "STCLI_CONFIG"
)

// ErrNotFound means no usable configuration exists yet.
var ErrNotFound = errors.New("configuration not found")

// Config is the persisted client configuration.
type Config struct {
	Address string      `json:"addr"`
	APIKey  string      `json:"apikey"`
	HTTPS   bool        `json:"https"`
	TLS     *TLSOptions `json:"tls,omitempty"`
}

// TLSOptions controls certificate verification for HTTPS connections.
type TLSOptions struct {
	// Insecure disables certificate and hostname verification.
	Insecure   bool   `json:"insecure,omitempty"`
	CACertPath string `json:"ca_cert,omitempty"`
	ServerName string `json:"server_name,omitempty"`
}

// Validate checks that the fields needed to reach the daemon are set.
func (c *Config) Validate() error {
	ec := validation.NewCollector()
	ec.Check(validation.ValidateRequired("addr", c.Address))
	ec.Check(validation.ValidateRequired("apikey", c.APIKey))
	return ec.Error()
}

// Path returns the config file path.
// Checks STCLI_CONFIG environment variable, falls back to ~/.stcall.json
func Path() (string, error) {
	if path := os.Getenv(PathEnv); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Load reads the config file at path. Every failure wraps ErrNotFound so
// callers can treat a broken file the same as a missing one.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			line, col := getLineCol(data, syntaxErr.Offset)
			return nil, fmt.Errorf("%w: failed to parse %s at line %d, column %d: %w",
				ErrNotFound, path, line, col, err)
		}
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrNotFound, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s is incomplete: %w", ErrNotFound, path, err)
	}

	return &cfg, nil
}

// getLineCol calculates the line and column number for a byte offset in JSON data
func getLineCol(data []byte, offset int64) (line, col int) {
	line = 1
	col = 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}

// Save writes cfg to path atomically (temp file + rename). The file holds
// the API key, so it is only readable by the owner.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
