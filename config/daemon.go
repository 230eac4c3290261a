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


package config

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// guiCertFile is the GUI certificate Syncthing keeps next to config.xml.
	guiCertFile = "https-cert.pem"

	// guiCertName is the DNS name Syncthing puts in its generated GUI certificate.
	guiCertName = "syncthing"
)

// ParseError reports a daemon config file that could not be used.
type ParseError struct {
	Path  string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("failed to parse %s: %s: %v", e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errMissing = errors.New("element missing or empty")

// daemonConfig is the subset of Syncthing's config.xml we read.
type daemonConfig struct {
	GUI *struct {
		TLS     string  `xml:"tls,attr"`
		Address *string `xml:"address"`
		APIKey  *string `xml:"apikey"`
	} `xml:"gui"`
}

// FromDaemonConfig builds a Config from the GUI section of the daemon's
// config.xml at path.
func FromDaemonConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var dc daemonConfig
	if err := xml.Unmarshal(data, &dc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if dc.GUI == nil {
		return nil, &ParseError{Path: path, Field: "gui", Err: errMissing}
	}
	address, ok := text(dc.GUI.Address)
	if !ok {
		return nil, &ParseError{Path: path, Field: "gui/address", Err: errMissing}
	}
	apiKey, ok := text(dc.GUI.APIKey)
	if !ok {
		return nil, &ParseError{Path: path, Field: "gui/apikey", Err: errMissing}
	}

	cfg := &Config{
		Address: address,
		APIKey:  apiKey,
		HTTPS:   dc.GUI.TLS == "true",
	}

	if cfg.HTTPS {
		certPath := filepath.Join(filepath.Dir(path), guiCertFile)
		if info, err := os.Stat(certPath); err == nil && info.Mode().IsRegular() {
			if abs, err := filepath.Abs(certPath); err == nil {
				certPath = abs
			}
			cfg.TLS = &TLSOptions{
				CACertPath: certPath,
				ServerName: guiCertName,
			}
		}
	}

	return cfg, nil
}

func text(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}
