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


// Package client provides a client library for the Syncthing REST API.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/we-are-mono/stcli/config"
	"github.com/we-are-mono/stcli/validation"
)

// APIKeyHeader carries the daemon API key on every request.
const APIKeyHeader = "X-API-Key"

// InsecureEnv disables certificate verification when set to "1".
const InsecureEnv = "STCLI_TLS_INSECURE"

// Options tune a Client beyond what the config file stores.
type Options struct {
	// Insecure disables TLS certificate verification.
	Insecure bool
	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration
	Logger  hclog.Logger
}

// Response is the raw result of a REST call.
type Response struct {
	Status int
	Body   []byte
}

// NetworkError reports a request that never produced an HTTP response.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	msg := fmt.Sprintf("failed to reach daemon (%s %s): %v", e.Method, e.URL, e.Err)

	var unknownAuthority x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	if errors.As(e.Err, &unknownAuthority) || errors.As(e.Err, &hostnameErr) {
		msg += " (set tls.ca_cert in the config, or pass --insecure to skip verification)"
	}
	return msg
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client issues authenticated requests against one daemon.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  hclog.Logger
}

// Host strips any scheme prefix and surrounding slashes from a GUI address.
func Host(addr string) string {
	host := strings.TrimSpace(addr)
	for _, scheme := range []string{"https://", "http://"} {
		if len(host) >= len(scheme) && strings.EqualFold(host[:len(scheme)], scheme) {
			host = host[len(scheme):]
			break
		}
	}
	return strings.Trim(host, "/")
}

// New creates a client for the daemon described by cfg.
func New(cfg config.Config, opts Options) (*Client, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	host := Host(cfg.Address)
	if err := validation.ValidateAddress(host); err != nil {
		return nil, fmt.Errorf("client: invalid daemon address %q: %w", cfg.Address, err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	scheme := "http"
	if cfg.HTTPS {
		scheme = "https"
		tlsConfig, err := tlsConfigFor(cfg.TLS, opts.Insecure, logger)
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = tlsConfig
	}

	return &Client{
		baseURL: scheme + "://" + host,
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
			// The daemon's answer is reported as-is, redirects included.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}, nil
}

// tlsConfigFor builds the trust settings for an HTTPS daemon.
func tlsConfigFor(opts *config.TLSOptions, insecure bool, logger hclog.Logger) (*tls.Config, error) {
	if opts == nil {
		opts = &config.TLSOptions{}
	}

	if insecure || opts.Insecure || strings.TrimSpace(os.Getenv(InsecureEnv)) == "1" {
		logger.Warn("TLS certificate and hostname verification is disabled")
		return &tls.Config{InsecureSkipVerify: true, MinVersion: tls.VersionTLS12}, nil //nolint:gosec // user explicitly requested insecure
	}

	cfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if opts.CACertPath != "" {
		certPEM, err := os.ReadFile(opts.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("client: read TLS CA cert: %w", err)
		}

		roots, err := x509.SystemCertPool()
		if err != nil || roots == nil {
			roots = x509.NewCertPool()
		}
		if !roots.AppendCertsFromPEM(certPEM) {
			return nil, fmt.Errorf("client: parse TLS CA cert: %s", opts.CACertPath)
		}
		cfg.RootCAs = roots
	}

	if opts.ServerName != "" {
		cfg.ServerName = opts.ServerName
	}

	return cfg, nil
}

// Call sends one request and returns the status code and raw body.
// A nil body sends no payload.
func (c *Client) Call(ctx context.Context, method, uri string, body []byte) (*Response, error) {
	url := c.baseURL + uri

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)

	c.logger.Debug("sending request", "method", method, "url", url, "body_bytes", len(body))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: url, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug("received response", "status", resp.StatusCode, "body_bytes", len(data))

	return &Response{Status: resp.StatusCode, Body: data}, nil
}
