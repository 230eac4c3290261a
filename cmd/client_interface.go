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


// Package cmd implements the CLI commands for stcli using cobra.
package cmd

import (
	"context"
	"net/http"

	"github.com/we-are-mono/stcli/client"
	"github.com/we-are-mono/stcli/config"
)

// ClientInterface defines the interface for communicating with the Syncthing daemon.
// This interface allows for easy testing by enabling mock implementations.
type ClientInterface interface {
	Call(ctx context.Context, method, uri string, body []byte) (*client.Response, error)
}

// newClient builds the REST client for a loaded config.
// Tests can replace this with a constructor returning a mock.
var newClient = func(cfg config.Config, opts client.Options) (ClientInterface, error) {
	c, err := client.New(cfg, opts)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// restClient returns a client for the configured daemon, or errConfigMissing.
func (a *app) restClient() (ClientInterface, error) {
	if a.inv.Config == nil {
		return nil, errConfigMissing
	}

	return newClient(*a.inv.Config, client.Options{
		Insecure: a.insecure,
		Timeout:  a.timeout,
		Logger:   a.logger.Named("client"),
	})
}

// callDaemon sends one request and returns the body of a 200 response.
// Any other status becomes an APIError carrying action as its message.
func callDaemon(ctx context.Context, c ClientInterface, method, uri, action string) ([]byte, error) {
	resp, err := c.Call(ctx, method, uri, nil)
	if err != nil {
		return nil, err
	}

	if resp.Status != http.StatusOK {
		return nil, &APIError{Action: action, Status: resp.Status, Body: resp.Body}
	}

	return resp.Body, nil
}
