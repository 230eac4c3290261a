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

	"github.com/spf13/cobra"
)

func newOverrideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "override <folder>",
		Short: "Overwrite remote changes for a send-only folder",
		Long: `Tells Syncthing to override remote changes for a send-only folder,
reverting other devices to the local state.

  <folder>  The folder ID to override, as used internally by Syncthing.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.restClient()
			if err != nil {
				return err
			}
			return executeOverride(cmd.Context(), c, args[0])
		},
	}
}

func executeOverride(ctx context.Context, c ClientInterface, folder string) error {
	uri := "/rest/db/override?folder=" + queryValue(folder)
	_, err := callDaemon(ctx, c, http.MethodPost, uri, "Override failed")
	return err
}
