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
	"io"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get general status information from Syncthing",
		Long:  `Prints Syncthing's global system status as indented JSON with sorted keys.`,
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.restClient()
			if err != nil {
				return err
			}
			return executeStatus(cmd.Context(), cmd.OutOrStdout(), a.logger, c)
		},
	}
}

func executeStatus(ctx context.Context, w io.Writer, logger hclog.Logger, c ClientInterface) error {
	body, err := callDaemon(ctx, c, http.MethodGet, "/rest/system/status", "Failed to retrieve status information")
	if err != nil {
		return err
	}

	printJSON(w, logger, body)
	return nil
}
