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
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [<folder> [<path>]]",
		Short: "Trigger an immediate scan of a folder",
		Long: `Tells Syncthing to rescan folders. Both arguments are optional:

  <folder>  The folder ID to rescan. This is the ID Syncthing uses
            internally, not the label shown in the GUI or the path on
            disk. Without it, Syncthing rescans all folders.
  <path>    A path within the folder to restrict the scan to, so only a
            single file or directory is rescanned. Useful on large
            folders or slow devices.`,
		Args: rangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.restClient()
			if err != nil {
				return err
			}
			return executeScan(cmd.Context(), c, args)
		},
	}
}

// scanURI builds the scan endpoint; query parameters appear only when given.
func scanURI(args []string) string {
	uri := "/rest/db/scan"
	if len(args) > 0 {
		uri += "?folder=" + queryValue(args[0])
		if len(args) > 1 {
			uri += "&sub=" + queryValue(args[1])
		}
	}
	return uri
}

// queryValue escapes s for a query string but leaves path separators readable.
func queryValue(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%2F", "/")
}

func executeScan(ctx context.Context, c ClientInterface, args []string) error {
	_, err := callDaemon(ctx, c, http.MethodPost, scanURI(args), "Scanning failed")
	return err
}
