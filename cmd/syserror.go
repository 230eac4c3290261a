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
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

const clearArg = "clear"

func newErrorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "error [clear]",
		Short: "List or clear Syncthing's recent error messages",
		Long: `Prints the list of recent error messages from Syncthing as indented JSON.
With the 'clear' argument, tells Syncthing to clear the list instead.`,
		Args: validateErrorArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.restClient()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return executeErrorClear(cmd.Context(), c)
			}
			return executeErrorList(cmd.Context(), cmd.OutOrStdout(), a.logger, c)
		},
	}
}

func validateErrorArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) > 1:
		return &ArgumentError{Command: cmd.Name(), Msg: "incorrect number of arguments"}
	case len(args) == 1 && args[0] != clearArg:
		return &ArgumentError{Command: cmd.Name(), Msg: fmt.Sprintf("unknown argument %q", args[0])}
	}
	return nil
}

func executeErrorList(ctx context.Context, w io.Writer, logger hclog.Logger, c ClientInterface) error {
	body, err := callDaemon(ctx, c, http.MethodGet, "/rest/system/error", "Failed to retrieve error information")
	if err != nil {
		return err
	}

	printJSON(w, logger, body)
	return nil
}

func executeErrorClear(ctx context.Context, c ClientInterface) error {
	_, err := callDaemon(ctx, c, http.MethodPost, "/rest/system/error/clear", "Clearing errors failed")
	return err
}
