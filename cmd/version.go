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
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display version information for %s", a.inv.Program),
		Args:  exactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			executeVersion(cmd.OutOrStdout(), a.inv.Program)
		},
	}
}

func executeVersion(w io.Writer, program string) {
	if BuildTime == "" || BuildTime == "unknown" {
		fmt.Fprintf(w, "%s: Version %s\n", program, Version)
		return
	}
	fmt.Fprintf(w, "%s: Version %s (built: %s)\n", program, Version, BuildTime)
}
