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
	"strings"

	"github.com/spf13/cobra"
)

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [<command>]",
		Short: "Display help about a specific command",
		Long: `Without arguments, lists the available commands. With the name of a
command, describes that command and its arguments.`,
		Args: rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeHelp(cmd.OutOrStdout(), cmd.Root(), args)
		},
	}
}

func executeHelp(w io.Writer, root *cobra.Command, args []string) error {
	if len(args) == 0 {
		printUsage(w, root)
		return nil
	}

	target := findCommand(root, args[0])
	if target == nil {
		return &UnknownCommandError{Name: args[0]}
	}

	printCommandHelp(w, target)
	return nil
}

// findCommand returns the direct subcommand of root called name.
func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return c
		}
	}
	return nil
}

// printUsage writes the generic usage listing.
func printUsage(w io.Writer, root *cobra.Command) {
	name := root.Name()

	fmt.Fprintf(w, "%s: %s.\n\n", name, root.Short)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s <command> [arguments]\n\n", name)

	fmt.Fprintln(w, "Commands:")
	for _, c := range root.Commands() {
		if c.Hidden {
			continue
		}
		fmt.Fprintf(w, "  %-10s %s\n", c.Name(), c.Short)
	}

	if flags := root.PersistentFlags().FlagUsages(); flags != "" {
		fmt.Fprintf(w, "\nGlobal flags:\n%s", flags)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "For more information on a given command, use:")
	fmt.Fprintf(w, "  %s help <command>\n", name)
}

// printCommandHelp writes the usage and description of one command.
func printCommandHelp(w io.Writer, c *cobra.Command) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s %s\n", c.Root().Name(), c.Use)

	desc := c.Long
	if desc == "" {
		desc = c.Short + "."
	}
	fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(desc))

	if flags := c.InheritedFlags().FlagUsages(); flags != "" {
		fmt.Fprintf(w, "\nGlobal flags:\n%s", flags)
	}
}
