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
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errConfigMissing is returned by commands that need a daemon connection
// when no configuration has been set up.
var errConfigMissing = errors.New("configuration missing")

// UnknownCommandError reports a command word that is not registered.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// ArgumentError reports malformed positional arguments. It is raised
// before any request is sent.
type ArgumentError struct {
	Command string
	Msg     string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s for %s command", e.Msg, e.Command)
}

// APIError reports a daemon response other than 200 OK.
type APIError struct {
	Action string
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Action, e.Status)
}

// exactArgs accepts exactly n positional arguments.
func exactArgs(n int) cobra.PositionalArgs {
	return rangeArgs(n, n)
}

// rangeArgs accepts between minArgs and maxArgs positional arguments.
func rangeArgs(minArgs, maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < minArgs || len(args) > maxArgs {
			return &ArgumentError{Command: cmd.Name(), Msg: "incorrect number of arguments"}
		}
		return nil
	}
}
