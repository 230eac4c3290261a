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
// It provides the root command structure and version management.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/we-are-mono/stcli/config"
)

// Version is the application version string.
var (
	Version   = "0.1"
	BuildTime = "unknown"
)

const programName = "stcli"

// Invocation is everything one run of the CLI depends on.
type Invocation struct {
	Program string
	Args    []string
	Stdout  io.Writer
	Stderr  io.Writer

	// Config is nil when no usable configuration was found.
	Config     *config.Config
	ConfigPath string
	// ConfigErr explains why Config is nil, if known.
	ConfigErr error
}

// app holds the per-run state shared by all commands.
type app struct {
	inv    Invocation
	logger hclog.Logger

	insecure bool
	timeout  time.Duration
	debug    bool
}

// Execute runs the CLI against the process arguments and exits with its code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, newInvocation(os.Args))
	stop()
	os.Exit(code)
}

// SetVersion updates the version and build time for display in version output.
func SetVersion(version, buildTime string) {
	Version = version
	BuildTime = buildTime
}

// newInvocation resolves the config for argv. A missing or unreadable
// config is not fatal here; commands that need it report it.
func newInvocation(argv []string) Invocation {
	inv := Invocation{
		Program: programName,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
	if len(argv) > 0 {
		if base := filepath.Base(argv[0]); base != "." && base != string(filepath.Separator) {
			inv.Program = base
		}
		inv.Args = argv[1:]
	}

	path, err := config.Path()
	if err != nil {
		inv.ConfigErr = err
		return inv
	}
	inv.ConfigPath = path

	cfg, err := config.Load(path)
	if err != nil {
		inv.ConfigErr = err
		return inv
	}
	inv.Config = cfg
	return inv
}

// Run executes one command and returns the process exit code.
func Run(ctx context.Context, inv Invocation) int {
	if inv.Program == "" {
		inv.Program = programName
	}
	if inv.Stdout == nil {
		inv.Stdout = io.Discard
	}
	if inv.Stderr == nil {
		inv.Stderr = io.Discard
	}
	args := inv.Args
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	a := &app{
		inv:    inv,
		logger: newLogger(inv.Program, inv.Stderr),
	}

	root := newRootCmd(a)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		a.report(root, err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   a.inv.Program,
		Short: "Simplify administrative calls to a Syncthing daemon",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UnknownCommandError{Name: args[0]}
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			printUsage(cmd.OutOrStdout(), cmd)
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.prepare()
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.SetOut(a.inv.Stdout)
	root.SetErr(a.inv.Stderr)

	flags := root.PersistentFlags()
	flags.BoolVar(&a.insecure, "insecure", false, "Skip TLS certificate verification (insecure; setup stores it in the config)")
	flags.DurationVar(&a.timeout, "timeout", 0, "Request timeout, e.g. 10s (0 waits indefinitely)")
	flags.BoolVar(&a.debug, "debug", false, "Log requests and config resolution to stderr")

	root.AddCommand(
		newVersionCmd(a),
		newSetupCmd(a),
		newScanCmd(a),
		newOverrideCmd(a),
		newStatusCmd(a),
		newErrorCmd(a),
	)
	root.SetHelpCommand(newHelpCmd())
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == cmd.Root() {
			printUsage(cmd.OutOrStdout(), cmd)
			return
		}
		printCommandHelp(cmd.OutOrStdout(), cmd)
	})

	return root
}

// prepare applies the parsed global flags before a command runs.
func (a *app) prepare() {
	if a.debug {
		a.logger.SetLevel(hclog.Debug)
	}

	if a.inv.Config != nil {
		a.logger.Debug("using configuration", "path", a.inv.ConfigPath, "addr", a.inv.Config.Address, "https", a.inv.Config.HTTPS)
		return
	}
	if err := a.inv.ConfigErr; err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.logger.Debug("no configuration file", "path", a.inv.ConfigPath)
		} else {
			a.logger.Warn("ignoring unusable configuration", "path", a.inv.ConfigPath, "error", err)
		}
	}
}

// report prints err the way the user should see it.
func (a *app) report(root *cobra.Command, err error) {
	stderr := a.inv.Stderr

	var unknownErr *UnknownCommandError
	var apiErr *APIError

	switch {
	case errors.As(err, &unknownErr):
		fmt.Fprintf(stderr, "Unknown command %s.\n", unknownErr.Name)
		printUsage(a.inv.Stdout, root)
	case errors.Is(err, errConfigMissing):
		fmt.Fprintf(stderr, "Unable to find configuration, please run %s setup.\n", a.inv.Program)
	case errors.As(err, &apiErr):
		fmt.Fprintf(stderr, "[ERROR] %v\n", apiErr)
		if len(apiErr.Body) > 0 {
			stderr.Write(apiErr.Body)
			if apiErr.Body[len(apiErr.Body)-1] != '\n' {
				fmt.Fprintln(stderr)
			}
		}
	default:
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
	}
}
