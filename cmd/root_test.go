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


package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/we-are-mono/stcli/client"
	"github.com/we-are-mono/stcli/config"
)

// TestRootCmdExists tests that root command is properly initialized
func TestRootCmdExists(t *testing.T) {
	root := newRootCmd(&app{inv: Invocation{Program: "stcli"}, logger: newLogger("stcli", &bytes.Buffer{})})
	assert.NotNil(t, root, "root command should exist")
	assert.Equal(t, "stcli", root.Use)
	assert.Contains(t, root.Short, "Syncthing")
}

// TestRootCmdHasCommands tests that subcommands are registered
func TestRootCmdHasCommands(t *testing.T) {
	expectedCommands := []string{
		"version",
		"setup",
		"scan",
		"override",
		"status",
		"error",
	}

	root := newRootCmd(&app{inv: Invocation{Program: "stcli"}, logger: newLogger("stcli", &bytes.Buffer{})})
	commands := root.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	for _, expected := range expectedCommands {
		assert.Contains(t, commandNames, expected, "command %s should be registered", expected)
	}
	assert.NotContains(t, commandNames, "completion")
}

// TestExecuteFunction tests that Execute function exists (can't test actual execution without exiting)
func TestExecuteFunction(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = Execute
	})
}

// TestRunNilArgs tests that a nil argument slice does not fall back to os.Args
func TestRunNilArgs(t *testing.T) {
	var stdout bytes.Buffer
	code := Run(context.Background(), Invocation{Stdout: &stdout})

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "stcli <command> [arguments]")
}

// TestHelp tests generic and per-command help
func TestHelp(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantStdout   []string
		wantStderr   string
		wantNoStdout bool
	}{
		{
			name:       "no arguments",
			args:       []string{},
			wantStdout: []string{"Usage:", "stcli <command> [arguments]", "scan", "override", "status", "error", "stcli help <command>"},
		},
		{
			name:       "help without topic",
			args:       []string{"help"},
			wantStdout: []string{"Usage:", "setup"},
		},
		{
			name:       "help scan",
			args:       []string{"help", "scan"},
			wantStdout: []string{"stcli scan [<folder> [<path>]]", "folder ID"},
		},
		{
			name:       "help setup",
			args:       []string{"help", "setup"},
			wantStdout: []string{"stcli setup <syncthing-config-path>", "config.xml"},
		},
		{
			name:       "help override",
			args:       []string{"help", "override"},
			wantStdout: []string{"stcli override <folder>"},
		},
		{
			name:       "help status",
			args:       []string{"help", "status"},
			wantStdout: []string{"stcli status"},
		},
		{
			name:       "help error",
			args:       []string{"help", "error"},
			wantStdout: []string{"stcli error [clear]", "clear the list"},
		},
		{
			name:       "help flag on subcommand",
			args:       []string{"scan", "-h"},
			wantStdout: []string{"stcli scan [<folder> [<path>]]", "--insecure"},
		},
		{
			name:       "help unknown topic",
			args:       []string{"help", "frobnicate"},
			wantCode:   1,
			wantStderr: "Unknown command frobnicate.",
		},
		{
			name:         "help too many topics",
			args:         []string{"help", "scan", "status"},
			wantCode:     1,
			wantStderr:   "incorrect number of arguments for help command",
			wantNoStdout: true,
		},
		{
			name:       "unknown command",
			args:       []string{"frobnicate"},
			wantCode:   1,
			wantStdout: []string{"Usage:"},
			wantStderr: "Unknown command frobnicate.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, nil, &mockClient{}, tt.args...)

			assert.Equal(t, tt.wantCode, code)
			for _, want := range tt.wantStdout {
				assert.Contains(t, stdout, want)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr, tt.wantStderr)
			}
			if tt.wantNoStdout {
				assert.Empty(t, stdout)
			}
		})
	}
}

// TestVersion tests version output
func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, &mockClient{}, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, fmt.Sprintf("stcli: Version %s\n", Version), stdout)

	t.Run("with build time", func(t *testing.T) {
		origVersion, origBuild := Version, BuildTime
		t.Cleanup(func() { SetVersion(origVersion, origBuild) })
		SetVersion("1.2.3", "2025-01-02")

		code, stdout, _ := runCLI(t, nil, &mockClient{}, "version")
		assert.Equal(t, 0, code)
		assert.Equal(t, "stcli: Version 1.2.3 (built: 2025-01-02)\n", stdout)
	})

	t.Run("extra arguments", func(t *testing.T) {
		code, _, stderr := runCLI(t, nil, &mockClient{}, "version", "now")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "incorrect number of arguments for version command")
	})
}

// TestDebugFlag tests that --debug enables diagnostic logging on stderr
func TestDebugFlag(t *testing.T) {
	code, stdout, stderr := runCLI(t, testConfig(), &mockClient{}, "--debug", "scan")
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "using configuration")

	code, _, stderr = runCLI(t, testConfig(), &mockClient{}, "scan")
	assert.Equal(t, 0, code)
	assert.NotContains(t, stderr, "using configuration")
}

// TestUnusableConfigWarning tests that a broken config file is reported as a warning
func TestUnusableConfigWarning(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), Invocation{
		Program:    "stcli",
		Args:       []string{"status"},
		Stdout:     &stdout,
		Stderr:     &stderr,
		ConfigPath: "/home/user/.stcall.json",
		ConfigErr:  fmt.Errorf("%w: failed to parse", config.ErrNotFound),
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "ignoring unusable configuration")
	assert.Contains(t, stderr.String(), "Unable to find configuration, please run stcli setup.")
}

// TestNewInvocation tests config resolution for the process entry point
func TestNewInvocation(t *testing.T) {
	t.Setenv(DebugEnv, "")

	t.Run("config present", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".stcall.json")
		require.NoError(t, config.Save(path, config.Config{Address: "127.0.0.1:8384", APIKey: "ABC123"}))
		t.Setenv(config.PathEnv, path)

		inv := newInvocation([]string{"/usr/local/bin/stcli", "scan", "default"})
		assert.Equal(t, "stcli", inv.Program)
		assert.Equal(t, []string{"scan", "default"}, inv.Args)
		assert.Equal(t, path, inv.ConfigPath)
		require.NotNil(t, inv.Config)
		assert.Equal(t, "ABC123", inv.Config.APIKey)
		assert.NoError(t, inv.ConfigErr)
		assert.Equal(t, os.Stdout, inv.Stdout)
	})

	t.Run("config missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".stcall.json")
		t.Setenv(config.PathEnv, path)

		inv := newInvocation([]string{"stcli", "status"})
		assert.Nil(t, inv.Config)
		assert.Equal(t, path, inv.ConfigPath)
		assert.ErrorIs(t, inv.ConfigErr, config.ErrNotFound)
		assert.ErrorIs(t, inv.ConfigErr, os.ErrNotExist)
	})

	t.Run("empty argv", func(t *testing.T) {
		inv := newInvocation(nil)
		assert.Equal(t, "stcli", inv.Program)
		assert.Empty(t, inv.Args)
	})
}

// TestRunAgainstDaemon tests the full pipeline with the real REST client
func TestRunAgainstDaemon(t *testing.T) {
	srv := startStatusDaemon(t, "ABC123", `{"uptime":12,"myID":"P56IOI7"}`)

	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), Invocation{
		Program: "stcli",
		Args:    []string{"status"},
		Stdout:  &stdout,
		Stderr:  &stderr,
		Config:  &config.Config{Address: "http://" + srv.Listener.Addr().String() + "/", APIKey: "ABC123"},
	})

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "{\n  \"myID\": \"P56IOI7\",\n  \"uptime\": 12\n}\n", stdout.String())

	t.Run("wrong api key", func(t *testing.T) {
		stdout.Reset()
		stderr.Reset()

		code := Run(context.Background(), Invocation{
			Program: "stcli",
			Args:    []string{"status"},
			Stdout:  &stdout,
			Stderr:  &stderr,
			Config:  &config.Config{Address: srv.Listener.Addr().String(), APIKey: "WRONG"},
		})

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "[ERROR] Failed to retrieve status information (HTTP 403)")
		assert.Contains(t, stderr.String(), "CSRF Error")
	})
}

// ensure the real constructor satisfies ClientInterface
var _ ClientInterface = (*client.Client)(nil)
