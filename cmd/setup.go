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
	"github.com/we-are-mono/stcli/config"
)

func newSetupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "setup <syncthing-config-path>",
		Short: "Configure the client from Syncthing's config.xml",
		Long: fmt.Sprintf(`Reads Syncthing's config.xml and writes the GUI listen address, API key
and TLS setting to the client configuration file. Unless %[1]s talks to
a remote Syncthing instance, this is how it should be configured.

If TLS is enabled and the GUI certificate (https-cert.pem) sits next to
config.xml, it is recorded as the trusted certificate. Passing --insecure
stores that certificate verification should be skipped instead.

Re-run setup whenever Syncthing's GUI listen address or API key change.`, a.inv.Program),
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.executeSetup(args[0])
		},
	}
}

func (a *app) executeSetup(daemonConfigPath string) error {
	if a.inv.ConfigPath == "" {
		err := a.inv.ConfigErr
		if err == nil {
			err = errors.New("no config path")
		}
		return fmt.Errorf("cannot determine where to write the configuration: %w", err)
	}

	cfg, err := config.FromDaemonConfig(daemonConfigPath)
	if err != nil {
		return err
	}

	if a.insecure && cfg.HTTPS {
		if cfg.TLS == nil {
			cfg.TLS = &config.TLSOptions{}
		}
		cfg.TLS.Insecure = true
		a.logger.Warn("storing insecure TLS setting, certificates will not be verified")
	}

	if err := config.Save(a.inv.ConfigPath, *cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	a.logger.Debug("configuration written",
		"path", a.inv.ConfigPath,
		"addr", cfg.Address,
		"https", cfg.HTTPS,
		"ca_cert", cfg.TLS != nil && cfg.TLS.CACertPath != "")
	return nil
}
