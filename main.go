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


// Stcli is a small command-line client for the Syncthing REST API.
// It triggers rescans, overrides send-only folders, and shows the
// daemon's status and recent errors, using the API key read once from
// Syncthing's own config.xml by 'stcli setup'.
package main

import "github.com/we-are-mono/stcli/cmd"

// Version is the application version, set at build time via ldflags.
var (
	Version   = "0.1"
	BuildTime = "unknown"
)

func main() {
	cmd.SetVersion(Version, BuildTime)
	cmd.Execute()
}
