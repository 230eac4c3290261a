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
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/we-are-mono/stcli/jsonfmt"
)

// DebugEnv enables debug logging when set to any non-empty value.
const DebugEnv = "STCLI_DEBUG"

// newLogger creates the diagnostic logger. Command results never go
// through it; only warnings are shown unless debugging is enabled.
func newLogger(name string, w io.Writer) hclog.Logger {
	level := hclog.Warn
	if os.Getenv(DebugEnv) != "" {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: w,
		Level:  level,
		Color:  hclog.AutoColor,
	})
}

// printJSON writes a reformatted JSON body, or the raw body if it is not JSON.
func printJSON(w io.Writer, logger hclog.Logger, body []byte) {
	out, err := jsonfmt.Reformat(body)
	if err != nil {
		logger.Warn("response is not valid JSON, printing it unformatted", "error", err)
		w.Write(body)
		if len(body) > 0 && body[len(body)-1] != '\n' {
			fmt.Fprintln(w)
		}
		return
	}

	fmt.Fprintln(w, out)
}
