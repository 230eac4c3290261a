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


// Package validation provides reusable validation helpers for stcli configuration.
package validation

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ValidateRequired checks that a named field is set.
func ValidateRequired(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing %s", name)
	}
	return nil
}

// ValidatePort validates that a port number is in the valid range [1, 65535].
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port %d out of valid range [1, 65535]", port)
	}
	return nil
}

// ValidatePortString validates a single port number given as a string.
func ValidatePortString(portStr string) error {
	if portStr == "" {
		return fmt.Errorf("port string cannot be empty")
	}

	port, err := strconv.Atoi(strings.TrimSpace(portStr))
	if err != nil {
		return fmt.Errorf("invalid port number %s: %w", portStr, err)
	}

	return ValidatePort(port)
}

// ValidateAddress validates a daemon address with the scheme already
// stripped: a host, optionally followed by :port.
func ValidateAddress(host string) error {
	if host == "" {
		return fmt.Errorf("address cannot be empty")
	}

	if strings.HasPrefix(host, "unix:") {
		return fmt.Errorf("unix socket addresses are not supported: %s", host)
	}

	if strings.ContainsAny(host, " \t\r\n/?#@") {
		return fmt.Errorf("invalid address: %s", host)
	}

	if _, port, err := net.SplitHostPort(host); err == nil {
		return ValidatePortString(port)
	}

	// No port: a bare hostname, IPv4 or bracketed IPv6 address.
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		return nil
	}
	if strings.Contains(host, ":") {
		return fmt.Errorf("invalid address %s: IPv6 addresses must be written as [addr]:port", host)
	}

	return nil
}
