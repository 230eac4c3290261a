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


// Package jsonfmt pretty-prints JSON payloads returned by the daemon.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// FormatError reports a payload that is not a single valid JSON document.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Reformat decodes data and re-encodes it with object keys sorted and a
// two-space indent. Numbers are kept exactly as written.
func Reformat(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &FormatError{Err: errors.New("payload is not valid UTF-8")}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty payload")
		}
		return "", &FormatError{Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return "", &FormatError{Err: errors.New("unexpected data after top-level value")}
	}

	// Maps are encoded with sorted keys.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", &FormatError{Err: err}
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
