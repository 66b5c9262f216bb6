// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

// Package config is a facade over config/parser: it resolves the
// swhkdrc path, enforces a safety ceiling on file size before reading
// it (ported from the teacher's config/security.EnforceFileSizeLimit),
// and hands the bytes to the parser.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AshBuk/swhkd-go/hotkey"
	"github.com/AshBuk/swhkd-go/internal/config/parser"
)

// MaxFileSize is the ceiling enforced on the swhkdrc file, mirroring
// the teacher's MaxTempFileSize safety check against oversized input.
const MaxFileSize = 1 << 20 // 1 MiB

// ResolvePath returns the swhkdrc path to use: explicit takes priority,
// then $XDG_CONFIG_HOME/swhkd/swhkdrc, then /etc/swhkd/swhkdrc (§6).
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "swhkd", "swhkdrc")
	}
	return "/etc/swhkd/swhkdrc"
}

// Load reads and parses the swhkdrc file at path into an ordered slice
// of bindings. It is the only function that reads a config file: both
// startup load and SIGHUP reload (via Reloader) call this, so they can
// never drift.
func Load(path string) ([]hotkey.Hotkey, error) {
	clean := filepath.Clean(path)
	if strings.Contains(clean, "..") {
		return nil, fmt.Errorf("config: invalid config path %q", path)
	}

	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", clean, err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("config: %s exceeds size limit: %d bytes (limit %d)", clean, info.Size(), MaxFileSize)
	}

	// #nosec G304 -- path is cleaned and checked against traversal above.
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", clean, err)
	}

	hotkeys, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", clean, err)
	}
	return hotkeys, nil
}

// Reloader returns a hotkey.ConfigReloader bound to path, suitable for
// wiring directly into hotkey.Engine's SIGHUP reload hook.
func Reloader(path string) func() ([]hotkey.Hotkey, error) {
	return func() ([]hotkey.Hotkey, error) {
		return Load(path)
	}
}
