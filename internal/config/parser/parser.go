// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

// Package parser reads the swhkdrc-style hotkey configuration DSL: a
// non-indented binding header line (mod+mod+...+key, case-insensitive)
// followed by one or more indented command lines. Blank lines and
// '#'-prefixed comments are skipped.
package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/AshBuk/swhkd-go/hotkey"
)

// Parse turns swhkdrc-format source into an ordered slice of bindings.
// Config-file order is preserved, since the matcher's tie-break on
// overlapping bindings is "first in config-file order wins".
func Parse(data []byte) ([]hotkey.Hotkey, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var hotkeys []hotkey.Hotkey
	var header string
	var headerLine int
	var command strings.Builder
	var continuing bool
	lineNo := 0

	flush := func() error {
		if header == "" {
			return nil
		}
		cmd := strings.TrimSpace(command.String())
		if cmd == "" {
			return fmt.Errorf("parser: line %d: binding %q has no command", headerLine, header)
		}
		hk, err := parseHeader(header)
		if err != nil {
			return fmt.Errorf("parser: line %d: %w", headerLine, err)
		}
		hk.Command = cmd
		hotkeys = append(hotkeys, hk)
		header = ""
		command.Reset()
		continuing = false
		return nil
	}

	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" && !continuing {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") && !continuing {
			continue
		}

		indented := continuing || (len(raw) > 0 && (raw[0] == ' ' || raw[0] == '\t'))
		if indented {
			if header == "" {
				return nil, fmt.Errorf("parser: line %d: command line with no preceding binding", lineNo)
			}
			if command.Len() > 0 {
				command.WriteString(" ")
			}
			if continuation := strings.HasSuffix(trimmed, "\\"); continuation {
				command.WriteString(strings.TrimSpace(strings.TrimSuffix(trimmed, "\\")))
				continuing = true
			} else {
				command.WriteString(trimmed)
				continuing = false
			}
			continue
		}

		// A new, non-indented line starts a fresh binding; flush any
		// pending one first.
		if err := flush(); err != nil {
			return nil, err
		}
		header = trimmed
		headerLine = lineNo
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parser: scan: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return hotkeys, nil
}

// parseHeader resolves a "mod+mod+...+key" header into a Hotkey with no
// Command set yet. The last '+'-separated token is the keysym; every
// earlier token must resolve to a known modifier name.
func parseHeader(header string) (hotkey.Hotkey, error) {
	parts := strings.Split(header, "+")
	for i := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
	}
	if len(parts) < 1 || parts[len(parts)-1] == "" {
		return hotkey.Hotkey{}, fmt.Errorf("malformed binding header %q", header)
	}

	keyName := parts[len(parts)-1]
	keysym, ok := hotkey.KeyCodeByName(keyName)
	if !ok {
		return hotkey.Hotkey{}, fmt.Errorf("unknown key %q in binding %q", keyName, header)
	}
	if _, isModifier := hotkey.DefaultModifierMap()[keysym]; isModifier {
		return hotkey.Hotkey{}, fmt.Errorf("key %q in binding %q is a modifier key", keyName, header)
	}

	mods := hotkey.NewModifierSet()
	for _, name := range parts[:len(parts)-1] {
		mod, ok := hotkey.ModifierByName(name)
		if !ok {
			return hotkey.Hotkey{}, fmt.Errorf("unknown modifier %q in binding %q", name, header)
		}
		mods.Add(mod)
	}

	return hotkey.Hotkey{Modifiers: mods, Keysym: keysym}, nil
}
