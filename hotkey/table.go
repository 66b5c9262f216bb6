// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

package hotkey

import "sync/atomic"

// Table is the current list of Hotkey bindings loaded from config,
// replaceable atomically by a reload (SIGHUP). Readers always see a
// complete, consistent table — either the old one or the new one,
// never a partially-built slice.
type Table struct {
	hotkeys atomic.Pointer[[]Hotkey]
}

// NewTable builds a Table holding the given bindings. Config-file
// order is preserved, since the matcher's tie-break is "first match in
// config-file order wins".
func NewTable(hotkeys []Hotkey) *Table {
	t := &Table{}
	cp := append([]Hotkey(nil), hotkeys...)
	t.hotkeys.Store(&cp)
	return t
}

// Load returns the current slice of hotkeys. Callers must not mutate
// the returned slice.
func (t *Table) Load() []Hotkey {
	p := t.hotkeys.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Replace atomically swaps in a new set of bindings, as on a
// successful SIGHUP reload. A failed reload must never call Replace —
// the caller keeps dispatching against the old table.
func (t *Table) Replace(hotkeys []Hotkey) {
	cp := append([]Hotkey(nil), hotkeys...)
	t.hotkeys.Store(&cp)
}
