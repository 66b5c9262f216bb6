// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

// Package hotkey implements the input-grab / state-tracking /
// hotkey-matching / event-forwarding engine that sits at the core of the
// daemon: it turns raw evdev key events on N keyboards into either a
// dispatched hotkey command or a passthrough event on the virtual
// output device.
package hotkey

import "fmt"

// KeyCode is an integer key identifier as emitted by evdev (Linux
// input-event codes). It is opaque to the engine except for equality
// and lookup in a ModifierMap.
type KeyCode uint16

// Modifier is a closed enumeration of the logical modifiers the engine
// understands. Left/right variants of a physical modifier key map to
// the same logical Modifier.
type Modifier int

const (
	Super Modifier = iota
	Alt
	Control
	Shift
	Hyper
	Meta
	Mod1
	Mod2
	Mod3
	Mod4
	Mod5
)

func (m Modifier) String() string {
	switch m {
	case Super:
		return "super"
	case Alt:
		return "alt"
	case Control:
		return "control"
	case Shift:
		return "shift"
	case Hyper:
		return "hyper"
	case Meta:
		return "meta"
	case Mod1:
		return "mod1"
	case Mod2:
		return "mod2"
	case Mod3:
		return "mod3"
	case Mod4:
		return "mod4"
	case Mod5:
		return "mod5"
	default:
		return fmt.Sprintf("modifier(%d)", int(m))
	}
}

// ModifierSet is a small set of Modifier values, kept as a map rather
// than a bitmask; equality is checked with ModifierSet.Equal. A nil
// ModifierSet reads as empty, but Add needs a set built with
// NewModifierSet or make.
type ModifierSet map[Modifier]struct{}

// NewModifierSet builds a ModifierSet from the given modifiers,
// deduplicating repeats.
func NewModifierSet(mods ...Modifier) ModifierSet {
	s := make(ModifierSet, len(mods))
	for _, m := range mods {
		s[m] = struct{}{}
	}
	return s
}

// Contains reports whether m is a member of the set.
func (s ModifierSet) Contains(m Modifier) bool {
	_, ok := s[m]
	return ok
}

// Add inserts m into the set.
func (s ModifierSet) Add(m Modifier) {
	s[m] = struct{}{}
}

// Remove deletes m from the set, if present.
func (s ModifierSet) Remove(m Modifier) {
	delete(s, m)
}

// Len returns the cardinality of the set.
func (s ModifierSet) Len() int {
	return len(s)
}

// Equal reports whether s and other contain exactly the same modifiers.
// The matcher requires this set-equality semantic, not containment: a
// binding on Super+Return must not fire when Super+Shift+Return is held.
func (s ModifierSet) Equal(other ModifierSet) bool {
	if len(s) != len(other) {
		return false
	}
	for m := range s {
		if _, ok := other[m]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s ModifierSet) Clone() ModifierSet {
	c := make(ModifierSet, len(s))
	for m := range s {
		c[m] = struct{}{}
	}
	return c
}

// Hotkey is an immutable (modifiers, keysym, command) binding.
// keysym must not itself be a modifier key; the config loader enforces
// this invariant at parse time.
type Hotkey struct {
	Modifiers ModifierSet
	Keysym    KeyCode
	Command   string
}

// Equal reports structural equality between two hotkeys.
func (h Hotkey) Equal(other Hotkey) bool {
	return h.Keysym == other.Keysym && h.Command == other.Command && h.Modifiers.Equal(other.Modifiers)
}

// ModifierMap is a fixed mapping from physical KeyCode to logical
// Modifier. Multiple KeyCodes may map to the same Modifier (left/right
// variants); not every KeyCode appears in the map.
type ModifierMap map[KeyCode]Modifier

// DefaultModifierMap returns the modifier map for the four modifiers
// the engine defines at minimum (§3: Super, Alt, Control, Shift),
// keyed on the standard evdev codes for their left/right variants.
// Duplicate left/right entries collapse naturally since ModifierMap is
// a plain map — the redundancy the original config carried for the two
// super keys is harmless here by construction.
func DefaultModifierMap() ModifierMap {
	return ModifierMap{
		KeyLeftMeta:   Super,
		KeyRightMeta:  Super,
		KeyLeftAlt:    Alt,
		KeyRightAlt:   Alt,
		KeyLeftCtrl:   Control,
		KeyRightCtrl:  Control,
		KeyLeftShift:  Shift,
		KeyRightShift: Shift,
	}
}
