// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

package hotkey

// EscapeCombo is the fixed {Super, Shift} + Escape combination that
// clears temp_paused (§4.7 step 4, §4.9). It is not configurable: all
// three keys are chosen because they remain transparently passed
// through while temp_paused is active.
var EscapeCombo = NewModifierSet(Super, Shift)

// MatchResult is the outcome of feeding one raw event through the
// Matcher.
type MatchResult struct {
	// Passthrough is true when the event must be forwarded to the
	// Virtual Output (it is not part of any currently-matching
	// hotkey code+modifier-set combination).
	Passthrough bool
	// Fired is non-nil when a hotkey fired on this event.
	Fired *Hotkey
	// ClearsTempPause is true when this event was the escape combo
	// and resolved temp_paused back to false.
	ClearsTempPause bool
}

// Matcher implements the hotkey-matching algorithm of spec §4.7,
// given the post-update state of the originating device.
type Matcher struct {
	table *Table
}

// NewMatcher builds a Matcher reading bindings from table.
func NewMatcher(table *Table) *Matcher {
	return &Matcher{table: table}
}

// isHotkeyEvent reports whether ev is part of some configured hotkey
// under the state's current modifier set — i.e. whether it must be
// suppressed rather than passed through. This predicate is evaluated
// identically for press and release so that releases are suppressed
// symmetrically (§4.7 step 2, §9 "Release suppression").
func isHotkeyEvent(hotkeys []Hotkey, ev RawEvent, heldModifiers ModifierSet) bool {
	for _, h := range hotkeys {
		if h.Keysym == ev.Code && h.Modifiers.Equal(heldModifiers) {
			return true
		}
	}
	return false
}

// candidates returns the hotkeys whose modifier-set cardinality equals
// the state's held-modifier count (§4.7 step 1). Cardinality, not
// subset, is the filter: a chord with extra modifiers must not fire a
// simpler binding.
func candidates(hotkeys []Hotkey, heldModifiers ModifierSet) []Hotkey {
	out := make([]Hotkey, 0, len(hotkeys))
	for _, h := range hotkeys {
		if h.Modifiers.Len() == heldModifiers.Len() {
			out = append(out, h)
		}
	}
	return out
}

// Match runs the full matching algorithm for one event on one device's
// already-updated State. paused and tempPaused are the engine's two
// run-mode flags; lastHotkey is the current latch (nil if none). The
// caller is responsible for the side effects the result implies:
// forwarding to Virtual Output on Passthrough, dispatching Fired.Command
// and re-arming the repeat timer on Fired, and clearing temp_paused on
// ClearsTempPause.
func (m *Matcher) Match(ev RawEvent, state *State, paused, tempPaused bool, lastHotkey *Hotkey) MatchResult {
	hotkeys := m.table.Load()

	result := MatchResult{
		Passthrough: !isHotkeyEvent(hotkeys, ev, state.HeldModifiers),
	}

	// Gating (§4.7 step 3): a durable pause, or an already-latched
	// chord, stops any firing this cycle — but passthrough above is
	// unaffected by either.
	if paused || lastHotkey != nil {
		return result
	}

	// Temp-pause escape (§4.7 step 4): only the literal
	// {Super,Shift}+Escape combo is recognized; it is fixed and
	// independent of the configured table, so it must be checked before
	// — not after — filtering to config-defined candidates. No hotkey
	// fires this cycle while temp_paused, escape combo or not.
	if tempPaused {
		if state.HeldModifiers.Equal(EscapeCombo) && state.HasKey(KeyEsc) {
			result.ClearsTempPause = true
		}
		return result
	}

	cands := candidates(hotkeys, state.HeldModifiers)
	if len(cands) == 0 {
		return result
	}

	// Fire (§4.7 step 5): first candidate, in config-file order, for
	// which modifiers match exactly and the keysym is physically held.
	for i := range cands {
		h := cands[i]
		if state.HeldModifiers.Equal(h.Modifiers) && state.HasKey(h.Keysym) {
			fired := h
			result.Fired = &fired
			return result
		}
	}
	return result
}
