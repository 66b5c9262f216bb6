// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

package hotkey

import "testing"

const keyA KeyCode = 30

func newTestMatcher(hotkeys ...Hotkey) *Matcher {
	return NewMatcher(NewTable(hotkeys))
}

func TestMatcherFiresOnExactModifierMatch(t *testing.T) {
	h := Hotkey{Modifiers: NewModifierSet(Super), Keysym: keyA, Command: "echo a"}
	m := newTestMatcher(h)

	state := NewState()
	state.HeldModifiers = NewModifierSet(Super)
	state.HeldKeys[keyA] = struct{}{}

	result := m.Match(RawEvent{Code: keyA, Value: Press}, state, false, false, nil)
	if result.Fired == nil {
		t.Fatal("expected hotkey to fire")
	}
	if result.Passthrough {
		t.Fatal("a matched hotkey event must not be passed through")
	}
}

func TestMatcherDoesNotFireWithExtraModifier(t *testing.T) {
	h := Hotkey{Modifiers: NewModifierSet(Super), Keysym: keyA, Command: "echo a"}
	m := newTestMatcher(h)

	state := NewState()
	state.HeldModifiers = NewModifierSet(Super, Shift)
	state.HeldKeys[keyA] = struct{}{}

	result := m.Match(RawEvent{Code: keyA, Value: Press}, state, false, false, nil)
	if result.Fired != nil {
		t.Fatal("Super+Shift+a held must not fire a Super+a binding (cardinality mismatch)")
	}
}

func TestMatcherPassthroughForUnboundKey(t *testing.T) {
	h := Hotkey{Modifiers: NewModifierSet(Super), Keysym: keyA, Command: "echo a"}
	m := newTestMatcher(h)

	state := NewState()
	state.HeldKeys[31] = struct{}{} // unrelated key, no modifiers held

	result := m.Match(RawEvent{Code: 31, Value: Press}, state, false, false, nil)
	if !result.Passthrough {
		t.Fatal("an event not part of any hotkey must be passed through")
	}
	if result.Fired != nil {
		t.Fatal("no hotkey should fire for an unbound key")
	}
}

func TestMatcherSuppressesReleaseOfBoundKey(t *testing.T) {
	h := Hotkey{Modifiers: NewModifierSet(Super), Keysym: keyA, Command: "echo a"}
	m := newTestMatcher(h)

	state := NewState()
	state.HeldModifiers = NewModifierSet(Super)

	result := m.Match(RawEvent{Code: keyA, Value: Release}, state, false, false, nil)
	if result.Passthrough {
		t.Fatal("release of a key belonging to the held modifier combo must be suppressed, not passed through")
	}
}

func TestMatcherGatedByPaused(t *testing.T) {
	h := Hotkey{Modifiers: NewModifierSet(Super), Keysym: keyA, Command: "echo a"}
	m := newTestMatcher(h)

	state := NewState()
	state.HeldModifiers = NewModifierSet(Super)
	state.HeldKeys[keyA] = struct{}{}

	result := m.Match(RawEvent{Code: keyA, Value: Press}, state, true, false, nil)
	if result.Fired != nil {
		t.Fatal("no hotkey may fire while paused")
	}
	if result.Passthrough {
		t.Fatal("passthrough decision is independent of paused: a bound hotkey event stays suppressed")
	}
}

func TestMatcherGatedByLastHotkey(t *testing.T) {
	h := Hotkey{Modifiers: NewModifierSet(Super), Keysym: keyA, Command: "echo a"}
	m := newTestMatcher(h)

	state := NewState()
	state.HeldModifiers = NewModifierSet(Super)
	state.HeldKeys[keyA] = struct{}{}

	last := &Hotkey{Modifiers: NewModifierSet(Super), Keysym: keyA, Command: "echo a"}
	result := m.Match(RawEvent{Code: keyA, Value: Press}, state, false, false, last)
	if result.Fired != nil {
		t.Fatal("a latched LastHotkey must block further firing until cleared")
	}
}

func TestMatcherTempPauseBlocksFiring(t *testing.T) {
	h := Hotkey{Modifiers: NewModifierSet(Super), Keysym: keyA, Command: "echo a"}
	m := newTestMatcher(h)

	state := NewState()
	state.HeldModifiers = NewModifierSet(Super)
	state.HeldKeys[keyA] = struct{}{}

	result := m.Match(RawEvent{Code: keyA, Value: Press}, state, false, true, nil)
	if result.Fired != nil {
		t.Fatal("no hotkey may fire while temp-paused, other than the escape combo")
	}
}

func TestMatcherTempPauseEscapeCombo(t *testing.T) {
	m := newTestMatcher()

	state := NewState()
	state.HeldModifiers = NewModifierSet(Super, Shift)
	state.HeldKeys[KeyEsc] = struct{}{}

	result := m.Match(RawEvent{Code: KeyEsc, Value: Press}, state, false, true, nil)
	if !result.ClearsTempPause {
		t.Fatal("Super+Shift+Escape must clear temp_paused")
	}
	if result.Fired != nil {
		t.Fatal("the escape combo itself never fires a configured hotkey")
	}
}

func TestMatcherConfigOrderTieBreak(t *testing.T) {
	first := Hotkey{Modifiers: NewModifierSet(Super), Keysym: keyA, Command: "first"}
	second := Hotkey{Modifiers: NewModifierSet(Super), Keysym: keyA, Command: "second"}
	m := newTestMatcher(first, second)

	state := NewState()
	state.HeldModifiers = NewModifierSet(Super)
	state.HeldKeys[keyA] = struct{}{}

	result := m.Match(RawEvent{Code: keyA, Value: Press}, state, false, false, nil)
	if result.Fired == nil || result.Fired.Command != "first" {
		t.Fatalf("expected the first config-order match to win, got %+v", result.Fired)
	}
}
