// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

package hotkey

import "testing"

func TestKeyCodeByName(t *testing.T) {
	cases := []struct {
		name   string
		want   KeyCode
		wantOK bool
	}{
		{"a", 30, true},
		{"return", KeyEnter, true},
		{"enter", KeyEnter, true},
		{"escape", KeyEsc, true},
		{"esc", KeyEsc, true},
		{"f12", 88, true},
		{"nonexistent", 0, false},
	}
	for _, c := range cases {
		got, ok := KeyCodeByName(c.name)
		if ok != c.wantOK {
			t.Errorf("KeyCodeByName(%q) ok = %v, want %v", c.name, ok, c.wantOK)
			continue
		}
		if ok && got != c.want {
			t.Errorf("KeyCodeByName(%q) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestKeyNameByCodeUnknown(t *testing.T) {
	if got := KeyNameByCode(KeyCode(9999)); got != "unknown" {
		t.Errorf("KeyNameByCode(9999) = %q, want %q", got, "unknown")
	}
}

func TestKeyNameByCodeRoundTrip(t *testing.T) {
	name := KeyNameByCode(30)
	if name != "a" {
		t.Fatalf("KeyNameByCode(30) = %q, want %q", name, "a")
	}
	code, ok := KeyCodeByName(name)
	if !ok || code != 30 {
		t.Fatalf("round trip through KeyCodeByName(%q) = (%d, %v), want (30, true)", name, code, ok)
	}
}

func TestModifierByName(t *testing.T) {
	cases := []struct {
		name   string
		want   Modifier
		wantOK bool
	}{
		{"super", Super, true},
		{"mod4", Super, true},
		{"logo", Super, true},
		{"ctrl", Control, true},
		{"control", Control, true},
		{"shift", Shift, true},
		{"alt", Alt, true},
		{"bogus", 0, false},
	}
	for _, c := range cases {
		got, ok := ModifierByName(c.name)
		if ok != c.wantOK || (ok && got != c.want) {
			t.Errorf("ModifierByName(%q) = (%v, %v), want (%v, %v)", c.name, got, ok, c.want, c.wantOK)
		}
	}
}
