// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

package device

import (
	"testing"

	"github.com/gvalkov/golang-evdev"
)

func TestLooksLikeKeyboardExcludesVirtualOutput(t *testing.T) {
	d := &evdev.InputDevice{
		Name: "swhkd virtual output",
		CapabilitiesFlat: map[int][]int{
			evdev.EV_KEY: {evdev.KEY_ENTER, evdev.KEY_A},
		},
	}
	if looksLikeKeyboard(d) {
		t.Fatal("virtual output device should never be treated as a keyboard source")
	}
}

func TestLooksLikeKeyboardRequiresEnterKey(t *testing.T) {
	mouse := &evdev.InputDevice{
		Name: "Some Mouse",
		CapabilitiesFlat: map[int][]int{
			evdev.EV_KEY: {evdev.BTN_LEFT, evdev.BTN_RIGHT},
		},
	}
	if looksLikeKeyboard(mouse) {
		t.Fatal("a device without KEY_ENTER should not be treated as a keyboard")
	}

	kbd := &evdev.InputDevice{
		Name: "AT Translated Set 2 keyboard",
		CapabilitiesFlat: map[int][]int{
			evdev.EV_KEY: {evdev.KEY_A, evdev.KEY_ENTER, evdev.KEY_LEFTSHIFT},
		},
	}
	if !looksLikeKeyboard(kbd) {
		t.Fatal("a device exposing KEY_ENTER should be treated as a keyboard")
	}
}

func TestLooksLikeKeyboardRequiresKeyCapability(t *testing.T) {
	d := &evdev.InputDevice{
		Name:             "Some Relative Pointer",
		CapabilitiesFlat: map[int][]int{evdev.EV_REL: {evdev.REL_X, evdev.REL_Y}},
	}
	if looksLikeKeyboard(d) {
		t.Fatal("a device with no EV_KEY capability should not be treated as a keyboard")
	}
}
