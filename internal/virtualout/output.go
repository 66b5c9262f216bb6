// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

// Package virtualout implements the daemon's Virtual Output (§4.4): a
// synthetic uinput keyboard that replays passthrough events exactly as
// received, so ordinary (non-hotkey) keystrokes reach the compositor
// unchanged despite the real device being grabbed exclusively.
package virtualout

import (
	"fmt"

	"github.com/ThomasT75/uinput"

	"github.com/AshBuk/swhkd-go/hotkey"
)

// Name is the fixed device name the virtual output registers under.
// internal/device excludes it from enumeration by this exact name.
const Name = "swhkd virtual output"

const uinputPath = "/dev/uinput"

// keyboard is the subset of uinput.Keyboard the output needs, narrowed
// so it can be faked in tests without a real /dev/uinput.
type keyboard interface {
	KeyDown(key int) error
	KeyUp(key int) error
	Close() error
}

// Output is a uinput-backed hotkey.VirtualOutput.
type Output struct {
	kb keyboard
}

// New creates the virtual output device. It requires access to
// /dev/uinput, which in turn requires the privilege gate in
// internal/privilege to have already passed.
func New() (*Output, error) {
	kb, err := uinput.CreateKeyboard(uinputPath, []byte(Name))
	if err != nil {
		return nil, fmt.Errorf("virtualout: create keyboard: %w", err)
	}
	return &Output{kb: kb}, nil
}

// Emit replays each event on the virtual device in order. A release
// (value 0) maps to KeyUp; anything else (press or kernel repeat) maps
// to KeyDown, since uinput has no native repeat-value concept.
func (o *Output) Emit(events []hotkey.RawEvent) error {
	for _, ev := range events {
		var err error
		if ev.Value == hotkey.Release {
			err = o.kb.KeyUp(int(ev.Code))
		} else {
			err = o.kb.KeyDown(int(ev.Code))
		}
		if err != nil {
			return fmt.Errorf("virtualout: emit code %d value %d: %w", ev.Code, ev.Value, err)
		}
	}
	return nil
}

// Close releases the uinput device.
func (o *Output) Close() error {
	return o.kb.Close()
}
