// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

package hotkey

// EventValue is the evdev key event value: 0 = release, 1 = press,
// 2 = kernel auto-repeat.
type EventValue int32

const (
	Release EventValue = 0
	Press   EventValue = 1
	Repeat  EventValue = 2
)

// RawEvent is the subset of a kernel input_event the engine cares
// about: a single EV_KEY event.
type RawEvent struct {
	Code  KeyCode
	Value EventValue
}

// State is the per-device model of which modifiers and which
// non-modifier keys are currently held down. One State exists per
// grabbed keyboard; matching is always performed against the
// originating device's State only, never merged across devices, so a
// chord must be physically formed on a single keyboard.
type State struct {
	HeldModifiers ModifierSet
	HeldKeys      map[KeyCode]struct{}
}

// NewState returns an empty, ready-to-use State.
func NewState() *State {
	return &State{
		HeldModifiers: make(ModifierSet),
		HeldKeys:      make(map[KeyCode]struct{}),
	}
}

// HasKey reports whether code is currently held as a non-modifier key.
func (s *State) HasKey(code KeyCode) bool {
	_, ok := s.HeldKeys[code]
	return ok
}

// IsEmpty reports whether no modifiers and no keys are held; used by
// the balanced-event-sequence invariant in tests.
func (s *State) IsEmpty() bool {
	return len(s.HeldModifiers) == 0 && len(s.HeldKeys) == 0
}

// Apply updates the state for a single press/release event, given the
// modifier map in effect. Value 2 (kernel auto-repeat) leaves the state
// unchanged and never clears LastHotkey; the engine also filters it out
// before state tracking, since the Repeat Engine owns repetition.
//
// Apply also reports whether the event, having been applied, should
// clear LastHotkey: true when the released key or modifier is a
// constituent of last (when last is non-nil and value is Release).
func (s *State) Apply(ev RawEvent, mods ModifierMap, last *Hotkey) (clearsLast bool) {
	mod, isModifier := mods[ev.Code]

	switch ev.Value {
	case Press:
		if isModifier {
			s.HeldModifiers.Add(mod)
		} else {
			s.HeldKeys[ev.Code] = struct{}{}
		}
	case Release:
		if isModifier {
			if last != nil && last.Modifiers.Contains(mod) {
				clearsLast = true
			}
			s.HeldModifiers.Remove(mod)
		} else if s.HasKey(ev.Code) {
			if last != nil && last.Keysym == ev.Code {
				clearsLast = true
			}
			delete(s.HeldKeys, ev.Code)
		}
	default:
		// Ignored: evdev event value outside {0,1} (e.g. kernel
		// auto-repeat, value 2).
	}
	return clearsLast
}
