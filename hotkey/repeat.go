// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

package hotkey

import "time"

// RepeatEngine is the single one-shot timer behind software hotkey
// repeat (§4.8). It does not own LastHotkey itself — the Engine does —
// it only tracks the cooldown period and exposes an Arm/Channel pair
// the event loop selects on.
type RepeatEngine struct {
	cooldown time.Duration
	timer    *time.Timer
}

// NewRepeatEngine builds a RepeatEngine with the given cooldown, used
// as is; the daemon's 250ms default comes from the -C flag in
// cmd/swhkd. The timer starts stopped; Arm must be called once a
// hotkey has fired for the first time.
func NewRepeatEngine(cooldown time.Duration) *RepeatEngine {
	t := time.NewTimer(cooldown)
	if !t.Stop() {
		<-t.C
	}
	return &RepeatEngine{cooldown: cooldown, timer: t}
}

// Arm (re)starts the cooldown countdown from now. Called when a hotkey
// first fires, and again every time the timer tick re-dispatches it.
func (r *RepeatEngine) Arm() {
	if !r.timer.Stop() {
		select {
		case <-r.timer.C:
		default:
		}
	}
	r.timer.Reset(r.cooldown)
}

// Stop disarms the timer without draining a pending tick into a spurious
// dispatch. Used when LastHotkey is cleared.
func (r *RepeatEngine) Stop() {
	if !r.timer.Stop() {
		select {
		case <-r.timer.C:
		default:
		}
	}
}

// C is the channel the event loop selects on. It only yields
// meaningfully while the engine's LastHotkey is set; the event loop is
// responsible for ignoring ticks that arrive after LastHotkey has
// already been cleared (the gating described in §4.8: "when the timer
// fires and LastHotkey is still set").
func (r *RepeatEngine) C() <-chan time.Time {
	return r.timer.C
}
