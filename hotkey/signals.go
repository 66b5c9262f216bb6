// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

package hotkey

import (
	"syscall"
	"time"
)

// The four signals with engine-level meaning (§4.9). Any other signal
// delivered on the Engine's signal channel is treated as terminating.
const (
	sigUSR1 = syscall.SIGUSR1 // pause: ungrab, stop matching
	sigUSR2 = syscall.SIGUSR2 // resume: re-enumerate, re-grab
	sigHUP  = syscall.SIGHUP  // reload config
	sigINT  = syscall.SIGINT  // temp-pause: escape with Super+Shift+Escape
)

func millisToDuration(ms DurationMillis) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
