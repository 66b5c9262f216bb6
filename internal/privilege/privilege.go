// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

// Package privilege implements the daemon's startup privilege gate
// (§4.2): swhkd needs root to open evdev devices exclusively and
// create a uinput device, and refuses to start without it. An invoking
// user who is in the "input" group can already read keyboards without
// root; that membership is reported as a security warning.
package privilege

import (
	"fmt"
	"os"
	"os/user"
)

// inputGroup is the conventional group Linux distributions use to
// grant unprivileged evdev access.
const inputGroup = "input"

// Logger is the minimal logging surface Check needs to report the
// required security warnings.
type Logger interface {
	Warning(format string, args ...interface{})
}

// Check verifies the process is running as root. If it isn't, and the
// original sudo invoker (SUDO_USER) is already a member of the input group,
// that's logged as a loud warning before Check still aborts — swhkd
// needs root for uinput, not just evdev access, so group membership
// alone is never sufficient. If privileged, Check logs a warning that
// privileged mode is active and lets startup continue.
func Check(log Logger) error {
	if os.Geteuid() != 0 {
		if invoker := invokingUser(); invoker != "" {
			if inGroup, err := userInGroup(invoker, inputGroup); err == nil && inGroup {
				log.Warning("user %q is a member of the %q group but swhkd still requires root", invoker, inputGroup)
			}
		}
		return fmt.Errorf("privilege: swhkd must be run as root")
	}

	log.Warning("running swhkd as root")
	return nil
}

// invokingUser returns the non-root user that invoked us through sudo,
// or "" if we can't tell (ran directly as root, pkexec, etc).
func invokingUser() string {
	return os.Getenv("SUDO_USER")
}

func userInGroup(username, groupName string) (bool, error) {
	u, err := user.Lookup(username)
	if err != nil {
		return false, fmt.Errorf("lookup user %q: %w", username, err)
	}
	group, err := user.LookupGroup(groupName)
	if err != nil {
		return false, fmt.Errorf("lookup group %q: %w", groupName, err)
	}
	gids, err := u.GroupIds()
	if err != nil {
		return false, fmt.Errorf("list groups for %q: %w", username, err)
	}
	for _, gid := range gids {
		if gid == group.Gid {
			return true, nil
		}
	}
	return false, nil
}
