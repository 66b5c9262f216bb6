// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

// Package pidfile implements the daemon's single-instance guard
// (§4.1): an ASCII-decimal PID written to a well-known path, checked
// against the currently running process table (not just "does this
// PID exist", but "does this PID's executable match ours") so a
// recycled PID belonging to an unrelated process is never mistaken
// for a live daemon.
package pidfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// DefaultPath is the daemon's fixed PID file location, matching its
// fixed IPC socket path in spirit: a single well-known location rather
// than something derived from XDG state that could vary run to run.
const DefaultPath = "/tmp/swhkd.pid"

// PIDFile guards a single daemon instance at path.
type PIDFile struct {
	path string
}

// New builds a PIDFile at path.
func New(path string) *PIDFile {
	return &PIDFile{path: path}
}

// Acquire checks for a live instance and, finding none, writes the
// current process's PID to the file. A live instance is defined as: a
// PID parses out of the file, a process with that PID currently
// exists, and that process's executable path matches our own (§4.1).
func (p *PIDFile) Acquire() error {
	running, pid, err := p.checkExisting()
	if err != nil {
		return fmt.Errorf("pidfile: check existing instance: %w", err)
	}
	if running {
		return fmt.Errorf("pidfile: another instance is already running (pid %d)", pid)
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("pidfile: create directory: %w", err)
	}
	if err := os.WriteFile(p.path, []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return fmt.Errorf("pidfile: write: %w", err)
	}
	return nil
}

// Release removes the PID file. Best-effort: a missing file is not an
// error.
func (p *PIDFile) Release() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("pidfile: remove: %w", err)
	}
	return nil
}

func (p *PIDFile) checkExisting() (running bool, pid int, err error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}

	pid, convErr := strconv.Atoi(strings.TrimSpace(string(data)))
	if convErr != nil {
		// Corrupt PID file: treat as stale, not as a running instance.
		return false, 0, nil
	}

	if !p.isOurExecutable(pid) {
		return false, pid, nil
	}
	return true, pid, nil
}

// isOurExecutable reports whether pid both exists and runs the same
// executable as the calling process.
func (p *PIDFile) isOurExecutable(pid int) bool {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return false
	}
	exe, err := proc.Exe()
	if err != nil {
		return false
	}
	self, err := os.Executable()
	if err != nil {
		return false
	}
	return exe == self
}
