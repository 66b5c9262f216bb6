// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

package pidfile

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestAcquireThenRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swhkd.pid")
	p := New(path)

	if err := p.Acquire(); err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strconv.Itoa(os.Getpid()) != string(data) {
		t.Fatalf("pid file contents = %q, want %q", data, strconv.Itoa(os.Getpid()))
	}

	if err := p.Release(); err != nil {
		t.Fatalf("Release() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected pid file to be removed after Release")
	}
}

func TestAcquireRejectsLiveInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swhkd.pid")
	p := New(path)

	if err := p.Acquire(); err != nil {
		t.Fatalf("first Acquire() error: %v", err)
	}
	defer p.Release()

	// Our own test process's PID is still in the file and still running
	// the same executable, so a second Acquire must refuse.
	if err := New(path).Acquire(); err == nil {
		t.Fatal("expected second Acquire on a live PID file to fail")
	}
}

func TestAcquireOverwritesStalePID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swhkd.pid")
	// A PID unlikely to correspond to a running process, let alone this
	// test binary's executable.
	if err := os.WriteFile(path, []byte("999999"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := New(path)
	if err := p.Acquire(); err != nil {
		t.Fatalf("Acquire() over a stale pid file should succeed: %v", err)
	}
	defer p.Release()

	data, _ := os.ReadFile(path)
	if string(data) != strconv.Itoa(os.Getpid()) {
		t.Fatalf("pid file should now hold our own pid, got %q", data)
	}
}

func TestAcquireOverwritesCorruptPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swhkd.pid")
	if err := os.WriteFile(path, []byte("not-a-number"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := New(path)
	if err := p.Acquire(); err != nil {
		t.Fatalf("Acquire() over a corrupt pid file should succeed: %v", err)
	}
	defer p.Release()
}

func TestReleaseWithoutAcquireIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swhkd.pid")
	p := New(path)
	if err := p.Release(); err != nil {
		t.Fatalf("Release() on a nonexistent file should be a no-op, got: %v", err)
	}
}
