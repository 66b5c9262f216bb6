// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

// Package device implements the daemon's evdev keyboard source: device
// enumeration and filtering (§4.3), and exclusive grab with kernel
// auto-repeat disabled (§4.5). It is the only package that imports
// github.com/gvalkov/golang-evdev; everything downstream consumes the
// narrow hotkey.Device interface.
package device

import (
	"fmt"
	"unsafe"

	"github.com/gvalkov/golang-evdev"
	"golang.org/x/sys/unix"

	"github.com/AshBuk/swhkd-go/hotkey"
)

// VirtualOutputName is excluded from enumeration so the daemon never
// grabs its own synthetic keyboard (§4.3, §4.4).
const VirtualOutputName = "swhkd virtual output"

// Enumerate lists every /dev/input/event* node that looks like a
// keyboard: it supports KEY_ENTER and isn't the virtual output device.
// It satisfies hotkey.DeviceEnumerator.
func Enumerate() ([]hotkey.Device, error) {
	found, err := evdev.ListInputDevices("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("device: list input devices: %w", err)
	}

	devices := make([]hotkey.Device, 0, len(found))
	for _, d := range found {
		if !looksLikeKeyboard(d) {
			continue
		}
		devices = append(devices, &evdevDevice{dev: d})
	}
	return devices, nil
}

func looksLikeKeyboard(d *evdev.InputDevice) bool {
	if d.Name == VirtualOutputName {
		return false
	}
	keys, ok := d.CapabilitiesFlat[evdev.EV_KEY]
	if !ok {
		return false
	}
	for _, code := range keys {
		if code == evdev.KEY_ENTER {
			return true
		}
	}
	return false
}

// evdevDevice adapts *evdev.InputDevice to hotkey.Device.
type evdevDevice struct {
	dev     *evdev.InputDevice
	pending []evdev.InputEvent
}

func (d *evdevDevice) Name() string { return d.dev.Name }

// ReadEvent blocks until the next EV_KEY event, silently skipping any
// other event type (EV_SYN, EV_MSC, etc) the kernel interleaves in.
func (d *evdevDevice) ReadEvent() (hotkey.RawEvent, error) {
	for {
		if len(d.pending) > 0 {
			ev := d.pending[0]
			d.pending = d.pending[1:]
			if ev.Type == evdev.EV_KEY {
				return hotkey.RawEvent{Code: hotkey.KeyCode(ev.Code), Value: hotkey.EventValue(ev.Value)}, nil
			}
			continue
		}

		events, err := d.dev.Read()
		if err != nil {
			return hotkey.RawEvent{}, fmt.Errorf("device %q: read: %w", d.dev.Name, err)
		}
		d.pending = events
	}
}

// Grab acquires exclusive access and disables kernel auto-repeat, so
// the daemon's software Repeat Engine is the only source of repetition
// (§4.5, §4.8).
func (d *evdevDevice) Grab() error {
	if err := d.dev.Grab(); err != nil {
		return fmt.Errorf("device %q: grab: %w", d.dev.Name, err)
	}
	if err := disableAutoRepeat(d.dev.File.Fd()); err != nil {
		return fmt.Errorf("device %q: disable auto-repeat: %w", d.dev.Name, err)
	}
	return nil
}

func (d *evdevDevice) Ungrab() error {
	d.dev.Release()
	return nil
}

func (d *evdevDevice) Close() error {
	return d.dev.File.Close()
}

// eviocSetRepeat is EVIOCSREP, the standard Linux ioctl request code
// for setting a device's kernel auto-repeat (delay, period) in
// milliseconds: _IOW('E', 0x03, int[2]).
const eviocSetRepeat = 0x40084503

// disableAutoRepeat sets both delay and period to zero, which the
// kernel's evdev layer treats as "no auto-repeat" rather than
// "repeat immediately forever".
func disableAutoRepeat(fd uintptr) error {
	rep := [2]int32{0, 0}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, eviocSetRepeat, uintptr(unsafe.Pointer(&rep)))
	if errno != 0 {
		return errno
	}
	return nil
}
