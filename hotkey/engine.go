// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

package hotkey

import (
	"fmt"
	"os"
)

// Device is the narrow interface the engine needs from a grabbed
// keyboard. Concrete implementations wrap an evdev character device;
// see internal/device for the production implementation built on
// gvalkov/golang-evdev.
type Device interface {
	// Name is the device's reported name, used only for log messages.
	Name() string
	// ReadEvent blocks for the next EV_KEY event. Non-key events are
	// filtered out by the implementation before they reach here.
	ReadEvent() (RawEvent, error)
	// Grab acquires exclusive access and disables kernel auto-repeat.
	Grab() error
	// Ungrab releases exclusive access.
	Ungrab() error
	// Close releases the underlying file descriptor.
	Close() error
}

// VirtualOutput is the narrow interface to the synthetic uinput
// keyboard that non-hotkey events are forwarded to (§4.4). Emit must
// never fail silently: an error here is RuntimeFatal, since it means
// userland stops receiving keystrokes.
type VirtualOutput interface {
	Emit(events []RawEvent) error
}

// CommandDispatcher delivers a fired hotkey's command to the
// unprivileged companion process. A dispatch failure is
// RuntimeRecoverable: logged, never retried, never blocks the loop.
type CommandDispatcher interface {
	Dispatch(command string) error
}

// Logger is the minimal logging surface the engine needs. Any logger
// whose methods match this shape — including *logger.DefaultLogger from
// internal/logger — satisfies it structurally.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DeviceEnumerator discovers the current set of keyboard devices. It is
// called once at startup and again on every SIGUSR1/SIGUSR2 (§4.3) so
// hotplugged keyboards are picked up on resume.
type DeviceEnumerator func() ([]Device, error)

// ConfigReloader re-parses the hotkey config file for SIGHUP. A
// returned error leaves the prior Table untouched (§4.9, §7).
type ConfigReloader func() ([]Hotkey, error)

// deviceEvent tags a RawEvent (or terminal read error) with the
// generation and index of the device it came from, so events from
// devices retired by a pause/resume re-enumeration are discarded
// rather than applied to a stale State.
type deviceEvent struct {
	generation int
	index      int
	event      RawEvent
	err        error
}

// Engine is the single-threaded cooperative multiplexer of §4.10: one
// goroutine (Run's caller) consumes a fan-in channel fed by N device
// reader goroutines, a signal channel, and the repeat timer, and is
// the only goroutine that ever touches KeyboardStates, LastHotkey,
// RunModes or the HotkeyTable it reads from. That single-writer
// discipline is what lets the rest of the package go lock-free.
type Engine struct {
	modifiers  ModifierMap
	table      *Table
	matcher    *Matcher
	repeat     *RepeatEngine
	dispatcher CommandDispatcher
	output     VirtualOutput
	logger     Logger
	enumerate  DeviceEnumerator
	reload     ConfigReloader
	signals    <-chan os.Signal

	devices []Device
	states  []*State

	generation int
	events     chan deviceEvent

	paused     bool
	tempPaused bool
	lastHotkey *Hotkey
}

// Config bundles an Engine's collaborators.
type Config struct {
	Modifiers  ModifierMap
	Table      *Table
	Cooldown   DurationMillis
	Dispatcher CommandDispatcher
	Output     VirtualOutput
	Logger     Logger
	Enumerate  DeviceEnumerator
	Reload     ConfigReloader
	Signals    <-chan os.Signal
}

// DurationMillis exists only so callers building a Config don't need
// to import "time" just to express a cooldown.
type DurationMillis = int64

// NewEngine constructs an Engine. It does not touch any device until
// Start is called; Start enumerates and grabs the keyboards and must
// precede Run.
func NewEngine(cfg Config) *Engine {
	mods := cfg.Modifiers
	if mods == nil {
		mods = DefaultModifierMap()
	}
	return &Engine{
		modifiers:  mods,
		table:      cfg.Table,
		matcher:    NewMatcher(cfg.Table),
		repeat:     NewRepeatEngine(millisToDuration(cfg.Cooldown)),
		dispatcher: cfg.Dispatcher,
		output:     cfg.Output,
		logger:     cfg.Logger,
		enumerate:  cfg.Enumerate,
		reload:     cfg.Reload,
		signals:    cfg.Signals,
		events:     make(chan deviceEvent, 64),
	}
}

// Start performs the initial device enumeration and grab (§4.3, §4.5).
// It is StartupFatal for zero keyboards to be found.
func (e *Engine) Start() error {
	devices, err := e.enumerate()
	if err != nil {
		return fmt.Errorf("enumerate keyboard devices: %w", err)
	}
	if len(devices) == 0 {
		return fmt.Errorf("no keyboard devices found")
	}
	e.installDevices(devices, true)
	e.logger.Info("grabbed %d keyboard device(s)", len(devices))
	return nil
}

// Run drives the event loop until a terminating signal or a fatal
// error occurs. On return, all currently-held devices have been
// ungrabbed (best-effort, per §4.10/§7).
func (e *Engine) Run() error {
	defer e.ungrabCurrent()

	for {
		select {
		case sig, ok := <-e.signals:
			if !ok {
				return nil
			}
			fatal, err := e.handleSignal(sig)
			if fatal {
				return err
			}

		case <-e.repeat.C():
			e.handleRepeatTick()

		case de := <-e.events:
			if de.generation != e.generation {
				continue // stale: device was retired by a reacquire
			}
			if de.err != nil {
				e.logger.Warning("device %q read ended: %v", e.deviceName(de.index), de.err)
				continue
			}
			if err := e.handleDeviceEvent(de.index, de.event); err != nil {
				return err
			}
		}
	}
}

func (e *Engine) deviceName(idx int) string {
	if idx < 0 || idx >= len(e.devices) || e.devices[idx] == nil {
		return "unknown"
	}
	return e.devices[idx].Name()
}

// handleDeviceEvent applies one EV_KEY event through the state tracker
// and matcher, and carries out the resulting side effects (§4.6, §4.7).
func (e *Engine) handleDeviceEvent(idx int, ev RawEvent) error {
	if ev.Value != Press && ev.Value != Release {
		return nil // Ignored: kernel auto-repeat (value 2).
	}

	state := e.states[idx]
	if state.Apply(ev, e.modifiers, e.lastHotkey) {
		e.lastHotkey = nil
		e.repeat.Stop()
	}

	result := e.matcher.Match(ev, state, e.paused, e.tempPaused, e.lastHotkey)

	if result.Passthrough {
		if err := e.output.Emit([]RawEvent{ev}); err != nil {
			return fmt.Errorf("virtual output emit failed: %w", err)
		}
	}
	if result.ClearsTempPause {
		e.tempPaused = false
		e.logger.Info("temp-pause escape combo observed, resuming hotkey matching")
	}
	if result.Fired != nil {
		e.lastHotkey = result.Fired
		e.dispatch(*result.Fired)
		e.repeat.Arm()
	}
	return nil
}

func (e *Engine) handleRepeatTick() {
	if e.lastHotkey == nil {
		// Can happen if Stop's drain raced a tick already in transit;
		// harmless, the arm/stop bookkeeping in repeat.go prevents
		// this in practice but the check costs nothing.
		return
	}
	e.dispatch(*e.lastHotkey)
	e.repeat.Arm()
}

func (e *Engine) dispatch(h Hotkey) {
	e.logger.Info("hotkey fired: %s", h.Command)
	if err := e.dispatcher.Dispatch(h.Command); err != nil {
		e.logger.Error("ipc dispatch failed (is the companion running?): %v", err)
	}
}

// handleSignal maps one received signal to a lifecycle transition
// (§4.9). fatal is true for any signal not explicitly listed there;
// by policy every such signal is RuntimeFatal.
func (e *Engine) handleSignal(sig os.Signal) (fatal bool, err error) {
	switch sig {
	case sigUSR1:
		e.paused = true
		e.logger.Info("paused (SIGUSR1): ungrabbing keyboards")
		e.reacquireDevices(false)
	case sigUSR2:
		e.paused = false
		e.logger.Info("resumed (SIGUSR2): re-grabbing keyboards")
		e.reacquireDevices(true)
	case sigHUP:
		e.handleReload()
	case sigINT:
		e.tempPaused = true
		e.logger.Info("temp-paused (SIGINT): escape with Super+Shift+Escape")
	default:
		e.logger.Warning("got terminating signal: %v", sig)
		return true, fmt.Errorf("terminating signal: %v", sig)
	}
	return false, nil
}

func (e *Engine) handleReload() {
	hotkeys, err := e.reload()
	if err != nil {
		e.logger.Error("config reload failed, keeping previous table: %v", err)
		return
	}
	e.table.Replace(hotkeys)
	e.logger.Info("config reloaded: %d hotkey(s)", len(hotkeys))
}

// reacquireDevices ungrabs/closes the current device set, bumps the
// generation counter so in-flight events from the old set are
// discarded, and re-enumerates. grab requests that each freshly
// enumerated device be grabbed immediately (resume); false just
// installs fresh device handles without grabbing (pause — the
// point is to observe the up-to-date device set while the daemon is
// not exclusively holding any of it).
func (e *Engine) reacquireDevices(grab bool) {
	e.ungrabCurrent()
	e.generation++

	devices, err := e.enumerate()
	if err != nil {
		e.logger.Error("re-enumerate keyboard devices: %v", err)
		e.devices = nil
		e.states = nil
		return
	}
	e.installDevices(devices, grab)
}

func (e *Engine) installDevices(devices []Device, grab bool) {
	e.devices = devices
	e.states = make([]*State, len(devices))
	gen := e.generation

	for i, d := range devices {
		e.states[i] = NewState()
		if grab {
			if err := d.Grab(); err != nil {
				e.logger.Error("grab %q failed (continuing ungrabbed): %v", d.Name(), err)
			}
		}
		go e.readLoop(gen, i, d)
	}
}

func (e *Engine) readLoop(gen, idx int, dev Device) {
	for {
		ev, err := dev.ReadEvent()
		if err != nil {
			e.events <- deviceEvent{generation: gen, index: idx, err: err}
			return
		}
		e.events <- deviceEvent{generation: gen, index: idx, event: ev}
	}
}

func (e *Engine) ungrabCurrent() {
	for _, d := range e.devices {
		if d == nil {
			continue
		}
		if err := d.Ungrab(); err != nil {
			e.logger.Warning("ungrab %q failed: %v", d.Name(), err)
		}
		if err := d.Close(); err != nil {
			e.logger.Warning("close %q failed: %v", d.Name(), err)
		}
	}
}
