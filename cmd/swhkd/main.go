// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

// Command swhkd is a privileged Wayland/X11-agnostic hotkey daemon: it
// grabs keyboard devices exclusively, matches held key combinations
// against a configured binding table, dispatches fired bindings to an
// unprivileged companion process, and forwards everything else through
// a synthetic uinput device unchanged.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/AshBuk/swhkd-go/hotkey"
	"github.com/AshBuk/swhkd-go/internal/config"
	"github.com/AshBuk/swhkd-go/internal/device"
	"github.com/AshBuk/swhkd-go/internal/ipc"
	"github.com/AshBuk/swhkd-go/internal/logger"
	"github.com/AshBuk/swhkd-go/internal/pidfile"
	"github.com/AshBuk/swhkd-go/internal/privilege"
	"github.com/AshBuk/swhkd-go/internal/virtualout"
)

type options struct {
	Config   string `short:"c" long:"config" description:"path to the swhkdrc config file"`
	Cooldown int64  `short:"C" long:"cooldown" description:"hotkey repeat cooldown in milliseconds" default:"250"`
	Debug    bool   `short:"d" long:"debug" description:"enable debug logging"`
	Socket   string `short:"s" long:"socket" description:"path to the companion IPC socket" default:"/tmp/swhkd.sock"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 1
	}

	level := logger.InfoLevel
	if opts.Debug {
		level = logger.DebugLevel
	}
	log, err := logger.Configure(logger.Config{Level: level})
	if err != nil {
		fmt.Fprintf(os.Stderr, "swhkd: failed to configure logger: %v\n", err)
		return 1
	}

	if err := privilege.Check(log); err != nil {
		log.Error("privilege check failed: %v", err)
		return 1
	}

	pf := pidfile.New(pidfile.DefaultPath)
	if err := pf.Acquire(); err != nil {
		log.Error("%v", err)
		return 1
	}
	defer func() {
		if err := pf.Release(); err != nil {
			log.Warning("failed to release pid file: %v", err)
		}
	}()

	configPath := config.ResolvePath(opts.Config)
	hotkeys, err := config.Load(configPath)
	if err != nil {
		log.Error("failed to load config %s: %v", configPath, err)
		return 1
	}
	log.Info("loaded %d bindings from %s", len(hotkeys), configPath)

	output, err := virtualout.New()
	if err != nil {
		log.Error("failed to create virtual output device: %v", err)
		return 1
	}
	defer func() {
		if err := output.Close(); err != nil {
			log.Warning("failed to close virtual output: %v", err)
		}
	}()

	client := ipc.NewClient(opts.Socket, 2*time.Second)

	signals := make(chan os.Signal, 8)
	signal.Notify(signals,
		syscall.SIGUSR1, syscall.SIGUSR2, syscall.SIGHUP,
		syscall.SIGINT, syscall.SIGTERM,
	)

	engine := hotkey.NewEngine(hotkey.Config{
		Table:      hotkey.NewTable(hotkeys),
		Cooldown:   opts.Cooldown,
		Dispatcher: client,
		Output:     output,
		Logger:     log,
		Enumerate:  device.Enumerate,
		Reload:     config.Reloader(configPath),
		Signals:    signals,
	})

	if err := engine.Start(); err != nil {
		log.Error("failed to start: %v", err)
		return 1
	}

	if err := engine.Run(); err != nil {
		log.Error("fatal: %v", err)
		return 1
	}

	return 0
}
