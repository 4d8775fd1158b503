package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-midiwire/config"
	"go-midiwire/debug"
	"go-midiwire/driver"
	"go-midiwire/tui"
)

func main() {
	list := flag.Bool("list", false, "list MIDI ports and exit")
	inName := flag.String("in", "", "input port name (substring match)")
	outName := flag.String("out", "", "output port name (substring match)")
	verbose := flag.Bool("debug", false, "write a debug log")
	flag.Parse()

	if *list {
		listPorts()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if *inName == "" {
		*inName = cfg.Ports.Input
	}
	if *outName == "" {
		*outName = cfg.Ports.Output
	}

	if *verbose || cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	monitor := tui.NewMonitor(cfg.SysExSize)
	watcher := driver.NewWatcher(*inName, *outName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)

	p := tea.NewProgram(tui.NewModel(monitor, watcher))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "midimon: %v\n", err)
		os.Exit(1)
	}
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	for i, name := range driver.InPortNames() {
		fmt.Printf("  %d: %s\n", i, name)
	}

	fmt.Println("\n=== MIDI Output Ports ===")
	for i, name := range driver.OutPortNames() {
		fmt.Printf("  %d: %s\n", i, name)
	}
}
