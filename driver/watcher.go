package driver

import (
	"context"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"go-midiwire/debug"
)

// WatchEvent is emitted when a watched port appears or disappears.
type WatchEvent struct {
	Type      WatchEventType
	Transport *PortTransport
	Name      string
}

type WatchEventType int

const (
	PortConnected WatchEventType = iota
	PortDisconnected
)

// Watcher handles hot-plug detection of a named MIDI port pair. It
// polls the system port list and opens a PortTransport when the
// watched name appears.
type Watcher struct {
	inName  string
	outName string

	mu        sync.RWMutex
	transport *PortTransport
	connected string

	events   chan WatchEvent
	pollRate time.Duration
}

// NewWatcher watches for ports matching the given name substrings.
func NewWatcher(inName, outName string) *Watcher {
	return &Watcher{
		inName:   inName,
		outName:  outName,
		events:   make(chan WatchEvent, 16),
		pollRate: time.Second,
	}
}

// Events returns a channel of connect/disconnect events.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Transport returns the currently connected transport, or nil.
func (w *Watcher) Transport() *PortTransport {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.transport
}

// Run starts the polling loop (blocking - run in goroutine)
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollRate)
	defer ticker.Stop()

	// Initial scan
	w.scan()

	for {
		select {
		case <-ctx.Done():
			w.disconnect()
			close(w.events)
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *Watcher) scan() {
	// Get the current MIDI ports with a timeout; some backends can
	// hang while devices settle.
	type portsResult struct {
		inPorts  []drivers.In
		outPorts []drivers.Out
	}

	ch := make(chan portsResult, 1)
	go func() {
		ch <- portsResult{inPorts: gomidi.GetInPorts(), outPorts: gomidi.GetOutPorts()}
	}()

	var inPorts []drivers.In
	var outPorts []drivers.Out

	select {
	case result := <-ch:
		inPorts = result.inPorts
		outPorts = result.outPorts
	case <-time.After(3 * time.Second):
		debug.Log("driver", "port scan timed out, skipping")
		return
	}

	var in drivers.In
	for i, p := range inPorts {
		if containsCI(p.String(), w.inName) {
			in = inPorts[i]
			break
		}
	}

	var out drivers.Out
	for i, p := range outPorts {
		if containsCI(p.String(), w.outName) {
			out = outPorts[i]
			break
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.transport != nil {
		if in != nil || out != nil {
			return
		}

		// Port disappeared.
		name := w.connected
		w.transport.Close()
		w.transport = nil
		w.connected = ""
		debug.Log("driver", "port disappeared: %s", name)
		w.events <- WatchEvent{Type: PortDisconnected, Name: name}
		return
	}

	if in == nil && out == nil {
		return
	}

	t, err := Open(in, out)
	if err != nil {
		debug.Log("driver", "open failed: %v", err)
		return
	}

	name := ""
	if in != nil {
		name = in.String()
	} else {
		name = out.String()
	}

	w.transport = t
	w.connected = name
	debug.Log("driver", "port connected: %s", name)
	w.events <- WatchEvent{Type: PortConnected, Transport: t, Name: name}
}

func (w *Watcher) disconnect() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.transport != nil {
		w.transport.Close()
		w.transport = nil
		w.connected = ""
	}
}
