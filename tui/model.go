// Package tui renders the live MIDI monitor: incoming messages and the
// port statistics of the attached transport.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-midiwire/clock"
	"go-midiwire/driver"
	"go-midiwire/note"
	"go-midiwire/packet"
	"go-midiwire/port"
	"go-midiwire/transport"
)

const maxLogLines = 16

// Monitor owns the port and the event log. It is mutated only from the
// Update loop; dispatch runs synchronously on the poll tick.
type Monitor struct {
	Port  *port.Port
	Clock clock.Clock

	lines []string
}

// NewMonitor wires a port to the log.
func NewMonitor(sysexSize int) *Monitor {
	m := &Monitor{}
	m.Port = port.New(0, sysexSize, port.Handler{
		Note: func(channel, key, velocity uint8) {
			m.logf("note on   ch=%-2d %-4s vel=%d", channel, note.Name(key), velocity)
		},
		NoteOff: func(channel, key, velocity uint8) {
			m.logf("note off  ch=%-2d %-4s vel=%d", channel, note.Name(key), velocity)
		},
		Aftertouch: func(channel, key, pressure uint8) {
			m.logf("aftertouch ch=%-2d %-4s p=%d", channel, note.Name(key), pressure)
		},
		ControlChange: func(channel, controller, value uint8) {
			m.logf("control   ch=%-2d cc=%-3d val=%d", channel, controller, value)
		},
		ProgramChange: func(channel, value uint8) {
			m.logf("program   ch=%-2d %d", channel, value)
		},
		AftertouchChannel: func(channel, pressure uint8) {
			m.logf("pressure  ch=%-2d %d", channel, pressure)
		},
		PitchBend: func(channel uint8, value int16) {
			m.logf("pitchbend ch=%-2d %+d", channel, value)
		},
		SongPosition: func(beats uint16) {
			m.logf("song position %d", beats)
			m.Clock.SetBeat(uint32(beats))
		},
		SongSelect: func(number uint8) {
			m.logf("song select %d", number)
		},
		Clock: func(event clock.Event) {
			m.Clock.Update(event)
			if event != clock.Tick {
				m.logf("clock %v", event)
			}
		},
		SystemExclusive: func(t transport.Transport, data []byte) {
			m.logf("sysex     %d bytes", len(data))
		},
		SystemReset: func() {
			m.logf("system reset")
		},
	})
	return m
}

func (m *Monitor) logf(format string, args ...any) {
	m.lines = append(m.lines, fmt.Sprintf(format, args...))
	if len(m.lines) > maxLogLines {
		m.lines = m.lines[len(m.lines)-maxLogLines:]
	}
}

// Poll drains the transport through the port.
func (m *Monitor) Poll(t transport.Transport) {
	if t == nil {
		return
	}

	var p packet.Packet
	for t.Receive(&p) {
		m.Port.Dispatch(t, &p)
	}
}

type Model struct {
	Monitor  *Monitor
	Watcher  *driver.Watcher
	portName string
	quitting bool
}

type pollMsg struct{}

type watchMsg driver.WatchEvent

func NewModel(monitor *Monitor, watcher *driver.Watcher) Model {
	return Model{
		Monitor: monitor,
		Watcher: watcher,
	}
}

func pollTick() tea.Cmd {
	return tea.Tick(5*time.Millisecond, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func listenForPorts(watcher *driver.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-watcher.Events()
		if !ok {
			return nil
		}
		return watchMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(pollTick(), listenForPorts(m.Watcher))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "r":
			m.Monitor.Port.ResetSystemExclusive()
			m.Monitor.Clock.Reset()
		}

	case pollMsg:
		m.Monitor.Poll(m.Watcher.Transport())
		return m, pollTick()

	case watchMsg:
		if msg.Type == driver.PortConnected {
			m.portName = msg.Name
		} else {
			m.portName = ""
		}
		return m, listenForPorts(m.Watcher)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	status := "waiting for port..."
	if m.portName != "" {
		status = m.portName
	}

	header := headerStyle.Render(fmt.Sprintf("midimon  %s  quarter:%d", status, m.Monitor.Clock.Quarter()))

	stats := m.Monitor.Port.Statistics()
	in := stats.Input
	counters := dimStyle.Render(fmt.Sprintf(
		"packets:%d  notes:%d/%d  cc:%d  prog:%d  bend:%d  ticks:%d  sysex:%d  reset:%d",
		in.Packet, in.Note, in.NoteOff, in.Control, in.Program, in.Pitchbend,
		in.System.Clock.Tick, in.System.Exclusive, in.System.Reset))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	for _, line := range m.Monitor.lines {
		out.WriteString("  ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	out.WriteString("\n")
	out.WriteString(counters)
	out.WriteString("\n\n")
	out.WriteString(dimStyle.Render("r:reset  q:quit"))

	return out.String()
}
