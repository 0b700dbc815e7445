package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) && m.state == stateScanning {
			// Cooperative: the walk stops at its next checkpoint and
			// reports back through scanFinishedMsg.
			m.cancel()
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateScanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.coalescer.Stage(LabelResult, m.spinner.View()+" scanning")
		return m, cmd

	case flushMsg:
		m.coalescer.Flush(m.panel)
		if m.state != stateScanning {
			return m, nil
		}
		return m, flushTick(m.interval)

	case scanFinishedMsg:
		return m.finishScan(msg)
	}

	return m, nil
}

// finishScan stages the final panel state, drains it one last time and
// shuts the program down.
func (m Model) finishScan(msg scanFinishedMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		m.state = stateDone
		m.found = len(msg.found)
		m.coalescer.Stage(LabelScanning, "")
		m.coalescer.Stage(LabelFoundCount, strconv.Itoa(m.found))
		m.coalescer.Stage(LabelResult, fmt.Sprintf("Done. Found %s directories.", humanize.Comma(int64(m.found))))

	case errors.Is(msg.err, context.Canceled):
		m.state = stateCancelled
		m.err = msg.err
		m.coalescer.Stage(LabelResult, "Cancelled.")

	default:
		m.state = stateFailed
		m.err = msg.err
		m.coalescer.Stage(LabelResult, "Scan failed.")
	}

	m.coalescer.Flush(m.panel)
	m.panel.Finalize()
	return m, tea.Quit
}
