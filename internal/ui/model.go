package ui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rahulvramesh/dirscan/internal/scanner"
)

const (
	panelWidth      = 80
	foundCountWidth = 5
	resultWidth     = panelWidth - foundCountWidth - 1
)

type sessionState int

const (
	stateScanning sessionState = iota
	stateDone
	stateCancelled
	stateFailed
)

// KeyMap holds the panel keybindings
type KeyMap struct {
	Cancel key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Cancel: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel the scan"),
		),
	}
}

// Model represents the application state
type Model struct {
	panel     *Panel
	coalescer *Coalescer
	scanner   *scanner.Scanner
	spinner   spinner.Model
	keys      KeyMap
	interval  time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	state sessionState
	found int
	err   error
}

// NewModel wires the panel, coalescer and scanner for one run. The
// context cancels the scan; cancel is invoked when the user asks to
// stop.
func NewModel(ctx context.Context, cancel context.CancelFunc, sc *scanner.Scanner, root string, interval time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		panel:     newStatusPanel(),
		coalescer: NewCoalescer(),
		scanner:   sc,
		spinner:   s,
		keys:      defaultKeyMap(),
		interval:  interval,
		ctx:       ctx,
		cancel:    cancel,
		state:     stateScanning,
	}

	m.coalescer.Stage(LabelHeader, "Directory scan: "+root)
	m.coalescer.Stage(LabelScanning, root)
	m.coalescer.Stage(LabelFoundCount, strconv.Itoa(0))
	return m
}

// newStatusPanel builds the fixed three-row layout: a centered header,
// the directory currently being scanned, and a count/result row. The
// geometry is static, so registration cannot fail.
func newStatusPanel() *Panel {
	p := NewPanel()
	_ = p.Register(Cell{Label: LabelHeader, Row: 0, Width: panelWidth, Align: AlignCenter})
	_ = p.Register(Cell{Label: LabelScanning, Row: 1, Width: panelWidth, Align: AlignLeft})
	_ = p.Register(Cell{Label: LabelFoundCount, Row: 2, Col: 0, Width: foundCountWidth, Align: AlignRight})
	_ = p.Register(Cell{Label: LabelResult, Row: 2, Col: 1, Width: resultWidth, Align: AlignLeft})
	_ = p.Init()
	return p
}

// Init starts the spinner, the refresh tick and the scan itself.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		flushTick(m.interval),
		m.startScan(),
	)
}

// Err reports how the scan ended; nil means success.
func (m Model) Err() error { return m.err }

// Found returns the number of directories a successful scan counted.
func (m Model) Found() int { return m.found }
