package ui

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

// Label identifies one cell of the status panel.
type Label int

const (
	LabelHeader Label = iota
	LabelScanning
	LabelFoundCount
	LabelResult
)

// Alignment controls how cell text is padded to the cell width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Cell is one fixed slot in the panel. Geometry is set at registration
// and never changes; only the text does.
type Cell struct {
	Label Label
	Row   int
	Col   int
	Width int
	Align Alignment
}

type panelState int

const (
	stateRegistering panelState = iota
	stateInitialized
	stateFinalized
)

type panelCell struct {
	Cell
	text string
}

// Panel renders a fixed set of labeled cells as fixed-width rows.
// The lock covers both text mutation and rendering, so a batch is
// never observed half applied.
type Panel struct {
	mu    sync.Mutex
	state panelState
	cells map[Label]*panelCell
	rows  [][]*panelCell
}

// NewPanel creates an empty panel awaiting cell registration.
func NewPanel() *Panel {
	return &Panel{cells: make(map[Label]*panelCell)}
}

// Register adds a cell. All cells must be registered before Init.
func (p *Panel) Register(c Cell) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != stateRegistering {
		return fmt.Errorf("panel: register after init")
	}
	if c.Width <= 0 {
		return fmt.Errorf("panel: cell width must be positive, got %d", c.Width)
	}
	if _, ok := p.cells[c.Label]; ok {
		return fmt.Errorf("panel: label %d already registered", c.Label)
	}
	p.cells[c.Label] = &panelCell{Cell: c}
	return nil
}

// Init freezes the cell set and arranges it into rows. After Init the
// panel accepts batches until it is finalized.
func (p *Panel) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != stateRegistering {
		return fmt.Errorf("panel: already initialized")
	}
	if len(p.cells) == 0 {
		return fmt.Errorf("panel: no cells registered")
	}

	byRow := make(map[int][]*panelCell)
	rowIdx := make([]int, 0, len(p.cells))
	for _, cell := range p.cells {
		if _, ok := byRow[cell.Row]; !ok {
			rowIdx = append(rowIdx, cell.Row)
		}
		byRow[cell.Row] = append(byRow[cell.Row], cell)
	}
	sort.Ints(rowIdx)

	p.rows = make([][]*panelCell, 0, len(rowIdx))
	for _, r := range rowIdx {
		row := byRow[r]
		sort.Slice(row, func(i, j int) bool { return row[i].Col < row[j].Col })
		p.rows = append(p.rows, row)
	}

	p.state = stateInitialized
	return nil
}

// ApplyBatch sets the text of every matching cell in one pass. Updates
// for unregistered labels are ignored, and a finalized panel ignores
// the whole batch.
func (p *Panel) ApplyBatch(updates map[Label]string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != stateInitialized {
		return
	}
	for label, text := range updates {
		if cell, ok := p.cells[label]; ok {
			cell.text = text
		}
	}
}

// Finalize stops the panel from accepting further updates.
func (p *Panel) Finalize() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = stateFinalized
}

// View renders all rows, one line per row, cells joined by a single
// space. Every line has the same width on every render.
func (p *Panel) View() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == stateRegistering {
		return ""
	}

	lines := make([]string, 0, len(p.rows))
	for _, row := range p.rows {
		parts := make([]string, 0, len(row))
		for _, cell := range row {
			parts = append(parts, formatCell(cell.text, cell.Width, cell.Align))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

// formatCell fits text to exactly width columns: longer text is
// truncated, shorter text is padded per the alignment. A centered
// cell puts the odd leftover space on the right.
func formatCell(text string, width int, align Alignment) string {
	text = runewidth.Truncate(text, width, "")
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + text
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}
