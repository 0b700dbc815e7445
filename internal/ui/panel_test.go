package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		align Alignment
		want  string
	}{
		{name: "left pads right", text: "abc", width: 5, align: AlignLeft, want: "abc  "},
		{name: "right pads left", text: "abc", width: 5, align: AlignRight, want: "  abc"},
		{name: "center splits evenly", text: "ab", width: 6, align: AlignCenter, want: "  ab  "},
		{name: "center odd space goes right", text: "abc", width: 6, align: AlignCenter, want: " abc  "},
		{name: "exact fit", text: "abc", width: 3, align: AlignLeft, want: "abc"},
		{name: "truncates left", text: "abcdef", width: 4, align: AlignLeft, want: "abcd"},
		{name: "truncates right", text: "abcdef", width: 4, align: AlignRight, want: "abcd"},
		{name: "truncates center", text: "abcdef", width: 4, align: AlignCenter, want: "abcd"},
		{name: "empty text", text: "", width: 3, align: AlignCenter, want: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatCell(tt.text, tt.width, tt.align)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.width, runewidth.StringWidth(got), "formatted cell must be exactly the cell width")
		})
	}
}

func testPanel(t *testing.T) *Panel {
	t.Helper()
	p := NewPanel()
	require.NoError(t, p.Register(Cell{Label: LabelHeader, Row: 0, Width: 20, Align: AlignCenter}))
	require.NoError(t, p.Register(Cell{Label: LabelScanning, Row: 1, Width: 20, Align: AlignLeft}))
	require.NoError(t, p.Register(Cell{Label: LabelFoundCount, Row: 2, Col: 0, Width: 5, Align: AlignRight}))
	require.NoError(t, p.Register(Cell{Label: LabelResult, Row: 2, Col: 1, Width: 14, Align: AlignLeft}))
	require.NoError(t, p.Init())
	return p
}

func TestPanelViewGeometry(t *testing.T) {
	p := testPanel(t)
	p.ApplyBatch(map[Label]string{
		LabelHeader:     "Scan",
		LabelScanning:   "/tmp/x",
		LabelFoundCount: "42",
		LabelResult:     "working",
	})

	lines := strings.Split(p.View(), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		assert.Equal(t, 20, len(line), "line %d must keep the panel width", i)
	}

	assert.Equal(t, "        Scan        ", lines[0])
	assert.Equal(t, "/tmp/x              ", lines[1])
	assert.Equal(t, "   42 working       ", lines[2])
}

func TestPanelRegisterErrors(t *testing.T) {
	p := NewPanel()
	require.NoError(t, p.Register(Cell{Label: LabelHeader, Row: 0, Width: 10}))

	assert.Error(t, p.Register(Cell{Label: LabelHeader, Row: 0, Width: 10}), "duplicate label")
	assert.Error(t, p.Register(Cell{Label: LabelResult, Row: 0, Width: 0}), "zero width")

	require.NoError(t, p.Init())
	assert.Error(t, p.Register(Cell{Label: LabelResult, Row: 1, Width: 10}), "register after init")
	assert.Error(t, p.Init(), "double init")
}

func TestPanelInitWithoutCells(t *testing.T) {
	assert.Error(t, NewPanel().Init())
}

func TestPanelApplyBeforeInitIsNoop(t *testing.T) {
	p := NewPanel()
	require.NoError(t, p.Register(Cell{Label: LabelHeader, Row: 0, Width: 4}))

	p.ApplyBatch(map[Label]string{LabelHeader: "hi"})
	assert.Equal(t, "", p.View())

	require.NoError(t, p.Init())
	assert.Equal(t, "    ", p.View())
}

func TestPanelIgnoresUnknownLabel(t *testing.T) {
	p := NewPanel()
	require.NoError(t, p.Register(Cell{Label: LabelHeader, Row: 0, Width: 4}))
	require.NoError(t, p.Init())

	assert.NotPanics(t, func() {
		p.ApplyBatch(map[Label]string{LabelResult: "x"})
	})
	assert.Equal(t, "    ", p.View())
}

func TestPanelFinalizedIsNoop(t *testing.T) {
	p := testPanel(t)
	p.ApplyBatch(map[Label]string{LabelResult: "done"})
	before := p.View()

	p.Finalize()
	assert.NotPanics(t, func() {
		p.ApplyBatch(map[Label]string{LabelResult: "changed"})
	})
	assert.Equal(t, before, p.View(), "finalized panel keeps its last rendered state")

	// Finalize is idempotent.
	p.Finalize()
	assert.Equal(t, before, p.View())
}
