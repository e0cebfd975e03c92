package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"Code", "Name"},
		[][]string{
			{"CS111", "Program Design I"},
			{"MATH180", "Calculus I"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4) // header, separator, two rows

	assert.Contains(t, lines[2], "CS111")
	assert.Contains(t, lines[3], "MATH180")

	// Both name columns start at the same visible offset.
	assert.Equal(t,
		strings.Index(lines[2], "Program"),
		strings.Index(lines[3], "Calculus"))
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTableShortRows(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"x"}})
	assert.Contains(t, out, "x")
}

func TestProgressBarBounds(t *testing.T) {
	assert.NotPanics(t, func() {
		ProgressBar(-5, 10)
		ProgressBar(0, 10)
		ProgressBar(50, 10)
		ProgressBar(150, 10)
	})

	full := ProgressBar(100, 4)
	assert.Equal(t, 4, strings.Count(full, "█"))
	assert.Zero(t, strings.Count(full, "░"))

	empty := ProgressBar(0, 4)
	assert.Equal(t, 4, strings.Count(empty, "░"))
}
