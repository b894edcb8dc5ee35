package render

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallbackStyles() *Styles {
	return NewStyles(FontPair{})
}

func sampleTable(rows int) Table {
	t := Table{
		Headers: []string{"date", "amount"},
		Widths:  []float64{40, 30},
		Aligns:  []string{"L", "R"},
	}
	for i := 0; i < rows; i++ {
		t.Rows = append(t.Rows, []string{fmt.Sprintf("2024-01-%02d", i%28+1), "1,000"})
	}
	return t
}

func TestDocOutput(t *testing.T) {
	doc := NewDoc(fallbackStyles())
	doc.Paragraph("Report", fallbackStyles().Title)
	doc.Spacer(5)
	doc.Table(sampleTable(3))

	out, err := doc.Output()
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestDocOutputDeterministic(t *testing.T) {
	build := func() []byte {
		doc := NewDoc(fallbackStyles())
		doc.Paragraph("Report", fallbackStyles().Title)
		doc.Table(sampleTable(5))
		out, err := doc.Output()
		require.NoError(t, err)
		return out
	}

	first := build()
	// Cross a wall-clock second so an unpinned document timestamp would
	// show up as a byte difference.
	time.Sleep(1100 * time.Millisecond)
	second := build()

	assert.Equal(t, first, second)
}

func TestTableEmptyRowsRendersBlankRow(t *testing.T) {
	withBlank := func() []byte {
		doc := NewDoc(fallbackStyles())
		doc.Table(Table{Headers: []string{"a", "b"}, Widths: []float64{30, 30}})
		out, err := doc.Output()
		require.NoError(t, err)
		return out
	}
	headerOnly := func() []byte {
		doc := NewDoc(fallbackStyles())
		doc.Table(Table{
			Headers: []string{"a", "b"},
			Widths:  []float64{30, 30},
			Rows:    [][]string{{"", ""}},
		})
		out, err := doc.Output()
		require.NoError(t, err)
		return out
	}

	// An empty row set draws the same grid as one explicit blank row.
	assert.Equal(t, headerOnly(), withBlank())
}

func TestTableOverflowAddsPages(t *testing.T) {
	doc := NewDoc(fallbackStyles())
	doc.Table(sampleTable(60))

	out, err := doc.Output()
	require.NoError(t, err)
	// One page holds roughly 25 rows at 7mm; 60 rows must paginate. A
	// single-page document contains "/Type /Page" twice.
	assert.Greater(t, bytes.Count(out, []byte("/Type /Page")), 2)
}

func TestPageBreak(t *testing.T) {
	doc := NewDoc(fallbackStyles())
	doc.Paragraph("first", fallbackStyles().Body)
	doc.PageBreak()
	doc.Paragraph("second", fallbackStyles().Body)

	out, err := doc.Output()
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count(out, []byte("/Type /Page")))
}
