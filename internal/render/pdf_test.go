package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintParamsZeroMargins(t *testing.T) {
	// The page estimate divides the measured height by the full paper
	// height, which is only sound when nothing shrinks the printable area.
	p := printParams(2132)
	assert.Zero(t, p.MarginTop)
	assert.Zero(t, p.MarginBottom)
	assert.Zero(t, p.MarginLeft)
	assert.Zero(t, p.MarginRight)
	assert.Equal(t, pdfPaperWidthIn, p.PaperWidth)
	assert.Equal(t, pdfPaperHeightIn, p.PaperHeight)
	assert.True(t, p.PrintBackground)
}

func TestPrintParamsPageRange(t *testing.T) {
	tests := []struct {
		heightPx float64
		want     string
	}{
		{0, "1-1"},
		{400, "1-1"},
		{pdfPageHeightPx, "1-1"},
		{pdfPageHeightPx + 1, "1-2"},
		{2132, "1-2"},
		{3 * pdfPageHeightPx, "1-3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, printParams(tt.heightPx).PageRanges, "height %v", tt.heightPx)
	}
}
