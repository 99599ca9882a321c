// SPDX-License-Identifier: MIT

package plot

import (
	"errors"

	"github.com/katalvlaran/lvnmf/matrix"
)

// Surface receives figures to display.
type Surface interface {
	// PlotTrace draws one curve per series, x = iteration index.
	PlotTrace(traces [][]float64, title string) error
	// PlotHeatmap draws the entries of m.
	PlotHeatmap(m matrix.Matrix, title string) error
}

// Payload kinds.
const (
	KindTrace   = "trace"
	KindHeatmap = "heatmap"
)

// Payload is the render-ready description of one figure.
type Payload struct {
	Kind   string      `json:"kind"`
	Title  string      `json:"title"`
	Series [][]float64 `json:"series,omitempty"`
	Rows   int         `json:"rows,omitempty"`
	Cols   int         `json:"cols,omitempty"`
	Values [][]float64 `json:"values,omitempty"`
}

var (
	// ErrEmptyTrace indicates a trace call without series or with an empty series.
	ErrEmptyTrace = errors.New("plot: empty trace")

	// ErrNonFinite indicates a NaN or ±Inf value, which JSON cannot carry.
	ErrNonFinite = errors.New("plot: non-finite value")
)
