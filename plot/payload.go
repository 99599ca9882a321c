// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnmf/matrix"
)

// TracePayload validates and copies traces into a trace Payload.
func TracePayload(traces [][]float64, title string) (Payload, error) {
	if len(traces) == 0 {
		return Payload{}, fmt.Errorf("PlotTrace(%q): %w", title, ErrEmptyTrace)
	}
	series := make([][]float64, len(traces))
	for i, tr := range traces {
		if len(tr) == 0 {
			return Payload{}, fmt.Errorf("PlotTrace(%q): series %d: %w", title, i, ErrEmptyTrace)
		}
		for j, v := range tr {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Payload{}, fmt.Errorf("PlotTrace(%q): series %d point %d: %w", title, i, j, ErrNonFinite)
			}
		}
		series[i] = append([]float64(nil), tr...)
	}

	return Payload{Kind: KindTrace, Title: title, Series: series}, nil
}

// HeatmapPayload copies m row by row into a heatmap Payload.
func HeatmapPayload(m matrix.Matrix, title string) (Payload, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Payload{}, fmt.Errorf("PlotHeatmap(%q): %w", title, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return Payload{}, fmt.Errorf("PlotHeatmap(%q): %w: %w", title, ErrNonFinite, err)
	}

	rows, cols := m.Rows(), m.Cols()
	values := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		values[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return Payload{}, fmt.Errorf("PlotHeatmap(%q): %w", title, err)
			}
			values[i][j] = v
		}
	}

	return Payload{Kind: KindHeatmap, Title: title, Rows: rows, Cols: cols, Values: values}, nil
}
