// SPDX-License-Identifier: MIT
package plot_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/katalvlaran/lvnmf/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJSONSurfaceTrace encodes one trace document.
func TestJSONSurfaceTrace(t *testing.T) {
	var buf bytes.Buffer
	s := plot.NewJSONSurface(&buf)

	require.NoError(t, s.PlotTrace([][]float64{{3, 2, 1}, {4, 2}}, "residuals"))

	var got plot.Payload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, plot.KindTrace, got.Kind)
	assert.Equal(t, "residuals", got.Title)
	assert.Equal(t, [][]float64{{3, 2, 1}, {4, 2}}, got.Series)
	assert.NotContains(t, buf.String(), `"values"`) // heatmap fields omitted
}

// TestJSONSurfaceHeatmap encodes a matrix row by row.
func TestJSONSurfaceHeatmap(t *testing.T) {
	var buf bytes.Buffer
	s := plot.NewJSONSurface(&buf)
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	require.NoError(t, s.PlotHeatmap(m, "W"))
	require.NoError(t, s.PlotHeatmap(m, "H"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2) // one document per call

	var got plot.Payload
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &got))
	assert.Equal(t, plot.KindHeatmap, got.Kind)
	assert.Equal(t, "H", got.Title)
	assert.Equal(t, 2, got.Rows)
	assert.Equal(t, 3, got.Cols)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, got.Values)
}

// TestPayloadErrors covers empty and non-finite input.
func TestPayloadErrors(t *testing.T) {
	s := plot.NewJSONSurface(&bytes.Buffer{})

	require.ErrorIs(t, s.PlotTrace(nil, "x"), plot.ErrEmptyTrace)
	require.ErrorIs(t, s.PlotTrace([][]float64{{1}, {}}, "x"), plot.ErrEmptyTrace)
	require.ErrorIs(t, s.PlotTrace([][]float64{{1, math.NaN()}}, "x"), plot.ErrNonFinite)
	require.ErrorIs(t, s.PlotHeatmap(nil, "x"), matrix.ErrNilMatrix)
}

// TestRecorderCopiesInput records payloads independent of caller slices.
func TestRecorderCopiesInput(t *testing.T) {
	var r plot.Recorder
	trace := []float64{2, 1}

	require.NoError(t, r.PlotTrace([][]float64{trace}, "t"))
	trace[0] = 99

	got := r.Payloads()
	require.Len(t, got, 1)
	assert.Equal(t, [][]float64{{2, 1}}, got[0].Series)
}

// TestDiscardAndNilWriter cover the remaining surfaces.
func TestDiscardAndNilWriter(t *testing.T) {
	require.NoError(t, plot.Discard.PlotTrace(nil, ""))
	require.NoError(t, plot.Discard.PlotHeatmap(nil, ""))
	assert.Panics(t, func() { plot.NewJSONSurface(nil) })
}
