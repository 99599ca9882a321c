// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"io"
	"sync"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/lvnmf/matrix"
)

// Compile-time assertions.
var (
	_ Surface = (*JSONSurface)(nil)
	_ Surface = (*Recorder)(nil)
	_ Surface = discard{}
)

// JSONSurface writes one JSON document per figure, newline separated.
// It is safe for concurrent use.
type JSONSurface struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONSurface returns a Surface encoding payloads to w. Panics on nil w.
func NewJSONSurface(w io.Writer) *JSONSurface {
	if w == nil {
		panic("plot: NewJSONSurface(nil)")
	}
	return &JSONSurface{enc: json.NewEncoder(w)}
}

// PlotTrace encodes a trace payload.
func (s *JSONSurface) PlotTrace(traces [][]float64, title string) error {
	p, err := TracePayload(traces, title)
	if err != nil {
		return err
	}
	return s.write(p)
}

// PlotHeatmap encodes a heatmap payload.
func (s *JSONSurface) PlotHeatmap(m matrix.Matrix, title string) error {
	p, err := HeatmapPayload(m, title)
	if err != nil {
		return err
	}
	return s.write(p)
}

func (s *JSONSurface) write(p Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(p); err != nil {
		return fmt.Errorf("plot: encode %s %q: %w", p.Kind, p.Title, err)
	}
	return nil
}

// Recorder keeps every payload in call order. It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	payloads []Payload
}

// PlotTrace records a trace payload.
func (r *Recorder) PlotTrace(traces [][]float64, title string) error {
	p, err := TracePayload(traces, title)
	if err != nil {
		return err
	}
	r.add(p)
	return nil
}

// PlotHeatmap records a heatmap payload.
func (r *Recorder) PlotHeatmap(m matrix.Matrix, title string) error {
	p, err := HeatmapPayload(m, title)
	if err != nil {
		return err
	}
	r.add(p)
	return nil
}

// Payloads returns a copy of the recorded payloads.
func (r *Recorder) Payloads() []Payload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Payload(nil), r.payloads...)
}

func (r *Recorder) add(p Payload) {
	r.mu.Lock()
	r.payloads = append(r.payloads, p)
	r.mu.Unlock()
}

// Discard accepts every figure and does nothing.
var Discard Surface = discard{}

type discard struct{}

func (discard) PlotTrace([][]float64, string) error     { return nil }
func (discard) PlotHeatmap(matrix.Matrix, string) error { return nil }
