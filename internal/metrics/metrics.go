// SPDX-License-Identifier: MIT

// Package metrics records factorization runs in a private Prometheus registry.
//
// nmfrun has no HTTP surface, so nothing is scraped; the driver logs a
// Snapshot of the registry when a run ends.
package metrics

import (
	"sort"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Recorder owns the run collectors and the registry they live in.
type Recorder struct {
	registry *prometheus.Registry

	runs       *prometheus.CounterVec
	iterations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	residual   *prometheus.GaugeVec
}

// Sample is one flattened metric value.
type Sample struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels,omitempty"`
	Value  float64           `json:"value"`
}

// New registers the run collectors in a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nmf_runs_total",
				Help: "Total number of factorization runs",
			},
			[]string{"mode", "outcome"},
		),
		iterations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nmf_iterations_total",
				Help: "Total number of completed update iterations",
			},
			[]string{"mode"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nmf_run_duration_seconds",
				Help:    "Wall time of factorization runs in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8), // 1ms .. ~16s
			},
			[]string{"mode"},
		),
		residual: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "nmf_final_residual",
				Help: "Frobenius residual after the last iteration, per observation",
			},
			[]string{"mode", "matrix"},
		),
	}
}

// Registry exposes the private registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveRun records one finished run. iterations counts completed
// iterations, which is zero when err came from validation.
func (r *Recorder) ObserveRun(mode string, iterations int, elapsed time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	r.runs.WithLabelValues(mode, outcome).Inc()
	if iterations > 0 {
		r.iterations.WithLabelValues(mode).Add(float64(iterations))
	}
	r.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// SetResidual stores the final residual of observation idx.
func (r *Recorder) SetResidual(mode string, idx int, value float64) {
	r.residual.WithLabelValues(mode, strconv.Itoa(idx)).Set(value)
}

// Snapshot gathers the registry and flattens it into samples sorted by
// name then labels. Histograms contribute _count and _sum samples.
func (r *Recorder) Snapshot() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		name := mf.GetName()
		for _, m := range mf.GetMetric() {
			labels := labelMap(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, Sample{Name: name, Labels: labels, Value: m.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				out = append(out, Sample{Name: name, Labels: labels, Value: m.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				out = append(out,
					Sample{Name: name + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: name + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}

	// Gather sorts families and metrics already; keep the order stable anyway.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func labelMap(pairs []*dto.LabelPair) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		m[p.GetName()] = p.GetValue()
	}

	return m
}
