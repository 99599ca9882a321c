// SPDX-License-Identifier: MIT

// Package plot is the boundary between the factorizers and whatever renders
// their output. The factorizers never depend on it.
//
// A Surface accepts two kinds of figures:
//
//   - PlotTrace: one or more residual curves (one series per observation).
//   - PlotHeatmap: the entries of a factor matrix.
//
// JSONSurface turns each call into one self-contained JSON document
// ({"kind":"trace",...} or {"kind":"heatmap",...}) for an external renderer.
// Recorder keeps payloads in memory for tests, and Discard drops them.
package plot
