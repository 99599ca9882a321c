// Package lvnmf is a small, deterministic engine for non-negative matrix
// factorization: V ≈ W·H with every entry of W and H kept ≥ 0.
//
// 🚀 What is inside?
//
//	• Multiplicative updates (Lee–Seung) for a single observation
//	• Joint factorization: several observations sharing one basis W
//	• Bounded parallel coefficient updates with a barrier before W moves
//	• Seeded initialization, so equal seeds give bit-identical runs
//	• A gonum-backed projected-gradient reference for comparison
//
// Packages:
//
//	matrix/   : row-major Dense storage, products, element-wise kernels, norms
//	nmf/      : Initializer, Residual/Trace tracking, Factorize, FactorizeJoint
//	builder/  : seeded synthetic observations (uniform, low-rank, joint)
//	reference/: gonum-based projected-gradient and multiplicative factorizers
//	plot/     : JSON payloads for residual traces and factor heatmaps
//	cmd/nmfrun: configurable driver (koanf config, zerolog logs, prometheus counters)
//
// Quick example:
//
//	v, _ := builder.LowRankObservation(40, 30, 4, builder.WithSeed(7))
//	res, err := nmf.Factorize(v, 4, 200, 42)
//	// res.W is 40×4, res.H is 4×30, res.Norms has 200 non-increasing entries.
//
//	go get github.com/katalvlaran/lvnmf
package lvnmf
