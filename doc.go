// Package dnalign is a compact toolkit for computing optimal DNA
// sequence-alignment costs — from sequence generation to exact
// quadratic and linear-space alignment engines.
//
// 🚀 What is dnalign?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Core primitives: ACGT sequences & an immutable substitution/gap cost model
//		• Builder: expand a short base string into a full test sequence by
//		  repeated self-insertion (doubling growth)
//		• Align: the classic full-matrix Needleman–Wunsch style engine and a
//		  Hirschberg divide-and-conquer engine running in O(n+m) extra memory
//		• Dataset: textual problem-file parsing plus in<k>.txt → output<k>.txt
//		  batch conventions for the bundled CLI
//
// ✨ Why choose dnalign?
//
//   - Exact – both engines return the identical provably optimal cost
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Predictable memory – pick FullMatrix or LinearSpace per call
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — Sequence & CostModel types, alphabet validation
//	builder/ — GenerationSpec expansion with overflow-safe growth bounds
//	align/   — FullMatrix and LinearSpace alignment-cost engines
//	dataset/ — problem-file parsing and batch file-naming helpers
//
// Quick ASCII example:
//
//	A _ C A C A C T A
//	A G C A C A C _ A
//
//	two sequences aligned character-by-character, with one gap ("_")
//	in each row contributing to the total cost.
//
// Dive into README.md for full examples and the cost-model reference,
// or start with align.Align and core.DefaultCostModel.
//
//	go get github.com/katalvlaran/dnalign
package dnalign
