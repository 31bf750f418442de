package align

// Test-Bridge (White-Box) for the engine internals.
//
// Purpose:
//   - Expose the unexported sweeps and engines to align_test ONLY, so the
//     external test package can verify the linear-space building blocks
//     (row laws, forward/backward duality, split recombination) without
//     widening the production API.
//
// Provided surface:
//   - Thin pass-through aliases; no extra allocations, no side effects.
var (
	// ExportedAlignFull exposes the quadratic-space reference engine.
	ExportedAlignFull = alignFull

	// ExportedAlignLinear exposes the Hirschberg engine.
	ExportedAlignLinear = alignLinear

	// ExportedForwardRow exposes the forward bounded-width sweep.
	ExportedForwardRow = forwardRow

	// ExportedBackwardRow exposes the backward bounded-width sweep.
	ExportedBackwardRow = backwardRow

	// ExportedSplitColumn exposes the divide-and-conquer recombination.
	ExportedSplitColumn = splitColumn
)
