// Test-bridge (white-box) for private engine kernels.
//
// Purpose:
//   - Expose unexported helpers to shotgun_test ONLY, without widening the
//     production API. The file is a _test.go member of package shotgun, so
//     importers never see these names.
//
// Maintenance:
//   - Keep ALL test-only bridges co-located here; if a private helper
//     changes signature, mirror it once in this file.
package shotgun

var (
	// ExportedRandomTour exposes randomTour for white-box tests.
	ExportedRandomTour = randomTour
	// ExportedReverseSegment exposes reverseSegment for white-box tests.
	ExportedReverseSegment = reverseSegment
	// ExportedValidateTour exposes validateTour for white-box tests.
	ExportedValidateTour = validateTour
	// ExportedImproveOnce exposes improveOnce for white-box tests.
	ExportedImproveOnce = improveOnce
	// ExportedClimb exposes climb for white-box tests.
	ExportedClimb = climb
	// ExportedDeriveSeed exposes deriveSeed for white-box tests.
	ExportedDeriveSeed = deriveSeed
	// ExportedRestartRNG exposes restartRNG for white-box tests.
	ExportedRestartRNG = restartRNG
	// ExportedRNGFromSeed exposes rngFromSeed for white-box tests.
	ExportedRNGFromSeed = rngFromSeed
	// ExportedShuffleIntsInPlace exposes shuffleIntsInPlace for white-box tests.
	ExportedShuffleIntsInPlace = shuffleIntsInPlace
)

// ExportedWorkerCount exposes Options.workerCount resolution for tests.
func ExportedWorkerCount(o Options) int { return o.workerCount() }
