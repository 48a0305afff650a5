package vehicle

import "errors"

// Sentinel errors of the generation pipeline. The data-miss class
// (ErrUnknownSpawn, ErrUnknownGroup, ErrUnresolvedPlacement) is logged by the
// spawner and never aborts a generation run. ErrOccupied is the map
// collaborator's rejection, absorbed by bounded resampling.
var (
	// ErrUnknownSpawn reports an Apply call naming a spawn absent from the
	// registry.
	ErrUnknownSpawn = errors.New("vehicle: unknown spawn")

	// ErrUnknownGroup reports a spawn function referencing a vehicle group
	// absent from the registry.
	ErrUnknownGroup = errors.New("vehicle: unknown vehicle group")

	// ErrUnresolvedPlacement reports a placement reference that matched no
	// registered placement, after terrain fallback where applicable.
	ErrUnresolvedPlacement = errors.New("vehicle: unresolved placement")

	// ErrOccupied is returned by Map implementations when a vehicle cannot
	// be placed at the requested position.
	ErrOccupied = errors.New("vehicle: position occupied")
)
