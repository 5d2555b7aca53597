// Package voxel defines the VolumeSampler collaborator contract the
// extractor needs and a small dense in-memory volume that satisfies it,
// for callers who don't bring their own paged block store.
package voxel

// Sampler is a movable cursor over a volume with O(1) access to the 26
// neighbours of the current cell. Extractors call SetPosition once per
// scanline and then MovePositiveX/MoveNegativeX to step, using Peek to
// read any of the 26 neighbours without disturbing the cursor's own
// voxel (GetVoxel).
type Sampler[V any] interface {
	SetPosition(x, y, z int32)

	MovePositiveX()
	MovePositiveY()
	MovePositiveZ()
	MoveNegativeX()
	MoveNegativeY()
	MoveNegativeZ()

	// GetVoxel returns the voxel at the cursor's current position.
	GetVoxel() V

	// Peek returns the voxel at (current + (dx,dy,dz)). dx, dy, dz must
	// each be one of -1, 0, +1; the all-zero offset is equivalent to
	// GetVoxel.
	Peek(dx, dy, dz int32) V
}

// BorderPolicy supplies the voxel value to report for positions outside
// the backing volume's bounds.
type BorderPolicy[V any] interface {
	BorderVoxel() V
}

// ConstantBorder is a BorderPolicy that always returns the same value,
// the common case (e.g. "treat everything outside the volume as air").
type ConstantBorder[V any] struct {
	Value V
}

// BorderVoxel implements BorderPolicy.
func (c ConstantBorder[V]) BorderVoxel() V { return c.Value }
