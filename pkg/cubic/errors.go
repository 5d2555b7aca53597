package cubic

import "errors"

// ErrRegionTooLarge is returned when the requested extraction region
// exceeds 255 voxels on any axis, the limit imposed by packing vertex
// positions into a single byte per component.
var ErrRegionTooLarge = errors.New("cubic: region exceeds maximum encodable dimensions (255 voxels per axis)")

// ErrVertexSlotExhausted indicates all eight vertex slots at a lattice
// corner were occupied by non-matching (material, ambient-occlusion)
// pairs. This should never happen for a well-formed volume; it signals a
// bug in the caller's predicates rather than a recoverable condition.
var ErrVertexSlotExhausted = errors.New("cubic: all 8 vertex slots full but none matched at lattice corner")
