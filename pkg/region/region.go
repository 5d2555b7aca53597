// Package region defines the closed, axis-aligned integer box used to
// bound surface extraction.
package region

import "fmt"

// Region is a closed axis-aligned box in voxel space: both LowerCorner and
// UpperCorner are included in the region.
type Region struct {
	LowerX, LowerY, LowerZ int32
	UpperX, UpperY, UpperZ int32
}

// New builds a Region from its lower and upper corners (inclusive on both
// ends). The caller is responsible for ensuring lower <= upper per axis;
// a region with lower > upper on any axis is empty and WidthInVoxels etc.
// will report non-positive sizes.
func New(lowerX, lowerY, lowerZ, upperX, upperY, upperZ int32) Region {
	return Region{
		LowerX: lowerX, LowerY: lowerY, LowerZ: lowerZ,
		UpperX: upperX, UpperY: upperY, UpperZ: upperZ,
	}
}

// LowerCorner returns the region's minimum corner.
func (r Region) LowerCorner() [3]int32 {
	return [3]int32{r.LowerX, r.LowerY, r.LowerZ}
}

// UpperCorner returns the region's maximum corner.
func (r Region) UpperCorner() [3]int32 {
	return [3]int32{r.UpperX, r.UpperY, r.UpperZ}
}

// WidthInVoxels returns the number of voxels spanned along X.
func (r Region) WidthInVoxels() int32 { return r.UpperX - r.LowerX + 1 }

// HeightInVoxels returns the number of voxels spanned along Y.
func (r Region) HeightInVoxels() int32 { return r.UpperY - r.LowerY + 1 }

// DepthInVoxels returns the number of voxels spanned along Z.
func (r Region) DepthInVoxels() int32 { return r.UpperZ - r.LowerZ + 1 }

// ContainsPoint reports whether the given integer point lies within the
// closed region.
func (r Region) ContainsPoint(x, y, z int32) bool {
	return x >= r.LowerX && x <= r.UpperX &&
		y >= r.LowerY && y <= r.UpperY &&
		z >= r.LowerZ && z <= r.UpperZ
}

// NeighboursToInvalidate returns the three regions that share this
// region's upper faces, obtained by shifting this region by its own size
// along X, Y and Z respectively. When a voxel on one of this region's
// upper faces changes, the extractor's greater-coordinate convention
// (see pkg/cubic) means the corresponding quad belongs to that
// neighbouring region, not this one, so it must be re-extracted too.
func (r Region) NeighboursToInvalidate() [3]Region {
	dx := r.WidthInVoxels()
	dy := r.HeightInVoxels()
	dz := r.DepthInVoxels()

	return [3]Region{
		New(r.LowerX+dx, r.LowerY, r.LowerZ, r.UpperX+dx, r.UpperY, r.UpperZ),
		New(r.LowerX, r.LowerY+dy, r.LowerZ, r.UpperX, r.UpperY+dy, r.UpperZ),
		New(r.LowerX, r.LowerY, r.LowerZ+dz, r.UpperX, r.UpperY, r.UpperZ+dz),
	}
}

func (r Region) String() string {
	return fmt.Sprintf("Region[(%d,%d,%d)-(%d,%d,%d)]", r.LowerX, r.LowerY, r.LowerZ, r.UpperX, r.UpperY, r.UpperZ)
}
