package cubic

import (
	"github.com/alexsaalberg/polyvox/internal/config"
	"github.com/alexsaalberg/polyvox/pkg/region"
	"github.com/alexsaalberg/polyvox/pkg/voxel"
	"github.com/alexsaalberg/polyvox/pkg/vxmesh"
)

// ExtractWithDefaults calls Extract with the process-wide merge-quads
// default from internal/config instead of requiring every call site to
// decide explicitly.
func ExtractWithDefaults[V comparable](
	sampler voxel.Sampler[V],
	reg region.Region,
	isQuadNeeded IsQuadNeededFunc[V],
	contributesToAO ContributesToAOFunc[V],
) (*vxmesh.Mesh[vxmesh.CubicVertex[V]], error) {
	return Extract(sampler, reg, isQuadNeeded, contributesToAO, config.GetMergeQuads())
}
