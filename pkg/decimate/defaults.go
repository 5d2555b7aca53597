package decimate

import (
	"github.com/alexsaalberg/polyvox/internal/config"
	"github.com/alexsaalberg/polyvox/pkg/vxmesh"
)

// DecimateWithDefaults calls Decimate with the process-wide normal-dot
// threshold default from internal/config.
func DecimateWithDefaults[VertexT any, M comparable](mesh *vxmesh.Mesh[VertexT], policy VertexPolicy[VertexT, M]) int {
	return Decimate(mesh, policy, config.GetNormalDotThreshold())
}
