package terrain

import (
	"github.com/google/uuid"

	"github.com/Faultbox/landsmith/pkg/heightmap"
)

// Handle identifies a terrain materialized by a Builder.
type Handle struct {
	ID       uuid.UUID
	GridSize int
	Params   Params
	Scales   Scales
}

// Builder materializes a height grid as a terrain object in some host.
// It is the boundary between the generation pipeline and the rendering or
// persistence backend; implementations own whatever representation their
// host needs and only promise to accept row-major height data.
type Builder interface {
	Build(grid *heightmap.Grid, params Params, scales Scales) (Handle, error)
}
