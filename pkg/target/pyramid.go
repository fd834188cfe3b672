package target

import (
	"github.com/structlab/gmtgen/pkg/catalog"
	"github.com/structlab/gmtgen/pkg/lattice"
	"github.com/structlab/gmtgen/pkg/structure"
)

// genPyramid builds a stepped pyramid of unit blocks. Layer z covers only
// the in-plane coordinates in [z, size-z) on both axes, shrinking the
// footprint by one cell on the leading and trailing edge per layer. Layers
// whose footprint would be empty contribute nothing, so generation
// terminates naturally even for tall bounding boxes.
func genPyramid(g *structure.Graph, spec Spec) error {
	bb := spec.BoundingBox
	if spec.Orientation.IsEastWest() {
		for z := 0; z < bb.Z; z++ {
			for x := z; x < bb.X-z; x++ {
				for y := z; y < bb.Y-z; y++ {
					if err := g.AddBlock(catalog.Beam1, lattice.IntVec3{X: x, Y: y, Z: z}, spec.Orientation); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
	for z := 0; z < bb.Z; z++ {
		for y := z; y < bb.Y-z; y++ {
			for x := z; x < bb.X-z; x++ {
				if err := g.AddBlock(catalog.Beam1, lattice.IntVec3{X: x, Y: y, Z: z}, spec.Orientation); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
