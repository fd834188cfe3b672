package target

import (
	"github.com/structlab/gmtgen/pkg/catalog"
	"github.com/structlab/gmtgen/pkg/lattice"
	"github.com/structlab/gmtgen/pkg/structure"
)

// genPrism densely fills the bounding box with unit blocks. The generated
// graph is identical for +X vs -X and +Y vs -Y orientations; only the loop
// order changes so that each insertion finds its already-placed neighbors.
func genPrism(g *structure.Graph, spec Spec) error {
	bb := spec.BoundingBox
	if spec.Orientation.IsEastWest() {
		for x := 0; x < bb.X; x++ {
			for y := 0; y < bb.Y; y++ {
				for z := 0; z < bb.Z; z++ {
					if err := g.AddBlock(catalog.Beam1, lattice.IntVec3{X: x, Y: y, Z: z}, spec.Orientation); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
	for y := 0; y < bb.Y; y++ {
		for x := 0; x < bb.X; x++ {
			for z := 0; z < bb.Z; z++ {
				if err := g.AddBlock(catalog.Beam1, lattice.IntVec3{X: x, Y: y, Z: z}, spec.Orientation); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
