package structure

import (
	"github.com/structlab/gmtgen/pkg/catalog"
	"github.com/structlab/gmtgen/pkg/lattice"
)

// AddBoundaryShell pads the structure with a one-cell shell of virtual
// blocks: for every existing block, each in-bounds axis neighbor that is not
// yet occupied receives a vbeam1 placeholder. Run once after all physical
// blocks are placed.
//
// Structures with enclosed cavities produce an incomplete shell; detecting
// holes is non-trivial and is not validated here.
func (g *Graph) AddBoundaryShell() error {
	for _, vd := range g.Descriptors() {
		c := g.extent.Coord(vd)
		for _, step := range lattice.Neighbors {
			n := c.Add(step)
			if !g.extent.InBounds(n) {
				continue
			}
			if _, ok := g.nodes[g.extent.Descriptor(n)]; ok {
				continue
			}
			if err := g.AddBlock(catalog.VBeam1, n, lattice.East); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddComplementShell fills every unoccupied cell of the bounding box with a
// virtual block, padding the entire complement of the structure. Run once
// after all physical blocks are placed. The same cavity limitation as
// AddBoundaryShell applies.
func (g *Graph) AddComplementShell() error {
	dims := g.extent.Dims()
	for x := 0; x < dims.X; x++ {
		for y := 0; y < dims.Y; y++ {
			for z := 0; z < dims.Z; z++ {
				c := lattice.IntVec3{X: x, Y: y, Z: z}
				if _, ok := g.nodes[g.extent.Descriptor(c)]; ok {
					continue
				}
				if err := g.AddBlock(catalog.VBeam1, c, lattice.East); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
