package target

import (
	"github.com/structlab/gmtgen/pkg/catalog"
	"github.com/structlab/gmtgen/pkg/lattice"
	"github.com/structlab/gmtgen/pkg/structure"
)

// genRamp builds a ramp in two phases. Phase 1 fills each z layer with unit
// blocks everywhere except an exclusion zone at the ramp's forward edge,
// whose width grows by RampLengthRatio per layer. Phase 2 places one ramp2
// block per row per layer at the inner edge of that zone, sloping the
// structure toward the forward boundary. Layers whose exclusion zone exceeds
// the bounding box stay empty above the last ramp block.
//
// NewTarget has already verified the major-axis dimension divides evenly by
// RampLengthRatio, so every layer's zone boundary lands on a cell edge.
func genRamp(g *structure.Graph, spec Spec) error {
	if err := rampBeamPhase(g, spec); err != nil {
		return err
	}
	return rampBlockPhase(g, spec)
}

// rampBeamPhase fills the non-excluded region of every layer with beam1.
func rampBeamPhase(g *structure.Graph, spec Spec) error {
	bb := spec.BoundingBox
	for z := 0; z < bb.Z; z++ {
		w := RampLengthRatio * (z + 1)
		lo, hi := beamRange(spec.Orientation, bb, w)
		for major := lo; major < hi; major++ {
			for minor := 0; minor < minorSize(spec.Orientation, bb); minor++ {
				if err := g.AddBlock(catalog.Beam1, cellAt(spec.Orientation, major, minor, z), spec.Orientation); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// rampBlockPhase places the ramp2 anchors. The anchor sits on the exclusion
// zone cell adjacent to the beam fill and the block extends forward from it.
func rampBlockPhase(g *structure.Graph, spec Spec) error {
	bb := spec.BoundingBox
	for z := 0; z < bb.Z; z++ {
		w := RampLengthRatio * (z + 1)
		major, ok := rampAnchor(spec.Orientation, bb, w)
		if !ok {
			continue // exclusion zone swallowed the whole layer
		}
		for minor := 0; minor < minorSize(spec.Orientation, bb); minor++ {
			if err := g.AddBlock(catalog.Ramp2, cellAt(spec.Orientation, major, minor, z), spec.Orientation); err != nil {
				return err
			}
		}
	}
	return nil
}

// beamRange returns the half-open major-axis interval filled with beam1 for
// a layer whose exclusion zone is w cells wide.
func beamRange(o lattice.Orientation, bb lattice.IntVec3, w int) (lo, hi int) {
	size := majorSize(o, bb)
	switch o {
	case lattice.East, lattice.North:
		return 0, max(size-w, 0)
	default: // West, South: zone sits at the low end
		return min(w, size), size
	}
}

// rampAnchor returns the major-axis index of the layer's ramp2 anchor, or
// ok=false when the zone no longer fits inside the box.
func rampAnchor(o lattice.Orientation, bb lattice.IntVec3, w int) (int, bool) {
	size := majorSize(o, bb)
	if w > size {
		return 0, false
	}
	switch o {
	case lattice.East, lattice.North:
		return size - w, true
	default:
		return w - 1, true
	}
}

func majorSize(o lattice.Orientation, bb lattice.IntVec3) int {
	if o.IsEastWest() {
		return bb.X
	}
	return bb.Y
}

func minorSize(o lattice.Orientation, bb lattice.IntVec3) int {
	if o.IsEastWest() {
		return bb.Y
	}
	return bb.X
}

// cellAt maps (major, minor, z) indices back to a lattice coordinate for the
// given orientation axis assignment.
func cellAt(o lattice.Orientation, major, minor, z int) lattice.IntVec3 {
	if o.IsEastWest() {
		return lattice.IntVec3{X: major, Y: minor, Z: z}
	}
	return lattice.IntVec3{X: minor, Y: major, Z: z}
}
