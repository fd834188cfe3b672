// Package lattice provides the integer coordinate system underlying
// construction target graphs.
//
// A construction target occupies an axis-aligned bounding box ([ArenaExtent])
// of unit cells. Cells are addressed either by their [IntVec3] coordinate or
// by their [VertexDescriptor], the linear index of the coordinate within the
// extent. The two addressing schemes are exact inverses of each other for
// every in-bounds coordinate, which lets graph code key nodes by a single
// integer while exporters recover the spatial position.
package lattice

import "fmt"

// IntVec3 is a coordinate on the 3D integer lattice.
// It is a plain value type; all operations return new values.
type IntVec3 struct {
	X, Y, Z int
}

// Add returns the component-wise sum of v and o.
func (v IntVec3) Add(o IntVec3) IntVec3 {
	return IntVec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v with every component multiplied by s.
func (v IntVec3) Scale(s int) IntVec3 {
	return IntVec3{v.X * s, v.Y * s, v.Z * s}
}

// String formats the coordinate as "x,y,z", the form used for the anchor
// attribute in exported graphs and simulator input files.
func (v IntVec3) String() string {
	return fmt.Sprintf("%d,%d,%d", v.X, v.Y, v.Z)
}

// Unit steps along each axis. These are the six Manhattan neighbor offsets
// used during block insertion and shell passes.
var (
	XPlus  = IntVec3{1, 0, 0}
	XMinus = IntVec3{-1, 0, 0}
	YPlus  = IntVec3{0, 1, 0}
	YMinus = IntVec3{0, -1, 0}
	ZPlus  = IntVec3{0, 0, 1}
	ZMinus = IntVec3{0, 0, -1}
)

// Neighbors is the set of all six axis-aligned unit offsets, in the order
// blocks consider them when wiring adjacency edges.
var Neighbors = [6]IntVec3{YPlus, XPlus, YMinus, XMinus, ZMinus, ZPlus}
