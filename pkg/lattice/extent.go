package lattice

// VertexDescriptor is the linear index of a lattice coordinate within an
// [ArenaExtent]. Descriptors are bijective with in-bounds coordinates:
// for every c with InBounds(c) == true, Coord(Descriptor(c)) == c.
type VertexDescriptor uint64

// ArenaExtent is an axis-aligned bounding box on the lattice.
// Origin is the box's anchor corner in arena coordinates; Dims are the box's
// strictly positive side lengths in cells. Coordinates handed to Descriptor,
// Coord and InBounds are relative to the origin, i.e. valid components range
// over [0, dim).
//
// The zero value is not usable - construct extents with NewArenaExtent.
// ArenaExtent is immutable after construction and safe for concurrent reads.
type ArenaExtent struct {
	origin IntVec3
	dims   IntVec3
}

// NewArenaExtent creates an extent with the given origin corner and dimensions.
// Dimension validation is the caller's responsibility; construction target
// specs reject non-positive bounding boxes before an extent is ever built.
func NewArenaExtent(origin, dims IntVec3) ArenaExtent {
	return ArenaExtent{origin: origin, dims: dims}
}

// Origin returns the anchor corner of the extent in arena coordinates.
func (e ArenaExtent) Origin() IntVec3 { return e.origin }

// Dims returns the side lengths of the extent.
func (e ArenaExtent) Dims() IntVec3 { return e.dims }

// XSize returns the extent's size along the X axis.
func (e ArenaExtent) XSize() int { return e.dims.X }

// YSize returns the extent's size along the Y axis.
func (e ArenaExtent) YSize() int { return e.dims.Y }

// ZSize returns the extent's size along the Z axis.
func (e ArenaExtent) ZSize() int { return e.dims.Z }

// Volume returns the number of cells in the extent.
func (e ArenaExtent) Volume() int { return e.dims.X * e.dims.Y * e.dims.Z }

// InBounds reports whether c lies inside the extent. A coordinate is out of
// bounds if any component is negative or at least the corresponding dimension.
func (e ArenaExtent) InBounds(c IntVec3) bool {
	if c.X < 0 || c.Y < 0 || c.Z < 0 {
		return false
	}
	return c.X < e.dims.X && c.Y < e.dims.Y && c.Z < e.dims.Z
}

// Descriptor maps an in-bounds coordinate to its linear vertex descriptor
// using row-major order: z*X*Y + y*X + x.
//
// Calling Descriptor with an out-of-bounds coordinate is undefined; callers
// must check InBounds first. This is a documented precondition rather than a
// runtime error because graph construction only ever enumerates in-bounds
// coordinates.
func (e ArenaExtent) Descriptor(c IntVec3) VertexDescriptor {
	return VertexDescriptor(c.Z*e.dims.X*e.dims.Y + c.Y*e.dims.X + c.X)
}

// Coord is the inverse of Descriptor, recovering the lattice coordinate from
// a vertex descriptor. The same in-bounds precondition applies.
func (e ArenaExtent) Coord(vd VertexDescriptor) IntVec3 {
	plane := VertexDescriptor(e.dims.X * e.dims.Y)
	z := vd / plane
	rem := vd - z*plane
	y := rem / VertexDescriptor(e.dims.X)
	x := rem % VertexDescriptor(e.dims.X)
	return IntVec3{int(x), int(y), int(z)}
}
