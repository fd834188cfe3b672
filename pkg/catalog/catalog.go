// Package catalog defines the fixed table of block kinds available to
// construction targets.
//
// Each kind carries its footprint length along the block's major axis, the
// numeric type code and display color used by the exported graph schema, and
// whether the block is virtual. Virtual blocks are placeholders with no
// physical simulation meaning; they keep the connectivity graph well-formed
// at structure boundaries (see the structure package's shell passes).
//
// The table is initialized once and never mutated, so it is safe to read from
// any number of concurrent generators.
package catalog

// Block describes one kind of structural block.
type Block struct {
	Name    string // stable identifier ("beam1", "ramp2", ...)
	Code    int    // numeric type code in the exported graph schema
	Length  int    // footprint along the major axis, in cells (>= 1)
	Virtual bool   // placeholder with no physical meaning
	Color   string // display color tag for exported graphs
}

// The block kinds understood by the simulator. Beam1 is the unit cube;
// VBeam1 is its virtual counterpart used for shell padding and the synthetic
// far ends of multi-cell blocks.
var (
	VBeam1 = Block{Name: "vbeam1", Code: 0, Length: 1, Virtual: true, Color: "grey"}
	Beam1  = Block{Name: "beam1", Code: 1, Length: 1, Color: "blue"}
	Beam2  = Block{Name: "beam2", Code: 2, Length: 2, Color: "green"}
	Beam3  = Block{Name: "beam3", Code: 3, Length: 3, Color: "cyan"}
	Ramp   = Block{Name: "ramp", Code: 4, Length: 1, Color: "yellow"}
	Ramp2  = Block{Name: "ramp2", Code: 5, Length: 2, Color: "orange"}
)

var table = map[string]Block{
	VBeam1.Name: VBeam1,
	Beam1.Name:  Beam1,
	Beam2.Name:  Beam2,
	Beam3.Name:  Beam3,
	Ramp.Name:   Ramp,
	Ramp2.Name:  Ramp2,
}

// Lookup returns the block kind with the given name.
func Lookup(name string) (Block, bool) {
	b, ok := table[name]
	return b, ok
}

// Blocks returns all block kinds ordered by type code.
func Blocks() []Block {
	return []Block{VBeam1, Beam1, Beam2, Beam3, Ramp, Ramp2}
}
