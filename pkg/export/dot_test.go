package export

import (
	"strings"
	"testing"

	"github.com/structlab/gmtgen/pkg/catalog"
	"github.com/structlab/gmtgen/pkg/lattice"
	"github.com/structlab/gmtgen/pkg/structure"
)

func TestToDOT(t *testing.T) {
	g := structure.New(lattice.NewArenaExtent(lattice.IntVec3{}, lattice.IntVec3{X: 3, Y: 1, Z: 1}))
	if err := g.AddBlock(catalog.Beam2, lattice.IntVec3{}, lattice.East); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}

	out := ToDOT(g)

	if !strings.HasPrefix(out, "graph structure {") {
		t.Errorf("missing graph header:\n%s", out)
	}
	for _, want := range []string{
		`"n0" [label="beam2\n0,0,0"`,
		"fillcolor=palegreen",
		// The synthesized terminus is virtual and drawn dashed.
		`"n2" [label="vbeam1\n2,0,0"`,
		"rounded,filled,dashed",
		// The long edge carries its weight label.
		`"n0" -- "n2" [label="2"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestToDOTPlainEdges(t *testing.T) {
	g := structure.New(lattice.NewArenaExtent(lattice.IntVec3{}, lattice.IntVec3{X: 2, Y: 1, Z: 1}))
	for x := 0; x < 2; x++ {
		if err := g.AddBlock(catalog.Beam1, lattice.IntVec3{X: x}, lattice.East); err != nil {
			t.Fatalf("AddBlock: %v", err)
		}
	}

	out := ToDOT(g)
	if !strings.Contains(out, `"n0" -- "n1";`) {
		t.Errorf("missing plain edge:\n%s", out)
	}
	if strings.Contains(out, "label=\"1\"") {
		t.Errorf("weight-1 edges must not be labeled:\n%s", out)
	}
}
