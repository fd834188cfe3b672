package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/structlab/gmtgen/pkg/catalog"
	"github.com/structlab/gmtgen/pkg/lattice"
	"github.com/structlab/gmtgen/pkg/structure"
)

// slabGraph builds a 2x1x1 slab: two unit blocks joined by one edge.
func slabGraph(t *testing.T) *structure.Graph {
	t.Helper()
	g := structure.New(lattice.NewArenaExtent(lattice.IntVec3{}, lattice.IntVec3{X: 2, Y: 1, Z: 1}))
	for x := 0; x < 2; x++ {
		if err := g.AddBlock(catalog.Beam1, lattice.IntVec3{X: x}, lattice.North); err != nil {
			t.Fatalf("AddBlock: %v", err)
		}
	}
	return g
}

func TestMarshalGraphML(t *testing.T) {
	data, err := MarshalGraphML(slabGraph(t))
	if err != nil {
		t.Fatalf("MarshalGraphML: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		`<graphml xmlns="http://graphml.graphdrawing.org/xmlns">`,
		`attr.name="block_type"`,
		`attr.name="anchor"`,
		`attr.name="z_rot"`,
		`attr.name="color"`,
		`attr.name="weight"`,
		`<graph edgedefault="undirected">`,
		`<node id="n0">`,
		`<node id="n1">`,
		`<data key="d1">1,0,0</data>`,
		`<data key="d2">1.5708</data>`,
		`<data key="d3">blue</data>`,
		`<edge source="n0" target="n1">`,
		`<data key="d4">1</data>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestMarshalGraphMLDeterministic(t *testing.T) {
	g := slabGraph(t)
	a, err := MarshalGraphML(g)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MarshalGraphML(g)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("serialization is not stable")
	}
}

func TestExportGraphML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slab.graphml")
	if err := ExportGraphML(slabGraph(t), path); err != nil {
		t.Fatalf("ExportGraphML: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<graphml") {
		t.Error("file does not contain graphml")
	}
}

func TestExportGraphMLCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slab.graphml.gz")
	g := slabGraph(t)
	if err := ExportGraphML(g, path); err != nil {
		t.Fatalf("ExportGraphML: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("not gzip data: %v", err)
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}

	want, err := MarshalGraphML(g)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(want) {
		t.Error("decompressed data differs from direct serialization")
	}
}
