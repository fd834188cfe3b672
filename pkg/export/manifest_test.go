package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/structlab/gmtgen/pkg/lattice"
	"github.com/structlab/gmtgen/pkg/target"
)

func TestNewTargetMeta(t *testing.T) {
	spec := target.Spec{
		Kind:        target.KindRamp,
		Anchor:      lattice.IntVec3{X: 10, Y: 5, Z: 0},
		BoundingBox: lattice.IntVec3{X: 4, Y: 2, Z: 2},
		Orientation: lattice.North,
	}
	tgt, err := target.NewTarget(spec, 2)
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}

	m := NewTargetMeta(tgt, "out/ramp2.graphml")
	if m.UUID != "ramp2" {
		t.Errorf("UUID = %q", m.UUID)
	}
	if m.BoundingBox != "4,2,2" {
		t.Errorf("BoundingBox = %q", m.BoundingBox)
	}
	if m.Anchor != "10,5,0" {
		t.Errorf("Anchor = %q", m.Anchor)
	}
	if m.Orientation != "N" {
		t.Errorf("Orientation = %q", m.Orientation)
	}
	if m.GraphML != "out/ramp2.graphml" {
		t.Errorf("GraphML = %q", m.GraphML)
	}
}

func TestWriteManifest(t *testing.T) {
	metas := []TargetMeta{
		{UUID: "prism0", BoundingBox: "2,2,1", Anchor: "0,0,0", Orientation: "E", GraphML: "prism0.graphml"},
		{UUID: "ramp1", BoundingBox: "4,2,2", Anchor: "8,0,0", Orientation: "W", GraphML: "ramp1.graphml.gz"},
	}

	var buf bytes.Buffer
	if err := WriteManifest(metas, &buf); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `<construct_targets run_id="`) {
		t.Errorf("missing root element:\n%s", out)
	}
	if !strings.HasSuffix(out, "</construct_targets>\n") {
		t.Errorf("missing closing tag:\n%s", out)
	}
	for _, want := range []string{
		`<prism0 bounding_box="2,2,1" anchor="0,0,0" orientation="E" graphml="prism0.graphml"/>`,
		`<ramp1 bounding_box="4,2,2" anchor="8,0,0" orientation="W" graphml="ramp1.graphml.gz"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
}

func TestWriteManifestFreshRunID(t *testing.T) {
	var a, b bytes.Buffer
	if err := WriteManifest(nil, &a); err != nil {
		t.Fatal(err)
	}
	if err := WriteManifest(nil, &b); err != nil {
		t.Fatal(err)
	}
	if a.String() == b.String() {
		t.Error("run ids must differ between batches")
	}
}
