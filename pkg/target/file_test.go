package target

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/structlab/gmtgen/pkg/errors"
	"github.com/structlab/gmtgen/pkg/lattice"
)

const sampleSet = `
[[target]]
kind         = "prism"
anchor       = [0, 0, 0]
bounding_box = [2, 2, 1]
orientation  = "E"

[[target]]
kind         = "ramp"
anchor       = [10, 0, 0]
bounding_box = [4, 2, 2]
orientation  = "N"
shell        = "boundary"
output       = "my-ramp.graphml"
`

func TestParseTargetSet(t *testing.T) {
	entries, err := Parse([]byte(sampleSet))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.Spec.Kind != KindBeam1Prism || first.ID != 0 || first.Output != "" {
		t.Errorf("entry 0: %+v", first)
	}
	second := entries[1]
	if second.Spec.Kind != KindRamp || second.ID != 1 {
		t.Errorf("entry 1: %+v", second)
	}
	if second.Spec.Anchor != (lattice.IntVec3{X: 10, Y: 0, Z: 0}) {
		t.Errorf("entry 1 anchor: %v", second.Spec.Anchor)
	}
	if second.Spec.Orientation != lattice.North {
		t.Errorf("entry 1 orientation: %v", second.Spec.Orientation)
	}
	if second.Spec.Shell != ShellBoundary {
		t.Errorf("entry 1 shell: %q", second.Spec.Shell)
	}
	if second.Output != "my-ramp.graphml" {
		t.Errorf("entry 1 output: %q", second.Output)
	}
}

func TestParseTargetSetErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"empty", "", errors.ErrCodeInvalidSpec},
		{"bad toml", "[[target]", errors.ErrCodeInvalidSpec},
		{
			"bad kind",
			"[[target]]\nkind = \"sphere\"\nbounding_box = [1,1,1]\norientation = \"E\"\n",
			errors.ErrCodeInvalidSpec,
		},
		{
			"bad orientation",
			"[[target]]\nkind = \"prism\"\nbounding_box = [1,1,1]\norientation = \"NE\"\n",
			errors.ErrCodeInvalidOrientation,
		},
		{
			"zero box",
			"[[target]]\nkind = \"prism\"\nbounding_box = [0,1,1]\norientation = \"E\"\n",
			errors.ErrCodeInvalidSpec,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if !errors.Is(err, tt.code) {
				t.Errorf("got %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.toml")
	if err := os.WriteFile(path, []byte(sampleSet), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}

	_, err = Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing file: got %v, want not found", err)
	}
}
