package target

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/structlab/gmtgen/pkg/errors"
	"github.com/structlab/gmtgen/pkg/lattice"
)

// Entry is one parsed target together with its output graph file name.
// The numeric id is the entry's position in the file, so UUIDs are stable
// across runs of the same target set.
type Entry struct {
	Spec   Spec
	ID     int
	Output string // graph file name relative to the output dir
}

// targetsFile mirrors the TOML structure of a target set file:
//
//	[[target]]
//	kind         = "ramp"
//	anchor       = [0, 0, 0]
//	bounding_box = [4, 2, 2]
//	orientation  = "E"
//	shell        = "boundary"   # optional
//	output       = "ramp0.graphml"  # optional, defaults to <uuid>.graphml
type targetsFile struct {
	Targets []targetEntry `toml:"target"`
}

type targetEntry struct {
	Kind        string `toml:"kind"`
	Anchor      [3]int `toml:"anchor"`
	BoundingBox [3]int `toml:"bounding_box"`
	Orientation string `toml:"orientation"`
	Shell       string `toml:"shell"`
	Output      string `toml:"output"`
}

// Parse decodes a TOML target set and validates every entry. Validation
// failures carry the entry index so a batch file defect is easy to locate.
func Parse(data []byte) ([]Entry, error) {
	var f targetsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "decode target set")
	}
	if len(f.Targets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "target set defines no targets")
	}

	entries := make([]Entry, 0, len(f.Targets))
	for i, raw := range f.Targets {
		kind, err := ParseKind(raw.Kind)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "target %d", i)
		}
		orient, err := lattice.ParseOrientation(raw.Orientation)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidOrientation, err, "target %d", i)
		}
		shell, err := ParseShellMode(raw.Shell)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "target %d", i)
		}

		spec := Spec{
			Kind:        kind,
			Anchor:      lattice.IntVec3{X: raw.Anchor[0], Y: raw.Anchor[1], Z: raw.Anchor[2]},
			BoundingBox: lattice.IntVec3{X: raw.BoundingBox[0], Y: raw.BoundingBox[1], Z: raw.BoundingBox[2]},
			Orientation: orient,
			Shell:       shell,
		}
		if err := spec.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "target %d", i)
		}
		entries = append(entries, Entry{Spec: spec, ID: i, Output: raw.Output})
	}
	return entries, nil
}

// Load reads and parses a TOML target set file.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read target set %s", path)
	}
	return Parse(data)
}
