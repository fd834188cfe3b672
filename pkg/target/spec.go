// Package target defines construction target specifications and the
// per-shape generators that turn a specification into a construction graph.
//
// A target is selected by its [Kind], a closed tagged variant dispatched
// through [Target.Generate]. Each generator enumerates lattice coordinates
// and inserts blocks in an order that respects the target's orientation, so
// adjacency edges always find their already-present neighbor.
package target

import (
	"fmt"
	"strings"

	"github.com/structlab/gmtgen/pkg/errors"
	"github.com/structlab/gmtgen/pkg/lattice"
)

// Kind selects which structure generator builds the target.
type Kind string

// The supported target kinds.
const (
	// KindRectPrism is a dense rectangular prism of unit blocks.
	KindRectPrism Kind = "rectprism"
	// KindBeam1Prism is a dense rectangular prism declared in terms of
	// beam1 blocks. Geometrically identical to KindRectPrism; kept as a
	// distinct kind so target UUIDs and simulator input stay stable.
	KindBeam1Prism Kind = "prism"
	// KindPyramid is a stepped pyramid of unit blocks.
	KindPyramid Kind = "pyramid"
	// KindRamp is a two-phase ramp of unit blocks and ramp2 blocks.
	KindRamp Kind = "ramp"
	// KindMixedBeam is a prism mixing beam lengths. It has no generation
	// algorithm; generating it always fails.
	KindMixedBeam Kind = "mixed"
)

// ParseKind parses a target kind tag.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindRectPrism:
		return KindRectPrism, nil
	case KindBeam1Prism:
		return KindBeam1Prism, nil
	case KindPyramid:
		return KindPyramid, nil
	case KindRamp:
		return KindRamp, nil
	case KindMixedBeam:
		return KindMixedBeam, nil
	}
	return "", errors.New(errors.ErrCodeInvalidKind, "unknown target kind %q", s)
}

// ShellMode selects the virtual padding pass applied after generation.
type ShellMode string

// Shell padding modes.
const (
	ShellNone       ShellMode = ""           // no padding
	ShellBoundary   ShellMode = "boundary"   // one-cell shell around real geometry
	ShellComplement ShellMode = "complement" // fill the whole unoccupied interior
)

// ParseShellMode parses a shell mode tag. The empty string means no shell.
func ParseShellMode(s string) (ShellMode, error) {
	switch ShellMode(strings.ToLower(strings.TrimSpace(s))) {
	case ShellNone:
		return ShellNone, nil
	case ShellBoundary:
		return ShellBoundary, nil
	case ShellComplement:
		return ShellComplement, nil
	}
	return ShellNone, errors.New(errors.ErrCodeInvalidSpec, "unknown shell mode %q", s)
}

// Spec is the declarative description of one construction target. It is
// read-only input to a generator and never mutated.
type Spec struct {
	Kind        Kind
	Anchor      lattice.IntVec3     // arena position of the bounding box origin
	BoundingBox lattice.IntVec3     // bounding box dimensions, all > 0
	Orientation lattice.Orientation // build orientation
	Shell       ShellMode           // optional virtual padding pass
}

// Validate checks the parts of the spec every kind shares. Kind-specific
// checks (the ramp divisibility rule) run in NewTarget.
func (s Spec) Validate() error {
	if s.BoundingBox.X <= 0 || s.BoundingBox.Y <= 0 || s.BoundingBox.Z <= 0 {
		return errors.New(errors.ErrCodeInvalidSpec,
			"bounding box %s must be strictly positive", s.BoundingBox)
	}
	switch s.Kind {
	case KindRectPrism, KindBeam1Prism, KindPyramid, KindRamp, KindMixedBeam:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidKind, "unknown target kind %q", s.Kind)
}

// String summarizes the spec for log output.
func (s Spec) String() string {
	return fmt.Sprintf("%s bb=%s anchor=%s orient=%s", s.Kind, s.BoundingBox, s.Anchor, s.Orientation)
}
