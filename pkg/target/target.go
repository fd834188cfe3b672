package target

import (
	"fmt"

	"github.com/structlab/gmtgen/pkg/errors"
	"github.com/structlab/gmtgen/pkg/lattice"
	"github.com/structlab/gmtgen/pkg/structure"
)

// RampLengthRatio is the footprint length of a ramp2 block relative to a
// unit block. A ramp target's bounding box must be an exact multiple of this
// ratio along its orientation's major axis.
const RampLengthRatio = 2

// Target is one validated construction target, ready to generate. Construct
// with NewTarget; invalid specs are rejected there, before any block is
// placed.
type Target struct {
	spec   Spec
	id     int
	extent lattice.ArenaExtent
}

// NewTarget validates spec and binds it to a numeric id unique within the
// batch. Ramp targets whose major-axis dimension is not divisible by
// RampLengthRatio fail here with a precondition violation - a structure with
// fractional ramp blocks cannot be expressed in this model.
func NewTarget(spec Spec, id int) (*Target, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.Kind == KindRamp {
		size := spec.BoundingBox.X
		axis := "X"
		if spec.Orientation.IsNorthSouth() {
			size = spec.BoundingBox.Y
			axis = "Y"
		}
		if size%RampLengthRatio != 0 {
			return nil, errors.New(errors.ErrCodePrecondition,
				"%s size=%d not a multiple of ramp block length ratio=%d", axis, size, RampLengthRatio)
		}
	}
	return &Target{
		spec:   spec,
		id:     id,
		extent: lattice.NewArenaExtent(spec.Anchor, spec.BoundingBox),
	}, nil
}

// Spec returns the target's specification.
func (t *Target) Spec() Spec { return t.spec }

// ID returns the target's numeric id within its batch.
func (t *Target) ID() int { return t.id }

// Extent returns the bounding box derived from the spec.
func (t *Target) Extent() lattice.ArenaExtent { return t.extent }

// UUID returns the target's identifier in simulator input files, the kind
// tag followed by the numeric id (e.g. "ramp3").
func (t *Target) UUID() string {
	return fmt.Sprintf("%s%d", t.spec.Kind, t.id)
}

// Generate builds the target's construction graph: it runs the kind's
// generator over the bounding box and then the spec's shell pass, if any.
//
// The trace callback, when non-nil, receives a debug line per inserted block
// and edge. Generating a mixed-beam target always fails; there is no
// algorithm for it and silently producing an incomplete structure would be
// worse than refusing.
func (t *Target) Generate(trace func(format string, args ...any)) (*structure.Graph, error) {
	g := structure.New(t.extent)
	g.Trace = trace

	var err error
	switch t.spec.Kind {
	case KindRectPrism, KindBeam1Prism:
		err = genPrism(g, t.spec)
	case KindPyramid:
		err = genPyramid(g, t.spec)
	case KindRamp:
		err = genRamp(g, t.spec)
	case KindMixedBeam:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"mixed-beam construction not supported, manual specification required")
	default:
		return nil, errors.New(errors.ErrCodeInvalidKind, "unknown target kind %q", t.spec.Kind)
	}
	if err != nil {
		return nil, err
	}

	switch t.spec.Shell {
	case ShellBoundary:
		err = g.AddBoundaryShell()
	case ShellComplement:
		err = g.AddComplementShell()
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}
