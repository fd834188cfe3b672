package export

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/structlab/gmtgen/pkg/errors"
	"github.com/structlab/gmtgen/pkg/target"
)

// TargetMeta is the metadata record exposed to the simulator's input file
// for one generated target. Every field is formatted the way the simulator's
// loop functions parse it.
type TargetMeta struct {
	UUID        string // kind-prefixed numeric id, e.g. "ramp3"
	BoundingBox string // "x,y,z"
	Anchor      string // "x,y,z"
	Orientation string // cardinal tag
	GraphML     string // path to the exported graph file
}

// NewTargetMeta summarizes a target and its exported graph path.
func NewTargetMeta(t *target.Target, graphmlPath string) TargetMeta {
	ext := t.Extent()
	return TargetMeta{
		UUID:        t.UUID(),
		BoundingBox: ext.Dims().String(),
		Anchor:      ext.Origin().String(),
		Orientation: t.Spec().Orientation.String(),
		GraphML:     graphmlPath,
	}
}

// WriteManifest writes the construct_targets element consumed by the
// simulator's input file, one child element per target keyed by its UUID.
// The run id ties the manifest to the batch that produced it.
func WriteManifest(metas []TargetMeta, w io.Writer) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<construct_targets run_id=%q>\n", uuid.NewString())
	for _, m := range metas {
		fmt.Fprintf(&buf, "  <%s bounding_box=%q anchor=%q orientation=%q graphml=%q/>\n",
			m.UUID, m.BoundingBox, m.Anchor, m.Orientation, m.GraphML)
	}
	buf.WriteString("</construct_targets>\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write manifest")
	}
	return nil
}

// ExportManifest writes the manifest to a file at path.
func ExportManifest(metas []TargetMeta, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteManifest(metas, f)
}
