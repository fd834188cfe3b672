// Package export serializes construction graphs for downstream consumers.
//
// Three adapters are provided:
//   - GraphML, the attributed graph format the simulator's structural
//     analysis reads (four string node attributes plus a numeric edge weight)
//   - DOT via Graphviz, for human inspection of generated structures
//   - the simulator input manifest, one XML element per target
//
// All writers emit nodes and edges in ascending descriptor order, so
// identical graphs always serialize byte-identically.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/structlab/gmtgen/pkg/errors"
	"github.com/structlab/gmtgen/pkg/structure"
)

// Node attribute names in exported GraphML. These must match the property
// names the simulator attaches to its graph vertices exactly, or run-time
// errors result on the simulator side.
const (
	KeyBlockType = "block_type" // numeric block type code
	KeyAnchor    = "anchor"     // anchor coordinate as "x,y,z"
	KeyZRot      = "z_rot"      // rotation about Z in radians
	KeyColor     = "color"      // display color tag
	KeyWeight    = "weight"     // edge weight = block footprint length
)

// WriteGraphML serializes the graph as GraphML with the four-attribute node
// schema and weighted undirected edges.
func WriteGraphML(g *structure.Graph, w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	buf.WriteString(`<graphml xmlns="http://graphml.graphdrawing.org/xmlns">` + "\n")
	fmt.Fprintf(&buf, "  <key id=\"d0\" for=\"node\" attr.name=%q attr.type=\"string\"/>\n", KeyBlockType)
	fmt.Fprintf(&buf, "  <key id=\"d1\" for=\"node\" attr.name=%q attr.type=\"string\"/>\n", KeyAnchor)
	fmt.Fprintf(&buf, "  <key id=\"d2\" for=\"node\" attr.name=%q attr.type=\"string\"/>\n", KeyZRot)
	fmt.Fprintf(&buf, "  <key id=\"d3\" for=\"node\" attr.name=%q attr.type=\"string\"/>\n", KeyColor)
	fmt.Fprintf(&buf, "  <key id=\"d4\" for=\"edge\" attr.name=%q attr.type=\"long\"/>\n", KeyWeight)
	buf.WriteString("  <graph edgedefault=\"undirected\">\n")

	for _, vd := range g.Descriptors() {
		n, _ := g.NodeByDescriptor(vd)
		fmt.Fprintf(&buf, "    <node id=\"n%d\">\n", vd)
		fmt.Fprintf(&buf, "      <data key=\"d0\">%d</data>\n", n.Kind.Code)
		fmt.Fprintf(&buf, "      <data key=\"d1\">%s</data>\n", n.Anchor)
		fmt.Fprintf(&buf, "      <data key=\"d2\">%s</data>\n", n.Rotation.ZRotation())
		fmt.Fprintf(&buf, "      <data key=\"d3\">%s</data>\n", n.Kind.Color)
		buf.WriteString("    </node>\n")
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "    <edge source=\"n%d\" target=\"n%d\">\n", e.From, e.To)
		fmt.Fprintf(&buf, "      <data key=\"d4\">%d</data>\n", e.Weight)
		buf.WriteString("    </edge>\n")
	}

	buf.WriteString("  </graph>\n")
	buf.WriteString("</graphml>\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write graphml")
	}
	return nil
}

// MarshalGraphML returns the GraphML serialization as bytes.
func MarshalGraphML(g *structure.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraphML(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportGraphML writes the graph to a GraphML file at path. A path ending in
// ".gz" is gzip-compressed; large dense targets shrink by an order of
// magnitude.
func ExportGraphML(g *structure.Graph, path string) error {
	data, err := MarshalGraphML(g)
	if err != nil {
		return err
	}
	return WriteFile(data, path)
}

// WriteFile writes already-serialized graph data to path, gzip-compressing
// when the path ends in ".gz".
func WriteFile(data []byte, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()

	var w io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		zw = gzip.NewWriter(f)
		w = zw
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "finish %s", path)
		}
	}
	return nil
}
