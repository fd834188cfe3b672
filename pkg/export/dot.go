package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/structlab/gmtgen/pkg/errors"
	"github.com/structlab/gmtgen/pkg/structure"
)

// dotColors maps catalog color tags to Graphviz fill colors.
var dotColors = map[string]string{
	"blue":   "lightblue",
	"green":  "palegreen",
	"cyan":   "lightcyan",
	"yellow": "khaki",
	"orange": "sandybrown",
	"grey":   "lightgrey",
}

// ToDOT converts a construction graph to Graphviz DOT format for inspection.
// Nodes are labeled with their block kind and anchor, filled with the
// catalog color, and virtual blocks are drawn dashed. Edge weights above 1
// (the long edges of multi-cell blocks) appear as edge labels.
func ToDOT(g *structure.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph structure {\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12];\n")
	buf.WriteString("\n")

	for _, vd := range g.Descriptors() {
		n, _ := g.NodeByDescriptor(vd)
		fill := dotColors[n.Kind.Color]
		if fill == "" {
			fill = "white"
		}
		style := "rounded,filled"
		if n.Kind.Virtual {
			style = "rounded,filled,dashed"
		}
		fmt.Fprintf(&buf, "  \"n%d\" [label=\"%s\\n%s\", fillcolor=%s, style=%q];\n",
			vd, n.Kind.Name, n.Anchor, fill, style)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if e.Weight > 1 {
			fmt.Fprintf(&buf, "  \"n%d\" -- \"n%d\" [label=\"%d\", penwidth=2];\n", e.From, e.To, e.Weight)
			continue
		}
		fmt.Fprintf(&buf, "  \"n%d\" -- \"n%d\";\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return buf.Bytes(), nil
}
