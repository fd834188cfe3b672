// Package structure implements the mutable construction graph for a single
// target.
//
// The graph describes every structural block of a target and the physical
// joints between them. Nodes are keyed by the vertex descriptor of the
// block's anchor cell; edges are unordered pairs weighted by the length of
// the block extending across them (1 for plain adjacency).
//
// A Graph is exclusively owned by the generator invocation that builds it.
// Construction is single-threaded and deterministic; once generation
// finishes the graph is handed, effectively immutable, to an exporter.
package structure

import (
	"cmp"
	"maps"
	"slices"

	"github.com/structlab/gmtgen/pkg/catalog"
	"github.com/structlab/gmtgen/pkg/errors"
	"github.com/structlab/gmtgen/pkg/lattice"
)

// Node is a structural block anchored at one lattice cell.
type Node struct {
	Kind     catalog.Block       // block kind from the catalog
	Anchor   lattice.IntVec3     // anchor cell, relative to the extent origin
	Rotation lattice.Orientation // rotation about the Z axis
}

// Edge is an unordered connection between two blocks. Weight equals the
// footprint length of the block extending across the edge, or 1 for plain
// lattice adjacency.
type Edge struct {
	From   lattice.VertexDescriptor
	To     lattice.VertexDescriptor
	Weight int
}

// edgeKey is the canonical form of an unordered vertex pair (low, high).
type edgeKey struct {
	a, b lattice.VertexDescriptor
}

func keyFor(a, b lattice.VertexDescriptor) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Graph is the construction graph of a single target.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// use; each generator invocation owns exactly one instance.
type Graph struct {
	extent lattice.ArenaExtent
	nodes  map[lattice.VertexDescriptor]Node
	edges  map[edgeKey]int // unordered pair -> weight

	// Trace, when non-nil, receives a debug line for every node and edge
	// insertion. Wired to the logger's debug level by the pipeline.
	Trace func(format string, args ...any)
}

// New creates an empty construction graph over the given extent.
func New(extent lattice.ArenaExtent) *Graph {
	return &Graph{
		extent: extent,
		nodes:  make(map[lattice.VertexDescriptor]Node),
		edges:  make(map[edgeKey]int),
	}
}

// Extent returns the bounding box the graph was built over.
func (g *Graph) Extent() lattice.ArenaExtent { return g.extent }

// NodeCount returns the number of blocks in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of joints in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the block anchored at the given coordinate, if any.
func (g *Graph) Node(c lattice.IntVec3) (Node, bool) {
	n, ok := g.nodes[g.extent.Descriptor(c)]
	return n, ok
}

// NodeByDescriptor returns the block at the given vertex descriptor, if any.
func (g *Graph) NodeByDescriptor(vd lattice.VertexDescriptor) (Node, bool) {
	n, ok := g.nodes[vd]
	return n, ok
}

// Descriptors returns the descriptors of all blocks in ascending order.
// The ordering makes exports and shell passes deterministic.
func (g *Graph) Descriptors() []lattice.VertexDescriptor {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Edges returns all joints sorted by their canonical (low, high) vertex pair.
func (g *Graph) Edges() []Edge {
	keys := make([]edgeKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(x, y edgeKey) int {
		if x.a != y.a {
			return cmp.Compare(x.a, y.a)
		}
		return cmp.Compare(x.b, y.b)
	})
	edges := make([]Edge, len(keys))
	for i, k := range keys {
		edges[i] = Edge{From: k.a, To: k.b, Weight: g.edges[k]}
	}
	return edges
}

// Weight returns the weight of the joint between two vertex descriptors,
// or 0 if no such joint exists.
func (g *Graph) Weight(a, b lattice.VertexDescriptor) int {
	return g.edges[keyFor(a, b)]
}

// AddBlock inserts a block of the given kind at the anchor coordinate.
//
// Inserting into an occupied cell is a precondition violation: structure
// specifications must not overlap blocks, so the duplicate surfaces as an
// error instead of being silently dropped.
//
// For kinds longer than one cell, the block's far end (the extent neighbor,
// kind.Length cells along the rotation's forward direction) is connected by
// an edge weighted with the block length. If no block occupies the far end
// yet and it lies inside the bounding box, a virtual placeholder is
// synthesized there so the long edge always has a terminus; a far end outside
// the bounding box means no terminus and no long edge, the same "no edge
// added" treatment every out-of-bounds neighbor gets.
//
// Independently, every lattice-adjacent neighbor that already holds a block
// is connected with a weight-1 edge. Neighbors not yet present are skipped;
// the edge appears later when the other endpoint is inserted, which makes
// the final connectivity independent of insertion order.
func (g *Graph) AddBlock(kind catalog.Block, anchor lattice.IntVec3, rot lattice.Orientation) error {
	vd := g.extent.Descriptor(anchor)
	if _, occupied := g.nodes[vd]; occupied {
		return errors.New(errors.ErrCodePrecondition, "vertex at %s already occupied", anchor)
	}
	g.nodes[vd] = Node{Kind: kind, Anchor: anchor, Rotation: rot}
	g.tracef("add %s anchor: %d -> %s", kind.Name, vd, anchor)

	forward := rot.Forward()
	if kind.Length > 1 {
		far := anchor.Add(forward.Scale(kind.Length))
		if g.extent.InBounds(far) {
			fvd := g.extent.Descriptor(far)
			if _, ok := g.nodes[fvd]; !ok {
				g.nodes[fvd] = Node{Kind: catalog.VBeam1, Anchor: far, Rotation: rot}
				g.tracef("add virtual terminus: %d -> %s", fvd, far)
			}
			g.edges[keyFor(vd, fvd)] = kind.Length
			g.tracef("add %s extent edge: %s -> %s weight=%d", kind.Name, anchor, far, kind.Length)
		}
	}

	for _, step := range lattice.Neighbors {
		if kind.Length > 1 && step == forward {
			continue // consumed by the extent-neighbor edge
		}
		c := anchor.Add(step)
		if !g.extent.InBounds(c) {
			continue
		}
		nvd := g.extent.Descriptor(c)
		if _, ok := g.nodes[nvd]; !ok {
			continue
		}
		g.edges[keyFor(vd, nvd)] = 1
		g.tracef("add %s edge: %s -> %s", kind.Name, anchor, c)
	}
	return nil
}

// RemoveBlock removes the block anchored at the given coordinate along with
// all incident edges. Removing a block that does not exist is a precondition
// violation.
func (g *Graph) RemoveBlock(c lattice.IntVec3) error {
	vd := g.extent.Descriptor(c)
	if _, ok := g.nodes[vd]; !ok {
		return errors.New(errors.ErrCodePrecondition, "no vertex at %s to remove", c)
	}
	delete(g.nodes, vd)
	for k := range g.edges {
		if k.a == vd || k.b == vd {
			delete(g.edges, k)
		}
	}
	g.tracef("remove block: %d -> %s", vd, c)
	return nil
}

func (g *Graph) tracef(format string, args ...any) {
	if g.Trace != nil {
		g.Trace(format, args...)
	}
}
