// Package pkg provides the core libraries for gmtgen construction graph
// generation.
//
// # Overview
//
// gmtgen turns declarative specifications of 3D modular structures into
// weighted connectivity graphs for a construction simulator. The pkg
// directory is organized along the data flow:
//
//  1. [lattice] - integer coordinates, extents and vertex descriptors
//  2. [catalog] - the fixed table of block kinds
//  3. [structure] - the mutable construction graph and shell passes
//  4. [target] - target specs, TOML target sets and shape generators
//  5. [export] - GraphML, DOT/Graphviz and manifest serialization
//  6. [cache] - graph caching (file, Redis, null backends)
//  7. [pipeline] - batch orchestration over a target set
//
// # Architecture
//
// The typical flow through gmtgen:
//
//	TOML target set
//	         ↓
//	    [target] package (validate specs, dispatch generators)
//	         ↓
//	    [structure] package (place blocks, wire weighted edges)
//	         ↓
//	    [export] package (serialize graphs and the manifest)
//	         ↓
//	    GraphML files + manifest.xml
//
// The [pipeline] package drives this flow for whole batches, consulting
// [cache] to skip regeneration of unchanged targets.
package pkg
