// Package render draws search trees as Graphviz diagrams.
//
// # Overview
//
// A search run leaves behind its whole arena: every node that was
// generated, expanded or not. [FromTree] turns that arena into a [Graph]
// whose nodes carry depth, g and f, with the solution path marked. [ToDOT]
// writes the graph as a DOT digraph and [RenderSVG] lays it out in-process
// with [github.com/goccy/go-graphviz], so no Graphviz installation is
// needed.
//
//	g := render.FromTree(res.Tree, res.Goal, puzzle.State.String, render.Options{MaxNodes: 200})
//	svg, err := render.RenderSVG(ctx, render.ToDOT(g))
//
// # Size
//
// Trees of real searches easily reach tens of thousands of nodes, far more
// than a diagram can show. [Options.MaxNodes] keeps the earliest generated
// nodes plus the solution path; [Options.PathOnly] draws the path alone.
package render
