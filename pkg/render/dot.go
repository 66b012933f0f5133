package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts g to Graphviz DOT. Path edges are drawn bold; the goal
// node is filled green. An edge is emitted only when both ends are drawn.
func ToDOT(g *Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph search {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"SF Mono, Menlo, monospace\", fontsize=12];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n")
	buf.WriteString("\n")

	drawn := make(map[int]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		drawn[n.ID] = true
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.ID, strings.Join(nodeAttrs(n, g.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, n := range g.Nodes {
		if n.Parent < 0 || !drawn[n.Parent] {
			continue
		}
		if n.OnPath {
			fmt.Fprintf(&buf, "  n%d -> n%d [penwidth=2.5, color=\"#2e7d32\"];\n", n.Parent, n.ID)
		} else {
			fmt.Fprintf(&buf, "  n%d -> n%d [color=grey];\n", n.Parent, n.ID)
		}
	}

	if g.Omitted > 0 {
		fmt.Fprintf(&buf, "\n  omitted [shape=plaintext, style=\"\", label=%q];\n", fmt.Sprintf("+%d more nodes", g.Omitted))
	}
	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n Node, detailed bool) []string {
	label := n.Label
	if detailed {
		label = fmt.Sprintf("%s\nd=%d g=%s f=%s", n.Label, n.Depth, fmtFloat(n.Cost), fmtFloat(n.Eval))
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case n.Goal:
		attrs = append(attrs, "fillcolor=\"#a5d6a7\"", "penwidth=2")
	case n.OnPath:
		attrs = append(attrs, "fillcolor=\"#e8f5e9\"")
	}
	return attrs
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg header with one whose
// viewBox starts at the origin, so the image scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
