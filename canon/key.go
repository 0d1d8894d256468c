// SPDX-License-Identifier: MIT
//
// File: key.go
// Role: compact string keys for graphs in canonical order.

package canon

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph/encoding/digraph6"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/motive/core"
)

const labelSeparator = "\x1f"

// Key encodes g as graph6 (undirected) or digraph6 (directed), in node
// index order. When g has self-loops or parallel links, "#" follows with a
// comma-separated "i-j*c" entry per loop cell and per pair linked more than
// once. Then comes "|" and the labels when any label is non-empty.
func Key(g *core.Graph) string {
	n := g.Size()
	var code string
	if g.Directed() {
		dg := simple.NewDirectedGraph()
		for i := 0; i < n; i++ {
			dg.AddNode(simple.Node(i))
		}
		for _, l := range g.Links() {
			if l.From != l.To {
				dg.SetEdge(dg.NewEdge(simple.Node(l.From), simple.Node(l.To)))
			}
		}
		code = string(digraph6.Encode(dg))
	} else {
		ug := simple.NewUndirectedGraph()
		for i := 0; i < n; i++ {
			ug.AddNode(simple.Node(i))
		}
		for _, l := range g.Links() {
			if l.From != l.To {
				ug.SetEdge(ug.NewEdge(simple.Node(l.From), simple.Node(l.To)))
			}
		}
		code = string(graph6.Encode(ug))
	}
	code += multiSuffix(g)

	labels := g.Labels()
	for _, l := range labels {
		if l != "" {
			return code + "|" + strings.Join(labels, labelSeparator)
		}
	}

	return code
}

// multiSuffix lists what graph6 cannot hold. It is empty for simple graphs.
// The graph6 code length is fixed by the node count and '#' is outside its
// alphabet, so the suffix never blurs into the code.
func multiSuffix(g *core.Graph) string {
	if !g.Looped() && !g.Multigraph() {
		return ""
	}
	c := counts(g)
	directed := g.Directed()

	var b []byte
	for i := range c {
		for j := range c[i] {
			if !directed && j < i {
				continue
			}
			if c[i][j] == 0 || (i != j && c[i][j] == 1) {
				continue
			}
			if b == nil {
				b = append(b, '#')
			} else {
				b = append(b, ',')
			}
			b = strconv.AppendInt(b, int64(i), 10)
			b = append(b, '-')
			b = strconv.AppendInt(b, int64(j), 10)
			b = append(b, '*')
			b = strconv.AppendInt(b, int64(c[i][j]), 10)
		}
	}

	return string(b)
}

// counts returns the link multiplicity matrix of g. Undirected matrices are
// symmetric and an undirected loop counts once.
func counts(g *core.Graph) [][]int {
	n := g.Size()
	c := make([][]int, n)
	for i := range c {
		c[i] = make([]int, n)
	}
	directed := g.Directed()
	for _, l := range g.Links() {
		c[l.From][l.To]++
		if !directed && l.From != l.To {
			c[l.To][l.From]++
		}
	}

	return c
}
