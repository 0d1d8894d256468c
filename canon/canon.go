// SPDX-License-Identifier: MIT
//
// File: canon.go
// Role: Canonizer interface and the exhaustive implementation.
// Complexity:
//   - Worst case O(k! · k²) for k nodes in a single invariant class with no
//     structurally equivalent pair; twins (stars, cliques, leaf fans) are
//     tried once per position, and class partitioning and pruning cut the
//     rest.

package canon

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/katalvlaran/motive/core"
)

// DefaultMaxSize is the largest graph Exhaustive accepts by default.
const DefaultMaxSize = 10

const methodCanonical = "Canonical"

// Form is the canonical form of a graph.
type Form struct {
	// Key is equal for two graphs iff they are isomorphic, labels, loops and
	// link multiplicities included.
	Key string
	// Order maps canonical positions to input node indices.
	Order []int
	// Graph is the input relabeled by Order. Treat as read-only.
	Graph *core.Graph
}

// Canonizer computes canonical forms. Implementations must be safe for
// concurrent use.
type Canonizer interface {
	Canonical(g *core.Graph) (Form, error)
}

// Exhaustive is an exact canonizer for small graphs.
type Exhaustive struct {
	// MaxSize bounds the input size; zero means DefaultMaxSize.
	MaxSize int
}

// Canonical returns the canonical form of g.
//
// Errors:
//   - ErrTooLarge if g has more than MaxSize nodes.
func (e Exhaustive) Canonical(g *core.Graph) (Form, error) {
	limit := e.MaxSize
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	n := g.Size()
	if n > limit {
		return Form{}, fmt.Errorf("%s: %d nodes > %d: %w", methodCanonical, n, limit, ErrTooLarge)
	}

	s := newSearch(g)
	s.place(0)

	cg, err := g.Induced(s.bestOrder)
	if err != nil {
		return Form{}, fmt.Errorf("%s: %w", methodCanonical, err)
	}

	return Form{Key: Key(cg), Order: s.bestOrder, Graph: cg}, nil
}

// signature is the isomorphism invariant used to partition nodes.
type signature struct {
	label   string
	in, out int
}

func less(a, b signature) bool {
	if a.label != b.label {
		return a.label < b.label
	}
	if a.out != b.out {
		return a.out > b.out
	}

	return a.in > b.in
}

// search is the branch-and-bound state. The code is laid out column by
// column, so placing position p appends exactly the cells between p and the
// positions before it. Each cell is a link count in width bytes, big-endian,
// so byte order matches numeric order.
type search struct {
	n         int
	directed  bool
	loops     bool
	width     int
	adj       [][]int
	twin      [][]bool // swapping the two nodes is an automorphism
	classOf   []int    // class of each canonical position
	classes   [][]int  // input nodes per class
	order     []int
	used      []bool
	code      []byte
	best      []byte
	bestOrder []int
	leaves    int
}

func newSearch(g *core.Graph) *search {
	n := g.Size()
	s := &search{
		n:         n,
		directed:  g.Directed(),
		loops:     g.Looped(),
		adj:       counts(g),
		order:     make([]int, n),
		used:      make([]bool, n),
		bestOrder: make([]int, 0, n),
	}

	labels := g.Labels()
	degrees := g.DirectedDegrees()
	sigs := make([]signature, n)
	nodes := make([]int, n)
	peak := 1
	for i := 0; i < n; i++ {
		sigs[i] = signature{label: labels[i], in: degrees[i].In, out: degrees[i].Out}
		nodes[i] = i
		for _, c := range s.adj[i] {
			peak = max(peak, c)
		}
	}
	s.width = 1
	for s.width < 8 && peak >= 1<<(8*s.width) {
		s.width++
	}

	sort.SliceStable(nodes, func(a, b int) bool { return less(sigs[nodes[a]], sigs[nodes[b]]) })
	for p, v := range nodes {
		if p == 0 || sigs[nodes[p-1]] != sigs[v] {
			s.classes = append(s.classes, nil)
		}
		c := len(s.classes) - 1
		s.classes[c] = append(s.classes[c], v)
		s.classOf = append(s.classOf, c)
	}

	s.twin = make([][]bool, n)
	for v := 0; v < n; v++ {
		s.twin[v] = make([]bool, n)
	}
	for _, class := range s.classes {
		for a, v := range class {
			for _, w := range class[a+1:] {
				if s.twins(v, w) {
					s.twin[v][w], s.twin[w][v] = true, true
				}
			}
		}
	}

	return s
}

// twins reports whether v and w have the same links to every other node,
// the same loops and the same links between them.
func (s *search) twins(v, w int) bool {
	if s.adj[v][v] != s.adj[w][w] || s.adj[v][w] != s.adj[w][v] {
		return false
	}
	for x := 0; x < s.n; x++ {
		if x == v || x == w {
			continue
		}
		if s.adj[v][x] != s.adj[w][x] || s.adj[x][v] != s.adj[x][w] {
			return false
		}
	}

	return true
}

// place assigns canonical position p and recurses while the code so far
// is not below the best code's prefix. Ties keep the first order found.
// A twin of a node already tried at p spans the same codes and is skipped.
func (s *search) place(p int) {
	if p == s.n {
		s.leaves++
		if s.best == nil || bytes.Compare(s.code, s.best) > 0 {
			s.best = append(s.best[:0], s.code...)
			s.bestOrder = append(s.bestOrder[:0], s.order...)
		}
		return
	}

	tried := make([]int, 0, len(s.classes[s.classOf[p]]))
	for _, v := range s.classes[s.classOf[p]] {
		if s.used[v] || s.twinOfAny(v, tried) {
			continue
		}
		tried = append(tried, v)
		s.used[v] = true
		s.order[p] = v

		start := len(s.code)
		for a := 0; a < p; a++ {
			s.cell(s.adj[s.order[a]][v])
			if s.directed {
				s.cell(s.adj[v][s.order[a]])
			}
		}
		if s.loops {
			s.cell(s.adj[v][v])
		}

		if s.best == nil || bytes.Compare(s.code, s.best[:len(s.code)]) >= 0 {
			s.place(p + 1)
		}

		s.code = s.code[:start]
		s.used[v] = false
	}
}

func (s *search) twinOfAny(v int, tried []int) bool {
	for _, u := range tried {
		if s.twin[u][v] {
			return true
		}
	}

	return false
}

// cell appends c in s.width bytes, most significant first.
func (s *search) cell(c int) {
	for b := s.width - 1; b >= 0; b-- {
		s.code = append(s.code, byte(c>>(8*b)))
	}
}
