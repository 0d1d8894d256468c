// SPDX-License-Identifier: MIT
//
// File: degrees.go
// Role: boundary-walk degree accountant. Computes the degree sequence of the
// simplified template without building it.
//
// Node state:
//   - active:    the node survives in the template with the tracked degree;
//   - collapsed: the node was a non-head occurrence member and is gone.
//
// Algorithm (per occurrence, in order):
//  1. Non-head nodes become collapsed; the head becomes active with degree 0.
//  2. For every link from an occurrence node to a node outside the
//     occurrence, the outside endpoint loses one degree unit if active, the
//     original link is recorded once, and the slot is appended to the wiring.
//
// After all occurrences, heads are reset to degree 0 (a head may have been
// decremented as the outside endpoint of a later occurrence), every recorded
// link is mapped to (head-or-node, head-or-node), and each distinct mapped
// pair adds exactly one unit to its endpoints. Parallel copies of a pair are
// reported in Pairs.
//
// Complexity: O(V + Σ deg(occurrence nodes)) time and space.

package collapse

import (
	"fmt"

	"github.com/katalvlaran/motive/core"
)

const (
	methodUndirectedDegrees = "UndirectedDegrees"
	methodDirectedDegrees   = "DirectedDegrees"
)

type nodeState uint8

const (
	stateActive nodeState = iota
	stateCollapsed
)

// nodeEntry is the per-node accountant state. deg is meaningful only while
// the node is active; undirected graphs track their degree in deg.Out.
type nodeEntry struct {
	state nodeState
	deg   core.Degree
}

// PairCount is a collapsed template link and the number of original links
// that were rewritten onto it.
type PairCount struct {
	Link  core.Link
	Count int
}

// Accounting is the side information produced by the accountant.
type Accounting struct {
	// Pairs lists every distinct rewritten template link in first-seen order.
	Pairs []PairCount
	// Wiring holds, per occurrence, the slot of every boundary link end.
	Wiring [][]int
	// Rewritten is the number of distinct original links that were rewritten.
	Rewritten int
}

// Extras returns Count-1 for every pair: the multi-edge side channel.
func (a *Accounting) Extras() []int {
	extras := make([]int, len(a.Pairs))
	for i, p := range a.Pairs {
		extras[i] = p.Count - 1
	}

	return extras
}

// UndirectedAccounting carries the template degree sequence of an
// undirected graph.
type UndirectedAccounting struct {
	Accounting
	Degrees []int
}

// DirectedAccounting carries the template (in, out) sequence of a directed
// graph.
type DirectedAccounting struct {
	Accounting
	Degrees []core.Degree
}

// UndirectedDegrees runs the accountant on an undirected graph. base must be
// g.Degrees() (or an equal sequence). limit > 0 caps the number of rewritten
// links; zero means no cap.
//
// With no occurrences the result is a copy of base and an empty Accounting.
//
// Errors:
//   - ErrBadOccurrence, ErrDegreeLength, ErrLimitExceeded.
func UndirectedDegrees(g *core.Graph, base []int, occurrences [][]int, limit int) (*UndirectedAccounting, error) {
	if len(base) != g.Size() {
		return nil, fmt.Errorf("%s: len(base)=%d, size=%d: %w",
			methodUndirectedDegrees, len(base), g.Size(), ErrDegreeLength)
	}
	seeds := make([]core.Degree, len(base))
	for i, d := range base {
		seeds[i] = core.Degree{Out: d}
	}

	entries, acc, err := account(g, seeds, occurrences, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodUndirectedDegrees, err)
	}
	res := &UndirectedAccounting{Accounting: acc, Degrees: make([]int, 0, len(entries))}
	for _, e := range entries {
		if e.state == stateActive {
			res.Degrees = append(res.Degrees, e.deg.Out)
		}
	}

	return res, nil
}

// DirectedDegrees runs the accountant on a directed graph. base must be
// g.DirectedDegrees() (or an equal sequence). See UndirectedDegrees.
func DirectedDegrees(g *core.Graph, base []core.Degree, occurrences [][]int, limit int) (*DirectedAccounting, error) {
	if len(base) != g.Size() {
		return nil, fmt.Errorf("%s: len(base)=%d, size=%d: %w",
			methodDirectedDegrees, len(base), g.Size(), ErrDegreeLength)
	}

	entries, acc, err := account(g, base, occurrences, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDirectedDegrees, err)
	}
	res := &DirectedAccounting{Accounting: acc, Degrees: make([]core.Degree, 0, len(entries))}
	for _, e := range entries {
		if e.state == stateActive {
			res.Degrees = append(res.Degrees, e.deg)
		}
	}

	return res, nil
}

// account is shared by both variants; undirected degrees live in deg.Out.
func account(g *core.Graph, base []core.Degree, occurrences [][]int, limit int) ([]nodeEntry, Accounting, error) {
	occOf, _, err := index(g.Size(), occurrences)
	if err != nil {
		return nil, Accounting{}, err
	}
	directed := g.Directed()

	entries := make([]nodeEntry, len(base))
	for i, d := range base {
		entries[i] = nodeEntry{state: stateActive, deg: d}
	}
	if len(occurrences) == 0 {
		return entries, Accounting{}, nil
	}

	var (
		acc     = Accounting{Wiring: make([][]int, len(occurrences))}
		seen    = make(map[core.Link]struct{})
		rewired = make([]core.Link, 0)
	)
	record := func(l core.Link) error {
		if _, ok := seen[l]; ok {
			return nil
		}
		seen[l] = struct{}{}
		rewired = append(rewired, l)
		if limit > 0 && len(rewired) > limit {
			return fmt.Errorf("more than %d rewritten links: %w", limit, ErrLimitExceeded)
		}

		return nil
	}

	// Stage 1: walk the boundary of every occurrence.
	for o, occ := range occurrences {
		for slot, node := range occ {
			if slot == 0 {
				entries[node] = nodeEntry{state: stateActive}
			} else {
				entries[node] = nodeEntry{state: stateCollapsed}
			}
		}

		slots := make([]int, 0)
		for slot, node := range occ {
			out, err := g.Out(node)
			if err != nil {
				return nil, Accounting{}, err
			}
			for _, nb := range out {
				if occOf[nb] == o {
					continue
				}
				l := ordered(node, nb)
				if directed {
					entries[nb].decrementIn()
					l = core.Link{From: node, To: nb}
				} else {
					entries[nb].decrementOut()
				}
				if err := record(l); err != nil {
					return nil, Accounting{}, err
				}
				slots = append(slots, slot)
			}
			if !directed {
				continue
			}
			in, err := g.In(node)
			if err != nil {
				return nil, Accounting{}, err
			}
			for _, nb := range in {
				if occOf[nb] == o {
					continue
				}
				entries[nb].decrementOut()
				if err := record(core.Link{From: nb, To: node}); err != nil {
					return nil, Accounting{}, err
				}
				slots = append(slots, slot)
			}
		}
		acc.Wiring[o] = slots
	}

	// Stage 2: heads start the template with no links.
	for _, occ := range occurrences {
		entries[occ[0]] = nodeEntry{state: stateActive}
	}

	// Stage 3: count rewritten links per mapped pair, then add one template
	// link per distinct pair.
	mapped := func(i int) int {
		if o := occOf[i]; o != outside {
			return occurrences[o][0]
		}

		return i
	}
	pos := make(map[core.Link]int)
	for _, l := range rewired {
		var p core.Link
		if directed {
			p = core.Link{From: mapped(l.From), To: mapped(l.To)}
		} else {
			p = ordered(mapped(l.From), mapped(l.To))
		}
		if i, ok := pos[p]; ok {
			acc.Pairs[i].Count++
			continue
		}
		pos[p] = len(acc.Pairs)
		acc.Pairs = append(acc.Pairs, PairCount{Link: p, Count: 1})
	}
	for _, p := range acc.Pairs {
		if directed {
			entries[p.Link.From].deg.Out++
			entries[p.Link.To].deg.In++
		} else {
			entries[p.Link.From].deg.Out++
			entries[p.Link.To].deg.Out++
		}
	}
	acc.Rewritten = len(rewired)

	return entries, acc, nil
}

func (e *nodeEntry) decrementIn() {
	if e.state == stateActive {
		e.deg.In--
	}
}

func (e *nodeEntry) decrementOut() {
	if e.state == stateActive {
		e.deg.Out--
	}
}

func ordered(a, b int) core.Link {
	if a > b {
		a, b = b, a
	}

	return core.Link{From: a, To: b}
}
