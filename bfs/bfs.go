// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/motive/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Size()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("bfs: BFS(%d): %w", start, ErrStartNotFound)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range n {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(node, d, parent int) {
	w.res.Depth[node] = d
	w.res.Parent[node] = parent
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	var (
		nbs []int
		err error
	)
	if w.opts.FollowDirection {
		nbs, err = w.graph.Out(item.node)
	} else {
		nbs, err = w.graph.Neighbors(item.node)
	}
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.node, err)
	}
	for _, nb := range nbs {
		if w.res.Depth[nb] >= 0 || !w.opts.FilterNeighbor(item.node, nb) {
			continue
		}
		w.enqueue(nb, next, item.node)
	}

	return nil
}
