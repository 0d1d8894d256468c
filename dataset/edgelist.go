// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: edge-list reader and writer.

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/motive/core"
)

const (
	methodReadEdgeList  = "ReadEdgeList"
	methodLoadEdgeList  = "LoadEdgeList"
	methodWriteEdgeList = "WriteEdgeList"

	maxLineBytes = 1 << 20
)

// Stats describes what ReadEdgeListStats kept and dropped.
type Stats struct {
	Lines      int
	Links      int
	Loops      int
	Duplicates int
}

// ReadEdgeList parses an edge list into a simple graph.
//
// Errors:
//   - ErrMalformedLine (with the line number), ErrEmpty, read errors.
func ReadEdgeList(r io.Reader, directed bool) (*core.Graph, error) {
	g, _, err := ReadEdgeListStats(r, directed)

	return g, err
}

// ReadEdgeListStats is ReadEdgeList that also reports line and drop counts.
func ReadEdgeListStats(r io.Reader, directed bool) (*core.Graph, Stats, error) {
	var (
		g     = core.NewGraph(core.WithDirected(directed))
		index = make(map[string]int)
		st    Stats
	)
	node := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		i := g.AddNode(name)
		index[name] = i

		return i
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		st.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, st, fmt.Errorf("%s: line %d: %q: %w", methodReadEdgeList, st.Lines, line, ErrMalformedLine)
		}
		from, to := node(fields[0]), node(fields[1])
		if from == to {
			st.Loops++
			continue
		}
		if g.HasEdge(from, to) {
			st.Duplicates++
			continue
		}
		if err := g.AddEdge(from, to); err != nil {
			return nil, st, fmt.Errorf("%s: line %d: %w", methodReadEdgeList, st.Lines, err)
		}
		st.Links++
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("%s: %w", methodReadEdgeList, err)
	}
	if st.Links == 0 {
		return nil, st, fmt.Errorf("%s: %w", methodReadEdgeList, ErrEmpty)
	}

	return g, st, nil
}

// LoadEdgeList reads the edge list at path.
func LoadEdgeList(path string, directed bool) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s: %w", methodLoadEdgeList, err)
	}
	defer f.Close()

	g, st, err := ReadEdgeListStats(f, directed)
	if err != nil {
		return nil, st, fmt.Errorf("%s(%s): %w", methodLoadEdgeList, path, err)
	}

	return g, st, nil
}

// WriteEdgeList writes one "from to" line per link in g.Links() order.
// Nodes are named by their labels when every label is a usable, unique
// name, and by their indices otherwise. Isolated nodes are not written.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	names := g.Labels()
	if !usable(names) {
		for i := range names {
			names[i] = strconv.Itoa(i)
		}
	}

	bw := bufio.NewWriter(w)
	for _, l := range g.Links() {
		if _, err := fmt.Fprintf(bw, "%s %s\n", names[l.From], names[l.To]); err != nil {
			return fmt.Errorf("%s: %w", methodWriteEdgeList, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteEdgeList, err)
	}

	return nil
}

// usable reports whether labels round-trip through ReadEdgeList.
func usable(labels []string) bool {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if l == "" || l[0] == '#' || l[0] == '%' || strings.ContainsFunc(l, unicode.IsSpace) {
			return false
		}
		if _, dup := seen[l]; dup {
			return false
		}
		seen[l] = struct{}{}
	}

	return true
}
