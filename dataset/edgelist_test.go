package dataset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motive/builder"
	"github.com/katalvlaran/motive/core"
	"github.com/katalvlaran/motive/dataset"
)

const sample = `# a small network
% konect style comment

alice bob 1.0
bob carol
carol alice 17 1999
alice alice
bob alice
`

func TestReadEdgeList_Undirected(t *testing.T) {
	g, st, err := dataset.ReadEdgeListStats(strings.NewReader(sample), false)
	require.NoError(t, err)

	// Stage 1: names become dense indices in order of appearance.
	assert.Equal(t, []string{"alice", "bob", "carol"}, g.Labels())
	assert.False(t, g.Directed())

	// Stage 2: the loop and the reversed duplicate are dropped.
	assert.Equal(t, 3, g.NumLinks())
	assert.Equal(t, dataset.Stats{Lines: 8, Links: 3, Loops: 1, Duplicates: 1}, st)
}

func TestReadEdgeList_Directed(t *testing.T) {
	g, err := dataset.ReadEdgeList(strings.NewReader(sample), true)
	require.NoError(t, err)

	// bob->alice is a new link in a directed graph.
	assert.Equal(t, 4, g.NumLinks())
	assert.True(t, g.HasEdge(1, 0))
	assert.True(t, g.HasEdge(0, 1))
}

func TestReadEdgeList_Errors(t *testing.T) {
	_, err := dataset.ReadEdgeList(strings.NewReader("a b\nlonely\n"), false)
	assert.ErrorIs(t, err, dataset.ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")

	_, err = dataset.ReadEdgeList(strings.NewReader("# nothing\n\nx x\n"), false)
	assert.ErrorIs(t, err, dataset.ErrEmpty)
}

func TestWriteEdgeList_RoundTrip(t *testing.T) {
	// Stage 1: labeled graph keeps its names.
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithColumnLabels()}, builder.Cycle(3))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, dataset.WriteEdgeList(&buf, g))
	assert.Equal(t, "A B\nB C\nC A\n", buf.String())

	back, err := dataset.ReadEdgeList(&buf, true)
	require.NoError(t, err)
	assert.Equal(t, g.Labels(), back.Labels())
	assert.Equal(t, g.Links(), back.Links())

	// Stage 2: unlabeled nodes fall back to indices.
	u, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, dataset.WriteEdgeList(&buf, u))
	assert.Equal(t, "0 1\n1 2\n", buf.String())
}

func TestLoadEdgeList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	g, st, err := dataset.LoadEdgeList(path, false)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, 3, st.Links)

	_, _, err = dataset.LoadEdgeList(filepath.Join(t.TempDir(), "missing.txt"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
