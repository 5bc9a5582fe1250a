package traverse_test

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/heap"
	"github.com/katalvlaran/frontier/traverse"
)

type opt = traverse.Option[string, *core.Edge]

func start(v string) opt { return traverse.WithStart[string, *core.Edge](v) }

func withHeap(k heap.Kind) opt { return traverse.WithHeap[string, *core.Edge](k) }

var kinds = []heap.Kind{heap.KindBinary, heap.KindFibonacci}

// collect drains a traversal into a slice and requires a clean stop.
func collect(t *testing.T, next func() bool, vertex func() string, errf func() error) []string {
	t.Helper()
	var out []string
	for next() {
		out = append(out, vertex())
	}
	require.NoError(t, errf())

	return out
}

// edgeNames renders edges as "From→To" and sorts them.
func edgeNames(es []*core.Edge) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.From + "→" + e.To
	}
	sort.Strings(out)

	return out
}

// buildDijkstraGraph is the directed scenario with a back edge and a self-loop.
func buildDijkstraGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"V1", "V2", 1}, {"V2", "V3", 2}, {"V3", "V1", 4}, {"V3", "V4", 10}, {"V3", "V3", 5},
	} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

// buildPrimGraph is the undirected MST scenario of total weight 15.
func buildPrimGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"V1", "V2", 2}, {"V1", "V3", 3}, {"V2", "V4", 5}, {"V3", "V4", 20}, {"V4", "V5", 5}, {"V1", "V5", 100},
	} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestClosestFirst_ShortestPathTree(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			g := buildDijkstraGraph(t)
			cf, err := traverse.NewClosestFirst(g, traverse.Sum, start("V1"), withHeap(k))
			require.NoError(t, err)

			order := collect(t, cf.Next, cf.Vertex, cf.Err)
			assert.Equal(t, []string{"V1", "V2", "V3", "V4"}, order)
			assert.Equal(t, []string{"V1→V2", "V2→V3", "V3→V4"}, edgeNames(cf.TreeEdges()))

			for v, want := range map[string]float64{"V1": 0, "V2": 1, "V3": 3, "V4": 13} {
				got, ok := cf.Priority(v)
				require.True(t, ok, v)
				assert.Equal(t, want, got, v)
			}

			path, ok := cf.PathTo("V4")
			require.True(t, ok)
			require.Len(t, path, 3)
			assert.Equal(t, "V1", path[0].From)
			assert.Equal(t, "V4", path[2].To)

			root, ok := cf.PathTo("V1")
			require.True(t, ok)
			assert.Empty(t, root)
			_, ok = cf.TreeEdge("V1")
			assert.False(t, ok)
			p, ok := cf.Parent("V3")
			require.True(t, ok)
			assert.Equal(t, "V2", p)
			assert.Equal(t, traverse.AllExhausted, cf.State())
		})
	}
}

func TestClosestFirst_MinimumSpanningTree(t *testing.T) {
	for _, k := range kinds {
		for _, root := range []string{"V1", "V2", "V3", "V4", "V5"} {
			t.Run(k.String()+"/"+root, func(t *testing.T) {
				g := buildPrimGraph(t)
				cf, err := traverse.NewClosestFirst(g, traverse.EdgeOnly, start(root), withHeap(k))
				require.NoError(t, err)
				visited := collect(t, cf.Next, cf.Vertex, cf.Err)
				assert.Len(t, visited, 5)

				tree := cf.TreeEdges()
				total := 0.0
				for _, e := range tree {
					total += e.Weight
				}
				assert.Equal(t, 15.0, total)
				assert.Equal(t, []string{"V1→V2", "V1→V3", "V2→V4", "V4→V5"}, edgeNames(tree))
			})
		}
	}
}

func TestClosestFirst_NegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", -1)
	require.NoError(t, err)

	visited := 0
	cf, err := traverse.NewClosestFirst(g, traverse.Sum,
		start("A"), traverse.WithOnVisit[string, *core.Edge](func(string) { visited++ }))
	assert.ErrorIs(t, err, traverse.ErrNegativeWeight)
	assert.Nil(t, cf)
	assert.Zero(t, visited)
}

func TestClosestFirst_Radius(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 5)

	for _, k := range kinds {
		cf, err := traverse.NewClosestFirst(g, traverse.Sum, start("A"), withHeap(k),
			traverse.WithRadius[string, *core.Edge](2))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, collect(t, cf.Next, cf.Vertex, cf.Err))
		_, ok := cf.Priority("D")
		assert.False(t, ok)
	}

	assert.Panics(t, func() { traverse.WithRadius[string, *core.Edge](-1) })
}

// A vertex out of range of one root is still reached from a later, closer root.
func TestClosestFirst_RadiusCrossComponent(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "C", 10)
	_, _ = g.AddEdge("B", "C", 1)

	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			var roots []string
			cf, err := traverse.NewClosestFirst(g, traverse.Sum, withHeap(k),
				traverse.WithRadius[string, *core.Edge](5),
				traverse.WithOnComponentStart[string, *core.Edge](func(r string) { roots = append(roots, r) }))
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C"}, collect(t, cf.Next, cf.Vertex, cf.Err))
			assert.Equal(t, []string{"A", "B"}, roots)

			p, ok := cf.Priority("C")
			require.True(t, ok)
			assert.Equal(t, 1.0, p)
			parent, ok := cf.Parent("C")
			require.True(t, ok)
			assert.Equal(t, "B", parent)
			assert.Equal(t, []string{"B→C"}, edgeNames(cf.TreeEdges()))
		})
	}

	// Nothing closer exists: the far vertex becomes a root of its own.
	h := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = h.AddEdge("A", "B", 10)
	cf, err := traverse.NewClosestFirst(h, traverse.Sum, traverse.WithRadius[string, *core.Edge](5))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, collect(t, cf.Next, cf.Vertex, cf.Err))
	_, ok := cf.Parent("B")
	assert.False(t, ok)
	assert.Empty(t, cf.TreeEdges())
}

func TestClosestFirst_EdgeFilter(t *testing.T) {
	g := buildDijkstraGraph(t)
	cf, err := traverse.NewClosestFirst(g, traverse.Sum, start("V1"),
		traverse.WithEdgeFilter(func(_ string, e *core.Edge) bool { return e.Weight <= 4 }))
	require.NoError(t, err)
	assert.Equal(t, []string{"V1", "V2", "V3"}, collect(t, cf.Next, cf.Vertex, cf.Err))
}

func TestClosestFirst_CustomCombine(t *testing.T) {
	// Minimax: the priority is the heaviest edge on the best path.
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("S", "A", 1)
	_, _ = g.AddEdge("A", "T", 9)
	_, _ = g.AddEdge("S", "B", 5)
	_, _ = g.AddEdge("B", "T", 5)

	cf, err := traverse.NewClosestFirst(g, math.Max, start("S"))
	require.NoError(t, err)
	collect(t, cf.Next, cf.Vertex, cf.Err)
	p, ok := cf.Priority("T")
	require.True(t, ok)
	assert.Equal(t, 5.0, p)
	parent, _ := cf.Parent("T")
	assert.Equal(t, "B", parent)
}

func TestClosestFirst_UnweightedDefaultsToOne(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	cf, err := traverse.NewClosestFirst(g, nil, start("A"))
	require.NoError(t, err)
	collect(t, cf.Next, cf.Vertex, cf.Err)
	p, _ := cf.Priority("C")
	assert.Equal(t, 2.0, p)
}

func TestClosestFirst_UnknownHeap(t *testing.T) {
	g := buildPrimGraph(t)
	_, err := traverse.NewClosestFirst(g, traverse.Sum, withHeap(heap.Kind(42)))
	assert.ErrorIs(t, err, heap.ErrUnknownKind)
}

// randomGraph builds a seeded undirected weighted graph with integer weights.
func randomGraph(tb testing.TB, seed int64, n, m int) *core.Graph {
	tb.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for i := 0; i < n; i++ {
		require.NoError(tb, g.AddVertex(fmt.Sprintf("N%03d", i)))
	}
	for i := 0; i < m; i++ {
		a, b := r.Intn(n), r.Intn(n)
		if a == b {
			continue
		}
		_, err := g.AddEdge(fmt.Sprintf("N%03d", a), fmt.Sprintf("N%03d", b), float64(r.Intn(20)))
		require.NoError(tb, err)
	}

	return g
}

func TestClosestFirst_HeapEquivalence(t *testing.T) {
	type visit struct {
		V string
		P float64
	}
	run := func(g *core.Graph, k heap.Kind, c traverse.Combine) []visit {
		cf, err := traverse.NewClosestFirst(g, c, withHeap(k))
		require.NoError(t, err)
		var out []visit
		for v := range cf.All() {
			p, _ := cf.Priority(v)
			out = append(out, visit{v, p})
		}
		require.NoError(t, cf.Err())

		return out
	}
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(t, seed, 60, 180)
		for _, c := range []traverse.Combine{traverse.Sum, traverse.EdgeOnly} {
			bin := run(g, heap.KindBinary, c)
			fib := run(g, heap.KindFibonacci, c)
			assert.Len(t, bin, 60)
			if diff := gocmp.Diff(bin, fib); diff != "" {
				t.Fatalf("seed %d: binary vs fibonacci (-bin +fib):\n%s", seed, diff)
			}
		}
	}
}

func TestTraversal_CrossComponent(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "D", 0)
	require.NoError(t, g.AddVertex("E"))

	var starts, ends []string
	hooks := []opt{
		traverse.WithOnComponentStart[string, *core.Edge](func(r string) { starts = append(starts, r) }),
		traverse.WithOnComponentEnd[string, *core.Edge](func(r string) { ends = append(ends, r) }),
	}

	bf, err := traverse.NewBreadthFirst(g, hooks...)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, collect(t, bf.Next, bf.Vertex, bf.Err))
	assert.Equal(t, []string{"A", "C", "E"}, starts)
	assert.Equal(t, starts, ends)

	// A start vertex confines the traversal to its component by default.
	bf, err = traverse.NewBreadthFirst(g, start("C"))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, collect(t, bf.Next, bf.Vertex, bf.Err))

	// Unless cross-component is forced.
	bf, err = traverse.NewBreadthFirst(g, start("C"), traverse.WithCrossComponent[string, *core.Edge](true))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "A", "B", "E"}, collect(t, bf.Next, bf.Vertex, bf.Err))

	// And no start with cross-component off stays in the first component.
	cf, err := traverse.NewClosestFirst(g, traverse.EdgeOnly, traverse.WithCrossComponent[string, *core.Edge](false))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, collect(t, cf.Next, cf.Vertex, cf.Err))
}

func TestTraversal_States(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "D", 0)

	bf, err := traverse.NewBreadthFirst[string, *core.Edge](g)
	require.NoError(t, err)
	assert.Equal(t, traverse.NotStarted, bf.State())
	require.True(t, bf.Next())
	assert.Equal(t, traverse.InComponent, bf.State())
	require.True(t, bf.Next()) // B
	require.True(t, bf.Next()) // C, after crossing
	assert.Equal(t, traverse.InComponent, bf.State())
	require.True(t, bf.Next())
	assert.False(t, bf.Next())
	assert.Equal(t, traverse.AllExhausted, bf.State())
	assert.False(t, bf.Next(), "one-shot")
	assert.Equal(t, "all-exhausted", bf.State().String())

	empty, err := traverse.NewDepthFirst[string, *core.Edge](core.NewGraph())
	require.NoError(t, err)
	assert.False(t, empty.Next())
	assert.NoError(t, empty.Err())
}

func TestTraversal_AllEarlyBreak(t *testing.T) {
	g := buildPrimGraph(t)
	bf, err := traverse.NewBreadthFirst(g, start("V1"))
	require.NoError(t, err)
	for v := range bf.All() {
		if v == "V1" {
			break
		}
	}
	assert.Equal(t, traverse.InComponent, bf.State())
	assert.True(t, bf.Next(), "iteration resumes after break")
}

func TestTraversal_ConcurrentModification(t *testing.T) {
	g := buildPrimGraph(t)
	cf, err := traverse.NewClosestFirst(g, traverse.Sum, start("V1"))
	require.NoError(t, err)
	require.True(t, cf.Next())

	require.NoError(t, g.AddVertex("V9"))
	assert.False(t, cf.Next())
	assert.ErrorIs(t, cf.Err(), traverse.ErrConcurrentModification)
	assert.Equal(t, traverse.AllExhausted, cf.State())
}

func TestTraversal_ConstructorErrors(t *testing.T) {
	g := buildPrimGraph(t)
	_, err := traverse.NewClosestFirst(g, traverse.Sum, start("nope"))
	assert.ErrorIs(t, err, traverse.ErrStartNotFound)
	_, err = traverse.NewBreadthFirst(g, start("nope"))
	assert.ErrorIs(t, err, traverse.ErrStartNotFound)

	var nilGraph traverse.Graph[string, *core.Edge]
	_, err = traverse.NewClosestFirst(nilGraph, traverse.Sum)
	assert.ErrorIs(t, err, traverse.ErrNilGraph)
	_, err = traverse.NewDepthFirst(nilGraph)
	assert.ErrorIs(t, err, traverse.ErrNilGraph)

	var nilCore *core.Graph
	_, err = traverse.NewClosestFirst[string, *core.Edge](nilCore, traverse.Sum)
	assert.ErrorIs(t, err, traverse.ErrNilGraph)
	_, err = traverse.NewBreadthFirst[string, *core.Edge](nilCore)
	assert.ErrorIs(t, err, traverse.ErrNilGraph)
	_, err = traverse.New[string, *core.Edge](nilCore, nil)
	assert.ErrorIs(t, err, traverse.ErrNilGraph)

	_, err = traverse.New[string, *core.Edge](g, nil)
	assert.ErrorIs(t, err, traverse.ErrNilFrontier)
}

// diamond: A-B, A-C, B-D, C-D, D-E (undirected, creation order).
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	return g
}

func TestBreadthFirst_DepthAndParent(t *testing.T) {
	bf, err := traverse.NewBreadthFirst(diamond(t), start("A"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, collect(t, bf.Next, bf.Vertex, bf.Err))

	d, ok := bf.Depth("E")
	require.True(t, ok)
	assert.Equal(t, 3, d)
	p, ok := bf.Parent("D")
	require.True(t, ok)
	assert.Equal(t, "B", p)
	_, ok = bf.Parent("A")
	assert.False(t, ok)
}

func TestDepthFirst_Preorder(t *testing.T) {
	var edges []string
	df, err := traverse.NewDepthFirst(diamond(t), start("A"),
		traverse.WithOnEdge[string, *core.Edge](func(from, to string, _ *core.Edge) {
			edges = append(edges, from+to)
		}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, collect(t, df.Next, df.Vertex, df.Err))

	p, ok := df.Parent("C")
	require.True(t, ok)
	assert.Equal(t, "D", p, "C is entered from D, not from A")
	assert.Contains(t, edges, "DC")
}

// ring is a tiny non-string Graph: vertex i links to i+1 mod n.
type ring struct{ n int }

type arc struct{ from, to int }

func (r ring) Vertices() []int {
	vs := make([]int, r.n)
	for i := range vs {
		vs[i] = i
	}

	return vs
}

func (r ring) Neighbors(v int) ([]arc, error) { return []arc{{v, (v + 1) % r.n}}, nil }

func (ring) Endpoints(a arc) (int, int) { return a.from, a.to }

func (ring) EdgeWeight(a arc) float64 { return float64(a.to + 1) }

func TestClosestFirst_GenericGraph(t *testing.T) {
	cf, err := traverse.NewClosestFirst[int, arc](ring{n: 4}, traverse.Sum,
		traverse.WithStart[int, arc](2), traverse.WithHeap[int, arc](heap.KindFibonacci))
	require.NoError(t, err)
	var order []int
	for v := range cf.All() {
		order = append(order, v)
	}
	require.NoError(t, cf.Err())
	assert.Equal(t, []int{2, 3, 0, 1}, order)
	p, _ := cf.Priority(1)
	assert.Equal(t, 4.0+1+2, p)
}

func BenchmarkClosestFirst(b *testing.B) {
	g := randomGraph(b, 7, 1000, 5000)
	for _, k := range kinds {
		b.Run(k.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				cf, err := traverse.NewClosestFirst(g, traverse.Sum, withHeap(k))
				if err != nil {
					b.Fatal(err)
				}
				for cf.Next() {
				}
			}
		})
	}
}
