package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/frontier/bfs"
	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/traverse"
)

type benchGraph struct {
	name  string
	g     *core.Graph
	start string
	size  int // vertices + edges, for SetBytes
}

// grid is an m×m lattice with right and down edges.
func grid(m int) benchGraph {
	g := core.NewGraph()
	id := func(i, j int) string { return fmt.Sprintf("%d_%d", i, j) }
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i+1 < m {
				_, _ = g.AddEdge(id(i, j), id(i+1, j), 0)
			}
			if j+1 < m {
				_, _ = g.AddEdge(id(i, j), id(i, j+1), 0)
			}
		}
	}

	return benchGraph{name: fmt.Sprintf("grid%dx%d", m, m), g: g, start: id(0, 0), size: m*m + 2*m*(m-1)}
}

// chain is a path of n edges.
func chain(n int) benchGraph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}

	return benchGraph{name: fmt.Sprintf("chain%d", n), g: g, start: "v0", size: 2*n + 1}
}

// islands is k disjoint stars of s leaves each plus k isolated vertices,
// so a cross-component walk restarts 2k times.
func islands(k, s int) benchGraph {
	g := core.NewGraph()
	for c := 0; c < k; c++ {
		hub := fmt.Sprintf("c%d", c)
		for l := 0; l < s; l++ {
			_, _ = g.AddEdge(hub, fmt.Sprintf("c%d_%d", c, l), 0)
		}
		_ = g.AddVertex(fmt.Sprintf("z%d", c))
	}

	return benchGraph{name: fmt.Sprintf("islands%dx%d", k, s), g: g, start: "c0", size: k*(2*s+2)}
}

// BenchmarkSingleComponent compares the bfs facade with the raw traversals
// when only the start vertex's component is walked.
func BenchmarkSingleComponent(b *testing.B) {
	for _, bg := range []benchGraph{chain(10000), grid(100), islands(200, 20)} {
		start := traverse.WithStart[string, *core.Edge](bg.start)

		b.Run(bg.name+"/bfs.BFS", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(bg.size))
			for i := 0; i < b.N; i++ {
				_, _ = bfs.BFS(bg.g, bg.start)
			}
		})
		b.Run(bg.name+"/BreadthFirst", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(bg.size))
			for i := 0; i < b.N; i++ {
				bf, _ := traverse.NewBreadthFirst(bg.g, start)
				for bf.Next() {
				}
			}
		})
		b.Run(bg.name+"/DepthFirst", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(bg.size))
			for i := 0; i < b.N; i++ {
				df, _ := traverse.NewDepthFirst(bg.g, start)
				for df.Next() {
				}
			}
		})
	}
}

// BenchmarkCrossComponent walks every component without a start vertex.
func BenchmarkCrossComponent(b *testing.B) {
	for _, bg := range []benchGraph{islands(200, 20), islands(2000, 2)} {
		b.Run(bg.name+"/BreadthFirst", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(bg.size))
			for i := 0; i < b.N; i++ {
				bf, _ := traverse.NewBreadthFirst[string, *core.Edge](bg.g)
				for range bf.All() {
				}
			}
		})
		b.Run(bg.name+"/DepthFirst", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(bg.size))
			for i := 0; i < b.N; i++ {
				df, _ := traverse.NewDepthFirst[string, *core.Edge](bg.g)
				for range df.All() {
				}
			}
		})
	}
}

// BenchmarkBFS_Options measures the facade with hooks, a depth limit and a filter.
func BenchmarkBFS_Options(b *testing.B) {
	bg := grid(100)
	cases := []struct {
		name string
		opts []bfs.Option
	}{
		{"plain", nil},
		{"hooks", []bfs.Option{
			bfs.WithOnEnqueue(func(string, int) {}),
			bfs.WithOnDequeue(func(string, int) {}),
			bfs.WithOnVisit(func(string, int) error { return nil }),
		}},
		{"maxdepth50", []bfs.Option{bfs.WithMaxDepth(50)}},
		{"filter", []bfs.Option{bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "50_50" })}},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = bfs.BFS(bg.g, bg.start, tc.opts...)
			}
		})
	}
}
