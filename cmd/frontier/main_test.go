package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontier/dijkstra"
	"github.com/katalvlaran/frontier/prim_kruskal"
)

//	    (E)
//	  3/   \4
//	  /     \
//	(C)──10─(D)
//	 |       |
//	2|       |5
//	 |       |
//	(A)──4──(B)
const house = `
weighted: true
edges:
  - {from: A, to: B, weight: 4}
  - {from: A, to: C, weight: 2}
  - {from: B, to: D, weight: 5}
  - {from: C, to: D, weight: 10}
  - {from: C, to: E, weight: 3}
  - {from: E, to: D, weight: 4}
`

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "house.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestPath(t *testing.T) {
	g := writeGraph(t, house)
	for _, kind := range []string{"binary", "fibonacci"} {
		t.Run(kind, func(t *testing.T) {
			out, err := run(t, "path", "--graph", g, "--from", "A", "--to", "D", "--heap", kind)
			require.NoError(t, err)
			assert.Equal(t, "A -> B -> D\ndistance: 9\n", out)
		})
	}

	out, err := run(t, "path", "--graph", g, "--from", "A")
	require.NoError(t, err)
	assert.Equal(t, "A\t0\tA\n"+
		"C\t2\tA -> C\n"+
		"B\t4\tA -> B\n"+
		"E\t5\tA -> C -> E\n"+
		"D\t9\tA -> B -> D\n", out)

	out, err = run(t, "path", "--graph", g, "--from", "A", "--max-distance", "4")
	require.NoError(t, err)
	assert.Equal(t, "A\t0\tA\nC\t2\tA -> C\nB\t4\tA -> B\n", out)
}

func TestPath_Errors(t *testing.T) {
	g := writeGraph(t, house)

	_, err := run(t, "path", "--from", "A")
	assert.ErrorContains(t, err, "--graph is required")

	_, err = run(t, "path", "--graph", g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = run(t, "path", "--graph", g, "--from", "A", "--to", "Q")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	_, err = run(t, "path", "--graph", g, "--from", "A", "--heap", "pairing")
	assert.Error(t, err)

	_, err = run(t, "path", "--graph", g, "--from", "A", "--log-level", "loud")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestMST(t *testing.T) {
	g := writeGraph(t, house)
	want := "A - C\t2\nC - E\t3\nA - B\t4\nE - D\t4\ntotal: 13\n"
	for _, method := range []string{"kruskal", "prim", "forest"} {
		t.Run(method, func(t *testing.T) {
			out, err := run(t, "mst", "--graph", g, "--method", method, "--root", "A")
			require.NoError(t, err)
			assert.Equal(t, want, out)
		})
	}

	_, err := run(t, "mst", "--graph", g, "--method", "boruvka")
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestWalk(t *testing.T) {
	g := writeGraph(t, house+"vertices: [Z]\n")

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"closest", []string{"--order", "closest", "--from", "A"}, "A\t0\nC\t2\nB\t4\nE\t5\nD\t9\n"},
		{"bfs", []string{"--order", "bfs", "--from", "A"}, "A\t0\nB\t1\nC\t1\nD\t2\nE\t2\n"},
		{"all components", []string{"--order", "bfs"}, "A\t0\nB\t1\nC\t1\nD\t2\nE\t2\nZ\t0\n"},
		{"dfs", []string{"--order", "dfs", "--from", "Z"}, "Z\t-\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, append([]string{"walk", "--graph", g}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}

	_, err := run(t, "walk", "--graph", g, "--order", "random")
	assert.ErrorContains(t, err, `"random"`)
}

// brokenPipe accepts a fixed number of writes, then fails every later one.
type brokenPipe struct {
	budget int
	writes int
}

func (w *brokenPipe) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.budget {
		return 0, errors.New("write: broken pipe")
	}

	return len(p), nil
}

func TestOutputWriteError(t *testing.T) {
	g := writeGraph(t, house)
	cases := []struct {
		name string
		args []string
	}{
		{"path to", []string{"path", "--graph", g, "--from", "A", "--to", "D"}},
		{"path all", []string{"path", "--graph", g, "--from", "A"}},
		{"mst", []string{"mst", "--graph", g}},
		{"walk", []string{"walk", "--graph", g, "--order", "bfs"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := &brokenPipe{}
			cmd := newRootCmd()
			cmd.SetOut(w)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.args)

			err := cmd.Execute()
			assert.ErrorContains(t, err, "broken pipe")
			assert.Equal(t, 1, w.writes, "output stops at the first failed write")
		})
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	g := writeGraph(t, house)
	cfg := filepath.Join(t.TempDir(), "frontier.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("graph = \""+filepath.ToSlash(g)+"\"\nfrom = \"A\"\n"), 0o600))

	t.Setenv("FRONTIER_TO", "E")
	t.Setenv("FRONTIER_HEAP", "fib")
	out, err := run(t, "path", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "A -> C -> E\ndistance: 5\n", out)
}
