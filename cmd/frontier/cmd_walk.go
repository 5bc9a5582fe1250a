package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/traverse"
)

func newWalkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print vertices in closest-first, breadth-first or depth-first order",
		Long: "walk prints one vertex per line with its distance (closest), depth (bfs)\n" +
			"or parent (dfs). Without --from every component is walked in vertex order.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWalk(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.String("graph", "", "graph file (.yaml, .yml, .json, .toml)")
	f.String("from", "", "start vertex (default: all components)")
	f.String("order", "closest", "closest, bfs or dfs")

	return cmd
}

func (a *app) runWalk(out io.Writer) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	opts := []traverse.Option[string, *core.Edge]{
		traverse.WithHeap[string, *core.Edge](a.cfg.Heap),
		traverse.WithLogger[string, *core.Edge](a.log),
	}
	if from := a.cfg.String("from"); from != "" {
		opts = append(opts, traverse.WithStart[string, *core.Edge](from))
	}

	var (
		t    *traverse.Traversal[string, *core.Edge]
		note func(v string) string
	)
	switch order := a.cfg.String("order"); order {
	case "closest":
		cf, err := traverse.NewClosestFirst[string, *core.Edge](g, traverse.Sum, opts...)
		if err != nil {
			return err
		}
		t = cf.Traversal
		note = func(v string) string {
			p, _ := cf.Priority(v)

			return strconv.FormatFloat(p, 'g', -1, 64)
		}
	case "bfs":
		bf, err := traverse.NewBreadthFirst[string, *core.Edge](g, opts...)
		if err != nil {
			return err
		}
		t = bf.Traversal
		note = func(v string) string {
			d, _ := bf.Depth(v)

			return strconv.Itoa(d)
		}
	case "dfs":
		df, err := traverse.NewDepthFirst[string, *core.Edge](g, opts...)
		if err != nil {
			return err
		}
		t = df.Traversal
		note = func(v string) string {
			if p, ok := df.Parent(v); ok {
				return p
			}

			return "-"
		}
	default:
		return fmt.Errorf("unknown order %q, only closest/bfs/dfs is allowed", order)
	}

	for v := range t.All() {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", v, note(v)); err != nil {
			return errgo.Wrap(err, "failed to write output")
		}
	}

	return t.Err()
}
