package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/frontier/dijkstra"
)

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Shortest paths from a source vertex (Dijkstra)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPath(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.String("graph", "", "graph file (.yaml, .yml, .json, .toml)")
	f.String("from", "", "source vertex (required)")
	f.String("to", "", "target vertex; print every reachable vertex when empty")
	f.Float64("max-distance", 0, "stop once distances exceed this value (0 = no limit)")

	return cmd
}

func (a *app) runPath(out io.Writer) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	opts := []dijkstra.Option{
		dijkstra.Source(a.cfg.String("from")),
		dijkstra.WithHeap(a.cfg.Heap),
		dijkstra.WithLogger(a.log),
	}
	if limit := a.cfg.Float64("max-distance"); limit > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(limit))
	}
	tree, err := dijkstra.ShortestPaths(g, opts...)
	if err != nil {
		return err
	}

	if to := a.cfg.String("to"); to != "" {
		path, err := tree.PathTo(to)
		if err != nil {
			return err
		}
		d, _ := tree.Distance(to)
		if _, err = fmt.Fprintf(out, "%s\ndistance: %g\n", strings.Join(path, " -> "), d); err != nil {
			return errgo.Wrap(err, "failed to write output")
		}

		return nil
	}

	for _, v := range tree.Order {
		d, _ := tree.Distance(v)
		path, _ := tree.PathTo(v)
		if _, err = fmt.Fprintf(out, "%s\t%g\t%s\n", v, d, strings.Join(path, " -> ")); err != nil {
			return errgo.Wrap(err, "failed to write output")
		}
	}

	return nil
}
