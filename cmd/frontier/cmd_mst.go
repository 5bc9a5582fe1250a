package main

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trim21/errgo"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/prim_kruskal"
)

func newMSTCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree (prim, kruskal) or forest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMST(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.String("graph", "", "graph file (.yaml, .yml, .json, .toml)")
	f.String("method", prim_kruskal.MethodKruskal, "prim, kruskal or forest")
	f.String("root", "", "start vertex for prim (default: first vertex)")

	return cmd
}

func (a *app) runMST(out io.Writer) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	opts := prim_kruskal.DefaultOptions()
	prim_kruskal.WithMethod(a.cfg.String("method"))(&opts)
	prim_kruskal.WithRoot(a.cfg.String("root"))(&opts)
	prim_kruskal.WithHeap(a.cfg.Heap)(&opts)
	prim_kruskal.WithLogger(a.log)(&opts)
	if opts.Root == "" {
		opts.Root = lo.FirstOrEmpty(g.Vertices())
	}

	edges, total, err := prim_kruskal.Compute(g, opts)
	if err != nil {
		return err
	}

	lines := lo.Map(edges, func(e core.Edge, _ int) string {
		return fmt.Sprintf("%s - %s\t%g", e.From, e.To, e.Weight)
	})
	lines = append(lines, fmt.Sprintf("total: %g", total))
	for _, l := range lines {
		if _, err = fmt.Fprintln(out, l); err != nil {
			return errgo.Wrap(err, "failed to write output")
		}
	}

	return nil
}
