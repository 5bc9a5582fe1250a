package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontier/core"
	"github.com/katalvlaran/frontier/internal/config"
	"github.com/katalvlaran/frontier/internal/graphfile"
	"github.com/katalvlaran/frontier/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app carries the merged settings from PersistentPreRunE into the subcommands.
type app struct {
	cfg config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:   "frontier",
		Short: "Closest-first graph traversal: shortest paths, spanning trees, walks",
		Long: "frontier runs Dijkstra, Prim/Kruskal and plain walks over a graph file.\n" +
			"Every flag can also be set as FRONTIER_<FLAG> or in the --config file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (.toml, .yaml, .json)")
	pf.String("heap", "binary", "priority queue: binary or fibonacci")
	pf.String("log-level", "error", "log level: trace/debug/info/warn/error")
	pf.Bool("log-json", false, "log as json format")

	root.AddCommand(newPathCmd(a), newMSTCmd(a), newWalkCmd(a))
	root.Version = version

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	l, err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, l

	return nil
}

// loadGraph reads the file named by --graph.
func (a *app) loadGraph() (*core.Graph, error) {
	path := a.cfg.String("graph")
	if path == "" {
		return nil, fmt.Errorf("--graph is required")
	}
	g, err := graphfile.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug().
		Str("path", path).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Msg("graph loaded")

	return g, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
