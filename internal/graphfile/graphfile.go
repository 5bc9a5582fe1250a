// Package graphfile loads core graphs from YAML, JSON or TOML descriptions.
//
//	directed: false
//	weighted: true
//	vertices: [Z]
//	edges:
//	  - {from: A, to: B, weight: 4}
//	  - {from: B, to: C, weight: 1, directed: true}
//
// Listing a vertex is only needed for isolated ones; edge endpoints are added
// on the fly. A per-edge "directed" switches the graph to mixed mode.
package graphfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/trim21/errgo"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/frontier/core"
)

// ErrUnknownFormat is returned for file extensions other than
// .yaml, .yml, .json and .toml.
var ErrUnknownFormat = errors.New("graphfile: unknown format")

// File is the on-disk shape of a graph.
type File struct {
	Directed bool     `yaml:"directed" toml:"directed"`
	Weighted bool     `yaml:"weighted" toml:"weighted"`
	Loops    bool     `yaml:"loops" toml:"loops"`
	Multi    bool     `yaml:"multi" toml:"multi"`
	Vertices []string `yaml:"vertices" toml:"vertices"`
	Edges    []Edge   `yaml:"edges" toml:"edges"`
}

// Edge describes one edge. Directed overrides the graph default when set.
type Edge struct {
	From     string  `yaml:"from" toml:"from"`
	To       string  `yaml:"to" toml:"to"`
	Weight   float64 `yaml:"weight" toml:"weight"`
	Directed *bool   `yaml:"directed" toml:"directed"`
}

// Load reads and decodes path, choosing the decoder by extension, and builds the graph.
// JSON goes through the YAML decoder, which accepts it as a subset.
func Load(path string) (*core.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errgo.Wrap(err, "failed to read graph file")
	}

	f, err := Decode(filepath.Ext(path), raw)
	if err != nil {
		return nil, err
	}

	return f.Build()
}

// Decode parses raw according to ext (".yaml", ".yml", ".json" or ".toml").
func Decode(ext string, raw []byte) (File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".json":
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return File{}, errgo.Wrap(err, "failed to parse graph file")
		}
	case ".toml":
		if err := toml.Unmarshal(raw, &f); err != nil {
			return File{}, errgo.Wrap(err, "failed to parse graph file")
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return f, nil
}

// Build creates the described graph. Zero weights on a weighted graph are kept
// as zero; on an unweighted graph every weight must be zero.
func (f File) Build() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(f.Directed)}
	if f.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if f.Loops {
		opts = append(opts, core.WithLoops())
	}
	if f.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	for _, e := range f.Edges {
		if e.Directed != nil {
			opts = append(opts, core.WithMixedEdges())

			break
		}
	}

	g := core.NewGraph(opts...)
	for _, v := range f.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphfile: vertex %q: %w", v, err)
		}
	}
	for i, e := range f.Edges {
		var eopts []core.EdgeOption
		if e.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.Directed))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("graphfile: edge #%d %s-%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
