// Package core provides a thread-safe in-memory Graph that plays the role of
// the graph collaborator for the traversal engine: it answers "list vertices",
// "list walkable edges of a vertex", "edge endpoints" and "edge weight", and
// never needs to be touched by the algorithms themselves.
//
// The Graph G = (V,E) supports a mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); unweighted edges report DefaultWeight
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Monotonic Edge.ID generation (“e1”, “e2”, …)
//   - A Version() counter bumped by every mutation, so traversals can fail fast
//     when the graph changes under them
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) // O(1)
//	RemoveEdge(edgeID string) error     // O(1)
//	HasEdge(from, to string) bool       // O(1)
//	GetEdge(edgeID string) (*Edge, error)
//
//	// Traversal seam
//	Vertices() []string                     // O(V·log V), sorted
//	Neighbors(id string) ([]*Edge, error)   // O(d·log d), creation order
//	Endpoints(e *Edge) (string, string)     // O(1)
//	EdgeWeight(e *Edge) float64             // O(1)
//	Version() uint64                        // O(1)
//
// Neighbors(id) returns outgoing directed edges and every incident undirected
// edge; use Opposite(e, id) to step across an undirected edge stored in the
// other orientation.
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph, or NaN
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
package core
