// SPDX-License-Identifier: MPL-2.0

// Package dag provides directed graph operations for topological sorting
// and cycle detection. It is used by the load-order sequencer to order
// must-precede constraints between plugin descriptors.
package dag

import (
	"fmt"
	"sort"
	"strings"
)

type (
	// Cycle describes a set of nodes that cannot be topologically ordered.
	// Members lists every node caught behind some cycle; Path is one
	// concrete minimal cycle extracted for diagnostics (first node
	// repeated last).
	Cycle struct {
		Members []string
		Path    []string
	}

	// Graph is a directed graph for topological sorting. Nodes are
	// identified by string keys. An edge from A to B means A must come
	// before B. Ties between unconstrained nodes are broken by insertion
	// order, so callers add nodes in their preferred precedence order.
	Graph struct {
		// adjacency maps each node to its outgoing neighbors.
		adjacency map[string][]string
		// nodes tracks all nodes in insertion order.
		nodes []string
		// index maps node name to insertion position.
		index map[string]int
	}
)

// Error implements the error interface so a Cycle can be logged directly.
func (c *Cycle) Error() string {
	return fmt.Sprintf("circular ordering constraint: %s", strings.Join(c.Path, " -> "))
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		index:     make(map[string]int),
	}
}

// Contains reports whether the node is in the graph.
func (g *Graph) Contains(name string) bool {
	_, ok := g.index[name]
	return ok
}

// AddNode adds a node to the graph. If the node already exists, this is a no-op.
func (g *Graph) AddNode(name string) {
	if g.Contains(name) {
		return
	}
	g.index[name] = len(g.nodes)
	g.nodes = append(g.nodes, name)
}

// AddEdge adds a directed edge from -> to, meaning "from" must come before
// "to". Both nodes are implicitly added if they don't exist.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], to)
}

// Sort returns a topological order of the acyclic portion of the graph
// using Kahn's algorithm, iteratively with no recursion. Among nodes whose
// constraints are all satisfied, the one added to the graph earliest is
// emitted first, so the order is fully deterministic.
//
// If the graph contains cycles, the returned Cycle is non-nil: it lists
// every node left unordered plus one concrete cycle path. The returned
// order still covers the entire acyclic remainder, so callers can proceed
// with it and report the cycle members separately.
func (g *Graph) Sort() ([]string, *Cycle) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	inDegree := make(map[string]int, len(g.nodes))
	for _, node := range g.nodes {
		inDegree[node] = 0
	}
	for _, neighbors := range g.adjacency {
		for _, neighbor := range neighbors {
			inDegree[neighbor]++
		}
	}

	// ready holds insertion indices of nodes with no unmet constraint,
	// kept sorted so the lowest-index (highest-precedence) node pops first.
	var ready []int
	for i, node := range g.nodes {
		if inDegree[node] == 0 {
			ready = append(ready, i)
		}
	}

	var result []string
	for len(ready) > 0 {
		node := g.nodes[ready[0]]
		ready = ready[1:]
		result = append(result, node)

		for _, neighbor := range g.adjacency[node] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				idx := g.index[neighbor]
				pos := sort.SearchInts(ready, idx)
				ready = append(ready, 0)
				copy(ready[pos+1:], ready[pos:])
				ready[pos] = idx
			}
		}
	}

	if len(result) == len(g.nodes) {
		return result, nil
	}

	// Remaining nodes with non-zero in-degree are on a cycle or depend on
	// one (directly or transitively).
	residual := make(map[string]bool)
	var members []string
	for _, node := range g.nodes {
		if inDegree[node] > 0 {
			residual[node] = true
			members = append(members, node)
		}
	}

	return result, &Cycle{
		Members: members,
		Path:    g.extractCycle(members[0], residual),
	}
}

// extractCycle walks backwards from start through residual predecessors
// until a node repeats, then returns that loop in forward edge order.
// Every residual node has at least one residual predecessor (its unmet
// in-edges all come from unordered nodes), so the walk never dead-ends,
// and it visits each residual node at most once before repeating.
func (g *Graph) extractCycle(start string, residual map[string]bool) []string {
	// Reverse adjacency restricted to the residual set.
	preds := make(map[string]string, len(residual))
	for from, neighbors := range g.adjacency {
		if !residual[from] {
			continue
		}
		for _, to := range neighbors {
			if residual[to] {
				// One predecessor per node is enough for the walk.
				if _, ok := preds[to]; !ok {
					preds[to] = from
				}
			}
		}
	}

	seen := make(map[string]int)
	var trail []string

	node := start
	for {
		if at, ok := seen[node]; ok {
			loop := trail[at:]
			// trail is in predecessor order; reverse for forward edges.
			path := make([]string, 0, len(loop)+1)
			for i := len(loop) - 1; i >= 0; i-- {
				path = append(path, loop[i])
			}
			return append(path, loop[len(loop)-1])
		}
		seen[node] = len(trail)
		trail = append(trail, node)
		node = preds[node]
	}
}
