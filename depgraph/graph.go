// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SYNSEARCH.
//
//  SYNSEARCH is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SYNSEARCH is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SYNSEARCH.  If not, see <https://www.gnu.org/licenses/>.

// Package depgraph turns dependency-annotated sentences into small
// directed graphs and searches them for single-edge syntactic patterns.
//
// Edges always run from a governed token to its head (child -> head).
// Both the matcher and the tree materializer rely on this direction;
// the materializer walks the reverse (head -> dependents) index.
package depgraph

import (
	"fmt"
	"sort"

	"synsearch/document"
	"synsearch/merror"
)

// Node is a graph vertex representing a single token.
type Node struct {
	ID  int
	Pos string
}

// Edge connects a token (From) with its head (To).
type Edge struct {
	From int
	To   int
	Rel  string
}

// Graph is a transient view of one sentence. It is created
// by Build and should not outlive the sentence it describes.
type Graph struct {
	nodes      map[int]Node
	heads      map[int]Edge
	dependents map[int][]int
	edges      []Edge
	root       int
}

// Node returns a node with the provided ID.
func (g *Graph) Node(id int) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Head returns the outgoing edge of a node. Only the root
// has no outgoing edge.
func (g *Graph) Head(id int) (Edge, bool) {
	e, ok := g.heads[id]
	return e, ok
}

// Dependents returns IDs of nodes governed by the node `id`
// in ascending order.
func (g *Graph) Dependents(id int) []int {
	return g.dependents[id]
}

// Edges returns all the edges ordered by their source node.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Root returns ID of the sentence root.
func (g *Graph) Root() int {
	return g.root
}

func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

func malformed(format string, args ...any) error {
	return merror.MalformedSentenceError{Msg: fmt.Sprintf(format, args...)}
}

// Build creates a dependency graph of a sentence. The function
// fails with merror.MalformedSentenceError in case the sentence
// has zero or more than one root, contains duplicate (or non-positive)
// token IDs or a token refers to a non-existing (or to itself as) head.
func Build(sent document.Sentence) (*Graph, error) {
	g := &Graph{
		nodes:      make(map[int]Node, len(sent.Tokens)),
		heads:      make(map[int]Edge, len(sent.Tokens)),
		dependents: make(map[int][]int),
		edges:      make([]Edge, 0, len(sent.Tokens)),
	}
	var numRoots int
	for _, tok := range sent.Tokens {
		if tok.ID < 1 {
			return nil, malformed("invalid token ID %d", tok.ID)
		}
		if _, ok := g.nodes[tok.ID]; ok {
			return nil, malformed("duplicate token ID %d", tok.ID)
		}
		g.nodes[tok.ID] = Node{ID: tok.ID, Pos: tok.Pos}
		if tok.IsRoot() {
			numRoots++
			g.root = tok.ID
		}
	}
	if numRoots == 0 {
		return nil, malformed("no root token found")
	}
	if numRoots > 1 {
		return nil, malformed("found %d root tokens", numRoots)
	}
	for _, tok := range sent.Tokens {
		if tok.IsRoot() {
			continue
		}
		if tok.Head == tok.ID {
			return nil, malformed("token %d is its own head", tok.ID)
		}
		if _, ok := g.nodes[tok.Head]; !ok {
			return nil, malformed("token %d refers to a non-existing head %d", tok.ID, tok.Head)
		}
		edge := Edge{From: tok.ID, To: tok.Head, Rel: tok.Rel}
		g.heads[tok.ID] = edge
		g.edges = append(g.edges, edge)
		g.dependents[tok.Head] = append(g.dependents[tok.Head], tok.ID)
	}
	sort.Slice(g.edges, func(i, j int) bool { return g.edges[i].From < g.edges[j].From })
	for _, deps := range g.dependents {
		sort.Ints(deps)
	}
	return g, nil
}
