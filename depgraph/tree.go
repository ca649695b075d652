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

package depgraph

import (
	"fmt"

	"synsearch/document"
	"synsearch/merror"
)

// TreeNode is a node of a materialized subtree. Once built,
// the tree is not modified.
type TreeNode struct {
	ID       int         `json:"id"`
	Pos      string      `json:"pos"`
	Text     string      `json:"text"`
	Children []*TreeNode `json:"children"`
}

type arenaNode struct {
	id       int
	children []int
}

// Materialize builds a tree rooted at `rootID` containing all the tokens
// (transitively) governed by the root. Children are ordered by their IDs.
//
// The walk is iterative and keeps a set of visited tokens. Reaching
// an already visited token means the input contains a cycle
// and merror.CyclicDependencyError is returned (instead of a partial tree).
func Materialize(g *Graph, sent document.Sentence, rootID int) (*TreeNode, error) {
	if _, ok := g.Node(rootID); !ok {
		return nil, merror.MalformedSentenceError{
			Msg: fmt.Sprintf("match root %d not found in sentence", rootID),
		}
	}
	arena := []arenaNode{{id: rootID}}
	visited := map[int]struct{}{rootID: {}}
	stack := []int{0}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dep := range g.Dependents(arena[curr].id) {
			if _, ok := visited[dep]; ok {
				return nil, merror.CyclicDependencyError{TokenID: dep}
			}
			visited[dep] = struct{}{}
			arena = append(arena, arenaNode{id: dep})
			arena[curr].children = append(arena[curr].children, len(arena)-1)
			stack = append(stack, len(arena)-1)
		}
	}

	nodes := make([]TreeNode, len(arena))
	for i, an := range arena {
		node, _ := g.Node(an.id)
		tok, _ := sent.Token(an.id)
		nodes[i] = TreeNode{
			ID:       an.id,
			Pos:      node.Pos,
			Text:     tok.Text,
			Children: make([]*TreeNode, len(an.children)),
		}
	}
	for i, an := range arena {
		for j, chIdx := range an.children {
			nodes[i].Children[j] = &nodes[chIdx]
		}
	}
	return &nodes[0], nil
}
