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

import "sort"

// Match is a pair of tokens connected by an edge satisfying a Pattern.
type Match struct {
	RootID  int
	ChildID int
}

func (m Match) less(other Match) bool {
	if m.ChildID != other.ChildID {
		return m.ChildID < other.ChildID
	}
	return m.RootID < other.RootID
}

// Find returns all the edges matching the pattern. As each pattern
// describes exactly one edge, this is a plain filter over the edges
// of the graph. The result is ordered by child ID, then by root ID.
// In case nothing matches, an empty slice is returned.
func Find(g *Graph, pattern Pattern) []Match {
	ans := make([]Match, 0, 4)
	for _, edge := range g.Edges() {
		if edge.Rel != pattern.Rel {
			continue
		}
		child, ok := g.Node(edge.From)
		if !ok || child.Pos != pattern.ChildPos {
			continue
		}
		root, ok := g.Node(edge.To)
		if !ok || root.Pos != pattern.RootPos {
			continue
		}
		ans = append(ans, Match{RootID: root.ID, ChildID: child.ID})
	}
	sort.Slice(ans, func(i, j int) bool { return ans[i].less(ans[j]) })
	return ans
}
