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
	"strings"

	"synsearch/merror"
)

const (
	patternSeparator = ","
)

// Pattern is a single-edge syntactic pattern: a token tagged `RootPos`
// governing a token tagged `ChildPos` via a relation `Rel`.
type Pattern struct {
	RootPos  string `json:"root"`
	Rel      string `json:"rel"`
	ChildPos string `json:"child"`
}

func (p Pattern) String() string {
	return strings.Join([]string{p.RootPos, p.Rel, p.ChildPos}, patternSeparator)
}

// Validate checks that all the pattern slots are filled in.
// Tag values themselves are not validated, an unknown tag
// simply never matches.
func (p Pattern) Validate() error {
	if p.RootPos == "" {
		return merror.InputError{Msg: "missing root part of speech in pattern"}
	}
	if p.Rel == "" {
		return merror.InputError{Msg: "missing dependency relation in pattern"}
	}
	if p.ChildPos == "" {
		return merror.InputError{Msg: "missing child part of speech in pattern"}
	}
	return nil
}

// ParsePattern parses a pattern in the form `ROOT,rel,CHILD`
// (e.g. `VERB,nsubj,NOUN`).
func ParsePattern(v string) (Pattern, error) {
	items := strings.Split(v, patternSeparator)
	if len(items) != 3 {
		return Pattern{}, merror.InputError{
			Msg: fmt.Sprintf("invalid pattern `%s`, expected ROOT,rel,CHILD", v),
		}
	}
	ans := Pattern{
		RootPos:  strings.TrimSpace(items[0]),
		Rel:      strings.TrimSpace(items[1]),
		ChildPos: strings.TrimSpace(items[2]),
	}
	return ans, ans.Validate()
}
