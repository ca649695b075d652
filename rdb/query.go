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

package rdb

import (
	"encoding/json"

	"synsearch/depgraph"
)

const (
	FuncPatternSearch = "patternSearch"
	FuncPOSFreqs      = "posFreqs"
	FuncAnalyze       = "analyze"
)

type Query struct {
	Channel string          `json:"channel"`
	Func    string          `json:"func"`
	Args    json.RawMessage `json:"args"`
}

func (q Query) ToJSON() (string, error) {
	ans, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(ans), nil
}

func DecodeQuery(q string) (Query, error) {
	var ans Query
	err := json.Unmarshal([]byte(q), &ans)
	return ans, err
}

// NewQuery creates a query for a worker function with encoded arguments
func NewQuery(fn string, args any) (Query, error) {
	data, err := json.Marshal(args)
	if err != nil {
		return Query{}, err
	}
	return Query{Func: fn, Args: data}, nil
}

// ------

type PatternSearchArgs struct {
	Pattern    depgraph.Pattern `json:"pattern"`
	ArticleIDs []int            `json:"articleIds"`
}

type POSFreqsArgs struct {
	ArticleID int `json:"articleId"`
}

type AnalyzeArgs struct {
	ArticleID int `json:"articleId"`
}
