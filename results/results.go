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

package results

import (
	"errors"

	"synsearch/freqs"
	"synsearch/search"

	"github.com/bytedance/sonic"
)

const (
	ResultTypePatternSearch ResultType = "patternSearch"
	ResultTypePOSFreqs      ResultType = "posFreqs"
	ResultTypeAnalyze       ResultType = "analyze"
	ResultTypeError         ResultType = "error"
)

type ResultType string

func (rt ResultType) String() string {
	return string(rt)
}

// SerializableResult is a value produced by a worker
// and sent back to API server via Redis.
type SerializableResult interface {
	Type() ResultType
	Err() error
}

// ----

type ErrorResult struct {
	Error string `json:"error"`
}

func (res *ErrorResult) Err() error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	return nil
}

func (res *ErrorResult) Type() ResultType {
	return ResultTypeError
}

func (res *ErrorResult) MarshalJSON() ([]byte, error) {
	return sonic.ConfigStd.Marshal(struct {
		Error      string     `json:"error"`
		ResultType ResultType `json:"resultType"`
	}{
		Error:      res.Error,
		ResultType: res.Type(),
	})
}

// ----

type PatternSearchResponse struct {
	Report     *search.MatchReport `json:"report"`
	NumMatches int                 `json:"numMatches"`
	ResultType ResultType          `json:"resultType"`
	Error      string              `json:"error,omitempty"`
}

// PatternSearch wraps a match report of a pattern search
// run over (a subset of) corpus articles.
type PatternSearch struct {
	Report *search.MatchReport
	Error  error
}

func (res *PatternSearch) Err() error {
	return res.Error
}

func (res *PatternSearch) Type() ResultType {
	return ResultTypePatternSearch
}

func (res *PatternSearch) MarshalJSON() ([]byte, error) {
	var numMatches int
	if res.Report != nil {
		numMatches = res.Report.NumMatches()
	}
	return sonic.ConfigStd.Marshal(PatternSearchResponse{
		Report:     res.Report,
		NumMatches: numMatches,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

type POSFreqsResponse struct {
	ArticleID  int                   `json:"articleId"`
	NumTokens  int64                 `json:"numTokens"`
	Freqs      freqs.POSFreqItemList `json:"freqs"`
	ResultType ResultType            `json:"resultType"`
	Error      string                `json:"error,omitempty"`
}

type POSFreqs struct {
	ArticleID int
	NumTokens int64
	Freqs     freqs.POSFreqItemList
	Error     error
}

func (res *POSFreqs) Err() error {
	return res.Error
}

func (res *POSFreqs) Type() ResultType {
	return ResultTypePOSFreqs
}

func (res *POSFreqs) MarshalJSON() ([]byte, error) {
	fr := make(freqs.POSFreqItemList, len(res.Freqs))
	for i, item := range res.Freqs {
		fr[i] = &freqs.POSFreqItem{
			Pos:  item.Pos,
			Freq: item.Freq,
			IPM:  float32(NormRound(float64(item.IPM))),
		}
	}
	return sonic.ConfigStd.Marshal(POSFreqsResponse{
		ArticleID:  res.ArticleID,
		NumTokens:  res.NumTokens,
		Freqs:      fr,
		ResultType: res.Type(),
		Error:      errToStr(res.Error),
	})
}

// ----

// Analyze reports a finished (re)annotation of an article
type Analyze struct {
	ArticleID    int
	NumSentences int
	NumTokens    int
	Error        error
}

func (res *Analyze) Err() error {
	return res.Error
}

func (res *Analyze) Type() ResultType {
	return ResultTypeAnalyze
}

func (res *Analyze) MarshalJSON() ([]byte, error) {
	return sonic.ConfigStd.Marshal(struct {
		ArticleID    int        `json:"articleId"`
		NumSentences int        `json:"numSentences"`
		NumTokens    int        `json:"numTokens"`
		ResultType   ResultType `json:"resultType"`
		Error        string     `json:"error,omitempty"`
	}{
		ArticleID:    res.ArticleID,
		NumSentences: res.NumSentences,
		NumTokens:    res.NumTokens,
		ResultType:   res.Type(),
		Error:        errToStr(res.Error),
	})
}
