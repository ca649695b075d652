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

package search

import (
	"context"
	"encoding/json"
	"testing"

	"synsearch/depgraph"
	"synsearch/document"
	"synsearch/merror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var verbSubj = depgraph.Pattern{RootPos: "VERB", Rel: "nsubj", ChildPos: "NOUN"}

func catSentence() document.Sentence {
	return document.Sentence{Tokens: []document.Token{
		{ID: 1, Text: "the", Lemma: "the", Pos: "DET", Head: 2, Rel: "det"},
		{ID: 2, Text: "cat", Lemma: "cat", Pos: "NOUN", Head: 3, Rel: "nsubj"},
		{ID: 3, Text: "sleeps", Lemma: "sleep", Pos: "VERB", Head: 0, Rel: "root"},
	}}
}

func dogSentence() document.Sentence {
	return document.Sentence{Tokens: []document.Token{
		{ID: 1, Text: "dogs", Lemma: "dog", Pos: "NOUN", Head: 2, Rel: "nsubj"},
		{ID: 2, Text: "bark", Lemma: "bark", Pos: "VERB", Head: 0, Rel: "root"},
		{ID: 3, Text: "and", Lemma: "and", Pos: "CCONJ", Head: 5, Rel: "cc"},
		{ID: 4, Text: "birds", Lemma: "bird", Pos: "NOUN", Head: 5, Rel: "nsubj"},
		{ID: 5, Text: "sing", Lemma: "sing", Pos: "VERB", Head: 2, Rel: "conj"},
	}}
}

func danglingSentence() document.Sentence {
	s := catSentence()
	s.Tokens[0].Head = 7
	return s
}

func TestRunExample(t *testing.T) {
	docs := []*document.Document{{ArticleID: 1, Sentences: []document.Sentence{catSentence()}}}
	report, err := NewSearcher(&Conf{NumWorkers: 2}).Run(context.Background(), docs, verbSubj)
	require.NoError(t, err)
	matches := report.Get(1, 0)
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].ID)
	require.Len(t, matches[0].Children, 1)
	assert.Equal(t, 2, matches[0].Children[0].ID)
	assert.Equal(t, 1, matches[0].Children[0].Children[0].ID)
	assert.Empty(t, report.Skipped)
}

func TestRunEmptyDocument(t *testing.T) {
	docs := []*document.Document{{ArticleID: 5, Sentences: []document.Sentence{}}}
	report, err := NewSearcher(nil).Run(context.Background(), docs, verbSubj)
	require.NoError(t, err)
	_, ok := report.Articles[5]
	assert.False(t, ok)
	assert.Empty(t, report.Skipped)
}

func TestRunSkipsMalformedSentence(t *testing.T) {
	docs := []*document.Document{{
		ArticleID: 2,
		Sentences: []document.Sentence{catSentence(), danglingSentence(), dogSentence()},
	}}
	report, err := NewSearcher(nil).Run(context.Background(), docs, verbSubj)
	require.NoError(t, err)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, 2, report.Skipped[0].ArticleID)
	assert.Equal(t, 1, report.Skipped[0].Sentence)
	assert.Equal(t, SkipReasonMalformed, report.Skipped[0].Kind)
	assert.Nil(t, report.Get(2, 1))
	assert.Len(t, report.Get(2, 0), 1)
	assert.Len(t, report.Get(2, 2), 2)
	assert.Equal(t, 3, report.NumMatches())
}

func TestRunSkipsCyclicSentence(t *testing.T) {
	sent := document.Sentence{Tokens: []document.Token{
		{ID: 1, Text: "a", Pos: "VERB", Head: 2, Rel: "nsubj"},
		{ID: 2, Text: "b", Pos: "NOUN", Head: 1, Rel: "nsubj"},
		{ID: 3, Text: "c", Pos: "VERB", Head: 0, Rel: "root"},
	}}
	docs := []*document.Document{{ArticleID: 1, Sentences: []document.Sentence{sent}}}
	report, err := NewSearcher(nil).Run(context.Background(), docs, verbSubj)
	require.NoError(t, err)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, SkipReasonCyclic, report.Skipped[0].Kind)
	assert.Empty(t, report.Articles)
}

func TestRunZeroMatches(t *testing.T) {
	docs := []*document.Document{{ArticleID: 1, Sentences: []document.Sentence{catSentence()}}}
	report, err := NewSearcher(nil).Run(
		context.Background(),
		docs,
		depgraph.Pattern{RootPos: "NOUN", Rel: "amod", ChildPos: "ADJ"},
	)
	require.NoError(t, err)
	assert.Empty(t, report.Articles)
	assert.Empty(t, report.Skipped)
	assert.Equal(t, 0, report.NumMatches())
}

func TestRunInvalidPattern(t *testing.T) {
	_, err := NewSearcher(nil).Run(
		context.Background(),
		[]*document.Document{},
		depgraph.Pattern{RootPos: "VERB", ChildPos: "NOUN"},
	)
	assert.ErrorAs(t, err, &merror.InputError{})
}

func TestRunIsIdempotent(t *testing.T) {
	var docs []*document.Document
	for i := 1; i <= 20; i++ {
		docs = append(docs, &document.Document{
			ArticleID: i,
			Sentences: []document.Sentence{dogSentence(), danglingSentence(), catSentence(), dogSentence()},
		})
	}
	s := NewSearcher(&Conf{NumWorkers: 3})
	r1, err := s.Run(context.Background(), docs, verbSubj)
	require.NoError(t, err)
	r2, err := s.Run(context.Background(), docs, verbSubj)
	require.NoError(t, err)
	data1, err := r1.ToJSON()
	require.NoError(t, err)
	data2, err := r2.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, string(data1), string(data2))
	assert.Len(t, r1.Skipped, 20)
	assert.Equal(t, 20*5, r1.NumMatches())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	docs := []*document.Document{{ArticleID: 1, Sentences: []document.Sentence{catSentence()}}}
	_, err := NewSearcher(nil).Run(ctx, docs, verbSubj)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportJSONFields(t *testing.T) {
	docs := []*document.Document{{ArticleID: 1, Sentences: []document.Sentence{catSentence()}}}
	report, err := NewSearcher(nil).Run(context.Background(), docs, verbSubj)
	require.NoError(t, err)
	data, err := report.ToJSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "articles")
	assert.Contains(t, decoded, "skipped")
	root := decoded["articles"].(map[string]any)["1"].(map[string]any)["0"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(3), root["id"])
	assert.Equal(t, "VERB", root["pos"])
	assert.Equal(t, "sleeps", root["text"])
	assert.Len(t, root["children"], 1)
}
