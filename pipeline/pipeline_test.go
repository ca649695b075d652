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

package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"synsearch/corpus"
	"synsearch/depgraph"
	"synsearch/document"
	"synsearch/merror"
	"synsearch/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAnalyzer keeps annotations in memory and produces
// the same "the cat sleeps" sentence for any text
type fakeAnalyzer struct {
	stored   map[int]*document.Document
	analyzed []string
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, texts []string) ([]*document.Document, error) {
	ans := make([]*document.Document, len(texts))
	for i, text := range texts {
		a.analyzed = append(a.analyzed, text)
		ans[i] = &document.Document{
			Sentences: []document.Sentence{
				{Tokens: []document.Token{
					{ID: 1, Text: "the", Pos: "DET", Head: 2, Rel: "det"},
					{ID: 2, Text: "cat", Pos: "NOUN", Head: 3, Rel: "nsubj"},
					{ID: 3, Text: "sleeps", Pos: "VERB", Head: 0, Rel: "root"},
				}},
			},
		}
	}
	return ans, nil
}

func (a *fakeAnalyzer) Serialize(article *corpus.Article) error {
	if article.Annotation == nil {
		return errors.New("no annotation")
	}
	a.stored[article.ID] = article.Annotation
	return nil
}

func (a *fakeAnalyzer) Deserialize(article *corpus.Article) (*document.Document, error) {
	doc, ok := a.stored[article.ID]
	if !ok {
		return nil, os.ErrNotExist
	}
	return doc, nil
}

func newFakeAnalyzer() *fakeAnalyzer {
	return &fakeAnalyzer{stored: make(map[int]*document.Document)}
}

func createCorpus(t *testing.T, numArticles int) *corpus.Manager {
	dir := t.TempDir()
	for i := 1; i <= numArticles; i++ {
		id := strconv.Itoa(i)
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, id+corpus.RawFileSuffix), []byte("The Cat  sleeps!"), 0644))
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, id+corpus.MetaFileSuffix), []byte(`{"id": `+id+`}`), 0644))
	}
	m, err := corpus.NewManager(dir)
	require.NoError(t, err)
	return m
}

func readMeta(t *testing.T, art *corpus.Article) map[string]json.RawMessage {
	data, err := os.ReadFile(art.MetaPath())
	require.NoError(t, err)
	var ans map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &ans))
	return ans
}

func TestTextProcessingRun(t *testing.T) {
	m := createCorpus(t, 2)
	anl := newFakeAnalyzer()
	require.NoError(t, NewTextProcessing(m, anl).Run(context.Background()))

	for _, art := range m.Articles() {
		data, err := os.ReadFile(art.CleanedPath())
		require.NoError(t, err)
		assert.Equal(t, "the cat sleeps", string(data))
		doc, ok := anl.stored[art.ID]
		require.True(t, ok)
		assert.Equal(t, art.ID, doc.ArticleID)
	}
	assert.Equal(t, []string{"The Cat  sleeps!", "The Cat  sleeps!"}, anl.analyzed)
}

func TestTextProcessingWithoutAnalyzer(t *testing.T) {
	m := createCorpus(t, 1)
	require.NoError(t, NewTextProcessing(m, nil).Run(context.Background()))
	art, _ := m.Article(1)
	_, err := os.Stat(art.CleanedPath())
	assert.NoError(t, err)
	err = NewTextProcessing(m, nil).Annotate(context.Background(), m.Articles())
	assert.Error(t, err)
}

func TestPOSFrequencyRun(t *testing.T) {
	m := createCorpus(t, 2)
	anl := newFakeAnalyzer()
	require.NoError(t, NewTextProcessing(m, anl).Run(context.Background()))

	ans, err := NewPOSFrequency(m, anl).Run(nil)
	require.NoError(t, err)
	assert.Len(t, ans, 2)
	assert.Equal(t, map[string]int{"DET": 1, "NOUN": 1, "VERB": 1}, ans[1])

	art, _ := m.Article(2)
	meta := readMeta(t, art)
	assert.Contains(t, meta, "id")
	var stored map[string]int
	require.NoError(t, json.Unmarshal(meta[corpus.MetaKeyPOSFrequencies], &stored))
	assert.Equal(t, ans[2], stored)
}

func TestPOSFrequencyUnknownArticle(t *testing.T) {
	m := createCorpus(t, 1)
	_, err := NewPOSFrequency(m, newFakeAnalyzer()).Run([]int{7})
	var nf ErrArticleNotFound
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, 7, nf.ID)
}

func TestPOSFrequencyNotAnnotated(t *testing.T) {
	m := createCorpus(t, 1)
	_, err := NewPOSFrequency(m, newFakeAnalyzer()).Run(nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPatternSearchRun(t *testing.T) {
	m := createCorpus(t, 3)
	anl := newFakeAnalyzer()
	require.NoError(t, NewTextProcessing(m, anl).Run(context.Background()))
	ps := NewPatternSearch(m, anl, search.NewSearcher(nil), 0)

	report, err := ps.Run(
		context.Background(),
		depgraph.Pattern{RootPos: "VERB", Rel: "nsubj", ChildPos: "NOUN"},
		nil,
		true,
	)
	require.NoError(t, err)
	assert.Len(t, report.Articles, 3)
	assert.Equal(t, 3, report.NumMatches())
	tree := report.Get(2, 0)
	require.Len(t, tree, 1)
	assert.Equal(t, "sleeps", tree[0].Text)

	art, _ := m.Article(3)
	meta := readMeta(t, art)
	var stored map[string][]*depgraph.TreeNode
	require.NoError(t, json.Unmarshal(meta[corpus.MetaKeyPatternMatches], &stored))
	require.Len(t, stored["0"], 1)
	assert.Equal(t, 3, stored["0"][0].ID)
}

func TestPatternSearchSelectedArticles(t *testing.T) {
	m := createCorpus(t, 3)
	anl := newFakeAnalyzer()
	require.NoError(t, NewTextProcessing(m, anl).Run(context.Background()))
	ps := NewPatternSearch(m, anl, search.NewSearcher(nil), 0)

	report, err := ps.Run(
		context.Background(),
		depgraph.Pattern{RootPos: "VERB", Rel: "nsubj", ChildPos: "NOUN"},
		[]int{2},
		false,
	)
	require.NoError(t, err)
	assert.Len(t, report.Articles, 1)
	assert.Contains(t, report.Articles, 2)

	art, _ := m.Article(2)
	assert.NotContains(t, readMeta(t, art), corpus.MetaKeyPatternMatches)
}

func TestPatternSearchMaxArticles(t *testing.T) {
	m := createCorpus(t, 3)
	anl := newFakeAnalyzer()
	require.NoError(t, NewTextProcessing(m, anl).Run(context.Background()))
	ps := NewPatternSearch(m, anl, search.NewSearcher(nil), 2)

	report, err := ps.Run(
		context.Background(),
		depgraph.Pattern{RootPos: "VERB", Rel: "nsubj", ChildPos: "NOUN"},
		nil,
		false,
	)
	require.NoError(t, err)
	assert.Len(t, report.Articles, 2)
	assert.NotContains(t, report.Articles, 3)
}

func TestPatternSearchNoMatchStoresEmpty(t *testing.T) {
	m := createCorpus(t, 1)
	anl := newFakeAnalyzer()
	require.NoError(t, NewTextProcessing(m, anl).Run(context.Background()))
	ps := NewPatternSearch(m, anl, search.NewSearcher(nil), 0)

	report, err := ps.Run(
		context.Background(),
		depgraph.Pattern{RootPos: "VERB", Rel: "obj", ChildPos: "NOUN"},
		nil,
		true,
	)
	require.NoError(t, err)
	assert.Empty(t, report.Articles)
	art, _ := m.Article(1)
	assert.JSONEq(t, `{}`, string(readMeta(t, art)[corpus.MetaKeyPatternMatches]))
}

func TestPatternSearchInvalidPattern(t *testing.T) {
	m := createCorpus(t, 1)
	ps := NewPatternSearch(m, newFakeAnalyzer(), search.NewSearcher(nil), 0)
	_, err := ps.Run(context.Background(), depgraph.Pattern{RootPos: "VERB"}, nil, true)
	var inpErr merror.InputError
	assert.ErrorAs(t, err, &inpErr)
}
