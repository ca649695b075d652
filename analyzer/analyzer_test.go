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

package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"synsearch/corpus"
	"synsearch/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catCoNLLU = "1\tthe\tthe\tDET\t_\t_\t2\tdet\t_\t_\n" +
	"2\tcat\tcat\tNOUN\t_\t_\t3\tnsubj\t_\t_\n" +
	"3\tsleeps\tsleep\tVERB\t_\t_\t0\troot\t_\t_\n\n"

func TestAnalyzeWithEchoCommand(t *testing.T) {
	a := NewCoNLLUCommand(&Conf{Cmd: []string{"cat"}, TimeoutSecs: 10})
	docs, err := a.Analyze(context.Background(), []string{catCoNLLU, catCoNLLU + catCoNLLU})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Len(t, docs[0].Sentences, 1)
	assert.Len(t, docs[1].Sentences, 2)
	assert.Equal(t, "sleeps", docs[0].Sentences[0].Tokens[2].Text)
}

func TestAnalyzeNoCommand(t *testing.T) {
	a := NewCoNLLUCommand(&Conf{})
	_, err := a.Analyze(context.Background(), []string{"text"})
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestAnalyzeFailingCommand(t *testing.T) {
	a := NewCoNLLUCommand(&Conf{Cmd: []string{"false"}})
	_, err := a.Analyze(context.Background(), []string{"text"})
	assert.Error(t, err)
}

func TestSerializeDeserialize(t *testing.T) {
	dir := t.TempDir()
	art := corpus.NewArticle(dir, 4)
	art.Annotation = &document.Document{
		Sentences: []document.Sentence{{Tokens: []document.Token{
			{ID: 1, Text: "cat", Lemma: "cat", Pos: "NOUN", Head: 2, Rel: "nsubj"},
			{ID: 2, Text: "sleeps", Lemma: "sleep", Pos: "VERB", Head: 0, Rel: "root"},
		}}},
	}
	a := NewCoNLLUCommand(&Conf{})
	require.NoError(t, a.Serialize(art))
	_, err := os.Stat(filepath.Join(dir, "4_conllu.conllu"))
	require.NoError(t, err)

	doc, err := a.Deserialize(art)
	require.NoError(t, err)
	assert.Equal(t, 4, doc.ArticleID)
	assert.Equal(t, art.Annotation.Sentences, doc.Sentences)
}

func TestSerializeWithoutAnnotation(t *testing.T) {
	a := NewCoNLLUCommand(&Conf{})
	err := a.Serialize(corpus.NewArticle(t.TempDir(), 1))
	assert.ErrorIs(t, err, ErrNoAnnotation)
}

func TestDeserializeMissingFile(t *testing.T) {
	a := NewCoNLLUCommand(&Conf{})
	_, err := a.Deserialize(corpus.NewArticle(t.TempDir(), 1))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
