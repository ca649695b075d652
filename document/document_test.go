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

package document

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCoNLLU = `# newdoc id = 1
# sent_id = 1
# text = The cat sleeps.
1	The	the	DET	DT	Definite=Def	2	det	_	_
2	cat	cat	NOUN	NN	Number=Sing	3	nsubj	_	_
3	sleeps	sleep	VERB	VBZ	_	0	root	_	SpaceAfter=No
4	.	.	PUNCT	.	_	3	punct	_	_

# sent_id = 2
1-2	Don't	_	_	_	_	_	_	_	_
1	Do	do	AUX	VBP	_	3	aux	_	_
2	n't	not	PART	RB	_	3	advmod	_	_
3	go	go	VERB	VB	_	0	root	_	_
3.1	there	there	ADV	_	_	_	_	3:advmod	_
`

func TestReadCoNLLU(t *testing.T) {
	doc, err := ReadCoNLLU(strings.NewReader(testCoNLLU), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, doc.ArticleID)
	require.Len(t, doc.Sentences, 2)
	assert.Len(t, doc.Sentences[0].Tokens, 4)
	assert.Equal(
		t,
		Token{ID: 2, Text: "cat", Lemma: "cat", Pos: "NOUN", Head: 3, Rel: "nsubj"},
		doc.Sentences[0].Tokens[1],
	)
	assert.True(t, doc.Sentences[0].Tokens[2].IsRoot())
}

func TestReadCoNLLUSkipsRangesAndEmptyNodes(t *testing.T) {
	doc, err := ReadCoNLLU(strings.NewReader(testCoNLLU), 1)
	require.NoError(t, err)
	sent := doc.Sentences[1]
	require.Len(t, sent.Tokens, 3)
	assert.Equal(t, "Do", sent.Tokens[0].Text)
	assert.Equal(t, "go", sent.Tokens[2].Text)
}

func TestReadCoNLLUEmpty(t *testing.T) {
	doc, err := ReadCoNLLU(strings.NewReader(""), 1)
	assert.NoError(t, err)
	assert.Empty(t, doc.Sentences)
}

func TestReadCoNLLUInvalidNumFields(t *testing.T) {
	_, err := ReadCoNLLU(strings.NewReader("1\tcat\tcat\tNOUN\n"), 1)
	var pErr ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, 1, pErr.Line)
}

func TestReadCoNLLUInvalidHead(t *testing.T) {
	_, err := ReadCoNLLU(strings.NewReader("1\tcat\tcat\tNOUN\t_\t_\tx\troot\t_\t_\n"), 1)
	assert.ErrorAs(t, err, &ParseError{})
}

func TestWriteAndReadCoNLLU(t *testing.T) {
	doc, err := ReadCoNLLU(strings.NewReader(testCoNLLU), 3)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteCoNLLU(&buf, doc))
	doc2, err := ReadCoNLLU(&buf, 3)
	require.NoError(t, err)
	assert.Equal(t, doc, doc2)
}

func TestSentenceToken(t *testing.T) {
	sent := Sentence{Tokens: []Token{{ID: 1, Text: "a"}, {ID: 3, Text: "c"}}}
	tok, ok := sent.Token(3)
	assert.True(t, ok)
	assert.Equal(t, "c", tok.Text)
	_, ok = sent.Token(2)
	assert.False(t, ok)
}

func TestDocumentNumTokens(t *testing.T) {
	doc := Document{Sentences: []Sentence{
		{Tokens: make([]Token, 3)},
		{Tokens: make([]Token, 2)},
	}}
	assert.Equal(t, 5, doc.NumTokens())
}
