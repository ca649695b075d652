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

// Token represents a single word of a sentence as produced
// by an external morpho-syntactic analyzer.
type Token struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Lemma string `json:"lemma"`

	// Pos is a Universal Dependencies part of speech tag (UPOS)
	Pos string `json:"pos"`

	// Head is the ID of the governing token. Zero means
	// the token is the root of the sentence.
	Head int `json:"head"`

	// Rel is the dependency relation label to the Head
	Rel string `json:"rel"`
}

// IsRoot tells whether the token has no governor.
func (t Token) IsRoot() bool {
	return t.Head == 0
}

// Sentence is an ordered list of tokens. Token IDs start at 1.
type Sentence struct {
	Tokens []Token `json:"tokens"`
}

// Token returns a token with the provided ID. Because the IDs
// are expected to be dense and start at 1, the lookup first tries
// the respective position and only then falls back to a scan.
func (s Sentence) Token(id int) (Token, bool) {
	if id >= 1 && id <= len(s.Tokens) && s.Tokens[id-1].ID == id {
		return s.Tokens[id-1], true
	}
	for _, t := range s.Tokens {
		if t.ID == id {
			return t, true
		}
	}
	return Token{}, false
}

// Document is an annotated article.
type Document struct {
	ArticleID int        `json:"articleId"`
	Sentences []Sentence `json:"sentences"`
}

// NumTokens returns the total number of tokens in all the sentences.
func (doc *Document) NumTokens() int {
	var ans int
	for _, s := range doc.Sentences {
		ans += len(s.Tokens)
	}
	return ans
}
