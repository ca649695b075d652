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

package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"synsearch/document"
)

const (
	RawFileSuffix     = "_raw.txt"
	MetaFileSuffix    = "_meta.json"
	CleanedFileSuffix = "_cleaned.txt"
	CoNLLUFileSuffix  = "_conllu.conllu"
)

// Article is a single text of the corpus identified by a numeric ID.
// All the files related to the article share the same directory
// and the `{ID}_` prefix.
type Article struct {
	ID      int
	Text    string
	Cleaned string

	// Annotation is a result of morpho-syntactic analysis (if available)
	Annotation *document.Document

	dir string
}

func (a *Article) filePath(suffix string) string {
	return filepath.Join(a.dir, fmt.Sprintf("%d%s", a.ID, suffix))
}

func (a *Article) RawPath() string {
	return a.filePath(RawFileSuffix)
}

func (a *Article) MetaPath() string {
	return a.filePath(MetaFileSuffix)
}

func (a *Article) CleanedPath() string {
	return a.filePath(CleanedFileSuffix)
}

func (a *Article) CoNLLUPath() string {
	return a.filePath(CoNLLUFileSuffix)
}

// LoadText reads the raw text of the article
func (a *Article) LoadText() error {
	data, err := os.ReadFile(a.RawPath())
	if err != nil {
		return fmt.Errorf("failed to load text of article %d: %w", a.ID, err)
	}
	a.Text = string(data)
	return nil
}

// WriteCleaned stores the cleaned text of the article
func (a *Article) WriteCleaned() error {
	if err := os.WriteFile(a.CleanedPath(), []byte(a.Cleaned), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text of article %d: %w", a.ID, err)
	}
	return nil
}

func NewArticle(dir string, id int) *Article {
	return &Article{ID: id, dir: dir}
}
