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
	"fmt"

	"synsearch/analyzer"
	"synsearch/corpus"

	"github.com/rs/zerolog/log"
)

// TextProcessing cleans raw texts of a corpus and (in case
// an analyzer is available) stores their CoNLL-U annotations.
type TextProcessing struct {
	manager  *corpus.Manager
	analyzer analyzer.Analyzer
}

// Clean writes a cleaned version of each article text
func (p *TextProcessing) Clean(articles []*corpus.Article) error {
	for _, art := range articles {
		if err := art.LoadText(); err != nil {
			return err
		}
		art.Cleaned = corpus.CleanText(art.Text)
		if err := art.WriteCleaned(); err != nil {
			return err
		}
	}
	log.Info().Int("numArticles", len(articles)).Msg("articles cleaned")
	return nil
}

// Annotate runs the analyzer over raw texts of the articles
// and serializes the produced annotations.
func (p *TextProcessing) Annotate(ctx context.Context, articles []*corpus.Article) error {
	if p.analyzer == nil {
		return fmt.Errorf("cannot annotate articles: %w", analyzer.ErrNoCommand)
	}
	texts := make([]string, len(articles))
	for i, art := range articles {
		if art.Text == "" {
			if err := art.LoadText(); err != nil {
				return err
			}
		}
		texts[i] = art.Text
	}
	docs, err := p.analyzer.Analyze(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to annotate articles: %w", err)
	}
	if len(docs) != len(articles) {
		return fmt.Errorf(
			"failed to annotate articles: analyzer returned %d documents for %d texts",
			len(docs), len(articles),
		)
	}
	for i, art := range articles {
		docs[i].ArticleID = art.ID
		art.Annotation = docs[i]
		if err := p.analyzer.Serialize(art); err != nil {
			return err
		}
	}
	log.Info().Int("numArticles", len(articles)).Msg("articles annotated")
	return nil
}

// Run cleans all the articles and, if possible, annotates them.
func (p *TextProcessing) Run(ctx context.Context) error {
	articles := p.manager.Articles()
	if err := p.Clean(articles); err != nil {
		return err
	}
	if p.analyzer == nil {
		log.Warn().Msg("no analyzer available, skipping annotation")
		return nil
	}
	return p.Annotate(ctx, articles)
}

func NewTextProcessing(manager *corpus.Manager, anl analyzer.Analyzer) *TextProcessing {
	return &TextProcessing{
		manager:  manager,
		analyzer: anl,
	}
}
