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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"synsearch/analyzer"
	"synsearch/cnf"
	"synsearch/corpus"
	"synsearch/depgraph"
	"synsearch/freqs"
	"synsearch/pipeline"
	"synsearch/search"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

func openCorpus(conf *cnf.Conf) (*corpus.Manager, analyzer.Analyzer) {
	manager, err := corpus.NewManager(conf.Corpus.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open corpus")
	}
	return manager, analyzer.NewCoNLLUCommand(conf.Analyzer)
}

func writeOutput(data []byte, outputPath string) error {
	if outputPath == "" {
		_, err := fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	return os.WriteFile(outputPath, data, 0644)
}

func runClean(conf *cnf.Conf) {
	manager, _ := openCorpus(conf)
	proc := pipeline.NewTextProcessing(manager, nil)
	if err := proc.Clean(manager.Articles()); err != nil {
		log.Fatal().Err(err).Msg("failed to clean texts")
	}
}

func runAnalyze(conf *cnf.Conf) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	manager, anl := openCorpus(conf)
	if len(conf.Analyzer.Cmd) == 0 {
		log.Fatal().Err(analyzer.ErrNoCommand).Msg("cannot analyze texts")
	}
	if err := pipeline.NewTextProcessing(manager, anl).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to analyze texts")
	}
}

func runFreqs(conf *cnf.Conf, outputPath string) {
	manager, anl := openCorpus(conf)
	counts, err := pipeline.NewPOSFrequency(manager, anl).Run(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to calculate POS frequencies")
	}
	total := make(map[string]int)
	for _, artCounts := range counts {
		for pos, v := range artCounts {
			total[pos] += v
		}
	}
	data, err := sonic.ConfigStd.MarshalIndent(freqs.Distribution(total), "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode POS frequencies")
	}
	if err := writeOutput(data, outputPath); err != nil {
		log.Fatal().Err(err).Msg("failed to write POS frequencies")
	}
}

func runSearch(conf *cnf.Conf, rawPattern, outputPath string, store bool) {
	pattern, err := depgraph.ParsePattern(rawPattern)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid pattern")
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	manager, anl := openCorpus(conf)
	ps := pipeline.NewPatternSearch(
		manager, anl, search.NewSearcher(conf.Search), conf.Corpus.MaxArticles)
	report, err := ps.Run(ctx, pattern, nil, store)
	if err != nil {
		log.Fatal().Err(err).Msg("pattern search failed")
	}
	log.Info().
		Str("pattern", pattern.String()).
		Int("numMatches", report.NumMatches()).
		Int("numSkipped", len(report.Skipped)).
		Msg("pattern search finished")
	data, err := report.ToJSON()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode search results")
	}
	if err := writeOutput(data, outputPath); err != nil {
		log.Fatal().Err(err).Msg("failed to write search results")
	}
}
