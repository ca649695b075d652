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
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"synsearch/analyzer"
	"synsearch/cnf"
	"synsearch/corpus"
	"synsearch/monitoring"
	"synsearch/pipeline"
	"synsearch/rdb"
	"synsearch/search"
	"synsearch/worker"

	"github.com/rs/zerolog/log"
)

func getWorkerID() (workerID string) {
	workerID = getEnv("WORKER_ID")
	if workerID == "" {
		workerID = strconv.Itoa(os.Getpid())
	}
	return
}

// -------

func runWorker(conf *cnf.Conf) {
	workerID := getWorkerID()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	manager, err := corpus.NewManager(conf.Corpus.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open corpus")
		return
	}
	radapter := rdb.NewAdapter(conf.Redis, ctx)
	if err := radapter.TestConnection(redisConnectionTestTimeout); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
		return
	}

	jobLogger := monitoring.NewWorkerJobLogger(&monitoring.LogStatusWriter{}, conf.TimezoneLocation())
	anl := worker.NewCachingAnalyzer(analyzer.NewCoNLLUCommand(conf.Analyzer), worker.NewDocCache())
	ch := radapter.Subscribe()
	wrk := worker.NewWorker(
		workerID,
		radapter,
		ch,
		jobLogger,
		manager,
		pipeline.NewTextProcessing(manager, anl),
		pipeline.NewPOSFrequency(manager, anl),
		pipeline.NewPatternSearch(manager, anl, search.NewSearcher(conf.Search), conf.Corpus.MaxArticles),
	)
	runServices(ctx, []service{jobLogger, wrk})
}
