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

package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"synsearch/corpus"
	"synsearch/merror"
	"synsearch/pipeline"
	"synsearch/rdb"
	"synsearch/results"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTickerInterval = 2 * time.Second
)

type jobLogger interface {
	Log(rec results.JobLog)
}

// queryQueue is a source of queries and a target for results
// (typically a Redis adapter)
type queryQueue interface {
	DequeueQuery() (rdb.Query, error)
	SomeoneListens(query rdb.Query) (bool, error)
	PublishResult(channelName string, value *rdb.WorkerResult) error
}

type Worker struct {
	ID             string
	messages       <-chan *redis.Message
	radapter       queryQueue
	ticker         *time.Ticker
	jobLogger      jobLogger
	currJobLog     *results.JobLog
	manager        *corpus.Manager
	textPipeline   *pipeline.TextProcessing
	freqsPipeline  *pipeline.POSFrequency
	searchPipeline *pipeline.PatternSearch
	done           chan struct{}
}

func (w *Worker) publishResult(res results.SerializableResult, channel string) error {
	ans, err := rdb.CreateWorkerResult(res, isUserError(res.Err()))
	if err != nil {
		return err
	}
	if w.currJobLog != nil {
		w.currJobLog.End = time.Now()
		w.currJobLog.Err = res.Err()
		w.jobLogger.Log(*w.currJobLog)
		w.currJobLog = nil
	}
	return w.radapter.PublishResult(channel, ans)
}

func (w *Worker) sendPublishingErr(query rdb.Query, err error) {
	if err := w.publishResult(&results.ErrorResult{Error: err.Error()}, query.Channel); err != nil {
		log.Error().Err(err).Msg("failed to publish general publishing error")
	}
}

func invalidArgsResult(query rdb.Query, err error) *results.ErrorResult {
	return &results.ErrorResult{
		Error: fmt.Sprintf("invalid arguments of %s: %s", query.Func, err),
	}
}

func (w *Worker) runQueryProtected(ctx context.Context, query rdb.Query) (ansErr error) {
	defer func() {
		if r := recover(); r != nil {
			ansErr = merror.RecoveredError{Msg: merror.PanicValueToErr(r).Error()}
			return
		}
	}()
	var ans results.SerializableResult
	switch query.Func {
	case rdb.FuncPatternSearch:
		var args rdb.PatternSearchArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			ans = invalidArgsResult(query, err)
			break
		}
		ans = w.patternSearch(ctx, args)
	case rdb.FuncPOSFreqs:
		var args rdb.POSFreqsArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			ans = invalidArgsResult(query, err)
			break
		}
		ans = w.posFreqs(args)
	case rdb.FuncAnalyze:
		var args rdb.AnalyzeArgs
		if err := json.Unmarshal(query.Args, &args); err != nil {
			ans = invalidArgsResult(query, err)
			break
		}
		ans = w.analyze(ctx, args)
	default:
		ans = &results.ErrorResult{Error: fmt.Sprintf("unknown query function: %s", query.Func)}
	}
	if err := w.publishResult(ans, query.Channel); err != nil {
		w.sendPublishingErr(query, err)
		return err
	}
	return nil
}

func (w *Worker) tryNextQuery(ctx context.Context) error {

	time.Sleep(time.Duration(rand.Intn(40)) * time.Millisecond)
	query, err := w.radapter.DequeueQuery()
	if err == rdb.ErrorEmptyQueue {
		return nil

	} else if err != nil {
		return err
	}
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		RawJSON("args", query.Args).
		Msg("received query")

	isActive, err := w.radapter.SomeoneListens(query)
	if err != nil {
		return err
	}
	if !isActive {
		log.Warn().
			Str("func", query.Func).
			Str("channel", query.Channel).
			RawJSON("args", query.Args).
			Msg("worker found an inactive query")
		return nil
	}

	w.currJobLog = &results.JobLog{
		WorkerID: w.ID,
		Func:     query.Func,
		Begin:    time.Now(),
	}

	err = w.runQueryProtected(ctx, query)
	var rcvErr merror.RecoveredError
	if errors.As(err, &rcvErr) {
		ans := &results.ErrorResult{
			Error: fmt.Sprintf("worker panicked: %s", rcvErr.Error()),
		}
		if err := w.publishResult(ans, query.Channel); err != nil {
			return err
		}

	} else if err != nil {
		log.Error().Err(err).Str("func", query.Func).Msg("failed to process query")
	}
	return nil
}

// Listen processes incoming queries until the context is cancelled
// or the worker is stopped.
func (w *Worker) Listen(ctx context.Context) {
	for {
		select {
		case <-w.ticker.C:
			if err := w.tryNextQuery(ctx); err != nil {
				log.Error().Err(err).Msg("failed to fetch query")
			}
		case <-ctx.Done():
			log.Info().Msg("worker exiting")
			return
		case <-w.done:
			log.Info().Msg("worker stopped")
			return
		case msg, ok := <-w.messages:
			if !ok {
				w.messages = nil
				continue
			}
			if msg.Payload == rdb.MsgNewQuery {
				if err := w.tryNextQuery(ctx); err != nil {
					log.Error().Err(err).Msg("failed to fetch query")
				}
			}
		}
	}
}

func (w *Worker) Start(ctx context.Context) {
	log.Info().Str("workerId", w.ID).Msg("starting worker")
	go w.Listen(ctx)
}

func (w *Worker) Stop(ctx context.Context) error {
	log.Warn().Str("workerId", w.ID).Msg("shutting down worker")
	w.ticker.Stop()
	close(w.done)
	return nil
}

func NewWorker(
	workerID string,
	radapter queryQueue,
	messages <-chan *redis.Message,
	jobLogger jobLogger,
	manager *corpus.Manager,
	textPipeline *pipeline.TextProcessing,
	freqsPipeline *pipeline.POSFrequency,
	searchPipeline *pipeline.PatternSearch,
) *Worker {
	return &Worker{
		ID:             workerID,
		radapter:       radapter,
		messages:       messages,
		ticker:         time.NewTicker(DefaultTickerInterval),
		jobLogger:      jobLogger,
		manager:        manager,
		textPipeline:   textPipeline,
		freqsPipeline:  freqsPipeline,
		searchPipeline: searchPipeline,
		done:           make(chan struct{}),
	}
}
