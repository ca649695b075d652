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

package rdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"synsearch/results"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	MsgNewQuery                = "newQuery"
	DefaultQueueKey            = "synsearchQueue"
	DefaultResultChannelPrefix = "synsearchResults"
	DefaultQueryChannel        = "synsearchQueries"
	DefaultResultExpiration    = 10 * time.Minute
	connTestRetryInterval      = 2 * time.Second
)

var (
	ErrorEmptyQueue = errors.New("no queries in the queue")
)

type Adapter struct {
	ctx                 context.Context
	c                   *redis.Client
	channelQuery        string
	channelResultPrefix string
	cachePath           string
	queryAnswerTimeout  time.Duration
}

// TestConnection tries to ping Redis repeatedly until it
// succeeds or the timeout is reached.
func (a *Adapter) TestConnection(timeout time.Duration) error {
	tick := time.NewTicker(connTestRetryInterval)
	defer tick.Stop()
	timeoutCh := time.After(timeout)
	for {
		if err := a.c.Ping(a.ctx).Err(); err == nil {
			log.Info().Msg("successfully connected to Redis")
			return nil

		} else {
			log.Error().Err(err).Msg("failed to connect to Redis, will try again")
		}
		select {
		case <-timeoutCh:
			return fmt.Errorf("failed to connect to Redis within %s", timeout)
		case <-a.ctx.Done():
			return a.ctx.Err()
		case <-tick.C:
		}
	}
}

func (a *Adapter) SomeoneListens(query Query) (bool, error) {
	cmd := a.c.PubSubNumSub(a.ctx, query.Channel)
	if cmd.Err() != nil {
		return false, fmt.Errorf("failed to check channel listeners: %w", cmd.Err())
	}
	return cmd.Val()[query.Channel] > 0, nil
}

// PublishQuery publishes a new query and returns a channel
// where the result will be sent to. In case no result arrives
// within the configured timeout, the channel is closed without
// sending any value.
func (a *Adapter) PublishQuery(query Query) (<-chan *WorkerResult, error) {
	query.Channel = fmt.Sprintf("%s:%s", a.channelResultPrefix, uuid.New().String())
	log.Debug().
		Str("channel", query.Channel).
		Str("func", query.Func).
		RawJSON("args", query.Args).
		Msg("publishing query")

	msg, err := query.ToJSON()
	if err != nil {
		return nil, err
	}
	sub := a.c.Subscribe(a.ctx, query.Channel)
	if err := a.c.LPush(a.ctx, DefaultQueueKey, msg).Err(); err != nil {
		sub.Close()
		return nil, err
	}
	ans := make(chan *WorkerResult)

	go func() {
		defer func() {
			sub.Close()
			close(ans)
		}()
		var item *redis.Message
		select {
		case item = <-sub.Channel():
		case <-time.After(a.queryAnswerTimeout):
			log.Error().
				Str("channel", query.Channel).
				Str("func", query.Func).
				Msg("worker result not received in time")
			return
		case <-a.ctx.Done():
			return
		}
		result := new(WorkerResult)
		cmd := a.c.Get(a.ctx, item.Payload)
		if cmd.Err() != nil {
			result.AttachValue(&results.ErrorResult{Error: cmd.Err().Error()})

		} else if err := sonic.Unmarshal([]byte(cmd.Val()), result); err != nil {
			result.AttachValue(&results.ErrorResult{Error: err.Error()})
		}
		ans <- result
	}()
	return ans, a.c.Publish(a.ctx, a.channelQuery, MsgNewQuery).Err()
}

func (a *Adapter) DequeueQuery() (Query, error) {
	cmd := a.c.RPop(a.ctx, DefaultQueueKey)
	if errors.Is(cmd.Err(), redis.Nil) {
		return Query{}, ErrorEmptyQueue

	} else if cmd.Err() != nil {
		return Query{}, fmt.Errorf("failed to dequeue query: %w", cmd.Err())
	}
	q, err := DecodeQuery(cmd.Val())
	if err != nil {
		return Query{}, fmt.Errorf("failed to deserialize query: %w", err)
	}
	return q, nil
}

func (a *Adapter) PublishResult(channelName string, value *WorkerResult) error {
	log.Debug().
		Str("channel", channelName).
		Str("resultType", value.ResultType.String()).
		Msg("publishing result")
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	if err := a.c.Set(a.ctx, channelName, string(data), DefaultResultExpiration).Err(); err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}
	return a.c.Publish(a.ctx, channelName, channelName).Err()
}

func (a *Adapter) Subscribe() <-chan *redis.Message {
	sub := a.c.Subscribe(a.ctx, a.channelQuery)
	return sub.Channel()
}

func NewAdapter(conf *Conf, ctx context.Context) *Adapter {
	chRes := conf.ChannelResultPrefix
	chQuery := conf.ChannelQuery
	if chRes == "" {
		chRes = DefaultResultChannelPrefix
		log.Warn().
			Str("channel", chRes).
			Msg("Redis channel for results not specified, using default")
	}
	if chQuery == "" {
		chQuery = DefaultQueryChannel
		log.Warn().
			Str("channel", chQuery).
			Msg("Redis channel for queries not specified, using default")
	}
	answerTimeout := conf.QueryAnswerTimeout()
	if answerTimeout <= 0 {
		answerTimeout = DfltQueryAnswerTimeoutSecs * time.Second
	}

	ans := &Adapter{
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ctx:                 ctx,
		channelQuery:        chQuery,
		channelResultPrefix: chRes,
		cachePath:           conf.CachePath,
		queryAnswerTimeout:  answerTimeout,
	}
	return ans
}
