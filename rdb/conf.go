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
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DfltQueryAnswerTimeoutSecs = 60
)

type Conf struct {
	Host                   string `json:"host"`
	Port                   int    `json:"port"`
	DB                     int    `json:"db"`
	Password               string `json:"password"`
	ChannelQuery           string `json:"channelQuery"`
	ChannelResultPrefix    string `json:"channelResultPrefix"`
	QueryAnswerTimeoutSecs int    `json:"queryAnswerTimeoutSecs"`

	// CachePath specifies a directory for caching pattern search
	// results. In case it is empty, no caching is performed.
	CachePath string `json:"cachePath"`
}

func (conf *Conf) QueryAnswerTimeout() time.Duration {
	return time.Duration(conf.QueryAnswerTimeoutSecs) * time.Second
}

func (conf *Conf) ValidateAndDefaults() {
	if conf.Host == "" {
		conf.Host = "localhost"
		log.Warn().Str("value", conf.Host).Msg("redis.host not specified, using default")
	}
	if conf.Port == 0 {
		conf.Port = 6379
		log.Warn().Int("value", conf.Port).Msg("redis.port not specified, using default")
	}
	if conf.QueryAnswerTimeoutSecs <= 0 {
		conf.QueryAnswerTimeoutSecs = DfltQueryAnswerTimeoutSecs
		log.Warn().
			Int("value", conf.QueryAnswerTimeoutSecs).
			Msg("redis.queryAnswerTimeoutSecs not specified, using default")
	}
}
