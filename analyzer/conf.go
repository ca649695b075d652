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
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DfltTimeoutSecs = 300
)

type Conf struct {

	// Cmd is an external command reading a plain text from its stdin
	// and writing CoNLL-U to stdout, e.g.:
	// ["udpipe", "--tokenize", "--tag", "--parse", "/path/to/model.udpipe"]
	// In case the command is empty, only previously stored annotations
	// can be used.
	Cmd []string `json:"cmd"`

	// TimeoutSecs limits processing time of a single text
	TimeoutSecs int `json:"timeoutSecs"`
}

func (conf *Conf) Timeout() time.Duration {
	return time.Duration(conf.TimeoutSecs) * time.Second
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if len(conf.Cmd) == 0 {
		log.Warn().Msgf("`%s.cmd` not set, texts cannot be analyzed (only stored annotations will be used)", confContext)
	}
	if conf.TimeoutSecs == 0 {
		conf.TimeoutSecs = DfltTimeoutSecs
		log.Warn().
			Int("value", DfltTimeoutSecs).
			Msgf("`%s.timeoutSecs` not set, using default", confContext)
	}
	return nil
}
