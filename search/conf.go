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

package search

import "github.com/rs/zerolog/log"

const (
	DfltNumWorkers = 4
)

type Conf struct {

	// NumWorkers specifies how many documents are searched
	// in parallel
	NumWorkers int `json:"numWorkers"`
}

func (conf *Conf) ApplyDefaults() {
	if conf.NumWorkers <= 0 {
		log.Warn().
			Int("value", DfltNumWorkers).
			Msg("search.numWorkers not set, using default")
		conf.NumWorkers = DfltNumWorkers
	}
}
