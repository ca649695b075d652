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

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// Conf specifies where the corpus data live
type Conf struct {

	// DataDir is a directory containing raw articles (`N_raw.txt`)
	// along with their meta files (`N_meta.json`). All the derived
	// files (cleaned texts, CoNLL-U annotations) are stored there too.
	DataDir string `json:"dataDir"`

	// MaxArticles limits number of articles loaded for a single
	// corpus-wide operation. Zero means no limit.
	MaxArticles int `json:"maxArticles"`
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.DataDir == "" {
		return fmt.Errorf("missing `%s.dataDir`", confContext)
	}
	isDir, err := fs.IsDir(conf.DataDir)
	if err != nil {
		return fmt.Errorf("failed to test `%s.dataDir`: %w", confContext, err)
	}
	if !isDir {
		return fmt.Errorf("`%s.dataDir` is not a directory", confContext)
	}
	if conf.MaxArticles == 0 {
		log.Info().Msgf("`%s.maxArticles` not set, all articles will be processed", confContext)
	}
	return nil
}
