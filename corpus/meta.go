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
	"encoding/json"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

const (
	MetaKeyPOSFrequencies = "pos_frequencies"
	MetaKeyPatternMatches = "pattern_matches"
)

// ReadMeta loads the article's meta file as a generic JSON object
func (a *Article) ReadMeta() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(a.MetaPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read meta of article %d: %w", a.ID, err)
	}
	ans := make(map[string]json.RawMessage)
	if err := sonic.ConfigStd.Unmarshal(data, &ans); err != nil {
		return nil, fmt.Errorf("failed to parse meta of article %d: %w", a.ID, err)
	}
	return ans, nil
}

// UpdateMeta sets (or replaces) a single key of the article's
// meta file, other keys are preserved.
func (a *Article) UpdateMeta(key string, value any) error {
	meta, err := a.ReadMeta()
	if err != nil {
		return err
	}
	encValue, err := sonic.ConfigStd.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to update meta of article %d: %w", a.ID, err)
	}
	meta[key] = encValue
	data, err := sonic.ConfigStd.MarshalIndent(meta, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to update meta of article %d: %w", a.ID, err)
	}
	if err := os.WriteFile(a.MetaPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to update meta of article %d: %w", a.ID, err)
	}
	return nil
}
