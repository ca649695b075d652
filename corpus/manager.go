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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyDirectory = errors.New("directory is empty")
	ErrNotADirectory  = errors.New("path leads to something other than a directory")
	ErrEmptyFile      = errors.New("file is empty")
)

// InconsistentDatasetError reports missing, empty or
// wrongly numbered files in the corpus directory.
type InconsistentDatasetError struct {
	Msg string
}

func (err InconsistentDatasetError) Error() string {
	return fmt.Sprintf("inconsistent dataset: %s", err.Msg)
}

func inconsistent(format string, args ...any) error {
	return InconsistentDatasetError{Msg: fmt.Sprintf(format, args...)}
}

// Manager registers articles found in a corpus directory.
type Manager struct {
	dataDir  string
	articles map[int]*Article
}

// parseFileID extracts the article ID from a file name like `12_raw.txt`
func parseFileID(name, suffix string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSuffix(name, suffix))
	if err != nil {
		return 0, inconsistent("invalid article ID in file name %s", name)
	}
	return id, nil
}

func validateDataset(dataDir string) ([]int, error) {
	if !fs.PathExists(dataDir) {
		return nil, fmt.Errorf("corpus directory %s: %w", dataDir, os.ErrNotExist)
	}
	isDir, err := fs.IsDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to validate corpus directory: %w", err)
	}
	if !isDir {
		return nil, fmt.Errorf("corpus directory %s: %w", dataDir, ErrNotADirectory)
	}
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to validate corpus directory: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("corpus directory %s: %w", dataDir, ErrEmptyDirectory)
	}
	rawIDs := make([]int, 0, len(entries)/2)
	metaIDs := make(map[int]bool)
	for _, entry := range entries {
		var suffix string
		switch {
		case strings.HasSuffix(entry.Name(), RawFileSuffix):
			suffix = RawFileSuffix
		case strings.HasSuffix(entry.Name(), MetaFileSuffix):
			suffix = MetaFileSuffix
		default:
			continue
		}
		id, err := parseFileID(entry.Name(), suffix)
		if err != nil {
			return nil, err
		}
		size, err := fs.FileSize(filepath.Join(dataDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to validate corpus directory: %w", err)
		}
		if size == 0 {
			return nil, fmt.Errorf("corpus file %s: %w", entry.Name(), ErrEmptyFile)
		}
		if suffix == RawFileSuffix {
			rawIDs = append(rawIDs, id)

		} else {
			metaIDs[id] = true
		}
	}
	if len(rawIDs) == 0 {
		return nil, inconsistent("no articles found")
	}
	if len(rawIDs) != len(metaIDs) {
		return nil, inconsistent(
			"number of meta files (%d) does not match number of articles (%d)",
			len(metaIDs), len(rawIDs),
		)
	}
	sort.Ints(rawIDs)
	for i, id := range rawIDs {
		if id != i+1 {
			return nil, inconsistent("article IDs are not contiguous (expected %d, found %d)", i+1, id)
		}
		if !metaIDs[id] {
			return nil, inconsistent("missing meta file for article %d", id)
		}
	}
	return rawIDs, nil
}

// Articles returns all the registered articles ordered by their IDs
func (m *Manager) Articles() []*Article {
	ans := make([]*Article, 0, len(m.articles))
	for _, a := range m.articles {
		ans = append(ans, a)
	}
	sort.Slice(ans, func(i, j int) bool { return ans[i].ID < ans[j].ID })
	return ans
}

func (m *Manager) Article(id int) (*Article, bool) {
	a, ok := m.articles[id]
	return a, ok
}

func (m *Manager) NumArticles() int {
	return len(m.articles)
}

func (m *Manager) DataDir() string {
	return m.dataDir
}

// NewManager validates the corpus directory and registers
// all the articles found there.
func NewManager(dataDir string) (*Manager, error) {
	ids, err := validateDataset(dataDir)
	if err != nil {
		return nil, err
	}
	ans := &Manager{
		dataDir:  dataDir,
		articles: make(map[int]*Article, len(ids)),
	}
	for _, id := range ids {
		ans.articles[id] = NewArticle(dataDir, id)
	}
	log.Info().
		Str("dataDir", dataDir).
		Int("numArticles", len(ids)).
		Msg("registered corpus articles")
	return ans, nil
}
