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
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"

	"synsearch/results"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

func (a *Adapter) cacheFilePath(query Query) string {
	hashKey := sha1.Sum(query.Args)
	return filepath.Join(a.cachePath, query.Func+hex.EncodeToString(hashKey[:]))
}

func readCachedResult(path string) (*WorkerResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rType, value, _ := bytes.Cut(content, []byte("\n"))
	return &WorkerResult{
		ResultType: results.ResultType(rType),
		Value:      value,
	}, nil
}

func writeCachedResult(path string, result *WorkerResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(result.ResultType.String() + "\n"); err != nil {
		return err
	}
	_, err = f.Write(result.Value)
	return err
}

// CacheResult wraps a query publishing function so the results
// of the same queries (same function and arguments) are read
// from a file cache. Only successful results are cached.
func (a *Adapter) CacheResult(fn func(Query) (<-chan *WorkerResult, error), query Query) (<-chan *WorkerResult, error) {
	if len(a.cachePath) == 0 {
		return fn(query)
	}

	path := a.cacheFilePath(query)
	isf, _ := fs.IsFile(path)
	if fs.PathExists(path) && isf {
		result, err := readCachedResult(path)
		if err == nil {
			ans := make(chan *WorkerResult, 1)
			ans <- result
			close(ans)
			return ans, nil
		}
		log.Error().Err(err).Str("path", path).Msg("failed to read cache file, running query")
	}

	wr, err := fn(query)
	if err != nil {
		return nil, err
	}
	ans := make(chan *WorkerResult)
	go func() {
		defer close(ans)
		rawResult, ok := <-wr
		if !ok {
			return
		}
		if rawResult.ResultType != results.ResultTypeError && rawResult.Err() == nil {
			if err := writeCachedResult(path, rawResult); err != nil {
				log.Error().Err(err).Str("path", path).Msg("failed to write cache file")
			}
		}
		ans <- rawResult
	}()
	return ans, nil
}
