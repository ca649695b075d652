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
	"encoding/json"
	"fmt"

	"synsearch/results"

	"github.com/bytedance/sonic"
)

// WorkerResult is an envelope for a result produced by a worker.
// The actual value is kept in its JSON form so the API server
// can pass it to clients without decoding.
type WorkerResult struct {
	ResultType   results.ResultType `json:"resultType"`
	Value        json.RawMessage    `json:"value"`
	HasUserError bool               `json:"hasUserError"`
}

// AttachValue encodes the provided value into the result
func (wr *WorkerResult) AttachValue(value results.SerializableResult) error {
	data, err := sonic.ConfigStd.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to attach value to worker result: %w", err)
	}
	wr.ResultType = value.Type()
	wr.Value = data
	return nil
}

// Err extracts an error (if any) stored within the encoded value.
func (wr *WorkerResult) Err() error {
	var tmp struct {
		Error string `json:"error"`
	}
	if err := sonic.Unmarshal(wr.Value, &tmp); err != nil {
		return fmt.Errorf("failed to decode worker result: %w", err)
	}
	if tmp.Error != "" {
		return fmt.Errorf("%s", tmp.Error)
	}
	return nil
}

func CreateWorkerResult(value results.SerializableResult, hasUserError bool) (*WorkerResult, error) {
	ans := &WorkerResult{HasUserError: hasUserError}
	if err := ans.AttachValue(value); err != nil {
		return nil, err
	}
	return ans, nil
}
