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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"synsearch/corpus"
	"synsearch/document"

	"github.com/rs/zerolog/log"
)

const (
	maxStderrLogSize = 1024
)

var (
	ErrNoCommand    = errors.New("no analyzer command configured")
	ErrNoAnnotation = errors.New("article has no annotation")
)

// CoNLLUCommand runs an external program for each analyzed text
// and stores annotations as CoNLL-U files next to the articles.
type CoNLLUCommand struct {
	cmd     []string
	timeout time.Duration
}

func (a *CoNLLUCommand) analyzeText(ctx context.Context, text string) (*document.Document, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, a.cmd[0], a.cmd[1:]...)
	cmd.Stdin = strings.NewReader(text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		errOut := stderr.String()
		if len(errOut) > maxStderrLogSize {
			errOut = errOut[:maxStderrLogSize]
		}
		log.Error().
			Err(err).
			Str("command", a.cmd[0]).
			Str("stderr", errOut).
			Msg("analyzer failed")
		return nil, fmt.Errorf("failed to run analyzer %s: %w", a.cmd[0], err)
	}
	return document.ReadCoNLLU(&stdout, 0)
}

func (a *CoNLLUCommand) Analyze(ctx context.Context, texts []string) ([]*document.Document, error) {
	if len(a.cmd) == 0 {
		return nil, ErrNoCommand
	}
	ans := make([]*document.Document, 0, len(texts))
	for i, text := range texts {
		t0 := time.Now()
		doc, err := a.analyzeText(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze text %d: %w", i, err)
		}
		log.Debug().
			Int("text", i).
			Int("numSentences", len(doc.Sentences)).
			Dur("procTime", time.Since(t0)).
			Msg("text analyzed")
		ans = append(ans, doc)
	}
	return ans, nil
}

func (a *CoNLLUCommand) Serialize(article *corpus.Article) error {
	if article.Annotation == nil {
		return fmt.Errorf("failed to serialize article %d: %w", article.ID, ErrNoAnnotation)
	}
	f, err := os.Create(article.CoNLLUPath())
	if err != nil {
		return fmt.Errorf("failed to serialize article %d: %w", article.ID, err)
	}
	defer f.Close()
	if err := document.WriteCoNLLU(f, article.Annotation); err != nil {
		return fmt.Errorf("failed to serialize article %d: %w", article.ID, err)
	}
	return nil
}

func (a *CoNLLUCommand) Deserialize(article *corpus.Article) (*document.Document, error) {
	f, err := os.Open(article.CoNLLUPath())
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize article %d: %w", article.ID, err)
	}
	defer f.Close()
	doc, err := document.ReadCoNLLU(f, article.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize article %d: %w", article.ID, err)
	}
	return doc, nil
}

func NewCoNLLUCommand(conf *Conf) *CoNLLUCommand {
	return &CoNLLUCommand{
		cmd:     conf.Cmd,
		timeout: conf.Timeout(),
	}
}

var _ Analyzer = (*CoNLLUCommand)(nil)
