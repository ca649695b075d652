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

package document

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	conlluFieldSeparator = "\t"
	conlluNumFields      = 10
	conlluEmptyValue     = "_"
	conlluMaxLineSize    = 1024 * 1024

	colID     = 0
	colForm   = 1
	colLemma  = 2
	colUPos   = 3
	colHead   = 6
	colDepRel = 7
)

// ParseError describes an invalid line of CoNLL-U data.
type ParseError struct {
	Line int
	Msg  string
}

func (err ParseError) Error() string {
	return fmt.Sprintf("invalid CoNLL-U data at line %d: %s", err.Line, err.Msg)
}

func parseString(v string) string {
	if v == conlluEmptyValue {
		return ""
	}
	return v
}

func parseInt(v string) (int, error) {
	if v == conlluEmptyValue {
		return 0, nil
	}
	return strconv.Atoi(v)
}

// isWordLine tells whether the ID column belongs to a syntactic word.
// Multiword token ranges (`3-4`) and empty nodes (`5.1`) carry no
// dependency information we can use.
func isWordLine(id string) bool {
	return !strings.ContainsAny(id, "-.")
}

func parseToken(record []string, lineNum int) (Token, error) {
	var tok Token
	id, err := parseInt(record[colID])
	if err != nil {
		return tok, ParseError{Line: lineNum, Msg: fmt.Sprintf("failed to parse ID field (%s): %s", record[colID], err)}
	}
	tok.ID = id
	tok.Text = parseString(record[colForm])
	tok.Lemma = parseString(record[colLemma])
	tok.Pos = parseString(record[colUPos])
	head, err := parseInt(record[colHead])
	if err != nil {
		return tok, ParseError{Line: lineNum, Msg: fmt.Sprintf("failed to parse HEAD field (%s): %s", record[colHead], err)}
	}
	tok.Head = head
	tok.Rel = parseString(record[colDepRel])
	return tok, nil
}

// ReadCoNLLU parses CoNLL-U encoded sentences into a Document.
// Comment lines are ignored, sentences are separated by empty lines.
// The function does not check the dependency structure itself,
// it is up to consumers to handle malformed sentences.
func ReadCoNLLU(r io.Reader, articleID int) (*Document, error) {
	doc := &Document{ArticleID: articleID, Sentences: []Sentence{}}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), conlluMaxLineSize)
	var curr []Token
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if len(curr) > 0 {
				doc.Sentences = append(doc.Sentences, Sentence{Tokens: curr})
				curr = nil
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		record := strings.Split(line, conlluFieldSeparator)
		if len(record) != conlluNumFields {
			return nil, ParseError{
				Line: lineNum,
				Msg:  fmt.Sprintf("expected %d fields, found %d", conlluNumFields, len(record)),
			}
		}
		if !isWordLine(record[colID]) {
			continue
		}
		tok, err := parseToken(record, lineNum)
		if err != nil {
			return nil, err
		}
		curr = append(curr, tok)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read CoNLL-U data: %w", err)
	}
	if len(curr) > 0 {
		doc.Sentences = append(doc.Sentences, Sentence{Tokens: curr})
	}
	return doc, nil
}

func formatString(v string) string {
	if v == "" {
		return conlluEmptyValue
	}
	return v
}

// WriteCoNLLU writes the document in the CoNLL-U format. Columns
// not represented by the Token type are written as empty (`_`).
func WriteCoNLLU(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	for i, sent := range doc.Sentences {
		if _, err := fmt.Fprintf(bw, "# sent_id = %d\n", i+1); err != nil {
			return err
		}
		for _, tok := range sent.Tokens {
			_, err := fmt.Fprintf(
				bw,
				"%d\t%s\t%s\t%s\t_\t_\t%d\t%s\t_\t_\n",
				tok.ID,
				formatString(tok.Text),
				formatString(tok.Lemma),
				formatString(tok.Pos),
				tok.Head,
				formatString(tok.Rel),
			)
			if err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
