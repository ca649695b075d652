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
	"regexp"
	"strings"
)

var (
	nonWordChars = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	whitespaces  = regexp.MustCompile(`\s+`)
)

// CleanText lower-cases the text, removes punctuation
// and normalizes whitespaces.
func CleanText(text string) string {
	ans := strings.ToLower(text)
	ans = nonWordChars.ReplaceAllString(ans, "")
	ans = whitespaces.ReplaceAllString(ans, " ")
	return strings.TrimSpace(ans)
}
