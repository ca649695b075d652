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


package openapi

import (
	"fmt"
	"net/http"

	"synsearch/cnf"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

func findHTTPProtocol(req *http.Request) string {
	if prot := req.Header.Get("x-forwarded-proto"); prot != "" {
		return prot
	}
	if req.TLS != nil {
		return "https"
	}
	return "http"
}

func findHTTPServer(req *http.Request) string {
	if serv := req.Header.Get("x-forwarded-host"); serv != "" {
		return serv
	}
	return req.Host
}

// findPublicURL prefers the configured public URL, otherwise
// it is derived from the request (including proxy headers).
func findPublicURL(conf *cnf.Conf, req *http.Request) string {
	if conf.PublicURL != "" {
		return conf.PublicURL
	}
	return fmt.Sprintf("%s://%s/", findHTTPProtocol(req), findHTTPServer(req))
}

func MkHandleRequest(conf *cnf.Conf, ver string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ans := NewResponse(ver, findPublicURL(conf, ctx.Request))
		uniresp.WriteJSONResponse(ctx.Writer, ans)
	}
}
