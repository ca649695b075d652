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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"synsearch/cnf"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponseListsAllRoutes(t *testing.T) {
	resp := NewResponse("1.0.0", "http://localhost:8989/")
	assert.Equal(t, "3.1.0", resp.OpenAPI)
	assert.Equal(t, "1.0.0", resp.Info.Version)
	for _, p := range []string{"/articles", "/pos-freqs/{articleId}", "/pattern-search"} {
		assert.NotNil(t, resp.Paths[p].Get, p)
	}
	assert.NotNil(t, resp.Paths["/tools/analyze/{articleId}"].Post)
}

func TestHandlerUsesForwardedHost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/openapi", MkHandleRequest(&cnf.Conf{}, "0.1"))

	req := httptest.NewRequest(http.MethodGet, "/openapi", nil)
	req.Header.Set("x-forwarded-proto", "https")
	req.Header.Set("x-forwarded-host", "syn.example.org")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Servers, 1)
	assert.Equal(t, "https://syn.example.org/", resp.Servers[0].URL)
}

func TestHandlerPrefersConfiguredURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/openapi", MkHandleRequest(&cnf.Conf{PublicURL: "https://api.example.org/syn"}, "0.1"))

	req := httptest.NewRequest(http.MethodGet, "/openapi", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://api.example.org/syn", resp.Servers[0].URL)
}
