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

package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"synsearch/cnf"
	"synsearch/corpus"
	"synsearch/handlers"
	"synsearch/openapi"
	"synsearch/rdb"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type serverInfoResponse struct {
	Name        string      `json:"name"`
	Version     versionInfo `json:"version"`
	PublicURL   string      `json:"publicUrl"`
	NumArticles int         `json:"numArticles"`
}

func mkServerInfo(conf *cnf.Conf, version versionInfo, manager *corpus.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(
			ctx.Writer,
			serverInfoResponse{
				Name:        "SynSearch",
				Version:     version,
				PublicURL:   conf.PublicURL,
				NumArticles: manager.NumArticles(),
			},
		)
	}
}

type apiServer struct {
	server   *http.Server
	conf     *cnf.Conf
	version  versionInfo
	radapter *rdb.Adapter
	manager  *corpus.Manager
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.Logging.Level.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	protected := engine.Group("/tools").Use(AuthRequired(api.conf))

	actions := handlers.NewActions(api.manager, api.radapter)

	engine.GET("/", mkServerInfo(api.conf, api.version, api.manager))

	engine.GET(
		"/openapi", openapi.MkHandleRequest(api.conf, api.version.Version))

	engine.GET(
		"/articles", actions.Articles)

	engine.GET(
		"/pos-freqs/:articleId", actions.POSFreqs)

	engine.GET(
		"/pattern-search", actions.PatternSearch)

	protected.POST(
		"/analyze/:articleId", actions.Analyze)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

}

func (s *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down SynSearch HTTP API server")
	return s.server.Shutdown(ctx)
}

// runServices starts all the services and waits for a shutdown signal
// (the context being done) to stop them gracefully.
func runServices(ctx context.Context, services []service) {
	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}

func runApiServer(
	conf *cnf.Conf,
	version versionInfo,
) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	manager, err := corpus.NewManager(conf.Corpus.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open corpus")
		return
	}
	radapter := rdb.NewAdapter(conf.Redis, ctx)
	if err := radapter.TestConnection(redisConnectionTestTimeout); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
		return
	}
	server := newAPIServer(conf, version, radapter, manager)
	runServices(ctx, []service{server})
}

func newAPIServer(
	conf *cnf.Conf,
	version versionInfo,
	radapter *rdb.Adapter,
	manager *corpus.Manager,
) *apiServer {
	return &apiServer{
		conf:     conf,
		version:  version,
		radapter: radapter,
		manager:  manager,
	}
}
