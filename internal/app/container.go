package app

import (
	"fmt"
	"net/http"

	"github.com/kapu/member-directory-go/internal/config"
	"github.com/kapu/member-directory-go/internal/constants"
	"github.com/kapu/member-directory-go/internal/server"
	"github.com/kapu/member-directory-go/internal/service"
	"go.uber.org/zap"
)

// Container bundles the assembled engine and HTTP server. The engine owns
// all shared mutable state (record cache, metrics); it is constructed once
// per process and torn down at shutdown.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Engine *service.ExtractorEngine

	httpServer *http.Server
}

// Build assembles the extraction engine and HTTP surface from configuration.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	fetcher := service.NewDocumentFetcher(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger)
	engine := service.NewExtractorEngine(fetcher, service.EngineConfig{
		DefaultChunkSize:       cfg.Batch.ChunkSize,
		DefaultInterChunkDelay: cfg.Batch.InterChunkDelay,
	}, logger)

	handler := server.NewHandler(engine, cfg.Batch.MaxRangeSize)
	router := server.NewRouter(handler, logger)

	logger.Info("Extraction engine assembled",
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.Int("default_chunk_size", cfg.Batch.ChunkSize),
		zap.Int("max_range_size", cfg.Batch.MaxRangeSize))

	return &Container{
		Config: cfg,
		Logger: logger,
		Engine: engine,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: constants.ServerConfig.ReadHeaderTimeout,
		},
	}, nil
}

// HTTPServer returns the configured but not yet started HTTP server.
func (c *Container) HTTPServer() *http.Server {
	return c.httpServer
}
