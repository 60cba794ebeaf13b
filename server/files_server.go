package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	config "github.com/acearchive/files/server/config"
	middlewares "github.com/acearchive/files/server/middlewares"
	otel "github.com/acearchive/files/server/otel"
	"github.com/acearchive/files/types"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// FilesServer serves artifact files over HTTP
type FilesServer interface {
	// Start starts the server and blocks until it stops
	Start(ctx context.Context) error

	// Stop gracefully stops the server and releases its stores
	Stop(ctx context.Context) error

	// Handler returns the HTTP handler serving every route
	Handler() http.Handler
}

var _ FilesServer = (*FilesServerImpl)(nil)

// FilesServerImpl implements the FilesServer interface
type FilesServerImpl struct {
	cfg           *config.Config
	logger        *zap.Logger
	otel          otel.OpenTelemetry
	metadata      MetadataStore
	chain         StoreChain
	resolver      *LocatorResolver
	engine        *DeliveryEngine
	headers       *ResponseHeaders
	router        *gin.Engine
	httpServer    *http.Server
	metricsServer *http.Server
}

// NewFilesServer creates a server over the given stores. telemetry may be nil.
func NewFilesServer(cfg *config.Config, logger *zap.Logger, metadata MetadataStore, chain StoreChain, telemetry otel.OpenTelemetry) *FilesServerImpl {
	headers := NewResponseHeaders(cfg)

	s := &FilesServerImpl{
		cfg:      cfg,
		logger:   logger,
		otel:     telemetry,
		metadata: metadata,
		chain:    chain,
		resolver: NewLocatorResolver(metadata, cfg.StorageConfig.KeyPrefix, cfg.DomainConfig.FilesDomain, logger),
		engine:   NewDeliveryEngine(headers, telemetry, logger, cfg.DeliveryConfig.DebugHeaders),
		headers:  headers,
	}
	s.router = s.setupRouter()
	return s
}

// Handler returns the HTTP handler serving every route
func (s *FilesServerImpl) Handler() http.Handler {
	return s.router
}

// setupRouter configures the HTTP router with the file endpoints
func (s *FilesServerImpl) setupRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	if s.cfg.Debug {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// `dir/` and `dir` are distinct spellings with their own redirects.
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(gin.CustomRecovery(s.handlePanic))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggingMiddleware(s.logger, s.cfg.ServerConfig.DisableHealthcheckLog))
	r.Use(s.methodGuard())

	if s.cfg.TelemetryConfig.Enable && s.otel != nil {
		telemetryMw, err := middlewares.NewTelemetryMiddleware(*s.cfg, s.otel, s.logger)
		if err != nil {
			s.logger.Error("failed to create telemetry middleware", zap.Error(err))
		} else {
			r.Use(telemetryMw.Middleware())
		}
	}

	r.SetHTMLTemplate(viewerTemplate())

	r.Match(AllowedMethods, "/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": types.HealthStatusHealthy})
	})

	r.Match(AllowedMethods, "/artifacts/:key/*filename", s.handleFile(types.EndpointArtifactPage))
	r.Match(AllowedMethods, "/raw/:key/*filename", s.handleFile(types.EndpointRaw))
	r.Match(AllowedMethods, "/a/:key/*filename", s.handleFile(types.EndpointShortPage))
	r.Match(AllowedMethods, "/r/:key/*filename", s.handleFile(types.EndpointShortRaw))

	r.Match(AllowedMethods, "/assets/style.css", s.handleAsset("style.css", "text/css; charset=utf-8"))
	r.Match(AllowedMethods, "/assets/script.js", s.handleAsset("script.js", "text/javascript; charset=utf-8"))

	r.NoRoute(func(c *gin.Context) {
		s.writeError(c, NewNotFoundError(requestURL(c.Request)))
	})

	return r
}

// methodGuard rejects every method other than GET and HEAD on every path
func (s *FilesServerImpl) methodGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead:
			c.Next()
		default:
			s.writeError(c, NewMethodNotAllowedError(c.Request.Method, AllowedMethods))
		}
	}
}

// handleFile resolves the locator and then redirects, renders the viewer
// page or delivers the object
func (s *FilesServerImpl) handleFile(family types.EndpointFamily) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		locator, err := types.ParseLocatorPath(family, c.Param("key"), c.Param("filename"))
		if err != nil {
			s.logger.Debug("invalid file path", zap.String("path", c.Request.URL.Path), zap.Error(err))
			s.writeError(c, NewNotFoundError(requestURL(c.Request)))
			return
		}

		result, err := s.resolver.ResolveStorageKey(ctx, locator, family)
		if err != nil {
			s.writeError(c, err)
			return
		}

		switch result.Status {
		case StorageKeyNotFound:
			s.writeError(c, NewNotFoundError(requestURL(c.Request)))
			return

		case StorageKeyRedirect:
			if s.otel != nil {
				s.otel.RecordRedirect(ctx, family.String())
			}
			s.headers.Apply(c.Writer.Header())
			c.Redirect(http.StatusMovedPermanently, result.URL)
			return
		}

		if family == types.EndpointArtifactPage && s.wantsViewer(c, result.Metadata) {
			s.renderViewer(c, result.Metadata)
			return
		}

		response, err := s.engine.Deliver(ctx, s.chain, result.StorageKey, result.Metadata, c.Request)
		if err != nil {
			s.writeError(c, err)
			return
		}

		if err := response.Write(c.Writer); err != nil {
			s.logger.Warn("failed to write response",
				zap.String("key", result.StorageKey),
				zap.Error(err))
		}
	}
}

func (s *FilesServerImpl) wantsViewer(c *gin.Context, metadata types.ArtifactFileMetadata) bool {
	if ViewerKindFor(metadata.MediaType) == ViewerNone {
		return false
	}
	return PrefersHTML(c.Request.Header.Values("Accept"), metadata.MediaType)
}

func (s *FilesServerImpl) renderViewer(c *gin.Context, metadata types.ArtifactFileMetadata) {
	s.headers.Apply(c.Writer.Header())
	c.HTML(http.StatusOK, "viewer.html", newViewerPage(s.cfg.DomainConfig.ArchiveDomain, metadata))
}

func (s *FilesServerImpl) handleAsset(name, contentType string) gin.HandlerFunc {
	data := mustAsset(name)
	return func(c *gin.Context) {
		s.headers.Apply(c.Writer.Header())
		c.Data(http.StatusOK, contentType, data)
	}
}

// writeError renders err and stops the handler chain. Internal failures are
// logged and answered with a generic 500.
func (s *FilesServerImpl) writeError(c *gin.Context, err error) {
	responseErr := AsResponseError(err)
	if responseErr.Status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}

	c.Abort()
	responseErr.Write(c.Writer, s.headers)
}

func (s *FilesServerImpl) handlePanic(c *gin.Context, recovered any) {
	s.writeError(c, fmt.Errorf("panic: %v", recovered))
}

// Start starts the files server
func (s *FilesServerImpl) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.ServerConfig.Host, s.cfg.ServerConfig.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ServerConfig.ReadTimeout,
		WriteTimeout: s.cfg.ServerConfig.WriteTimeout,
		IdleTimeout:  s.cfg.ServerConfig.IdleTimeout,
	}

	s.logger.Info("starting files server",
		zap.String("address", addr),
		zap.String("files_domain", s.cfg.DomainConfig.FilesDomain),
		zap.Int("object_stores", len(s.chain)))

	if s.cfg.TelemetryConfig.Enable && s.otel != nil {
		metricsRouter := gin.New()
		metricsRouter.Use(gin.Recovery())
		metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

		metricsAddr := s.cfg.TelemetryConfig.MetricsConfig.Host + ":" + s.cfg.TelemetryConfig.MetricsConfig.Port
		s.metricsServer = &http.Server{
			Addr:         metricsAddr,
			Handler:      metricsRouter,
			ReadTimeout:  s.cfg.TelemetryConfig.MetricsConfig.ReadTimeout,
			WriteTimeout: s.cfg.TelemetryConfig.MetricsConfig.WriteTimeout,
			IdleTimeout:  s.cfg.TelemetryConfig.MetricsConfig.IdleTimeout,
		}

		go func() {
			s.logger.Info("starting metrics server", zap.String("address", metricsAddr))
			if err := s.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	var err error
	if s.cfg.ServerConfig.TLSConfig.Enable {
		err = s.httpServer.ListenAndServeTLS(s.cfg.ServerConfig.TLSConfig.CertPath, s.cfg.ServerConfig.TLSConfig.KeyPath)
	} else {
		err = s.httpServer.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("files server failed: %w", err)
	}
	return nil
}

// Stop gracefully stops the files server
func (s *FilesServerImpl) Stop(ctx context.Context) error {
	s.logger.Info("stopping files server")

	var err error

	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			s.logger.Error("error stopping HTTP server", zap.Error(shutdownErr))
			err = shutdownErr
		}
	}

	if s.metricsServer != nil {
		if shutdownErr := s.metricsServer.Shutdown(ctx); shutdownErr != nil {
			s.logger.Error("error stopping metrics server", zap.Error(shutdownErr))
			if err == nil {
				err = shutdownErr
			}
		}
	}

	if s.otel != nil {
		if shutdownErr := s.otel.ShutDown(ctx); shutdownErr != nil {
			s.logger.Error("error shutting down telemetry", zap.Error(shutdownErr))
			if err == nil {
				err = shutdownErr
			}
		}
	}

	if closeErr := s.chain.Close(); closeErr != nil {
		s.logger.Error("error closing object stores", zap.Error(closeErr))
		if err == nil {
			err = closeErr
		}
	}

	if s.metadata != nil {
		if closeErr := s.metadata.Close(); closeErr != nil {
			s.logger.Error("error closing metadata store", zap.Error(closeErr))
			if err == nil {
				err = closeErr
			}
		}
	}

	defer func() {
		_ = s.logger.Sync()
	}()

	return err
}
