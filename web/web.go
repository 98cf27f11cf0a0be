// Package web provides the HTTP server of the postboard API: router setup,
// middleware chain and lifecycle.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"postboard/config"
	"postboard/logger"
	"postboard/web/controller"
	"postboard/web/entity"
	"postboard/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Server is the postboard web server.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	api *controller.APIController

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers the middleware chain and the API
// controllers and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Panics surface as the generic fault envelope; detail stays in the log.
	engine.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error("panic recovered:", err)
		fault := entity.Fault()
		c.AbortWithStatusJSON(fault.HTTPStatus(), fault.Response())
	}))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	s.api = controller.NewAPIController(&engine.RouterGroup)

	engine.NoRoute(func(c *gin.Context) {
		notFound := entity.NotFound("Resource not found")
		c.AbortWithStatusJSON(notFound.HTTPStatus(), notFound.Response())
	})

	return engine, nil
}

// Start builds the router, binds the listener and serves in the background.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			s.Stop()
		}
	}()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	addr := net.JoinHostPort("", config.GetListenPort())
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{Handler: engine}
	go func() {
		if serveErr := s.httpServer.Serve(s.listener); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("web server error:", serveErr)
		}
	}()

	logger.Infof("%v %v listening on %v", config.GetName(), config.GetVersion(), addr)
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	s.cancel()

	var err error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.httpServer.Shutdown(ctx)
	}
	if s.listener != nil {
		// Shutdown closes the listener; Close here covers the failed-start path.
		_ = s.listener.Close()
	}
	return err
}
