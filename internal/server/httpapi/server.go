// Package httpapi is the JSON/HTTP gateway used by browser front-ends.
// It mirrors the gRPC surface on top of the same services.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/Camilo-Usuga/xxi-storage/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Options carries the gateway settings taken from the server config.
type Options struct {
	Address       string
	SecretKey     string
	CORSOrigins   []string
	MaxUploadSize int64
}

type HTTPServer struct {
	address       string
	users         userSvc
	files         fileSvc
	catalog       catalogSvc
	logger        logging.Logger
	jwtSecret     []byte
	maxUploadSize int64
	router        *gin.Engine
}

func NewHTTPServer(opts Options, l logging.Logger, us userSvc, fs fileSvc, cs catalogSvc) *HTTPServer {
	s := &HTTPServer{
		address:       opts.Address,
		users:         us,
		files:         fs,
		catalog:       cs,
		logger:        l.With("module", "http_server"),
		jwtSecret:     []byte(opts.SecretKey),
		maxUploadSize: opts.MaxUploadSize,
	}
	s.router = s.routes(opts.CORSOrigins)
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

func (s *HTTPServer) routes(origins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	if len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", s.register)
		auth.POST("/login", s.login)
		auth.POST("/refresh", s.refresh)
		auth.POST("/logout", s.logout)

		api.GET("/me", s.bearer(true), s.me)

		files := api.Group("/files")
		files.GET("", s.bearer(true), s.listOwned)
		files.GET("/shared", s.bearer(true), s.listShared)
		files.POST("", s.bearer(true), s.upload)
		files.GET("/:id", s.bearer(false), s.getFile)
		files.GET("/:id/view", s.bearer(false), s.view)
		files.GET("/:id/content", s.bearer(false), s.content)
		files.PUT("/:id/visibility", s.bearer(true), s.setVisibility)
		files.POST("/:id/shares", s.bearer(true), s.share)
		files.DELETE("/:id/shares/:userID", s.bearer(true), s.revoke)
		files.DELETE("/:id", s.bearer(true), s.deleteFile)
	}
	return r
}

// Run listens on the configured address and serves until ctx is done.
func (s *HTTPServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve handles requests on lis until ctx is done, then shuts down gracefully.
func (s *HTTPServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
