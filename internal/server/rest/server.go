// Package rest serves the blog API over HTTP.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/logging"
	"github.com/dmitrijs2005/blogapi/internal/server/metrics"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/dmitrijs2005/blogapi/internal/server/services"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
)

const (
	apiPrefix = "/api/v1"

	// maxBodyBytes caps every request body.
	maxBodyBytes = 1 << 20
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

type BlogService interface {
	Create(ctx context.Context, in services.BlogInput) (*models.Blog, error)
	List(ctx context.Context) ([]*models.Blog, error)
}

type Server struct {
	address         string
	logger          logging.Logger
	users           UserService
	blogs           BlogService
	allowedOrigins  []string
	shutdownTimeout time.Duration

	collector *metrics.Collector
	registry  *prometheus.Registry
}

func NewServer(a string, l logging.Logger, us UserService, bs BlogService, allowedOrigins []string, shutdownTimeout time.Duration) *Server {
	collector := metrics.NewCollector()
	return &Server{
		address:         a,
		logger:          l.With("module", "http_server"),
		users:           us,
		blogs:           bs,
		allowedOrigins:  allowedOrigins,
		shutdownTimeout: shutdownTimeout,
		collector:       collector,
		registry:        metrics.NewRegistry(collector),
	}
}

// Handler returns the complete handler chain: CORS, request id, access log,
// metrics, then routing.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler(s.registry)).Methods(http.MethodGet)

	// Full paths on the root router: a PathPrefix subrouter loses the
	// method mismatch and answers 404 instead of 405.
	r.HandleFunc(apiPrefix+"/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/blogs", s.handleCreateBlog).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/blogs", s.handleListBlogs).Methods(http.MethodGet)

	var h http.Handler = r
	h = s.metricsMiddleware(r, h)
	h = s.accessLogMiddleware(h)
	h = s.requestIDMiddleware(h)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	return c.Handler(h)
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *Server) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
