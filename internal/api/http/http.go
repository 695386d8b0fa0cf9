package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/dependency"
	mw "github.com/chrisprideC9/shopping-scraper-graphs/internal/middleware"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/ratelimit"
	"github.com/chrisprideC9/shopping-scraper-graphs/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const serviceName = "shopping-scraper-graphs"

// Config is the configuration for the http server
type Config struct {
	Port           string           `mapstructure:"port"`
	Address        string           `mapstructure:"address"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration    `mapstructure:"request_timeout"`
	RateLimit      ratelimit.Config `mapstructure:"rate_limit"`
}

// Server is the http server
type Server struct {
	hs          *http.Server
	c           *Config
	rep         dependency.Reporter
	limiter     *ratelimit.Limiter
	log         *slog.Logger
	defaultDays int
	now         func() time.Time
	done        chan struct{}
}

// New creates a new server. defaultDays is the trailing window used when a
// request names no dates.
func New(config *Config, rep dependency.Reporter, defaultDays int, l *slog.Logger) *Server {
	if l == nil {
		l = slog.Default()
	}
	return &Server{
		c:           config,
		rep:         rep,
		limiter:     ratelimit.NewLimiter(config.RateLimit),
		log:         l,
		defaultDays: defaultDays,
		now:         time.Now,
		done:        make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler returns the API routes with the middleware stack applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(mw.ClientIdentifier)
	r.Use(log.RequestLogger(s.log))
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", log.RequestIDHeader},
		ExposedHeaders: []string{log.RequestIDHeader},
		MaxAge:         300,
	}))
	if s.c.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.c.RequestTimeout))
	}
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/healthz", s.healthz)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.rateLimit)

		r.Get("/clients", s.listClients)
		r.Route("/clients/{client}", func(r chi.Router) {
			r.Get("/", s.overview)
			r.Get("/keywords", s.listKeywords)
			r.Get("/top-products", s.topProducts)
			r.Get("/filters", s.topFilters)
			r.Get("/merchants", s.merchantDistribution)
			r.Get("/merchants/{merchant}/products", s.merchantProducts)
			r.Get("/trends", s.positionTrends)
		})
		r.Get("/merchants/{merchant}/policy", s.shippingReturns)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Render(w, r, ErrNotFound)
	})

	return otelhttp.NewHandler(r, serviceName)
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	go func() {
		s.log.InfoContext(ctx, "new listener", slog.String("addr", "http://"+listenerAddr))
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			s.log.InfoContext(ctx, "http server returned")
		} else {
			s.log.ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		s.limiter.Stop()
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		s.limiter.Stop()
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(mw.GetClientIP(r.Context())) {
			render.Render(w, r, ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin || allowedOrigin == "*" {
			return true
		}
	}

	return false
}
