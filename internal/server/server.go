package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/orderdesk/apiserver/config"
	"github.com/orderdesk/apiserver/internal/audit"
	"github.com/orderdesk/apiserver/internal/db"
	"github.com/orderdesk/apiserver/internal/handlers"
	"github.com/orderdesk/apiserver/internal/intercept"
	"github.com/orderdesk/apiserver/internal/services"
	"github.com/orderdesk/apiserver/internal/store"
	"github.com/rs/zerolog"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	audit      *audit.Recorder
}

// New constructs a Server with the full decorator chain wired in.
// From the outside in: handler wrapping (error and success logging,
// audit) → email validation → service call logging → the services
// themselves.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	recorder, err := newAuditRecorder(ctx, cfg, logger)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	orderRepo := store.NewOrderRepository(dbConn)

	var users services.Users = services.NewUserService(userRepo)
	users = intercept.NewLoggingUsers(users, logger)
	users = intercept.NewValidatingUsers(users, logger)

	var orders services.Orders = services.NewOrderService(orderRepo, users)
	orders = intercept.NewLoggingOrders(orders, logger)

	responder := handlers.NewResponder(logger, recorder)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api", func(r chi.Router) {
		handlers.UserRouter(r, users, responder)
		handlers.OrderRouter(r, orders, responder)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		audit:      recorder,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and releases resources.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if s.audit != nil {
		_ = s.audit.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	return err
}

func newLogger(level string) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger().Level(parsed), nil
}

func newAuditRecorder(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*audit.Recorder, error) {
	var backend audit.Backend
	switch cfg.Audit.Backend {
	case "":
		// Log-only recorder.
	case "rabbitmq":
		client, err := audit.NewRabbitMQBackend(cfg.Audit.RabbitMQ)
		if err != nil {
			return nil, err
		}
		backend = client
	case "pubsub":
		client, err := audit.NewPubSubBackend(ctx, cfg.Audit.PubSub)
		if err != nil {
			return nil, err
		}
		backend = client
	default:
		return nil, fmt.Errorf("unknown audit backend %q", cfg.Audit.Backend)
	}
	return audit.NewRecorder(backend, cfg.Audit.Channel, logger), nil
}
