package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
	"github.com/auditx/auditx/internal/service/logger"
	"github.com/auditx/auditx/internal/usecase"
)

// Server represents the HTTP server
type Server struct {
	addr   string
	server *http.Server
	log    logger.Logger
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Dependencies bundles everything the route tree needs.
type Dependencies struct {
	AuthUseCase     *usecase.AuthUseCase
	CompanyUseCase  *usecase.CompanyUseCase
	AuditUseCase    *usecase.AuditUseCase
	AnalysisUseCase *usecase.AnalysisUseCase
	Tokens          ports.TokenService
	Files           ports.FileStore
	Catalog         domain.Catalog
	Logger          logger.Logger
}

// NewServer creates a new HTTP server with the full route tree.
// Everything under /api except the auth endpoints requires a valid
// bearer token.
func NewServer(config ServerConfig, deps Dependencies) *Server {
	router := mux.NewRouter()

	router.Use(loggingMiddleware(deps.Logger))
	router.Use(corsMiddleware)
	router.Use(recoveryMiddleware(deps.Logger))

	public := router.PathPrefix("/api").Subrouter()
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(authMiddleware(deps.Tokens))

	NewAuthHandler(deps.AuthUseCase).RegisterRoutes(public, protected)
	NewCompanyHandler(deps.CompanyUseCase).RegisterRoutes(protected)
	NewAuditHandler(deps.AuditUseCase, deps.Catalog).RegisterRoutes(protected)
	NewAnalysisHandler(deps.AnalysisUseCase).RegisterRoutes(protected)
	if deps.Files != nil {
		NewUploadHandler(deps.Files).RegisterRoutes(protected)
	}

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return &Server{
		addr: ":" + config.Port,
		log:  deps.Logger,
		server: &http.Server{
			Addr:         ":" + config.Port,
			Handler:      router,
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
			IdleTimeout:  config.IdleTimeout,
		},
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info(context.Background(), "starting http server", map[string]interface{}{"addr": s.addr})
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info(ctx, "shutting down http server", nil)
	return s.server.Shutdown(ctx)
}
