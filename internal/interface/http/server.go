// Package http implements the REST API: team access, the problem
// catalog, progress tracking, the leaderboard, streaks, and the
// planning endpoints (sheets, contests, topics).
package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Bitshifter-9/cp-tracker/internal/application/command"
	"github.com/Bitshifter-9/cp-tracker/internal/application/query"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/pkg/logger"
)

// Config contains HTTP server configuration.
type Config struct {
	// Host - address to bind (default: "0.0.0.0").
	Host string

	// Port - port to listen on (default: 8080).
	Port int

	// ReadTimeout - maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout - maximum duration for writing the response.
	WriteTimeout time.Duration

	// IdleTimeout - maximum duration for idle connections.
	IdleTimeout time.Duration

	// MaxHeaderBytes - maximum size of request headers.
	MaxHeaderBytes int

	// EnableCORS - enable CORS headers.
	EnableCORS bool

	// AllowedOrigins - allowed origins for CORS.
	AllowedOrigins []string
}

// DefaultConfig returns default server configuration.
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
	}
}

// Address returns the server address string.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Identity is the authenticated caller a session token resolves to.
type Identity struct {
	TeamID   shared.TeamID
	Username shared.Username
}

// SessionVerifier resolves bearer tokens. Implemented by an adapter over
// the Redis session store.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies contains everything the HTTP handlers need.
type Dependencies struct {
	// Commands (write side)
	CreateTeam     *command.CreateTeamHandler
	JoinTeam       *command.JoinTeamHandler
	Login          *command.LoginHandler
	UpdateProfile  *command.UpdateProfileHandler
	RenameTeam     *command.RenameTeamHandler
	AddProblem     *command.AddProblemHandler
	ReorderProblem *command.ReorderProblemHandler
	UpdateProgress *command.UpdateProgressHandler
	UpdateNotes    *command.UpdateNotesHandler
	Sheets         *command.SheetHandler
	Contests       *command.ContestHandler
	Topics         *command.TopicHandler

	// Queries (read side)
	Leaderboard *query.GetLeaderboardHandler
	Streak      *query.GetStreakHandler
	Problems    *query.ProblemsHandler
	Progress    *query.ProgressHandler
	Team        *query.GetTeamHandler
	Collections *query.CollectionsHandler

	// Sessions authenticates bearer tokens.
	Sessions SessionVerifier

	// Health check targets.
	DB    Pinger
	Redis Pinger

	// Logger
	Logger *logger.Logger
}

// Server represents the HTTP server.
type Server struct {
	config     Config
	deps       Dependencies
	httpServer *http.Server
	router     chi.Router
	logger     *logger.Logger

	mu        sync.RWMutex
	running   bool
	startedAt time.Time
}

// NewServer creates a new HTTP server with the given configuration and
// dependencies.
func NewServer(config Config, deps Dependencies) *Server {
	s := &Server{
		config: config,
		deps:   deps,
		logger: deps.Logger,
	}

	if s.logger == nil {
		s.logger = logger.Default()
	}

	s.router = s.buildRouter()

	s.httpServer = &http.Server{
		Addr:           config.Address(),
		Handler:        s.router,
		ReadTimeout:    config.ReadTimeout,
		WriteTimeout:   config.WriteTimeout,
		IdleTimeout:    config.IdleTimeout,
		MaxHeaderBytes: config.MaxHeaderBytes,
	}

	return s
}

// buildRouter configures the middleware stack and all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(s.requestIDMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.loggingMiddleware)
	if s.config.EnableCORS {
		r.Use(s.corsMiddleware)
	}

	// Liveness and readiness
	r.Get("/health", s.handleHealth)
	r.Get("/healthz", s.handleHealth)
	r.Get("/live", s.handleLive)
	r.Get("/ready", s.handleReady)

	r.Route("/api/v1", func(r chi.Router) {
		// Public: team access
		r.Post("/teams", s.handleCreateTeam)
		r.Post("/teams/join", s.handleJoinTeam)
		r.Post("/auth/login", s.handleLogin)

		// Everything else requires a session
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Get("/team", s.handleGetTeam)
			r.Put("/team/name", s.handleRenameTeam)
			r.Get("/team/leaderboard", s.handleLeaderboard)

			r.Put("/profile", s.handleUpdateProfile)

			r.Get("/sheets", s.handleListSheets)
			r.Post("/sheets", s.handleCreateSheet)
			r.Put("/sheets/{sheetID}", s.handleRenameSheet)
			r.Delete("/sheets/{sheetID}", s.handleDeleteSheet)

			r.Get("/sheets/{sheetID}/problems", s.handleListProblems)
			r.Post("/sheets/{sheetID}/problems", s.handleAddProblem)
			r.Get("/problems/search", s.handleSearchProblems)
			r.Post("/problems/{problemID}/reorder", s.handleReorderProblem)
			r.Put("/problems/{problemID}/progress", s.handleUpdateProgress)
			r.Put("/problems/{problemID}/notes", s.handleUpdateNotes)

			r.Get("/progress", s.handleTeamProgress)
			r.Get("/members/{username}/progress", s.handleUserProgress)
			r.Get("/members/{username}/streak", s.handleStreak)

			r.Get("/contests", s.handleListContests)
			r.Post("/contests", s.handleAddContest)
			r.Delete("/contests/{contestID}", s.handleDeleteContest)

			r.Get("/topics", s.handleListTopics)
			r.Post("/topics", s.handleCreateTopic)
			r.Patch("/topics/{topicID}", s.handleUpdateTopic)
			r.Put("/topics/{topicID}/status", s.handleSetTopicStatus)
			r.Delete("/topics/{topicID}", s.handleDeleteTopic)
		})
	})

	return r
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("server already running")
	}
	s.running = true
	s.startedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("starting HTTP server", logger.String("address", s.config.Address()))

	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Uptime returns the server uptime.
func (s *Server) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.running {
		return 0
	}
	return time.Since(s.startedAt)
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
