// Package main is the entry point for the cp-tracker API server: a
// small team hub for competitive programming practice, with shared
// problem sheets, per-member progress, a weighted leaderboard, and
// daily solve streaks.
//
// The layout follows Clean Architecture and DDD:
//   - Domain: business logic with no external dependencies
//   - Application: use case orchestration (Commands/Queries)
//   - Infrastructure: PostgreSQL and Redis implementations
//   - Interface: the REST API
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bitshifter-9/cp-tracker/config"
	"github.com/Bitshifter-9/cp-tracker/internal/application/command"
	"github.com/Bitshifter-9/cp-tracker/internal/application/query"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/infrastructure/auth"
	"github.com/Bitshifter-9/cp-tracker/internal/infrastructure/persistence/postgres"
	"github.com/Bitshifter-9/cp-tracker/internal/infrastructure/persistence/redis"
	httpserver "github.com/Bitshifter-9/cp-tracker/internal/interface/http"
	"github.com/Bitshifter-9/cp-tracker/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg)
	log.Info("starting cp-tracker",
		logger.String("env", cfg.Environment),
		logger.String("timezone", cfg.Timezone),
	)

	location, err := cfg.Location()
	if err != nil {
		return err
	}

	// PostgreSQL
	log.Info("connecting to database")
	dbConn, err := postgres.NewConnectionFromURL(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		log.Info("closing database connection")
		dbConn.Close()
	}()

	log.Info("running database migrations")
	migrator := postgres.NewMigrator(dbConn)
	if err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Redis (sessions)
	log.Info("connecting to Redis")
	sessions, err := redis.NewSessionStoreFromURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	sessions.WithTTL(cfg.SessionTTL)
	defer func() {
		log.Info("closing Redis connection")
		_ = sessions.Close()
	}()

	// Repositories
	teamRepo := postgres.NewTeamRepository(dbConn)
	problemRepo := postgres.NewProblemRepository(dbConn)
	progressRepo := postgres.NewProgressRepository(dbConn)
	sheetRepo := postgres.NewSheetRepository(dbConn)
	contestRepo := postgres.NewContestRepository(dbConn)
	topicRepo := postgres.NewTopicRepository(dbConn)

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	// Application layer
	deps := httpserver.Dependencies{
		CreateTeam:     command.NewCreateTeamHandler(teamRepo, problemRepo, hasher, sessions, nil),
		JoinTeam:       command.NewJoinTeamHandler(teamRepo, hasher, sessions, nil),
		Login:          command.NewLoginHandler(teamRepo, hasher, sessions),
		UpdateProfile:  command.NewUpdateProfileHandler(teamRepo, hasher, sessions),
		RenameTeam:     command.NewRenameTeamHandler(teamRepo),
		AddProblem:     command.NewAddProblemHandler(problemRepo, nil),
		ReorderProblem: command.NewReorderProblemHandler(problemRepo),
		UpdateProgress: command.NewUpdateProgressHandler(problemRepo, progressRepo, nil),
		UpdateNotes:    command.NewUpdateNotesHandler(progressRepo, nil),
		Sheets:         command.NewSheetHandler(sheetRepo, problemRepo, nil),
		Contests:       command.NewContestHandler(contestRepo, nil),
		Topics:         command.NewTopicHandler(topicRepo, nil),

		Leaderboard: query.NewGetLeaderboardHandler(teamRepo, problemRepo, progressRepo),
		Streak:      query.NewGetStreakHandler(progressRepo, nil, location),
		Problems:    query.NewProblemsHandler(problemRepo),
		Progress:    query.NewProgressHandler(progressRepo),
		Team:        query.NewGetTeamHandler(teamRepo),
		Collections: query.NewCollectionsHandler(sheetRepo, contestRepo, topicRepo),

		Sessions: sessionVerifier{store: sessions},
		DB:       dbConn,
		Redis:    sessions,
		Logger:   log,
	}

	// HTTP server
	serverCfg := httpserver.DefaultConfig()
	serverCfg.Host = cfg.Host
	serverCfg.Port = cfg.Port
	server := httpserver.NewServer(serverCfg, deps)

	errCh := server.StartAsync()

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", logger.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info("cp-tracker stopped")
	return nil
}

func setupLogger(cfg *config.Config) *logger.Logger {
	opts := logger.DefaultOptions()
	opts.Level = logger.ParseLevel(cfg.LogLevel)
	opts.AddCaller = !cfg.IsProduction()
	return logger.New(opts)
}

// sessionVerifier adapts the Redis session store to the HTTP layer's
// verifier interface.
type sessionVerifier struct {
	store *redis.SessionStore
}

func (v sessionVerifier) Verify(ctx context.Context, token string) (httpserver.Identity, error) {
	sess, err := v.store.Verify(ctx, token)
	if err != nil {
		return httpserver.Identity{}, err
	}
	return httpserver.Identity{
		TeamID:   shared.TeamID(sess.TeamID),
		Username: shared.Username(sess.Username),
	}, nil
}
