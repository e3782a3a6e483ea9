package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dentadvisor-quiz-service/internal/app"
	"dentadvisor-quiz-service/internal/catalog"
	"dentadvisor-quiz-service/internal/config"
	"dentadvisor-quiz-service/internal/content"
	"dentadvisor-quiz-service/internal/infra/memory"
	pgstore "dentadvisor-quiz-service/internal/infra/postgres"
	rediscache "dentadvisor-quiz-service/internal/infra/redis"
	"dentadvisor-quiz-service/internal/leads"
	"dentadvisor-quiz-service/internal/share"
	transport "dentadvisor-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	cat := catalog.New()
	warnings, err := cat.Validate()
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		log.Warn(warning)
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	// The compiled-in catalog is the default definition source; a postgres
	// pool swaps in externally authored definitions behind the same cache.
	var loader memory.QuizLoader = cat
	if pool != nil {
		loader = pgstore.NewQuizLoader(pool)
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	var quizRepo app.QuizRepository
	if redisClient != nil {
		quizRepo = rediscache.NewQuizRepository(redisClient, loader, catalogTTL)
	} else {
		quizRepo = memory.NewQuizRepository(loader, catalogTTL)
	}

	var attempts app.AttemptRepository
	if redisClient != nil {
		attempts = rediscache.NewSessionStore(redisClient, redisTTL)
	} else {
		attempts = memory.NewSessionStore()
	}

	shares := share.NewBuilder(cfg.BaseURL())
	service := app.NewAttemptService(attempts, quizRepo, shares, cfg.LeadGateEnabled())

	var sinks []leads.Forwarder
	if pool != nil {
		sinks = append(sinks, pgstore.NewLeadStore(pool))
	}
	if cfg.Leads.Endpoint != "" {
		sinks = append(sinks, leads.NewHTTPForwarder(cfg.Leads.Endpoint, nil))
	}
	var forwarder leads.Forwarder
	if len(sinks) > 0 {
		forwarder = leads.Multi(sinks...)
	}

	var provider content.Provider
	if pool != nil {
		provider = pgstore.NewContentStore(pool)
	}

	handler := transport.NewHandler(service, cat, shares, forwarder, provider, log)
	wsHandler := transport.NewWSHandler(service, log)

	router := handler.Router()
	router.Get("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.WithField("port", finalPort).Info("starting dentadvisor quiz service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server...")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
