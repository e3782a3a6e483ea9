package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"dentadvisor-quiz-service/internal/app"
	"dentadvisor-quiz-service/internal/domain"
	pgstore "dentadvisor-quiz-service/internal/infra/postgres"
	pgmigrations "dentadvisor-quiz-service/internal/infra/postgres/migrations"
	infraredis "dentadvisor-quiz-service/internal/infra/redis"
	"dentadvisor-quiz-service/internal/share"
)

func TestAttemptEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedQuiz(t, ctx, pgURL, sampleQuiz())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgstore.NewQuizLoader(pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	quizRepo := infraredis.NewQuizRepository(redisClient, loader, 5*time.Minute)
	attempts := infraredis.NewSessionStore(redisClient, 5*time.Minute)
	service := app.NewAttemptService(attempts, quizRepo, share.NewBuilder("https://dentadvisor.example.com"), false)

	view, err := service.Start(ctx, "sample")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	view, err = service.SubmitAnswer(ctx, view.AttemptID, domain.AnswerSubmission{QuestionID: "q1", OptionValue: "shallow"})
	if err != nil {
		t.Fatalf("submit q1: %v", err)
	}
	view, err = service.SubmitAnswer(ctx, view.AttemptID, domain.AnswerSubmission{QuestionID: "q2", OptionValue: "intact"})
	if err != nil {
		t.Fatalf("submit q2: %v", err)
	}
	if view.Phase != app.PhaseResults {
		t.Fatalf("expected results, got %s", view.Phase)
	}
	if view.Result.Score != 6 || view.Result.Tier.Title != "Good Candidate" {
		t.Fatalf("expected 6 / Good Candidate, got %d / %q", view.Result.Score, view.Result.Tier.Title)
	}

	// Definition round-tripped through postgres and the redis cache.
	quiz, err := quizRepo.GetQuiz(ctx, "sample")
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("expected 2 questions from store, got %d", len(quiz.Questions))
	}

	// Lead persistence through the same pool.
	store := pgstore.NewLeadStore(pool)
	if err := store.Submit(ctx, domain.Lead{
		Name: "Jordan Smith", Phone: "555-0134", Email: "jordan@example.com", ZIP: "80301", QuizSlug: "sample",
	}); err != nil {
		t.Fatalf("store lead: %v", err)
	}
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM leads WHERE quiz_slug='sample'`).Scan(&count); err != nil {
		t.Fatalf("count leads: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 stored lead, got %d", count)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "quiz", "POSTGRES_PASSWORD": "quizpass", "POSTGRES_DB": "quizdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://quiz:quizpass@%s:%s/quizdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedQuiz(t *testing.T, ctx context.Context, dsn string, quiz domain.Quiz) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	data, err := json.Marshal(quiz)
	if err != nil {
		t.Fatalf("marshal quiz: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO quizzes (slug, data) VALUES (?, ?::jsonb) ON CONFLICT (slug) DO UPDATE SET data=EXCLUDED.data`, quiz.Slug, string(data)); err != nil {
		t.Fatalf("insert quiz: %v", err)
	}
}

func sampleQuiz() domain.Quiz {
	return domain.Quiz{
		Slug:  "sample",
		Title: "Sample Assessment",
		Questions: []domain.Question{
			{
				ID:   "q1",
				Text: "How deep is the dent?",
				Options: []domain.Option{
					{Label: "Shallow", Value: "shallow", Points: 3},
					{Label: "Deep", Value: "deep", Points: 1},
				},
			},
			{
				ID:   "q2",
				Text: "Is the paint intact?",
				Options: []domain.Option{
					{Label: "Yes", Value: "intact", Points: 3},
					{Label: "No", Value: "damaged"},
				},
			},
		},
		Results: []domain.ResultTier{
			{MinScore: 5, MaxScore: 6, Title: "Good Candidate", Severity: domain.SeverityPositive},
			{MinScore: 3, MaxScore: 4, Title: "Maybe", Severity: domain.SeverityCaution},
			{MinScore: 0, MaxScore: 2, Title: "Unlikely", Severity: domain.SeverityNegative},
		},
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
