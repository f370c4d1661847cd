package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"lexwatch-backend/internal/analyses"
	"lexwatch-backend/internal/analyzer"
	"lexwatch-backend/internal/documents"
	"lexwatch-backend/internal/llm"
	azureclient "lexwatch-backend/internal/llm/azure"
	openaiclient "lexwatch-backend/internal/llm/openai"
	"lexwatch-backend/internal/scan"
	"lexwatch-backend/internal/services/health"
	"lexwatch-backend/internal/shared/config"
	"lexwatch-backend/internal/shared/server"
	"lexwatch-backend/internal/shared/storage/db"
	"lexwatch-backend/internal/shared/storage/object"
	localstore "lexwatch-backend/internal/shared/storage/object/local"
	s3store "lexwatch-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	LLM    llm.Client

	Analyzer *analyzer.Analyzer
	Cache    *analyzer.Cache

	DocumentsRepo    documents.DocumentsRepo
	ScanJobsRepo     scan.JobsRepo
	DocumentsService *documents.Service
	ScanService      *scan.Service

	DocumentsHandler *documents.Handler
	AnalysesHandler  *analyses.Handler
	ScanHandler      *scan.Handler
	Health           *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    llmClient,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		DocumentsHandler: app.DocumentsHandler,
		AnalysesHandler:  app.AnalysesHandler,
		ScanHandler:      app.ScanHandler,
		Health:           app.Health,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			slog.Info("[Bootstrap] DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			slog.Warn("[Bootstrap] database connect failed; using in-memory repositories", "error", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "azure":
		if cfg.AzureEndpoint == "" || cfg.AzureDeployment == "" || cfg.AzureAPIKey == "" {
			slog.Warn("[Bootstrap] azure provider selected but not configured; analyses will degrade")
			return llm.PlaceholderClient{}, nil
		}
		return azureclient.NewClient(cfg.AzureEndpoint, cfg.AzureDeployment, cfg.AzureAPIKey)
	default:
		if cfg.OpenAIAPIKey == "" {
			slog.Warn("[Bootstrap] OPENAI_API_KEY empty; analyses will degrade")
			return llm.PlaceholderClient{}, nil
		}
		return openaiclient.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var docRepo documents.DocumentsRepo
	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}

	cache := analyzer.NewCache()
	an := analyzer.New(app.LLM, cache)

	docSvc := &documents.Service{Store: app.Store, Repo: docRepo}
	jobsRepo := scan.NewMemoryRepo()
	scanSvc := &scan.Service{Jobs: jobsRepo, Docs: docRepo, Analyzer: an}

	app.Cache = cache
	app.Analyzer = an
	app.DocumentsRepo = docRepo
	app.ScanJobsRepo = jobsRepo
	app.DocumentsService = docSvc
	app.ScanService = scanSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.AnalysesHandler = analyses.NewHandler(an, docRepo)
	app.ScanHandler = scan.NewHandler(scanSvc)
	app.Health = health.NewService(app.DB, app.Config.LLMProvider)
}
