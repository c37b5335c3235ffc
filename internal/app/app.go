package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadim/agency-planner/internal/config"
	httpcontroller "github.com/vadim/agency-planner/internal/controller/http"
	"github.com/vadim/agency-planner/internal/database"
	clientdao "github.com/vadim/agency-planner/internal/domain/client/dao"
	clientpolicy "github.com/vadim/agency-planner/internal/domain/client/policy"
	clientsvc "github.com/vadim/agency-planner/internal/domain/client/service"
	plandao "github.com/vadim/agency-planner/internal/domain/plan/dao"
	planent "github.com/vadim/agency-planner/internal/domain/plan/entity"
	plansvc "github.com/vadim/agency-planner/internal/domain/plan/service"
	postdao "github.com/vadim/agency-planner/internal/domain/post/dao"
	postpolicy "github.com/vadim/agency-planner/internal/domain/post/policy"
	"github.com/vadim/agency-planner/internal/domain/post/scheduler"
	postsvc "github.com/vadim/agency-planner/internal/domain/post/service"
	"github.com/vadim/agency-planner/internal/httpx/upstream/mailer"
	"github.com/vadim/agency-planner/internal/httpx/upstream/openai"
	"github.com/vadim/agency-planner/internal/storage"
)

// App is the main application container
type App struct {
	cfg        config.Config
	httpServer *http.Server
	router     *chi.Mux
	logger     *slog.Logger
	pool       *pgxpool.Pool

	// Domain policies (interfaces for HTTP handlers)
	postPolicy   *postpolicy.Policy
	planService  *plansvc.Service
	clientPolicy *clientpolicy.Policy
	uploader     *storage.S3Storage

	// Scheduler for publication-day reminders
	scheduler *scheduler.Scheduler
}

// NewApp creates and initializes the application
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	app := &App{
		cfg:    cfg,
		router: r,
		logger: logger,
	}

	if err := app.initInfrastructure(ctx); err != nil {
		return nil, fmt.Errorf("initializing infrastructure: %w", err)
	}

	if err := app.initDomains(ctx); err != nil {
		return nil, fmt.Errorf("initializing domains: %w", err)
	}

	app.registerRoutes()

	app.httpServer = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      app.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	if cfg.Scheduler.Enabled {
		app.scheduler = scheduler.New(app.postPolicy, cfg.Scheduler.Interval, logger)
	}

	return app, nil
}

// initInfrastructure initializes infrastructure components
func (a *App) initInfrastructure(ctx context.Context) error {
	pool, err := database.NewPostgresPool(ctx, a.cfg.Database.PostgresDSN, database.PoolOptions{
		MaxConns:        a.cfg.Database.MaxOpenConns,
		MinConns:        a.cfg.Database.MaxIdleConns,
		MaxConnLifetime: a.cfg.Database.ConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	a.pool = pool

	uploader, err := storage.NewS3Storage(storage.S3Config{
		Endpoint:        a.cfg.S3.Endpoint,
		AccessKeyID:     a.cfg.S3.AccessKeyID,
		SecretAccessKey: a.cfg.S3.SecretAccessKey,
		Bucket:          a.cfg.S3.Bucket,
		Region:          a.cfg.S3.Region,
		PublicURL:       a.cfg.S3.PublicURL,
	})
	if err != nil {
		return fmt.Errorf("initializing s3 storage: %w", err)
	}
	a.uploader = uploader

	return nil
}

// initDomains initializes domain layers (DAO, Service, Policy)
func (a *App) initDomains(ctx context.Context) error {
	loc, err := time.LoadLocation(a.cfg.App.Timezone)
	if err != nil {
		a.logger.Warn("unknown timezone, falling back to UTC", "timezone", a.cfg.App.Timezone)
		loc = time.UTC
	}

	// Clients and objectives
	clientRepo := clientdao.NewClientPostgres(a.pool)
	objectiveRepo := clientdao.NewObjectivePostgres(a.pool)
	clientService := clientsvc.New(clientRepo, objectiveRepo)

	var analyzer clientpolicy.SWOTAnalyzer
	var captions postpolicy.CaptionGenerator
	if a.cfg.OpenAI.APIKey != "" {
		ai := openai.New(a.cfg.OpenAI.APIKey, openai.WithModel(a.cfg.OpenAI.Model))
		analyzer = &swotAnalyzerAdapter{ai}
		captions = &captionGeneratorAdapter{ai}
	}
	a.clientPolicy = clientpolicy.New(clientService, analyzer)

	// Plans
	planRepo := plandao.NewPlanPostgres(a.pool)
	a.planService = plansvc.New(planRepo)

	// Planned posts
	postRepo := postdao.NewPostPostgres(a.pool)
	auditRepo := postdao.NewAuditPostgres(a.pool)
	postService := postsvc.New(
		postRepo,
		auditRepo,
		&planProviderAdapter{a.planService},
		&objectiveProviderAdapter{clientService},
		loc,
		a.logger,
	)

	var notifier postpolicy.Notifier
	if a.cfg.Mailer.BaseURL != "" {
		notifier = &mailerNotifierAdapter{mailer.New(a.cfg.Mailer.BaseURL, a.cfg.Mailer.APIKey, a.cfg.Mailer.From)}
	}
	a.postPolicy = postpolicy.New(postService, notifier, captions, a.cfg.Mailer.Recipients, a.logger)

	return nil
}

// registerRoutes registers all HTTP routes
func (a *App) registerRoutes() {
	// Health check
	a.router.Get("/healthz", a.healthHandler)
	a.router.Get("/readyz", a.readyHandler)

	// Swagger UI documentation
	swaggerHandler := httpcontroller.NewDocsHandler("Agency Planner API", OpenAPISpec)
	swaggerHandler.RegisterRoutes(a.router)

	// API v1
	a.router.Route("/api/v1", func(r chi.Router) {
		httpcontroller.NewPostHandler(a.postPolicy).RegisterRoutes(r)
		httpcontroller.NewPlanHandler(a.planService).RegisterRoutes(r)
		httpcontroller.NewClientHandler(a.clientPolicy).RegisterRoutes(r)
		httpcontroller.NewMediaHandler(&mediaUploaderAdapter{a.uploader}, a.logger).RegisterRoutes(r)
	})
}

// healthHandler handles health check requests
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// readyHandler handles readiness check requests
func (a *App) readyHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.pool.Ping(r.Context()); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"unavailable"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

// Run starts the application and blocks until shutdown signal
func (a *App) Run(ctx context.Context) error {
	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", "addr", a.cfg.Server.Address())
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.logger.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		a.logger.Info("context cancelled")
	}

	return a.Shutdown(context.Background())
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down...")

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}

	if a.pool != nil {
		a.pool.Close()
	}

	a.logger.Info("shutdown complete")
	return nil
}

// planProviderAdapter adapts the plan service to postsvc.PlanProvider
type planProviderAdapter struct {
	plans *plansvc.Service
}

func (a *planProviderAdapter) PlanInfo(ctx context.Context, planID string) (*postsvc.PlanInfo, error) {
	p, err := a.plans.GetPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, planent.ErrPlanNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &postsvc.PlanInfo{
		ID:            p.ID,
		ClientID:      p.ClientID,
		MonthOfRecord: p.MonthOfRecord,
	}, nil
}

// objectiveProviderAdapter adapts the client service to postsvc.ObjectiveProvider
type objectiveProviderAdapter struct {
	clients *clientsvc.Service
}

func (a *objectiveProviderAdapter) ClientObjectives(ctx context.Context, clientID string) ([]postsvc.ObjectiveInfo, error) {
	objectives, err := a.clients.ListObjectives(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]postsvc.ObjectiveInfo, len(objectives))
	for i, o := range objectives {
		out[i] = postsvc.ObjectiveInfo{
			ID:          o.ID,
			Title:       o.Title,
			Description: o.Description,
		}
	}
	return out, nil
}

// mailerNotifierAdapter adapts the mail client to postpolicy.Notifier
type mailerNotifierAdapter struct {
	client *mailer.Client
}

func (a *mailerNotifierAdapter) Send(ctx context.Context, in postpolicy.NotificationInput) error {
	return a.client.Send(ctx, mailer.SendInput{
		To:      in.To,
		Subject: in.Subject,
		Text:    in.Body,
	})
}

// captionGeneratorAdapter adapts the OpenAI client to postpolicy.CaptionGenerator
type captionGeneratorAdapter struct {
	client *openai.Client
}

func (a *captionGeneratorAdapter) SuggestCaptions(ctx context.Context, in postpolicy.CaptionInput) ([]string, error) {
	return a.client.SuggestCaptions(ctx, openai.CaptionInput{
		Title:  in.Title,
		Body:   in.Body,
		Format: in.Format,
		Count:  in.Count,
	})
}

// swotAnalyzerAdapter adapts the OpenAI client to clientpolicy.SWOTAnalyzer
type swotAnalyzerAdapter struct {
	client *openai.Client
}

func (a *swotAnalyzerAdapter) AnalyzeSWOT(ctx context.Context, in clientpolicy.AnalyzeInput) (*clientpolicy.AnalyzeOutput, error) {
	out, err := a.client.AnalyzeSWOT(ctx, openai.SWOTInput{
		Name:       in.Name,
		Segment:    in.Segment,
		Objectives: in.Objectives,
		Notes:      in.Notes,
	})
	if err != nil {
		return nil, err
	}
	return &clientpolicy.AnalyzeOutput{
		Strengths:     out.Strengths,
		Weaknesses:    out.Weaknesses,
		Opportunities: out.Opportunities,
		Threats:       out.Threats,
	}, nil
}

// mediaUploaderAdapter adapts S3 storage to the media handler's uploader
type mediaUploaderAdapter struct {
	storage *storage.S3Storage
}

func (a *mediaUploaderAdapter) Upload(ctx context.Context, in httpcontroller.MediaUploadInput) (*httpcontroller.MediaUploadOutput, error) {
	out, err := a.storage.Upload(ctx, storage.UploadInput{
		Reader:      in.Reader,
		ContentType: in.ContentType,
		Size:        in.Size,
		Filename:    in.Filename,
	})
	if err != nil {
		return nil, err
	}
	return &httpcontroller.MediaUploadOutput{
		URL:  out.URL,
		Key:  out.Key,
		Size: out.Size,
	}, nil
}
