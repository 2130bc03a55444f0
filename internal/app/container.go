package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"bloodlink/internal/config"
	"bloodlink/internal/gateway/notify"
	"bloodlink/internal/http/handlers"
	"bloodlink/internal/http/middleware/ratelimit"
	"bloodlink/internal/http/router"
	"bloodlink/internal/logx"
	"bloodlink/internal/metrics"
	"bloodlink/internal/repository"
	"bloodlink/internal/service/alerting"
	donorsvc "bloodlink/internal/service/donor"
	hospitalsvc "bloodlink/internal/service/hospital"
	"bloodlink/internal/service/matching"
	recipientsvc "bloodlink/internal/service/recipient"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the container used by the worker binary.
// Providers are lazy, so the single registration set serves both binaries.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		NewLogger,
		config.Load,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerMetrics(container *dig.Container) error {
	named := []struct {
		name     string
		provider any
	}{
		{"rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal},
		{"notify_retries_total", metrics.NewNotifyRetriesTotal},
		{"alerts_sent_total", metrics.NewAlertsSentTotal},
		{"matches_computed_total", metrics.NewMatchesComputedTotal},
	}
	for _, p := range named {
		if err := container.Provide(p.provider, dig.Name(p.name)); err != nil {
			return fmt.Errorf("provide %s: %w", p.name, err)
		}
	}
	return provideAll(container, metrics.NewNotifyDeliveriesTotal)
}

type gatewayIn struct {
	dig.In
	Cfg        *config.Config
	Logger     logx.Logger
	Retries    prometheus.Counter `name:"notify_retries_total"`
	Deliveries *prometheus.CounterVec
}

// newNotifyGateway builds the delivery chain: outcome counting over
// bounded retries over plain HTTP.
func newNotifyGateway(in gatewayIn) notify.Gateway {
	client := &http.Client{Timeout: in.Cfg.Notify.Timeout}
	base := notify.NewHTTPGateway(client, in.Cfg.Notify.BaseURL)
	retrying := notify.NewRetryingGateway(base, in.Logger, in.Retries, notify.RetryConfig{
		MaxAttempts: in.Cfg.Notify.MaxAttempts,
		BaseDelay:   in.Cfg.Notify.BaseDelay,
		MaxDelay:    in.Cfg.Notify.MaxDelay,
	})
	return notify.NewInstrumentedGateway(retrying, in.Deliveries)
}

func registerGateway(container *dig.Container) error {
	return provideAll(container, newNotifyGateway)
}

type matchingIn struct {
	dig.In
	Recipients *repository.RecipientRepo
	Donors     *repository.DonorRepo
	Timeout    time.Duration
	Logger     logx.Logger
	Matches    prometheus.Counter `name:"matches_computed_total"`
}

func newMatchingService(in matchingIn) *matching.Service {
	return matching.NewService(in.Recipients, in.Donors, in.Timeout, in.Logger, in.Matches)
}

type alertingIn struct {
	dig.In
	Cfg        *config.Config
	Donors     *repository.DonorRepo
	Alerts     *repository.AlertRepo
	Gateway    notify.Gateway
	Logger     logx.Logger
	AlertsSent prometheus.Counter `name:"alerts_sent_total"`
}

func newAlertingService(in alertingIn) *alerting.Service {
	return alerting.NewService(in.Donors, in.Alerts, in.Gateway, in.Logger, in.AlertsSent, in.Cfg.Alerting.NotifyTimeout)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewDonorRepo,
		repository.NewRecipientRepo,
		repository.NewAlertRepo,
		repository.NewHospitalRepo,
		func() time.Duration { return 3 * time.Second },
		func(repo *repository.DonorRepo, timeout time.Duration) *donorsvc.Service {
			return donorsvc.NewService(repo, timeout)
		},
		func(repo *repository.RecipientRepo, timeout time.Duration) *recipientsvc.Service {
			return recipientsvc.NewService(repo, timeout)
		},
		func(repo *repository.HospitalRepo) *hospitalsvc.Service {
			return hospitalsvc.New(repo)
		},
		newMatchingService,
		newAlertingService,
	)
}

type routerIn struct {
	dig.In
	Base       *handlers.Handlers
	Donors     *handlers.DonorHandler
	Recipients *handlers.RecipientHandler
	Matches    *handlers.MatchHandler
	Alerts     *handlers.AlertHandler
	Hospitals  *handlers.HospitalHandler
	RateLimit  *ratelimit.Middleware
	Logger     logx.Logger
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Base:       in.Base,
		Donors:     in.Donors,
		Recipients: in.Recipients,
		Matches:    in.Matches,
		Alerts:     in.Alerts,
		Hospitals:  in.Hospitals,
		RateLimit:  in.RateLimit,
		Logger:     in.Logger,
	})
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewDonorUsecase,
		handlers.NewDonorHandler,
		handlers.NewRecipientUsecase,
		handlers.NewRecipientHandler,
		handlers.NewMatchUsecase,
		handlers.NewMatchHandler,
		handlers.NewAlertUsecase,
		handlers.NewAlertHandler,
		handlers.NewHospitalUsecase,
		handlers.NewHospitalHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
	)
}
