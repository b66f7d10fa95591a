package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cgabhane/author-website/internal/cache"
	"github.com/cgabhane/author-website/internal/config"
	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/mail"
	"github.com/cgabhane/author-website/internal/repository"
	"github.com/cgabhane/author-website/internal/service"
	"github.com/cgabhane/author-website/internal/transport/rest"
	"github.com/cgabhane/author-website/internal/transport/ws"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// App wires storage, caches, mail and services into an HTTP handler
type App struct {
	AppointmentRepo repository.AppointmentRepo
	SubscriberRepo  repository.SubscriberRepo
	AssessmentRepo  repository.AssessmentRepo
	InsightCache    cache.InsightCache
	SessionCache    cache.SessionCache

	Notifier *service.Notifier
	Hub      *ws.Hub
	Router   http.Handler

	log         logger.Logger
	mongoClient *mongo.Client
	redisClient *redis.Client
}

// New connects the configured backends and builds the router. Backends
// without configuration fall back to process-local implementations.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{log: log}

	if err := a.initStore(ctx, cfg); err != nil {
		a.Close(ctx)
		return nil, err
	}
	if err := a.initCaches(ctx, cfg); err != nil {
		a.Close(ctx)
		return nil, err
	}
	sender, err := newSender(ctx, cfg.Mail, log)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	a.Notifier = service.NewNotifier(sender, log.WithFields(map[string]interface{}{"component": "notifier"}), cfg.Mail.SendTimeout)
	a.Hub = ws.NewHub(log.WithFields(map[string]interface{}{"component": "event_feed"}))

	settings := service.MailSettings{
		From:     cfg.Mail.From,
		Operator: cfg.Mail.OperatorAddress,
		SiteURL:  cfg.App.SiteURL,
	}
	validator := service.NewValidator()

	authSvc := service.NewAuthService(cfg.Auth)
	insightSvc := service.NewInsightService(
		service.NewFeedClient(cfg.Feed.URL, cfg.Feed.Timeout),
		a.InsightCache,
		log.WithFields(map[string]interface{}{"component": "insights"}),
		service.InsightOptions{
			TTL:           cfg.Feed.CacheTTL,
			FetchTimeout:  cfg.Feed.Timeout,
			MaxItems:      cfg.Feed.MaxItems,
			ExcerptLength: cfg.Feed.ExcerptLength,
		},
	)
	subSvc := service.NewSubscriptionService(a.SubscriberRepo, validator, a.Notifier, settings, log)
	apptSvc := service.NewAppointmentService(a.AppointmentRepo, validator, a.Notifier, settings, log)
	assessmentSvc := service.NewAssessmentService(a.AssessmentRepo, validator, a.Notifier, settings, log)
	sessionSvc := service.NewSessionService(a.SessionCache, validator, assessmentSvc)

	// Inject broadcaster (hub implements service.Broadcaster)
	subSvc.SetBroadcaster(a.Hub)
	apptSvc.SetBroadcaster(a.Hub)
	assessmentSvc.SetBroadcaster(a.Hub)

	if !authSvc.Enabled() {
		log.Warn("admin password hash or jwt secret not set, admin endpoints will reject all requests", nil)
	}

	a.Router = rest.NewRouter(&rest.Container{
		AuthService:         authSvc,
		InsightService:      insightSvc,
		SubscriptionService: subSvc,
		AppointmentService:  apptSvc,
		AssessmentService:   assessmentSvc,
		SessionService:      sessionSvc,
		ContentService:      service.NewContentService(),
		WSHub:               a.Hub,
		AllowedOrigins:      cfg.CORS.AllowedOrigins,
		Logger:              log,
	})
	return a, nil
}

func (a *App) initStore(ctx context.Context, cfg *config.Config) error {
	if !cfg.Mongo.Enabled() {
		a.log.Warn("mongo uri not set, records are kept in memory", nil)
		a.AppointmentRepo = repository.NewMemoryAppointmentRepo()
		a.SubscriberRepo = repository.NewMemorySubscriberRepo()
		a.AssessmentRepo = repository.NewMemoryAssessmentRepo()
		return nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}
	a.mongoClient = client
	if err := client.Ping(connectCtx, nil); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)
	if err := repository.EnsureIndexes(connectCtx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	a.AppointmentRepo = repository.NewAppointmentRepo(db)
	a.SubscriberRepo = repository.NewSubscriberRepo(db)
	a.AssessmentRepo = repository.NewAssessmentRepo(db)
	a.log.Info("connected to mongodb", map[string]interface{}{"database": cfg.Mongo.Database})
	return nil
}

func (a *App) initCaches(ctx context.Context, cfg *config.Config) error {
	if !cfg.Redis.Enabled() {
		a.log.Warn("redis address not set, caches are kept in memory", nil)
		a.InsightCache = cache.NewMemoryInsightCache(nil)
		a.SessionCache = cache.NewMemorySessionCache(cfg.Assessment.SessionTTL, nil)
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     strings.TrimPrefix(cfg.Redis.Address, "redis://"),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	a.redisClient = rdb
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	a.InsightCache = cache.NewInsightCache(rdb, cfg.Redis.KeyPrefix)
	a.SessionCache = cache.NewSessionCache(rdb, cfg.Redis.KeyPrefix, cfg.Assessment.SessionTTL)
	a.log.Info("connected to redis", map[string]interface{}{"address": cfg.Redis.Address})
	return nil
}

func newSender(ctx context.Context, cfg config.MailConfig, log logger.Logger) (mail.Sender, error) {
	if !cfg.Enabled || cfg.Provider == "log" {
		log.Warn("mail delivery disabled, emails are logged only", nil)
		return mail.NewLogSender(log), nil
	}
	sender, err := mail.NewSESSender(ctx, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("create ses sender: %w", err)
	}
	return sender, nil
}

// Close waits for pending emails, stops the event feed and disconnects
// the backends.
func (a *App) Close(ctx context.Context) {
	if a.Notifier != nil {
		done := make(chan struct{})
		go func() {
			a.Notifier.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			a.log.Warn("shutdown deadline reached with emails still pending", nil)
		}
	}
	if a.Hub != nil {
		a.Hub.Close()
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.WithError(err).Warn("redis close failed", nil)
		}
	}
	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			a.log.WithError(err).Warn("mongodb disconnect failed", nil)
		}
	}
}
