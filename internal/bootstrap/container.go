package bootstrap

import (
	"context"
	"time"

	"officehub-be/internal/config"
	"officehub-be/internal/controller"
	"officehub-be/internal/pkg/logger"
	"officehub-be/internal/pkg/serverutils"
	"officehub-be/internal/repository/memory"
	"officehub-be/internal/repository/unitofwork"
	"officehub-be/internal/scheduler"
	"officehub-be/internal/service"
	"officehub-be/internal/trash"
	"officehub-be/pkg/events"
	"officehub-be/pkg/lock"
	"officehub-be/pkg/metrics"
	pktNats "officehub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

// TrashTopic is the in-process watermill topic the audit consumer drains.
const TrashTopic = "trash.events"

const runLockName = "auto_delete_run"

type Container struct {
	// Controllers
	TrashController      controller.ITrashController
	AutoDeleteController controller.IAutoDeleteController

	// Services
	TrashService      service.ITrashService
	SettingService    service.IAutoDeleteSettingService
	AutoDeleteService service.IAutoDeleteScheduler

	// Background (started by main)
	ConsumerService service.IConsumerService
	Scheduler       *scheduler.Scheduler

	Logger  *logger.ZapLogger
	Metrics *metrics.Registry

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)
	registry := trash.NewRegistry()
	metricsRegistry := metrics.New()

	c := &Container{
		Logger:  sysLogger,
		Metrics: metricsRegistry,
	}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	publishers := []events.Publisher{events.NewWatermillPublisher(pubSub, TrashTopic)}

	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS, trash events stay in-process", map[string]interface{}{"error": err.Error()})
		} else {
			publishers = append(publishers, natsPub)
			c.closers = append(c.closers, natsPub.Close)
		}
	}
	publisher := events.NewFanoutPublisher(publishers...)

	// 3. Services
	settingCache := memory.NewSettingCache(time.Duration(cfg.Trash.SettingsCacheTTLMinutes) * time.Minute)
	settingService := service.NewAutoDeleteSettingService(uowFactory, settingCache, sysLogger)

	trashService := service.NewTrashService(
		uowFactory,
		registry,
		publisher,
		metricsRegistry.Trash,
		sysLogger,
		service.TrashServiceConfig{GracePeriod: time.Duration(cfg.Trash.GracePeriodDays) * 24 * time.Hour},
	)

	autoDeleteService := service.NewAutoDeleteScheduler(
		uowFactory,
		registry,
		settingService,
		publisher,
		metricsRegistry.Scheduler,
		sysLogger,
	)

	// 4. Cron trigger with optional Redis run-lock
	var runLock scheduler.Locker
	if cfg.App.RedisURL != "" && cfg.Scheduler.LockTTLMinutes > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		locker, err := lock.NewRedisLockerFromURL(ctx, cfg.App.RedisURL, "officehub:lock:")
		cancel()
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Redis unavailable, auto delete runs without a run lock", map[string]interface{}{"error": err.Error()})
		} else {
			runLock = scheduler.NewRedisLocker(locker, runLockName, time.Duration(cfg.Scheduler.LockTTLMinutes)*time.Minute, sysLogger)
			c.closers = append(c.closers, func() { _ = locker.Close() })
		}
	}
	c.Scheduler = scheduler.New(autoDeleteService, cfg.Scheduler.Schedule, runLock, metricsRegistry.Scheduler, sysLogger)

	c.ConsumerService = service.NewConsumerService(pubSub, TrashTopic, auditLogger)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 5. Controllers
	auth := serverutils.NewJwtMiddleware(cfg.App.JWTSecret)

	c.TrashService = trashService
	c.SettingService = settingService
	c.AutoDeleteService = autoDeleteService
	c.TrashController = controller.NewTrashController(trashService, auth)
	c.AutoDeleteController = controller.NewAutoDeleteController(settingService, auth)

	return c
}

// Close stops the scheduler and releases broker connections.
func (c *Container) Close() {
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
