package bootstrap

import (
	"context"
	"log"

	"crm-meetings-be/internal/config"
	"crm-meetings-be/internal/controller"
	"crm-meetings-be/internal/handler"
	"crm-meetings-be/internal/pkg/logger"
	"crm-meetings-be/internal/pkg/mailer"
	"crm-meetings-be/internal/repository/unitofwork"
	"crm-meetings-be/internal/service"
	"crm-meetings-be/internal/websocket"

	pkgNats "crm-meetings-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	MeetingController controller.IMeetingController
	ContactController controller.IContactController
	LeadController    controller.ILeadController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Events
	MeetingEventHandler *handler.MeetingEventHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
		)
	} else {
		log.Println("[WARN] SMTP not configured, meeting invites disabled")
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS is optional; services treat a nil publisher as "bus disabled".
	var natsPub *pkgNats.Publisher
	if cfg.App.NatsEnabled {
		var err error
		natsPub, err = pkgNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis, also optional. Without it the hub only reaches local clients.
	var rdb *redis.Client
	if cfg.App.RedisEnabled {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.ActivityTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ActivityTopicName,
		uowFactory,
		wsHub,
	)

	authService := service.NewAuthService(uowFactory)
	meetingService := service.NewMeetingService(
		uowFactory,
		publisherService,
		emailService,
		natsPub,
		sysLogger,
	)
	contactService := service.NewContactService(uowFactory)
	leadService := service.NewLeadService(uowFactory)
	activityService := service.NewActivityService(uowFactory)

	eventHandler := handler.NewMeetingEventHandler(activityService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		MeetingController: controller.NewMeetingController(meetingService),
		ContactController: controller.NewContactController(contactService),
		LeadController:    controller.NewLeadController(leadService),

		ConsumerService: consumerService,

		MeetingEventHandler: eventHandler,
		WebSocketHub:        wsHub,
	}
}
