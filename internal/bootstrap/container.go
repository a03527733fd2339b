package bootstrap

import (
	"context"
	"log"

	"community-connect-be/internal/config"
	"community-connect-be/internal/controller"
	"community-connect-be/internal/handler"
	"community-connect-be/internal/pkg/logger"
	"community-connect-be/internal/pkg/mailer"
	"community-connect-be/internal/repository/memory"
	"community-connect-be/internal/service"
	"community-connect-be/internal/websocket"
	"community-connect-be/pkg/events"
	pktNats "community-connect-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

const voiceUsageTopic = "voice_usage"

type Container struct {
	// Controllers
	ContentController       controller.IContentController
	CatalogController       controller.ICatalogController
	HealthcareController    controller.IHealthcareController
	EventController         controller.IEventController
	AssistanceController    controller.IAssistanceController
	AccessibilityController controller.IAccessibilityController
	PassportController      controller.IPassportController
	VoiceController         controller.IVoiceController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	VoiceHandler *handler.VoiceHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.VolunteerInbox,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// Embedded content packs; parse failures abort startup.
	contentRepo, err := memory.NewContentRepository()
	if err != nil {
		log.Fatalf("[FATAL] Failed to load content packs: %v", err)
	}

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/voice.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(voiceUsageTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, voiceUsageTopic, sysLogger)

	contentService := service.NewContentService(contentRepo, cfg.Content.DefaultLanguage)
	catalogService := service.NewCatalogService(contentService)
	healthcareService := service.NewHealthcareService(contentService)
	eventService := service.NewEventService(contentService, catalogService)
	assistanceService := service.NewAssistanceService(emailService, natsPub)
	accessibilityService := service.NewAccessibilityService(sessionRepo, cfg.Content.DefaultLanguage)
	passportService := service.NewPassportService(contentService, sessionRepo, cfg.Content.DefaultLanguage)

	voiceService := service.NewVoiceService(
		cfg.Voice,
		accessibilityService,
		publisherService,
		natsPub,
		sysLogger,
	)

	// Coordinator-side tail of the assistance stream; only logs, the email is
	// the delivery channel.
	if natsSub != nil {
		err := natsSub.Subscribe("community."+events.TypeAssistanceRequested, "assistance-log",
			func(ctx context.Context, evt events.Event) error {
				sysLogger.Info("assistance", "assistance request observed", evt.Payload())
				return nil
			})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to assistance events: %v", err)
		}
	}

	// 4. Controllers
	return &Container{
		ContentController:       controller.NewContentController(contentService),
		CatalogController:       controller.NewCatalogController(catalogService),
		HealthcareController:    controller.NewHealthcareController(healthcareService, catalogService),
		EventController:         controller.NewEventController(eventService),
		AssistanceController:    controller.NewAssistanceController(assistanceService),
		AccessibilityController: controller.NewAccessibilityController(accessibilityService),
		PassportController:      controller.NewPassportController(passportService),
		VoiceController:         controller.NewVoiceController(consumerService),

		ConsumerService: consumerService,

		VoiceHandler: handler.NewVoiceHandler(wsHub, voiceService, wsLogger),
		WebSocketHub: wsHub,
	}
}
