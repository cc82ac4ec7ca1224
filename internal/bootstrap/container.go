package bootstrap

import (
	"time"

	"payment-dashboard-be/internal/config"
	"payment-dashboard-be/internal/controller"
	"payment-dashboard-be/internal/pkg/logger"
	"payment-dashboard-be/internal/repository/memory"
	"payment-dashboard-be/internal/repository/unitofwork"
	"payment-dashboard-be/internal/service"
	"payment-dashboard-be/pkg/admin/dashboard"
	adminpayment "payment-dashboard-be/pkg/admin/payment"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PaymentController controller.IPaymentController
	LoadingController controller.ILoadingController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus (in-process audit trail)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(cfg.Events.AuditTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.AuditTopic, sysLogger)

	// 3. Admin Domain Components
	paymentManager := adminpayment.NewManager()
	dashboardAggregator := dashboard.NewAggregator()

	// 4. Services
	paymentService := service.NewPaymentService(
		uowFactory,
		paymentManager,
		dashboardAggregator,
		publisherService,
		sysLogger,
	)

	loadingSessions := memory.NewLoadingSessionRepository(
		time.Duration(cfg.Loading.SessionTTLMins) * time.Minute,
	)
	loadingService := service.NewLoadingService(loadingSessions, cfg.Loading)

	// 5. Controllers
	return &Container{
		PaymentController: controller.NewPaymentController(paymentService),
		LoadingController: controller.NewLoadingController(loadingService),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
