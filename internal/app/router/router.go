package router

import (
	"time"

	"globe/pocketbank_sms/configs"
	app "globe/pocketbank_sms/internal/app"
	"globe/pocketbank_sms/internal/app/handlers"
	"globe/pocketbank_sms/internal/app/middleware"
	"globe/pocketbank_sms/internal/pkg/db"
	kafkaServices "globe/pocketbank_sms/internal/pkg/kafka/producer"
	"globe/pocketbank_sms/internal/pkg/notification"
	"globe/pocketbank_sms/internal/pkg/pubsub"
	"globe/pocketbank_sms/internal/pkg/services"
	"globe/pocketbank_sms/internal/pkg/store"
	"globe/pocketbank_sms/internal/pkg/store/repository"
	"globe/pocketbank_sms/internal/pkg/utils"
	"globe/pocketbank_sms/internal/pkg/utils/worker"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func SetupRouter(workerPool *worker.WorkerPool, redisClient *redis.Client, pubsubPublisher *pubsub.PubSubPublisher) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("msisdn", func(fl validator.FieldLevel) bool {
			return utils.IsValidPhoneNumber(fl.Field().String())
		})
	}

	// Stores
	userRepo := store.NewUserLedgerRepository()
	otpRepo := store.NewOtpRepository()
	loanHistoryRepo := store.NewLoanHistoryRepository()
	chatHistoryRepo := store.NewChatHistoryRepository()
	ledgerEventRepo := store.NewLedgerEventRepository()
	sessionStore := repository.NewSessionStore(redisClient, time.Duration(configs.SESSION_TTL_IN_MINUTES)*time.Minute)

	notificationService := notification.NewNotificationService(pubsubPublisher)

	// Services
	policyCfg := configs.GetPolicyConfig()
	loanPolicy := services.NewLoanPolicy(configs.LOAN_POLICY, policyCfg)
	var ledgerPublisher services.LedgerEventPublisherInterface
	if kafkaServices.KafkaProducer != nil {
		ledgerPublisher = kafkaServices.KafkaProducer
	}
	bankingService := services.NewBankingService(workerPool, userRepo, loanHistoryRepo, ledgerEventRepo, ledgerPublisher, loanPolicy, policyCfg)
	otpService := services.NewOtpService(otpRepo, notificationService)
	conversationService := services.NewConversationService(bankingService, otpService, chatHistoryRepo, notificationService)

	// Handlers
	smsMessageHandler := handlers.NewSmsMessageHandler(conversationService, sessionStore)
	ledgerHandler := handlers.NewLedgerHandler(userRepo, loanHistoryRepo, chatHistoryRepo)

	var kafkaRetryService app.KafkaRetryService
	if db.MDB != nil && kafkaServices.KafkaProducer != nil {
		kafkaRetryService = kafkaServices.NewKafkaRetryService(kafkaServices.KafkaProducer, ledgerEventRepo, configs.KAFKA_RETRY_COUNT)
	}
	kafkaRetryHandler := handlers.NewKafkaRetryHandler(kafkaRetryService)

	r.POST("/PocketBank/Sms/Message", smsMessageHandler.SmsMessage)
	r.GET("/PocketBank/Sms/History/:MSISDN", ledgerHandler.SmsHistory)
	r.GET("/PocketBank/Ledger/:MSISDN", ledgerHandler.Ledger)
	r.GET("/PocketBank/KafkaRetry", kafkaRetryHandler.RetryLedgerEventMessages)

	r.GET("/PocketBank/Test", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Health Check"})
	})

	return r
}
