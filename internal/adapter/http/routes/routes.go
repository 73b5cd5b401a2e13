package routes

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "frota_cobranca/docs" // This will be auto-generated
	"frota_cobranca/internal/adapter/http/handlers"
	repository2 "frota_cobranca/internal/adapter/persistence/repository"
	"frota_cobranca/internal/infrastructure/config"
	"frota_cobranca/internal/infrastructure/database"
	"frota_cobranca/internal/infrastructure/messaging"
	"frota_cobranca/internal/infrastructure/payments"
	"frota_cobranca/internal/infrastructure/tracker"
	"frota_cobranca/internal/scheduler"
	"frota_cobranca/internal/usecase"
	"frota_cobranca/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	sched := getRoutes()

	go func() {
		err := router.Run(":" + strconv.Itoa(PORT))
		if err != nil {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Let in-flight cron jobs finish before exiting.
	<-sched.Stop().Done()
	log.Printf("[routes][shutdown] collection scheduler drained, exiting")
}

func getRoutes() *scheduler.Scheduler {
	ddb := database.ConnectDynamoDB()

	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	trackerClient, err := tracker.NewTraccarClient(
		os.Getenv("TRACCAR_BASE_URL"),
		os.Getenv("TRACCAR_USER"),
		os.Getenv("TRACCAR_PASSWORD"),
	)
	if err != nil {
		log.Fatalf("Traccar client not configured: %v", err)
	}

	policyStore := config.NewViperPolicyStore()
	messenger := messaging.NewDispatcherFromEnv()

	classifier := usecase.NewRecidivismClassifier(invoiceRepo)
	escalator := usecase.NewNotificationEscalator(invoiceRepo, customerRepo, messenger, policyStore, classifier)
	blockUseCase := usecase.NewBlockDecisionUseCase(invoiceRepo, transactionRepo, vehicleRepo, trackerClient, policyStore, classifier, escalator)
	unblockUseCase := usecase.NewUnblockUseCase(invoiceRepo, transactionRepo, vehicleRepo, customerRepo, paymentGateway, trackerClient, policyStore, classifier, escalator)
	promiseUseCase := usecase.NewPaymentPromiseUseCase(invoiceRepo)

	collectionHandler := handlers.NewCollectionHandler(blockUseCase, unblockUseCase, escalator)
	promiseHandler := handlers.NewPaymentPromiseHandler(promiseUseCase)

	jobs := scheduler.NewJobs(blockUseCase, unblockUseCase, escalator)
	sched := scheduler.NewScheduler(jobs)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start the collection scheduler: %v", err)
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCollectionRoutes(v1, collectionHandler, promiseHandler)

	return sched
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
