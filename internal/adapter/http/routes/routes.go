package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	_ "ngo_portal/docs" // generated by swag init
	"ngo_portal/internal/adapter/http/handlers"
	"ngo_portal/internal/adapter/persistence/repository"
	"ngo_portal/internal/checkout"
	"ngo_portal/internal/infrastructure/database"
	"ngo_portal/internal/infrastructure/notification"
	"ngo_portal/internal/infrastructure/payments"
	"ngo_portal/internal/infrastructure/storage"
	"ngo_portal/internal/usecase"
	"ngo_portal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

const defaultOrganization = "NGO Portal"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	if err := router.Run(":" + getenvDefault("PORT", defaultPort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	donationRepo := repository.NewDonationDynamoRepository(ddb)
	memberships := usecase.MembershipStores{
		Members:       repository.NewMemberDynamoRepository(ddb),
		Plans:         repository.NewMembershipPlanDynamoRepository(ddb),
		Subscriptions: repository.NewSubscriptionDynamoRepository(ddb),
		Payments:      repository.NewMembershipPaymentDynamoRepository(ddb),
	}

	var paymentGateway interfaces.IPaymentGateway
	gw, err := payments.NewPaymentGatewayFromEnv()
	if err != nil {
		log.Printf("Payment gateway not configured: %v", err)
	} else {
		paymentGateway = gw
	}

	var reports interfaces.IReportStore
	if store := storage.NewS3ReportStoreFromEnv(database.ConnectS3()); store != nil {
		reports = store
	}

	var sender interfaces.IConfirmationSender
	if s := notification.NewEmailFunctionSenderFromEnv(); s != nil {
		sender = s
	}

	limits := usecase.DonationLimitsFromEnv()
	orderUseCase := usecase.NewOrderUseCase(donationRepo, memberships, paymentGateway, limits)
	verificationUseCase := usecase.NewVerificationUseCase(donationRepo, memberships, paymentGateway, sender)
	webhookUseCase := usecase.NewWebhookUseCase(donationRepo, memberships, paymentGateway)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(memberships.Subscriptions, paymentGateway)
	planUseCase := usecase.NewPlanUseCase(memberships.Plans)
	donationUseCase := usecase.NewDonationUseCase(donationRepo, reports)

	paymentHandler := handlers.NewPaymentHandler(orderUseCase, verificationUseCase, webhookUseCase)
	planHandler := handlers.NewPlanHandler(planUseCase)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUseCase)
	donationHandler := handlers.NewDonationHandler(donationUseCase)

	var backend checkout.Backend = checkout.NewUseCaseBackend(orderUseCase, verificationUseCase, subscriptionUseCase)
	if url := strings.TrimSpace(os.Getenv("CHECKOUT_BACKEND_URL")); url != "" {
		log.Printf("[checkout][routes] using remote backend url=%s", url)
		backend = checkout.NewAPIClient(url, nil)
	}

	loader := checkout.Default()
	go func() {
		if err := loader.Load(context.Background()); err != nil {
			log.Printf("[checkout][routes] checkout script preload failed url=%s err=%v", loader.URL(), err)
		}
	}()

	sessionsPath := "/v1" + PathCheckout + PathCheckoutSessions
	host := checkout.NewHost(
		loader,
		checkout.NewSessionModal(loader, sessionsPath),
		backend,
		getenvDefault("ORGANIZATION_NAME", defaultOrganization),
		checkout.WithAmountLimits(limits.Min, limits.Max),
	)
	checkoutHandler := handlers.NewCheckoutHandler(host, sessionsPath)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	addMembershipRoutes(v1, planHandler, subscriptionHandler)
	addCheckoutRoutes(v1, checkoutHandler)

	// Admin console
	admin := v1.Group(PathAdmin, handlers.AdminAuthFromEnv())
	addAdminRoutes(admin, donationHandler, planHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
