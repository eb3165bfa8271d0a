package routes

import (
	"ngo_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments         = "/payments"
	PathPlans            = "/plans"
	PathSubscriptions    = "/subscriptions"
	PathMembers          = "/members"
	PathCheckout         = "/checkout"
	PathCheckoutSessions = "/sessions"
	PathAdmin            = "/admin"
	PathDonations        = "/donations"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/orders", paymentHandler.CreateOrder)
		payments.POST("/verify", paymentHandler.VerifyPayment)
		// Called by Razorpay; signed with X-Razorpay-Signature.
		payments.POST("/webhook", paymentHandler.Webhook)
	}
}

func addMembershipRoutes(rg *gin.RouterGroup, planHandler *handlers.PlanHandler, subscriptionHandler *handlers.SubscriptionHandler) {
	plans := rg.Group(PathPlans)
	{
		plans.GET("", planHandler.ListPlans)
		plans.GET("/:id", planHandler.GetPlan)
	}

	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.GET("/:id", subscriptionHandler.GetSubscription)
		subscriptions.POST("/:id/cancel", subscriptionHandler.CancelSubscription)
	}

	rg.GET(PathMembers+"/:member_id"+PathSubscriptions, subscriptionHandler.ListMemberSubscriptions)
}

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	sessions := rg.Group(PathCheckout + PathCheckoutSessions)
	{
		sessions.POST("", checkoutHandler.StartCheckout)
		sessions.GET("/:id", checkoutHandler.CheckoutPage)
		sessions.GET("/:id/status", checkoutHandler.CheckoutStatus)
		sessions.POST("/:id/complete", checkoutHandler.CompleteCheckout)
		sessions.POST("/:id/fail", checkoutHandler.FailCheckout)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, donationHandler *handlers.DonationHandler, planHandler *handlers.PlanHandler) {
	donations := rg.Group(PathDonations)
	{
		donations.GET("", donationHandler.ListDonations)
		// Static segment, matched before /:id.
		donations.GET("/export", donationHandler.ExportDonations)
		donations.GET("/:id", donationHandler.GetDonation)
	}

	rg.PUT(PathPlans+"/:id", planHandler.UpsertPlan)
}
