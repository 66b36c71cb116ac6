package routes

import (
	"github.com/gin-gonic/gin"

	config "github.com/AndrewCheung360/buy4good-go/config"
	controllers "github.com/AndrewCheung360/buy4good-go/controllers"
	store "github.com/AndrewCheung360/buy4good-go/store"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, st store.Store) {
	// health
	r.GET("/", controllers.Health(cfg))
	r.GET("/health", controllers.Health(cfg))
	r.GET("/health/deep", controllers.DeepHealth(cfg))

	v1 := r.Group("/api/v1")
	{
		// donations (Pledge.to, sandbox-keyed)
		v1.POST("/donations", controllers.CreateDonation(cfg))

		// organization catalog (Pledge.to, production-keyed)
		v1.GET("/organizations", controllers.ListOrganizations(cfg))
		v1.GET("/organizations/:id", controllers.GetOrganization(cfg))

		// transactions
		v1.POST("/transactions/auto_donate", controllers.AutoDonate(cfg, st))
		v1.POST("/simulate-transaction", controllers.SimulateTransaction(cfg))
		v1.POST("/webhook", controllers.HandleWebhook(cfg))

		// plaid
		v1.POST("/create_link_token", controllers.CreateLinkToken(cfg))
		v1.POST("/exchange_public_token", controllers.ExchangePublicToken(cfg, st))
		v1.POST("/balance", controllers.GetBalance(cfg, st))
		v1.POST("/transactions", controllers.GetTransactions(cfg, st))
		v1.POST("/sandbox_transaction", controllers.CreateSandboxTransaction(cfg, st))
		v1.DELETE("/delete_token/:user_id", controllers.DeleteAccessToken(cfg, st))
		v1.GET("/check_connection/:user_id", controllers.CheckConnection(cfg, st))
		v1.GET("/plaid_health", controllers.PlaidHealth(cfg))

		// user donation data
		v1.GET("/total_donation/:user_id", controllers.GetTotalDonation(cfg, st))
		v1.GET("/recent_donations/:user_id", controllers.GetRecentDonations(cfg, st))

		// settings
		v1.POST("/update_donation_percentage", controllers.UpdateDonationPercentage(cfg, st))
		v1.POST("/toggle_auto_donate", controllers.ToggleAutoDonate(cfg, st))
		v1.GET("/get_user_settings/:user_id", controllers.GetUserSettings(cfg, st))

		// charity preferences
		v1.GET("/charity_preferences/:user_id", controllers.GetCharityPreferences(cfg, st))
		v1.POST("/charity_preferences", controllers.UpsertCharityPreference(cfg, st))
	}

	// merchant catalog
	merchants := r.Group("/merchants")
	{
		merchants.POST("", controllers.CreateMerchant(cfg))
		merchants.GET("", controllers.ListMerchants(cfg))
		merchants.GET("/:id", controllers.GetMerchant(cfg))
		merchants.DELETE("/:id", controllers.DeleteMerchant(cfg))
	}
}
