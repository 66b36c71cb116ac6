package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/AndrewCheung360/buy4good-go/config"
	services "github.com/AndrewCheung360/buy4good-go/services"
	store "github.com/AndrewCheung360/buy4good-go/store"
)

// ---------------- LINK TOKEN ----------------
func CreateLinkToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Address string `json:"address"`
			UserID  string `json:"user_id"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		userID := input.UserID
		if userID == "" {
			userID = "user_" + c.ClientIP()
		}

		resp, err := services.CreateLinkToken(cfg, userID, input.Address)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to create link token: %v", err)})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// ---------------- TOKEN EXCHANGE ----------------
func ExchangePublicToken(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PublicToken string `json:"public_token" binding:"required"`
			UserID      string `json:"user_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		accessToken, err := services.ExchangePublicToken(cfg, input.PublicToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to exchange public token: %v", err)})
			return
		}

		st.StoreAccessToken(c.Request.Context(), input.UserID, accessToken)

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ---------------- BALANCE ----------------
func GetBalance(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID string `json:"user_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		accessToken, ok := st.GetAccessToken(c.Request.Context(), input.UserID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no access token available for this user"})
			return
		}

		balance, err := services.GetBalance(cfg, accessToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to get balance: %v", err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{"Balance": balance})
	}
}

// ---------------- TRANSACTIONS ----------------
func GetTransactions(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID     string   `json:"user_id" binding:"required"`
			StartDate  string   `json:"start_date" binding:"required"`
			EndDate    string   `json:"end_date" binding:"required"`
			AccountIDs []string `json:"account_ids"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		accessToken, ok := st.GetAccessToken(c.Request.Context(), input.UserID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no access token available for this user"})
			return
		}

		transactions, err := services.GetTransactions(cfg, accessToken, input.StartDate, input.EndDate, input.AccountIDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to get transactions: %v", err)})
			return
		}

		c.JSON(http.StatusOK, transactions)
	}
}

// ---------------- SANDBOX TRANSACTION ----------------
// Fires a simulated transaction webhook in the Plaid sandbox environment.
func CreateSandboxTransaction(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID string `json:"user_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if cfg.PlaidEnv != "sandbox" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sandbox transactions require PLAID_ENV=sandbox"})
			return
		}

		accessToken, ok := st.GetAccessToken(c.Request.Context(), input.UserID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no access token available for this user"})
			return
		}

		resp, err := services.CreateSandboxTransaction(cfg, accessToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to create sandbox transaction: %v", err)})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// ---------------- DELETE TOKEN ----------------
func DeleteAccessToken(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if !st.DeleteAccessToken(c.Request.Context(), userID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no access token found for this user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Access token deleted for user: " + userID,
		})
	}
}

// ---------------- CONNECTION CHECK ----------------
func CheckConnection(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := st.GetAccessToken(c.Request.Context(), c.Param("user_id")); ok {
			c.JSON(http.StatusOK, gin.H{
				"connected": true,
				"message":   "User has connected bank account",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"connected": false,
			"message":   "User has not connected bank account",
		})
	}
}

// ---------------- HEALTH ----------------
func PlaidHealth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var missing []string
		if cfg.PlaidClientID == "" {
			missing = append(missing, "PLAID_CLIENT_ID")
		}
		if cfg.PlaidSecret == "" {
			missing = append(missing, "PLAID_SECRET")
		}
		if len(missing) > 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"service": "plaid",
				"error":   fmt.Sprintf("missing required environment variables: %v", missing),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "plaid",
			"configuration": gin.H{
				"environment":                cfg.PlaidEnv,
				"client_id_configured":       cfg.PlaidClientID != "",
				"secret_configured":          cfg.PlaidSecret != "",
				"redirect_uri_configured":    cfg.PlaidSandboxRedirectURI != "",
				"android_package_configured": cfg.PlaidAndroidPackage != "",
			},
		})
	}
}
