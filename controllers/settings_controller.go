package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	config "github.com/AndrewCheung360/buy4good-go/config"
	models "github.com/AndrewCheung360/buy4good-go/models"
	store "github.com/AndrewCheung360/buy4good-go/store"
)

// ---------------- DONATION PERCENTAGE ----------------
// The [0, 0.10] ceiling is enforced here, before anything reaches storage.
func UpdateDonationPercentage(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID                 string   `json:"user_id" binding:"required"`
			AutoDonationPercentage *float64 `json:"auto_donation_percentage" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		pct := *input.AutoDonationPercentage
		if pct < 0 || pct > models.MaxDonationPercentage {
			c.JSON(http.StatusBadRequest, gin.H{"error": "donation percentage must be between 0% and 10%"})
			return
		}

		ok := st.UpdateSettings(c.Request.Context(), input.UserID, models.SettingsUpdate{
			AutoDonationPercentage: &pct,
		})
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update donation percentage"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Donation percentage updated successfully",
			"percentage": pct,
		})
	}
}

// ---------------- AUTO-DONATE TOGGLE ----------------
func ToggleAutoDonate(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID            string `json:"user_id" binding:"required"`
			AutoDonateEnabled *bool  `json:"auto_donate_enabled" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		enabled := *input.AutoDonateEnabled
		ok := st.UpdateSettings(c.Request.Context(), input.UserID, models.SettingsUpdate{
			AutoDonateEnabled: &enabled,
		})
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle auto-donate"})
			return
		}

		state := "disabled"
		if enabled {
			state = "enabled"
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Auto-donate " + state + " successfully",
			"enabled": enabled,
		})
	}
}

// ---------------- GET SETTINGS ----------------
func GetUserSettings(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings := st.GetOrCreateSettings(c.Request.Context(), c.Param("user_id"))
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"settings": settings,
		})
	}
}

// ---------------- TOTAL & HISTORY ----------------
func GetTotalDonation(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		total := st.GetUserTotal(c.Request.Context(), c.Param("user_id"))
		c.JSON(http.StatusOK, gin.H{
			"success":               true,
			"total_donation_amount": total,
			"formatted_amount":      fmt.Sprintf("$%.2f", total),
		})
	}
}

func GetRecentDonations(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
		if err != nil || limit <= 0 {
			limit = 10
		}

		donations := st.GetRecentDonations(c.Request.Context(), c.Param("user_id"), limit)
		if donations == nil {
			donations = []models.DonationRecord{}
		}
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"donations": donations,
		})
	}
}

// ---------------- CHARITY PREFERENCES ----------------
func GetCharityPreferences(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		prefs := st.GetCharityPreferences(c.Request.Context(), c.Param("user_id"))
		if prefs == nil {
			prefs = []models.CharityPreference{}
		}
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"preferences": prefs,
		})
	}
}

func UpsertCharityPreference(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID               string   `json:"user_id" binding:"required"`
			CharityID            string   `json:"charity_id" binding:"required"`
			CharityName          string   `json:"charity_name"`
			AllocationPercentage *float64 `json:"allocation_percentage" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Per-call bound only; the sum across a user's preferences is not checked.
		if *input.AllocationPercentage < 0 || *input.AllocationPercentage > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "allocation percentage must be between 0 and 100"})
			return
		}

		ok := st.UpsertCharityPreference(c.Request.Context(), models.CharityPreference{
			UserID:               input.UserID,
			CharityID:            input.CharityID,
			CharityName:          input.CharityName,
			AllocationPercentage: *input.AllocationPercentage,
		})
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save charity preference"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "charity preference saved"})
	}
}
