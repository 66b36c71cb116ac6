package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	config "github.com/AndrewCheung360/buy4good-go/config"
	services "github.com/AndrewCheung360/buy4good-go/services"
)

// ---------------- HEALTH ----------------
func Health(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeMode := "memory"
		if cfg.MongoClient != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := cfg.MongoClient.Ping(ctx, readpref.Primary()); err == nil {
				storeMode = "durable"
			} else {
				storeMode = "degraded"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":            "healthy",
			"service":           "buy4good",
			"store":             storeMode,
			"sandbox_donations": cfg.UseSandboxDonations,
		})
	}
}

// DeepHealth additionally probes the donation processor.
func DeepHealth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !services.PledgeHealthy(cfg) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "pledge": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "pledge": true})
	}
}
