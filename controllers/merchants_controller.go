package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	config "github.com/AndrewCheung360/buy4good-go/config"
	models "github.com/AndrewCheung360/buy4good-go/models"
	utils "github.com/AndrewCheung360/buy4good-go/utils"
)

// ---------------- CREATE ----------------
func CreateMerchant(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.MongoClient == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "merchant catalog requires the durable store"})
			return
		}

		var input struct {
			Name         string  `form:"name" binding:"required"`
			Domain       string  `form:"domain"`
			CashbackRate float64 `form:"cashback_rate"`
		}
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.CashbackRate < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cashback_rate must not be negative"})
			return
		}
		if input.CashbackRate == 0 {
			input.CashbackRate = 2.0 // catalog default
		}

		// --- Optional logo upload ---
		var logoURL string
		if fileHeader, err := c.FormFile("logo"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
				return
			}
			logoURL, err = utils.UploadMerchantLogo(file, fileHeader)
			file.Close()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "logo upload failed",
					"details": err.Error(),
				})
				return
			}
		}

		now := time.Now()
		merchant := models.Merchant{
			ID:           primitive.NewObjectID(),
			Name:         input.Name,
			Domain:       input.Domain,
			CashbackRate: input.CashbackRate,
			LogoURL:      logoURL,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("merchants")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, merchant); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create merchant"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":      merchant.ID.Hex(),
			"message": "merchant created",
		})
	}
}

// ---------------- LIST ----------------
func ListMerchants(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.MongoClient == nil {
			c.JSON(http.StatusOK, []models.Merchant{})
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("merchants")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch merchants"})
			return
		}

		var merchants []models.Merchant
		if err := cursor.All(ctx, &merchants); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode merchants"})
			return
		}

		if len(merchants) == 0 {
			c.JSON(http.StatusOK, []models.Merchant{})
			return
		}

		// --- Pick the most recently updated merchant ---
		latest := merchants[0]
		for _, m := range merchants {
			if m.UpdatedAt.After(latest.UpdatedAt) {
				latest = m
			}
		}

		// --- Generate ETag from latest merchant ---
		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, merchants)
	}
}

// ---------------- DELETE ----------------
func DeleteMerchant(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.MongoClient == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "merchant catalog requires the durable store"})
			return
		}

		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid merchant id"})
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("merchants")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var merchant models.Merchant
		if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&merchant); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "merchant not found"})
			return
		}

		if _, err := col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete merchant"})
			return
		}

		// Best-effort logo cleanup.
		if merchant.LogoURL != "" {
			if err := utils.DeleteFromCloudinary(merchant.LogoURL); err != nil {
				log.Printf("failed to delete merchant logo: %v", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "merchant deleted", "id": oid.Hex()})
	}
}

// ---------------- GET ----------------
func GetMerchant(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.MongoClient == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "merchant not found"})
			return
		}

		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid merchant id"})
			return
		}

		var merchant models.Merchant
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = cfg.MongoClient.Database(cfg.DBName).
			Collection("merchants").
			FindOne(ctx, bson.M{"_id": oid}).
			Decode(&merchant)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "merchant not found"})
			return
		}

		etag := utils.GenerateETag(merchant.ID, merchant.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		c.JSON(http.StatusOK, merchant)
	}
}
