package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/AndrewCheung360/buy4good-go/config"
	models "github.com/AndrewCheung360/buy4good-go/models"
	services "github.com/AndrewCheung360/buy4good-go/services"
)

// ---------------- CREATE ----------------
// Forwards the donation to Pledge.to using the donation credential set
// (sandbox-keyed when configured).
func CreateDonation(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.DonationRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := services.CreatePledgeDonation(cfg, input)
		if err != nil {
			status, detail := mapPledgeError(err)
			c.JSON(status, gin.H{"error": detail})
			return
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// mapPledgeError translates upstream Pledge.to statuses onto our responses.
func mapPledgeError(err error) (int, string) {
	var pledgeErr *services.PledgeError
	if !errors.As(err, &pledgeErr) {
		return http.StatusInternalServerError, "failed to connect to donation service"
	}

	switch pledgeErr.StatusCode {
	case http.StatusBadRequest:
		return http.StatusBadRequest, "invalid request: " + pledgeErr.Body
	case http.StatusUnauthorized:
		return http.StatusUnauthorized, "unauthorized: invalid API key"
	case http.StatusNotFound:
		return http.StatusNotFound, "organization not found"
	case http.StatusUnprocessableEntity:
		return http.StatusUnprocessableEntity, "validation error: " + pledgeErr.Body
	default:
		return http.StatusInternalServerError, "external API error"
	}
}
