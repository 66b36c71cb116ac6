package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	config "github.com/AndrewCheung360/buy4good-go/config"
	services "github.com/AndrewCheung360/buy4good-go/services"
)

// ---------------- GET ----------------
func GetOrganization(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		org, err := services.GetOrganization(cfg, c.Param("id"))
		if err != nil {
			status, detail := mapPledgeError(err)
			if status == http.StatusNotFound {
				detail = "organization with ID " + c.Param("id") + " not found"
			}
			c.JSON(status, gin.H{"error": detail})
			return
		}

		c.JSON(http.StatusOK, org)
	}
}

// ---------------- LIST ----------------
func ListOrganizations(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := url.Values{}
		params.Set("page", c.DefaultQuery("page", "1"))
		params.Set("per_page", c.DefaultQuery("per_page", "20"))
		if search := c.Query("search"); search != "" {
			params.Set("search", search)
		}
		if causeID := c.Query("cause_id"); causeID != "" {
			params.Set("cause_id", causeID)
		}

		orgs, err := services.ListOrganizations(cfg, params)
		if err != nil {
			status, detail := mapPledgeError(err)
			c.JSON(status, gin.H{"error": detail})
			return
		}

		c.JSON(http.StatusOK, orgs)
	}
}
