package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	config "github.com/AndrewCheung360/buy4good-go/config"
	routes "github.com/AndrewCheung360/buy4good-go/routes"
	store "github.com/AndrewCheung360/buy4good-go/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration validation failed: %v", err)
	}

	log.Printf("sandbox mode for donations: %v", cfg.UseSandboxDonations)

	st := store.New(cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "If-None-Match"},
	}))

	routes.SetupRoutes(r, cfg, st)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
