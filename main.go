package main

import (
	"fmt"
	"log"

	"driveschool-backend/config"
	"driveschool-backend/routes"
	"driveschool-backend/services"
	"driveschool-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	cfg := config.Load()

	// All application data lives in memory for the life of the process.
	st := store.New()
	relay := services.NewRelayService(cfg.RelayURL)

	r := routes.SetupRouter(st, relay)
	printRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
