package main

import (
	"fmt"
	"log"
	"os"
	"poolcare-backend/config"
	"poolcare-backend/models"
	"poolcare-backend/routes"
	"poolcare-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// The service cannot start without a database or a token signing key
	if os.Getenv("DB_URL") == "" {
		log.Fatal("DB_URL is not set")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.ServiceLog{},
		&models.ChemicalUsage{},
		&models.Note{},
		&models.DigestLog{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	digest := services.NewDigestService(config.DB)
	digest.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
