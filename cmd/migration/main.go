package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/agrisense/plant-chatbot/internal/infrastructure/database"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found: %v", err)
	}

	if !database.Configured() {
		log.Fatal("No database configured: set DATABASE_URL or DB_HOST")
	}

	if err := database.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations applied successfully")
}
