package main

import (
	"log"

	"officehub-be/internal/config"
	"officehub-be/internal/model"
	"officehub-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Options{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.Connection,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed.")
}
