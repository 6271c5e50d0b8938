package main

import (
	"flag"
	"log"

	"court_track_app_go/config"
	"court_track_app_go/db"
	"court_track_app_go/models"
	"court_track_app_go/services"
)

func main() {
	email := flag.String("email", "", "Admin email address (required)")
	password := flag.String("password", "", "Admin password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: create-admin -email <email> -password <password>")
	}

	cfg := config.Load()

	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	admin, err := services.CreateAdmin(db.DB, *email, *password)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Created admin account %s (id %s)", admin.Email, admin.ID)
}
