package main

import (
	"flag"
	"log"

	"github.com/christophe77/NovaBlog/database"
	"github.com/christophe77/NovaBlog/internal/models"
	"github.com/christophe77/NovaBlog/internal/repository"
	"github.com/christophe77/NovaBlog/internal/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	if err := godotenv.Load(); err != nil {
		// Try loading from project root (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	adminEmail := flag.String("admin-email", "", "Create an admin user with this email")
	adminPassword := flag.String("admin-password", "", "Password for the admin user")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	settingRepo := repository.NewSettingRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)

	// Seed default settings for keys that do not exist yet.
	seeded := 0
	for key, value := range utils.DefaultSettings() {
		if _, exists, err := settingRepo.GetValue(key); err != nil {
			log.Fatalf("Failed to check setting %s: %v", key, err)
		} else if exists {
			continue
		}
		if err := settingRepo.Upsert(key, value); err != nil {
			log.Fatalf("Failed to seed setting %s: %v", key, err)
		}
		seeded++
	}
	log.Printf("Seeded %d default setting(s)", seeded)

	if *adminEmail != "" {
		if *adminPassword == "" {
			log.Fatal("--admin-password is required when --admin-email is set")
		}
		if len(*adminPassword) < 8 {
			log.Fatal("Admin password must be at least 8 characters")
		}

		if _, err := userRepo.FindByEmail(*adminEmail); err == nil {
			log.Printf("Admin user %s already exists, skipping", *adminEmail)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		admin := &models.User{
			Email:        *adminEmail,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			IsActive:     true,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Admin user %s created", *adminEmail)
	}
}
