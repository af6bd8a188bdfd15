// Seeds the admin account. The public registration endpoint only accepts
// the professional and recruiter roles, so the first admin has to come
// from here.
package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/telconnect/telecom-network/internal/config"
	"github.com/telconnect/telecom-network/internal/database"
	"github.com/telconnect/telecom-network/internal/models"
	"github.com/telconnect/telecom-network/internal/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	adminName := os.Getenv("ADMIN_NAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminName == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_NAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	var admin models.User
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Email)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		ID:           uuid.New(),
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Skills:       []string{},
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created successfully:", admin.Email)
}
