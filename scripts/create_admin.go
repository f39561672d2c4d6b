// Створення адміністратора вручну.
//
// The bootstrap admin is normally seeded on first migration; this script is
// for adding extra admin accounts or resetting a lost admin password.
//
// Usage: go run scripts/create_admin.go -username admin2 -password secret123
package main

import (
	"flag"
	"log"

	"daily_quiz_backend/internal/config"
	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/pkg/database"
	"daily_quiz_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var user model.User
	err = db.Where("username = ?", *username).First(&user).Error
	if err == nil {
		user.PasswordHash = string(hash)
		user.IsAdmin = true
		user.IsActive = true
		if err := db.Save(&user).Error; err != nil {
			log.Fatalf("Failed to update user: %v", err)
		}
		log.Printf("Updated existing user %q: password reset, admin enabled", *username)
		return
	}

	user = model.User{
		Username:     *username,
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "Admin",
		City:         "Kyiv",
		IsAdmin:      true,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	log.Printf("Created admin user %q (id=%d)", *username, user.ID)
}
