package seed

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"intake_backend/internal/model"
)

// SeedAdminAccount creates the initial console account from
// ADMIN_EMAIL / ADMIN_PASSWORD when no account with that email exists.
// Open registration is meant to be switched off in a hardened
// deployment, so the first admin has to come from somewhere.
func SeedAdminAccount(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	var existing model.Admin
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing seed admin password: %v", err)
		return
	}

	admin := model.Admin{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating seed admin %s: %v", email, err)
		return
	}

	log.Println("Admin account seeded successfully!")
}
