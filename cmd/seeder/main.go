// cmd/seeder/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/adspark/adspark-backend/internal/config"
	"github.com/adspark/adspark-backend/internal/db"
	"github.com/adspark/adspark-backend/internal/model"
	"github.com/adspark/adspark-backend/internal/repository"
)

func main() {
	cfg := config.Load()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedFiles := []string{
		"seed/schema.sql",
		"seed/users.sql",
	}

	for _, file := range seedFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("failed to read %s: %v", file, err)
		}

		if _, err := conn.Exec(string(content)); err != nil {
			log.Fatalf("failed to execute %s: %v", file, err)
		}
		fmt.Printf("Seeded: %s\n", file)
	}

	adminRepo := &repository.AdminRepository{DB: conn}
	existing, err := adminRepo.GetByUsername("admin")
	if err != nil {
		log.Fatalf("failed to check for default admin: %v", err)
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		admin := &model.Admin{
			Email:        "admin@admin.com",
			Username:     "admin",
			PasswordHash: string(hash),
		}
		if err := adminRepo.Create(admin); err != nil {
			log.Fatalf("failed to create default admin: %v", err)
		}
		fmt.Println("Default admin account created successfully!")
	}

	fmt.Println("Database seeding completed successfully!")
}
