// Manual standards reseed script.
//
// Seeding runs automatically on server start when the standards table
// is empty. This script forces a reseed after the reference tables
// change, wiping and reloading the categories and standards.
//
// Usage: go run scripts/seed_standards.go

package main

import (
	"log"
	"os"

	"litgen_backend/internal/config"
	"litgen_backend/internal/model"
	"litgen_backend/pkg/database"
	"litgen_backend/pkg/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("Clearing existing standards...")
	session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Unscoped().Delete(&model.Standard{}).Error; err != nil {
		log.Fatalf("failed to clear standards: %v", err)
	}
	if err := session.Unscoped().Delete(&model.StandardCategory{}).Error; err != nil {
		log.Fatalf("failed to clear categories: %v", err)
	}

	log.Println("Reseeding standards...")
	if err := database.SeedStandards(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Done.")
}
