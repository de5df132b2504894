package database

import (
	"fmt"
	"log"

	"litgen_backend/internal/config"
	"litgen_backend/internal/data"
	"litgen_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.StandardCategory{},
		&model.Standard{},
		&model.GeneratedText{},
		&model.GeneratedQuestionSet{},
	)
}

// SeedStandards loads the Common Core reference tables on first start.
// Standards are read-only after seeding; an already-populated table is
// left untouched so manual curation survives restarts.
func SeedStandards(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Standard{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, gradeID := range orderedGrades() {
		for _, cat := range data.StandardsByGrade[gradeID] {
			category := cat
			standards := category.Standards
			category.Standards = nil
			if err := db.Create(&category).Error; err != nil {
				return err
			}
			for _, s := range standards {
				standard := s
				if err := db.Create(&standard).Error; err != nil {
					return err
				}
			}
		}
	}

	log.Println("Standards reference data seeded")
	return nil
}

func orderedGrades() []string {
	grades := make([]string, 0, len(data.GradeLevels))
	for _, g := range data.GradeLevels {
		grades = append(grades, g.ID)
	}
	return grades
}
