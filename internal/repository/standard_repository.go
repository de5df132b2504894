package repository

import (
	"litgen_backend/internal/model"

	"gorm.io/gorm"
)

type StandardRepository struct {
	DB *gorm.DB
}

func NewStandardRepository(db *gorm.DB) *StandardRepository {
	return &StandardRepository{DB: db}
}

func (r *StandardRepository) FindByID(id string) (*model.Standard, error) {
	var s model.Standard
	err := r.DB.First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByCode looks a standard up by its CCSS code (e.g. "RL.3.1").
// Clients sometimes send codes where IDs are expected, so the service
// falls back to this after FindByID misses.
func (r *StandardRepository) FindByCode(code string) (*model.Standard, error) {
	var s model.Standard
	err := r.DB.First(&s, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StandardRepository) CategoriesByGrade(gradeID string) ([]model.StandardCategory, error) {
	var categories []model.StandardCategory
	err := r.DB.Where("grade_id = ?", gradeID).Order("id").Find(&categories).Error
	return categories, err
}

func (r *StandardRepository) StandardsByCategory(categoryID string) ([]model.Standard, error) {
	var standards []model.Standard
	err := r.DB.Where("category_id = ?", categoryID).Order("id").Find(&standards).Error
	return standards, err
}

func (r *StandardRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Standard{}).Count(&count).Error
	return count, err
}
