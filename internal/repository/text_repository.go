package repository

import (
	"litgen_backend/internal/model"

	"gorm.io/gorm"
)

type TextRepository struct {
	DB *gorm.DB
}

func NewTextRepository(db *gorm.DB) *TextRepository {
	return &TextRepository{DB: db}
}

func (r *TextRepository) Create(text *model.GeneratedText) error {
	return r.DB.Create(text).Error
}

func (r *TextRepository) FindByID(id uint) (*model.GeneratedText, error) {
	var t model.GeneratedText
	err := r.DB.First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TextRepository) ListByUser(userID uint, page, limit int) ([]model.GeneratedText, int64, error) {
	var texts []model.GeneratedText
	var total int64
	query := r.DB.Model(&model.GeneratedText{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&texts).Error
	return texts, total, err
}

func (r *TextRepository) ListRecent(limit int) ([]model.GeneratedText, error) {
	var texts []model.GeneratedText
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&texts).Error
	return texts, err
}
