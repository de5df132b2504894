package repository

import (
	"litgen_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) CreateSet(set *model.GeneratedQuestionSet) error {
	return r.DB.Create(set).Error
}

func (r *QuestionRepository) ListByTextID(textID uint) ([]model.GeneratedQuestionSet, error) {
	var sets []model.GeneratedQuestionSet
	err := r.DB.Where("generated_text_id = ?", textID).Order("created_at").Find(&sets).Error
	return sets, err
}
