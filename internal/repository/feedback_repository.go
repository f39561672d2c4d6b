package repository

import (
	"daily_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(feedback *model.Feedback) error {
	return r.DB.Create(feedback).Error
}

func (r *FeedbackRepository) List(limit, offset int) ([]model.Feedback, int64, error) {
	query := r.DB.Model(&model.Feedback{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.Feedback
	err := query.Preload("User").Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *FeedbackRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Feedback{}, id).Error
}
