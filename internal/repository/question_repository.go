package repository

import (
	"daily_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Category").First(&question, id).Error
	return &question, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

type QuestionFilter struct {
	CategoryID uint
	PositionID uint
	Difficulty int
	IsActive   *bool
	Search     string
	Limit      int
	Offset     int
}

func (r *QuestionRepository) List(filter QuestionFilter) ([]model.Question, int64, error) {
	query := r.DB.Model(&model.Question{}).Preload("Category")

	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.PositionID != 0 {
		query = query.Where("position_id = ? OR position_id IS NULL", filter.PositionID)
	}
	if filter.Difficulty != 0 {
		query = query.Where("difficulty_level = ?", filter.Difficulty)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		query = query.Where("question_text LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []model.Question
	err := query.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&questions).Error
	return questions, total, err
}

// FindRandomActive pulls up to limit active questions from the given
// categories in database-random order. Quiz generation relies on this for
// its daily selection.
func (r *QuestionRepository) FindRandomActive(categoryIDs []uint, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Preload("Category").
		Where("is_active = ? AND category_id IN ?", true, categoryIDs).
		Order("RAND()").
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

// FindRandomForPosition samples active questions visible to a position,
// including the unscoped pool.
func (r *QuestionRepository) FindRandomForPosition(positionID uint, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Preload("Category").
		Where("is_active = ?", true).
		Where("position_id = ? OR position_id IS NULL", positionID).
		Order("RAND()").
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) CountTotal() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Count(&count).Error
	return count, err
}

func (r *QuestionRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *QuestionRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
