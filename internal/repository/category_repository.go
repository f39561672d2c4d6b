package repository

import (
	"daily_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, id).Error
	return &category, err
}

func (r *CategoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindActive() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Where("is_active = ?", true).Find(&categories).Error
	return categories, err
}

// FindAllWithCounts joins in the number of questions per category so admin
// screens can show usage without N+1 count queries.
func (r *CategoryRepository) FindAllWithCounts() ([]model.CategoryWithCount, error) {
	var results []model.CategoryWithCount
	err := r.DB.Model(&model.Category{}).
		Select("categories.*, COUNT(questions.id) AS question_count").
		Joins("LEFT JOIN questions ON questions.category_id = categories.id AND questions.deleted_at IS NULL").
		Group("categories.id").
		Order("categories.name ASC").
		Scan(&results).Error
	return results, err
}

func (r *CategoryRepository) Update(category *model.Category) error {
	return r.DB.Save(category).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Category{}, id).Error
}

func (r *CategoryRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Category{}).Count(&count).Error
	return count, err
}
