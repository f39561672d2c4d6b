package repository

import (
	"daily_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type PositionRepository struct {
	DB *gorm.DB
}

func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{DB: db}
}

func (r *PositionRepository) Create(position *model.Position) error {
	return r.DB.Create(position).Error
}

func (r *PositionRepository) FindByID(id uint) (*model.Position, error) {
	var position model.Position
	err := r.DB.First(&position, id).Error
	return &position, err
}

func (r *PositionRepository) FindAll() ([]model.Position, error) {
	var positions []model.Position
	err := r.DB.Order("category ASC, level ASC").Find(&positions).Error
	return positions, err
}

func (r *PositionRepository) FindByCategory(category model.PositionCategory) ([]model.Position, error) {
	var positions []model.Position
	err := r.DB.Where("category = ?", category).Order("level ASC").Find(&positions).Error
	return positions, err
}

func (r *PositionRepository) Update(position *model.Position) error {
	return r.DB.Save(position).Error
}

func (r *PositionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Position{}, id).Error
}

func (r *PositionRepository) CountUsers(positionID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("position_id = ?", positionID).Count(&count).Error
	return count, err
}
