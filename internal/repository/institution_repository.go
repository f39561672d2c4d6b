package repository

import (
	"daily_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type InstitutionRepository struct {
	DB *gorm.DB
}

func NewInstitutionRepository(db *gorm.DB) *InstitutionRepository {
	return &InstitutionRepository{DB: db}
}

func (r *InstitutionRepository) Create(institution *model.Institution) error {
	return r.DB.Create(institution).Error
}

func (r *InstitutionRepository) FindByID(id uint) (*model.Institution, error) {
	var institution model.Institution
	err := r.DB.Preload("City").First(&institution, id).Error
	return &institution, err
}

func (r *InstitutionRepository) FindAll(cityID uint) ([]model.Institution, error) {
	query := r.DB.Preload("City")
	if cityID != 0 {
		query = query.Where("city_id = ?", cityID)
	}

	var institutions []model.Institution
	err := query.Order("name ASC").Find(&institutions).Error
	return institutions, err
}

func (r *InstitutionRepository) Update(institution *model.Institution) error {
	return r.DB.Save(institution).Error
}

func (r *InstitutionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Institution{}, id).Error
}
