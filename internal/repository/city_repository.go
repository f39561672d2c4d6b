package repository

import (
	"daily_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type CityRepository struct {
	DB *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{DB: db}
}

func (r *CityRepository) Create(city *model.City) error {
	return r.DB.Create(city).Error
}

func (r *CityRepository) FindByID(id uint) (*model.City, error) {
	var city model.City
	err := r.DB.First(&city, id).Error
	return &city, err
}

func (r *CityRepository) FindByName(name string) (*model.City, error) {
	var city model.City
	err := r.DB.Where("name = ?", name).First(&city).Error
	return &city, err
}

func (r *CityRepository) FindAll() ([]model.City, error) {
	var cities []model.City
	err := r.DB.Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *CityRepository) Update(city *model.City) error {
	return r.DB.Save(city).Error
}

func (r *CityRepository) Delete(id uint) error {
	return r.DB.Delete(&model.City{}, id).Error
}
