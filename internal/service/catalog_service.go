package service

import (
	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/internal/repository"
	"daily_quiz_backend/internal/util"
)

// CatalogService manages the reference data players pick from at
// registration time: positions, cities, institutions and question
// categories.
type CatalogService struct {
	PositionRepo    *repository.PositionRepository
	CityRepo        *repository.CityRepository
	InstitutionRepo *repository.InstitutionRepository
	CategoryRepo    *repository.CategoryRepository
	QuestionRepo    *repository.QuestionRepository
}

func NewCatalogService(
	positionRepo *repository.PositionRepository,
	cityRepo *repository.CityRepository,
	institutionRepo *repository.InstitutionRepository,
	categoryRepo *repository.CategoryRepository,
	questionRepo *repository.QuestionRepository,
) *CatalogService {
	return &CatalogService{
		PositionRepo:    positionRepo,
		CityRepo:        cityRepo,
		InstitutionRepo: institutionRepo,
		CategoryRepo:    categoryRepo,
		QuestionRepo:    questionRepo,
	}
}

// Positions

type PositionInput struct {
	Name        string                 `json:"name" binding:"required,max=100"`
	Category    model.PositionCategory `json:"category" binding:"required"`
	Description string                 `json:"description" binding:"max=500"`
	Level       model.PositionLevel    `json:"level"`
	IsActive    *bool                  `json:"isActive"`
}

// Positions lists the catalog, optionally narrowed to one category.
func (s *CatalogService) Positions(category model.PositionCategory) ([]model.Position, error) {
	if category != "" {
		return s.PositionRepo.FindByCategory(category)
	}
	return s.PositionRepo.FindAll()
}

func (s *CatalogService) Position(id uint) (*model.Position, error) {
	return s.PositionRepo.FindByID(id)
}

func (s *CatalogService) CreatePosition(input PositionInput, createdBy uint) (*model.Position, error) {
	position := &model.Position{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Level:       input.Level,
		IsActive:    true,
		CreatedByID: createdBy,
	}
	if input.IsActive != nil {
		position.IsActive = *input.IsActive
	}
	if err := s.PositionRepo.Create(position); err != nil {
		return nil, err
	}
	return position, nil
}

func (s *CatalogService) UpdatePosition(id uint, input PositionInput) (*model.Position, error) {
	position, err := s.PositionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	position.Name = input.Name
	position.Category = input.Category
	position.Description = input.Description
	if input.Level != "" {
		position.Level = input.Level
	}
	if input.IsActive != nil {
		position.IsActive = *input.IsActive
	}

	if err := s.PositionRepo.Update(position); err != nil {
		return nil, err
	}
	return position, nil
}

func (s *CatalogService) DeletePosition(id uint) error {
	if _, err := s.PositionRepo.FindByID(id); err != nil {
		return err
	}
	count, err := s.PositionRepo.CountUsers(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrPositionInUse
	}
	return s.PositionRepo.Delete(id)
}

// Cities

type CityInput struct {
	Name     string `json:"name" binding:"required,max=100"`
	Region   string `json:"region" binding:"max=100"`
	Country  string `json:"country" binding:"max=100"`
	IsActive *bool  `json:"isActive"`
}

func (s *CatalogService) Cities() ([]model.City, error) {
	return s.CityRepo.FindAll()
}

func (s *CatalogService) CreateCity(input CityInput, createdBy uint) (*model.City, error) {
	if _, err := s.CityRepo.FindByName(input.Name); err == nil {
		return nil, util.ErrCityExists
	}
	city := &model.City{
		Name:        input.Name,
		Region:      input.Region,
		Country:     input.Country,
		IsActive:    true,
		CreatedByID: createdBy,
	}
	if input.IsActive != nil {
		city.IsActive = *input.IsActive
	}
	if err := s.CityRepo.Create(city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CatalogService) UpdateCity(id uint, input CityInput) (*model.City, error) {
	city, err := s.CityRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	city.Name = input.Name
	city.Region = input.Region
	if input.Country != "" {
		city.Country = input.Country
	}
	if input.IsActive != nil {
		city.IsActive = *input.IsActive
	}

	if err := s.CityRepo.Update(city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CatalogService) DeleteCity(id uint) error {
	if _, err := s.CityRepo.FindByID(id); err != nil {
		return err
	}
	return s.CityRepo.Delete(id)
}

// Institutions

type InstitutionInput struct {
	Name      string                `json:"name" binding:"required,max=200"`
	ShortName string                `json:"shortName" binding:"max=50"`
	Type      model.InstitutionType `json:"type"`
	CityID    uint                  `json:"cityId" binding:"required"`
	Address   string                `json:"address" binding:"max=300"`
	Phone     string                `json:"phone" binding:"max=20"`
	Email     string                `json:"email" binding:"max=100"`
	Website   string                `json:"website" binding:"max=200"`
	IsActive  *bool                 `json:"isActive"`
}

func (s *CatalogService) Institutions(cityID uint) ([]model.Institution, error) {
	return s.InstitutionRepo.FindAll(cityID)
}

func (s *CatalogService) CreateInstitution(input InstitutionInput, createdBy uint) (*model.Institution, error) {
	if _, err := s.CityRepo.FindByID(input.CityID); err != nil {
		return nil, err
	}

	institution := &model.Institution{
		Name:        input.Name,
		ShortName:   input.ShortName,
		Type:        input.Type,
		CityID:      input.CityID,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		Website:     input.Website,
		IsActive:    true,
		CreatedByID: createdBy,
	}
	if input.IsActive != nil {
		institution.IsActive = *input.IsActive
	}
	if err := s.InstitutionRepo.Create(institution); err != nil {
		return nil, err
	}
	return s.InstitutionRepo.FindByID(institution.ID)
}

func (s *CatalogService) UpdateInstitution(id uint, input InstitutionInput) (*model.Institution, error) {
	institution, err := s.InstitutionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	institution.Name = input.Name
	institution.ShortName = input.ShortName
	if input.Type != "" {
		institution.Type = input.Type
	}
	institution.CityID = input.CityID
	institution.Address = input.Address
	institution.Phone = input.Phone
	institution.Email = input.Email
	institution.Website = input.Website
	if input.IsActive != nil {
		institution.IsActive = *input.IsActive
	}

	if err := s.InstitutionRepo.Update(institution); err != nil {
		return nil, err
	}
	return s.InstitutionRepo.FindByID(id)
}

func (s *CatalogService) DeleteInstitution(id uint) error {
	if _, err := s.InstitutionRepo.FindByID(id); err != nil {
		return err
	}
	return s.InstitutionRepo.Delete(id)
}

// Categories

type CategoryInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	IsActive    *bool  `json:"isActive"`
}

func (s *CatalogService) Categories() ([]model.Category, error) {
	return s.CategoryRepo.FindAll()
}

func (s *CatalogService) CategoriesWithCounts() ([]model.CategoryWithCount, error) {
	return s.CategoryRepo.FindAllWithCounts()
}

func (s *CatalogService) CreateCategory(input CategoryInput) (*model.Category, error) {
	category := &model.Category{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(id uint, input CategoryInput) (*model.Category, error) {
	category, err := s.CategoryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Description = input.Description
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.CategoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.CategoryRepo.FindByID(id); err != nil {
		return err
	}
	count, err := s.QuestionRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrCategoryInUse
	}
	return s.CategoryRepo.Delete(id)
}
