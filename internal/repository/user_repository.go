package repository

import (
	"time"

	"daily_quiz_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("Position").First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateFields(userID uint, fields map[string]interface{}) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Updates(fields).Error
}

// AddQuizResult bumps the running totals a completed attempt contributes to.
func (r *UserRepository) AddQuizResult(userID uint, points int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_score":     gorm.Expr("total_score + ?", points),
			"tests_completed": gorm.Expr("tests_completed + 1"),
		}).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	now := time.Now()
	return r.DB.Model(&model.User{}).Where("id = ?", userID).Update("last_login", &now).Error
}

type UserFilter struct {
	Search     string
	City       string
	PositionID uint
	IsActive   *bool
	IsAdmin    *bool
	Limit      int
	Offset     int
}

func (r *UserRepository) List(filter UserFilter) ([]model.User, int64, error) {
	query := r.DB.Model(&model.User{}).Preload("Position")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR username LIKE ?", pattern, pattern, pattern)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.PositionID != 0 {
		query = query.Where("position_id = ?", filter.PositionID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsAdmin != nil {
		query = query.Where("is_admin = ?", *filter.IsAdmin)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&users).Error
	return users, total, err
}

// FindPlayers returns active non-admin accounts, optionally restricted to
// those created after since, ordered by total score then tests completed.
func (r *UserRepository) FindPlayers(since *time.Time) ([]model.User, error) {
	query := r.DB.Where("is_active = ? AND is_admin = ?", true, false)
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	var users []model.User
	err := query.Order("total_score DESC, tests_completed DESC, id ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindActivePlayers() ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("is_active = ? AND is_admin = ?", true, false).Find(&users).Error
	return users, err
}

func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountPlayers() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("is_active = ? AND is_admin = ?", true, false).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountRegisteredSince(since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("is_admin = ? AND created_at >= ?", false, since).
		Count(&count).Error
	return count, err
}
