package service

import (
	"errors"
	"time"

	"daily_quiz_backend/internal/config"
	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/internal/repository"
	"daily_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Email    *EmailService
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, email *EmailService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Email:    email,
		Cfg:      cfg,
	}
}

type RegisterInput struct {
	Username    string       `json:"username" binding:"required,min=3,max=50"`
	Password    string       `json:"password" binding:"required,min=6"`
	FirstName   string       `json:"firstName" binding:"required"`
	LastName    string       `json:"lastName" binding:"required"`
	City        string       `json:"city" binding:"required"`
	PositionID  uint         `json:"positionId"`
	Institution string       `json:"institution"`
	Gender      model.Gender `json:"gender"`
	Phone       string       `json:"phone"`
}

// Register creates a player account and returns it with a fresh token.
// Welcome mail is best effort.
func (s *AuthService) Register(input RegisterInput) (*model.User, string, error) {
	_, err := s.UserRepo.FindByUsername(input.Username)
	if err == nil {
		return nil, "", util.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username:         input.Username,
		PasswordHash:     string(hash),
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		City:             input.City,
		PositionID:       input.PositionID,
		Institution:      input.Institution,
		Gender:           input.Gender,
		Phone:            input.Phone,
		IsActive:         true,
		RegistrationDate: time.Now(),
		LastLogin:        time.Now(),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}

	if s.Email != nil {
		s.Email.SendWelcome(user)
	}

	loaded, err := s.UserRepo.FindByID(user.ID)
	if err != nil {
		return user, token, nil
	}
	return loaded, token, nil
}

func (s *AuthService) Login(username, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", util.ErrAccountDeactivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}

	s.UserRepo.UpdateLastLogin(user.ID)

	return user, token, nil
}

type ProfileUpdateInput struct {
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	City        string       `json:"city"`
	PositionID  uint         `json:"positionId"`
	Institution string       `json:"institution"`
	Gender      model.Gender `json:"gender"`
	Phone       string       `json:"phone"`
}

func (s *AuthService) UpdateProfile(userID uint, input ProfileUpdateInput) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.City != "" {
		user.City = input.City
	}
	if input.PositionID != 0 {
		user.PositionID = input.PositionID
	}
	if input.Institution != "" {
		user.Institution = input.Institution
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return s.UserRepo.FindByID(userID)
}

func (s *AuthService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return util.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.UserRepo.UpdateFields(userID, map[string]interface{}{"password_hash": string(hash)})
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
