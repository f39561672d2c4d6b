package service

import (
	"time"

	"daily_quiz_backend/internal/model"
	"daily_quiz_backend/internal/repository"
	"daily_quiz_backend/internal/util"
)

type UserService struct {
	UserRepo         *repository.UserRepository
	NotificationRepo *repository.NotificationRepository
	FeedbackRepo     *repository.FeedbackRepository
}

func NewUserService(
	userRepo *repository.UserRepository,
	notificationRepo *repository.NotificationRepository,
	feedbackRepo *repository.FeedbackRepository,
) *UserService {
	return &UserService{
		UserRepo:         userRepo,
		NotificationRepo: notificationRepo,
		FeedbackRepo:     feedbackRepo,
	}
}

func (s *UserService) List(filter repository.UserFilter) ([]model.User, int64, error) {
	return s.UserRepo.List(filter)
}

// SetActive toggles a user's access. Deactivated users keep their history
// but can no longer log in or appear in rankings.
func (s *UserService) SetActive(id uint, active bool) error {
	if _, err := s.UserRepo.FindByID(id); err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.UpdateFields(id, map[string]interface{}{"is_active": active})
}

// Notifications

type NotificationPage struct {
	Notifications []model.Notification `json:"notifications"`
	Total         int64                `json:"total"`
	Unread        int64                `json:"unread"`
}

func (s *UserService) Notifications(userID uint, limit, offset int) (*NotificationPage, error) {
	notifications, total, err := s.NotificationRepo.FindByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := s.NotificationRepo.CountUnread(userID)
	if err != nil {
		return nil, err
	}
	return &NotificationPage{
		Notifications: notifications,
		Total:         total,
		Unread:        unread,
	}, nil
}

func (s *UserService) MarkNotificationRead(userID, notificationID uint) error {
	return s.NotificationRepo.MarkRead(userID, notificationID)
}

func (s *UserService) MarkAllNotificationsRead(userID uint) error {
	return s.NotificationRepo.MarkAllRead(userID)
}

// Feedback

type FeedbackInput struct {
	Rating       int                `json:"rating" binding:"required,min=1,max=5"`
	Comment      string             `json:"comment" binding:"max=1000"`
	FeedbackType model.FeedbackType `json:"feedbackType"`
}

func (s *UserService) SubmitFeedback(userID uint, input FeedbackInput) (*model.Feedback, error) {
	feedback := &model.Feedback{
		UserID:       userID,
		Rating:       input.Rating,
		Comment:      input.Comment,
		FeedbackType: input.FeedbackType,
	}
	if feedback.FeedbackType == "" {
		feedback.FeedbackType = model.FeedbackGeneral
	}
	if err := s.FeedbackRepo.Create(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *UserService) ListFeedback(limit, offset int) ([]model.Feedback, int64, error) {
	return s.FeedbackRepo.List(limit, offset)
}

// Announce creates an admin broadcast notification for every active player.
func (s *UserService) Announce(title, message string) (int, error) {
	players, err := s.UserRepo.FindActivePlayers()
	if err != nil {
		return 0, err
	}

	now := time.Now()
	notifications := make([]model.Notification, 0, len(players))
	for _, p := range players {
		notifications = append(notifications, model.Notification{
			UserID:  p.ID,
			Title:   title,
			Message: message,
			Type:    model.NotificationSystem,
			SentAt:  now,
		})
	}
	if err := s.NotificationRepo.CreateBatch(notifications); err != nil {
		return 0, err
	}
	return len(notifications), nil
}
