package model

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationQuiz    NotificationType = "quiz"
	NotificationSystem  NotificationType = "system"
)

// swagger:model Notification
type Notification struct {
	BaseModel
	UserID  uint             `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Title   string           `gorm:"size:200;not null" json:"title"`
	Message string           `gorm:"size:1000;not null" json:"message"`
	Type    NotificationType `gorm:"size:20;index;default:'info'" json:"type"`
	IsRead  bool             `gorm:"default:false;index" json:"isRead"`
	ReadAt  *time.Time       `json:"readAt,omitempty"`
	SentAt  time.Time        `gorm:"index;default:CURRENT_TIMESTAMP(3)" json:"sentAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
