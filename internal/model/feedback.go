package model

type FeedbackType string

const (
	FeedbackGeneral     FeedbackType = "general"
	FeedbackBug         FeedbackType = "bug"
	FeedbackFeature     FeedbackType = "feature"
	FeedbackImprovement FeedbackType = "improvement"
)

// swagger:model Feedback
type Feedback struct {
	BaseModel
	UserID       uint         `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	User         *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating       int          `gorm:"not null" json:"rating"` // 1..5
	Comment      string       `gorm:"size:1000" json:"comment"`
	FeedbackType FeedbackType `gorm:"size:20;index;default:'general'" json:"feedbackType"`
}

func (Feedback) TableName() string {
	return "feedback"
}
