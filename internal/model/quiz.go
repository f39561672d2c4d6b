package model

import (
	"encoding/json"
	"time"
)

// QuestionSnapshot is a copy of a question's content frozen at quiz
// generation time. Daily quizzes store snapshots, not references, so later
// edits to the question bank never alter a quiz that has already been
// served or attempted.
type QuestionSnapshot struct {
	QuestionID    uint        `json:"questionId"`
	QuestionText  string      `json:"questionText"`
	OptionA       string      `json:"optionA"`
	OptionB       string      `json:"optionB"`
	OptionC       string      `json:"optionC"`
	OptionD       string      `json:"optionD"`
	CorrectAnswer OptionLabel `json:"correctAnswer"`
	Explanation   string      `json:"explanation,omitempty"`
	CategoryName  string      `json:"categoryName,omitempty"`
}

// swagger:model DailyQuiz
type DailyQuiz struct {
	BaseModel
	QuizDate  time.Time       `gorm:"type:date;uniqueIndex;not null" json:"quizDate"`
	Questions json.RawMessage `gorm:"type:json;not null" json:"questions"` // []QuestionSnapshot
	IsSent    bool            `gorm:"default:false;index" json:"isSent"`
	SentAt    *time.Time      `json:"sentAt,omitempty"`
}

func (DailyQuiz) TableName() string {
	return "daily_quizzes"
}

// Snapshots decodes the frozen question array.
func (q *DailyQuiz) Snapshots() ([]QuestionSnapshot, error) {
	var snaps []QuestionSnapshot
	if err := json.Unmarshal(q.Questions, &snaps); err != nil {
		return nil, err
	}
	return snaps, nil
}

// swagger:model UserQuizAttempt
type UserQuizAttempt struct {
	BaseModel
	UserID           uint       `gorm:"uniqueIndex:idx_attempts_user_quiz;type:bigint unsigned;not null" json:"userId"`
	User             *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	QuizID           uint       `gorm:"uniqueIndex:idx_attempts_user_quiz;type:bigint unsigned;not null" json:"quizId"`
	Quiz             *DailyQuiz `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	Score            int        `gorm:"default:0" json:"score"`
	TotalPoints      int        `gorm:"default:0" json:"totalPoints"` // may be negative
	CorrectAnswers   int        `gorm:"default:0" json:"correctAnswers"`
	IncorrectAnswers int        `gorm:"default:0" json:"incorrectAnswers"`
	Accuracy         int        `gorm:"default:0" json:"accuracy"`
	TimeSpent        int        `gorm:"default:0" json:"timeSpent"` // seconds
	IsCompleted      bool       `gorm:"default:false;index" json:"isCompleted"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

func (UserQuizAttempt) TableName() string {
	return "user_quiz_attempts"
}

// swagger:model UserAnswer
type UserAnswer struct {
	BaseModel
	AttemptID  uint        `gorm:"index;type:bigint unsigned;not null" json:"attemptId"`
	QuestionID uint        `gorm:"index;type:bigint unsigned;not null" json:"questionId"`
	UserAnswer OptionLabel `gorm:"type:enum('A','B','C','D');not null" json:"userAnswer"`
	IsCorrect  bool        `gorm:"not null" json:"isCorrect"`
	TimeSpent  int         `gorm:"default:0" json:"timeSpent"` // seconds
	AnsweredAt time.Time   `gorm:"default:CURRENT_TIMESTAMP(3)" json:"answeredAt"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
