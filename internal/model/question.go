package model

// OptionLabel identifies one of the four answer options of a question.
type OptionLabel string

const (
	OptionA OptionLabel = "A"
	OptionB OptionLabel = "B"
	OptionC OptionLabel = "C"
	OptionD OptionLabel = "D"
)

// Valid reports whether the label is one of A, B, C, D. Labels are checked
// at the request boundary; the scoring path assumes valid input.
func (l OptionLabel) Valid() bool {
	switch l {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// swagger:model Question
type Question struct {
	BaseModel
	CategoryID      uint        `gorm:"index;type:bigint unsigned;not null" json:"categoryId"`
	Category        *Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	PositionID      *uint       `gorm:"index;type:bigint unsigned" json:"positionId,omitempty"` // nil = applies to every position
	Position        *Position   `gorm:"foreignKey:PositionID" json:"position,omitempty"`
	QuestionText    string      `gorm:"size:1000;not null" json:"questionText"`
	OptionA         string      `gorm:"size:500;not null" json:"optionA"`
	OptionB         string      `gorm:"size:500;not null" json:"optionB"`
	OptionC         string      `gorm:"size:500;not null" json:"optionC"`
	OptionD         string      `gorm:"size:500;not null" json:"optionD"`
	CorrectAnswer   OptionLabel `gorm:"type:enum('A','B','C','D');not null" json:"correctAnswer"`
	Explanation     string      `gorm:"size:1000" json:"explanation"`
	DifficultyLevel int         `gorm:"default:1;index" json:"difficultyLevel"` // 1..5
	IsActive        bool        `gorm:"default:true;index" json:"isActive"`
}

func (Question) TableName() string {
	return "questions"
}
