package model

// swagger:model Category
type Category struct {
	BaseModel
	Name        string `gorm:"size:100;unique;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	IsActive    bool   `gorm:"default:true;index" json:"isActive"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryWithCount carries a category plus the number of active questions
// attached to it, for the admin panel listing.
type CategoryWithCount struct {
	Category
	QuestionCount int64 `json:"questionCount"`
}
