package model

import (
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// swagger:model User
type User struct {
	BaseModel
	FirstName        string    `gorm:"size:100;not null" json:"firstName"`
	LastName         string    `gorm:"size:100;not null" json:"lastName"`
	City             string    `gorm:"size:100;not null;index" json:"city"`
	PositionID       uint      `gorm:"index;type:bigint unsigned" json:"positionId"`
	Position         *Position `gorm:"foreignKey:PositionID" json:"position,omitempty"`
	Institution      string    `gorm:"size:200" json:"institution"`
	Gender           Gender    `gorm:"type:enum('male','female','other')" json:"gender"`
	Username         string    `gorm:"size:50;unique;not null" json:"username"`
	Phone            string    `gorm:"size:20" json:"phone"`
	PasswordHash     string    `gorm:"size:100;not null" json:"-"`
	IsActive         bool      `gorm:"default:true;index" json:"isActive"`
	IsAdmin          bool      `gorm:"default:false" json:"isAdmin"`
	TotalScore       int       `gorm:"default:0;index:idx_users_total_score,sort:desc" json:"totalScore"`
	TestsCompleted   int       `gorm:"default:0" json:"testsCompleted"`
	RegistrationDate time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"registrationDate"`
	LastLogin        time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
