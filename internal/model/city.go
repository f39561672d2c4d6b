package model

// swagger:model City
type City struct {
	BaseModel
	Name        string `gorm:"size:100;unique;not null" json:"name"`
	Region      string `gorm:"size:100;index" json:"region"`
	Country     string `gorm:"size:100;default:'Ukraine'" json:"country"`
	IsActive    bool   `gorm:"default:true;index" json:"isActive"`
	CreatedByID uint   `gorm:"type:bigint unsigned" json:"createdById"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}

func (City) TableName() string {
	return "cities"
}
