package model

type PositionCategory string

const (
	PositionVenueAdmin     PositionCategory = "venue_administrator"
	PositionBanquetManager PositionCategory = "banquet_manager"
	PositionHeadChef       PositionCategory = "head_chef"
	PositionLiaisonManager PositionCategory = "liaison_manager"
)

type PositionLevel string

const (
	LevelJunior   PositionLevel = "junior"
	LevelMiddle   PositionLevel = "middle"
	LevelSenior   PositionLevel = "senior"
	LevelManaging PositionLevel = "managing"
)

// swagger:model Position
type Position struct {
	BaseModel
	Name        string           `gorm:"size:150;unique;not null" json:"name"`
	Category    PositionCategory `gorm:"size:50;not null;index;default:'venue_administrator'" json:"category"`
	Description string           `gorm:"size:500" json:"description"`
	Level       PositionLevel    `gorm:"size:20;index;default:'middle'" json:"level"`
	IsActive    bool             `gorm:"default:true;index" json:"isActive"`
	CreatedByID uint             `gorm:"type:bigint unsigned" json:"createdById"`
	CreatedBy   *User            `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}

func (Position) TableName() string {
	return "positions"
}
