package model

type InstitutionType string

const (
	InstitutionSchool     InstitutionType = "school"
	InstitutionLyceum     InstitutionType = "lyceum"
	InstitutionGymnasium  InstitutionType = "gymnasium"
	InstitutionCollege    InstitutionType = "college"
	InstitutionUniversity InstitutionType = "university"
	InstitutionInstitute  InstitutionType = "institute"
	InstitutionAcademy    InstitutionType = "academy"
	InstitutionOther      InstitutionType = "other"
)

// swagger:model Institution
type Institution struct {
	BaseModel
	Name        string          `gorm:"size:200;unique;not null" json:"name"`
	ShortName   string          `gorm:"size:50" json:"shortName"`
	Type        InstitutionType `gorm:"size:20;not null;index;default:'school'" json:"type"`
	CityID      uint            `gorm:"index;type:bigint unsigned;not null" json:"cityId"`
	City        *City           `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Address     string          `gorm:"size:200" json:"address"`
	Phone       string          `gorm:"size:20" json:"phone"`
	Email       string          `gorm:"size:100" json:"email"`
	Website     string          `gorm:"size:200" json:"website"`
	IsActive    bool            `gorm:"default:true;index" json:"isActive"`
	CreatedByID uint            `gorm:"type:bigint unsigned" json:"createdById"`
	CreatedBy   *User           `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}

func (Institution) TableName() string {
	return "institutions"
}
