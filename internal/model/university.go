package model

// University 志愿大学
// swagger:model University
type University struct {
	BaseModel
	Name    string `gorm:"size:255;not null" json:"name"`
	Faculty string `gorm:"size:255" json:"faculty,omitempty"`

	Exams []Exam `gorm:"foreignKey:UniversityID" json:"exams,omitempty"`
}

func (University) TableName() string {
	return "universities"
}
