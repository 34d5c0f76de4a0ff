package model

// Textbook 教材。TotalProblems 是所有进度百分比的分母
// swagger:model Textbook
type Textbook struct {
	BaseModel
	Title         string `gorm:"size:255;not null" json:"title"`
	Subject       string `gorm:"size:50;index" json:"subject"`
	TotalProblems int    `gorm:"default:0" json:"totalProblems"`
	// 关联的外部闪卡牌组ID（Anki），引擎不解析，仅透传
	AnkiDeckID string `gorm:"size:64" json:"ankiDeckId,omitempty"`

	Schedule *StudySchedule `gorm:"foreignKey:TextbookID" json:"schedule,omitempty"`
	Logs     []StudyLog     `gorm:"foreignKey:TextbookID" json:"logs,omitempty"`
}

func (Textbook) TableName() string {
	return "textbooks"
}
