package model

// StudyLog 每日学习记录，(textbook_id, date) 唯一
// swagger:model StudyLog
type StudyLog struct {
	BaseModel
	TextbookID uint      `gorm:"index;uniqueIndex:idx_textbook_log_date;not null" json:"textbookId"`
	Textbook   *Textbook `gorm:"foreignKey:TextbookID" json:"textbook,omitempty"`
	Date       string    `gorm:"size:10;uniqueIndex:idx_textbook_log_date;not null" json:"date"`
	// 计划题数，引擎不使用，仅用于展示
	PlannedAmount int    `gorm:"default:0" json:"plannedAmount"`
	ActualAmount  int    `gorm:"default:0" json:"actualAmount"`
	Note          string `gorm:"type:text" json:"note,omitempty"`
}

func (StudyLog) TableName() string {
	return "study_logs"
}
