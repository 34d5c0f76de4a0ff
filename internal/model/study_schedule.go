package model

import "gorm.io/datatypes"

// StudySchedule 一本教材的学习计划：日期区间 + 每周刷题配额
// 日期以 yyyy-MM-dd 字符串存储（边界格式），引擎使用前解析
// swagger:model StudySchedule
type StudySchedule struct {
	BaseModel
	TextbookID uint      `gorm:"index;not null" json:"textbookId"`
	Textbook   *Textbook `gorm:"foreignKey:TextbookID" json:"textbook,omitempty"`
	StartDate  string    `gorm:"size:10;not null" json:"startDate"`
	EndDate    string    `gorm:"size:10;not null" json:"endDate"`
	// 代表性的每日目标题数，仅用于展示
	DailyGoal  int `gorm:"default:0" json:"dailyGoal"`
	BufferDays int `gorm:"default:0" json:"bufferDays"`
	// 每周7天的配额，周日=0 ... 周六=6，各项 >= 0
	WeekdayQuotas datatypes.JSONSlice[int] `json:"weekdayQuotas"`
	// 计划级别的总题数覆盖，0 表示回退到教材的 TotalProblems
	TotalProblems int `gorm:"default:0" json:"totalProblems"`
}

func (StudySchedule) TableName() string {
	return "study_schedules"
}
