package model

// ExamType 考试分类，自由文本，以下是预置值
const (
	ExamTypeCommonTest = "common_test" // 共通考试
	ExamTypeSecondary  = "secondary"   // 各校自主考试
	ExamTypeMock       = "mock"        // 模拟考试
)

// Exam 考试或模拟考试。Date 以 yyyy-MM-dd 字符串存储，
// 历史数据中可能存在无法解析的值，时间轴排序/筛选时静默剔除
// swagger:model Exam
type Exam struct {
	BaseModel
	Name         string      `gorm:"size:255;not null" json:"name"`
	Date         string      `gorm:"size:10;index" json:"date"`
	IsMock       bool        `gorm:"default:false;index" json:"isMock"`
	ExamType     string      `gorm:"size:50" json:"examType"`
	UniversityID *uint       `gorm:"index" json:"universityId,omitempty"`
	University   *University `gorm:"foreignKey:UniversityID" json:"university,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}
