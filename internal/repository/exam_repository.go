package repository

import (
	"exam_prep_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

// Create 创建考试
func (r *ExamRepository) Create(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

// Update 更新考试
func (r *ExamRepository) Update(exam *model.Exam) error {
	return r.DB.Model(&model.Exam{}).
		Where("id = ?", exam.ID).
		Updates(map[string]interface{}{
			"name":          exam.Name,
			"date":          exam.Date,
			"is_mock":       exam.IsMock,
			"exam_type":     exam.ExamType,
			"university_id": exam.UniversityID,
		}).Error
}

// Delete 删除考试
func (r *ExamRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Exam{}, id).Error
}

// FindByID 根据ID查找考试
func (r *ExamRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.Preload("University").First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// FindAll 获取全部考试并预加载大学
func (r *ExamRepository) FindAll() ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.Preload("University").Order("date").Find(&exams).Error
	return exams, err
}

// FindByMock 按是否模拟考筛选（时间轴聚合用）
func (r *ExamRepository) FindByMock(isMock bool) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.Preload("University").Where("is_mock = ?", isMock).Order("date").Find(&exams).Error
	return exams, err
}
