package repository

import (
	"exam_prep_backend/internal/model"
	"fmt"

	"gorm.io/gorm"
)

// fmtYearPrefix 日期以 yyyy-MM-dd 字符串存储，按年筛选用前缀匹配
func fmtYearPrefix(year int) string {
	return fmt.Sprintf("%04d-%%", year)
}

type StudyLogRepository struct {
	DB *gorm.DB
}

func NewStudyLogRepository(db *gorm.DB) *StudyLogRepository {
	return &StudyLogRepository{DB: db}
}

// Create 创建学习记录
func (r *StudyLogRepository) Create(log *model.StudyLog) error {
	return r.DB.Create(log).Error
}

// Update 更新学习记录
func (r *StudyLogRepository) Update(log *model.StudyLog) error {
	return r.DB.Model(&model.StudyLog{}).
		Where("id = ?", log.ID).
		Updates(map[string]interface{}{
			"planned_amount": log.PlannedAmount,
			"actual_amount":  log.ActualAmount,
			"note":           log.Note,
		}).Error
}

// Delete 删除学习记录
func (r *StudyLogRepository) Delete(id uint) error {
	return r.DB.Delete(&model.StudyLog{}, id).Error
}

// FindByID 根据ID查找学习记录
func (r *StudyLogRepository) FindByID(id uint) (*model.StudyLog, error) {
	var log model.StudyLog
	err := r.DB.First(&log, id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// FindByTextbookAndDate 查找某教材某天的记录，(textbook_id, date) 唯一
func (r *StudyLogRepository) FindByTextbookAndDate(textbookID uint, date string) (*model.StudyLog, error) {
	var log model.StudyLog
	err := r.DB.Where("textbook_id = ? AND date = ?", textbookID, date).First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// FindByTextbookID 获取某教材的全部记录，按日期升序
func (r *StudyLogRepository) FindByTextbookID(textbookID uint) ([]model.StudyLog, error) {
	var logs []model.StudyLog
	err := r.DB.Where("textbook_id = ?", textbookID).Order("date").Find(&logs).Error
	return logs, err
}

// FindAll 获取全部学习记录
func (r *StudyLogRepository) FindAll() ([]model.StudyLog, error) {
	var logs []model.StudyLog
	err := r.DB.Order("date").Find(&logs).Error
	return logs, err
}

// FindByYear 获取某一年内的学习记录（热力图用）
func (r *StudyLogRepository) FindByYear(year int) ([]model.StudyLog, error) {
	var logs []model.StudyLog
	err := r.DB.Where("date LIKE ?", fmtYearPrefix(year)).Order("date").Find(&logs).Error
	return logs, err
}

// FindByTextbookAndYear 获取某教材某一年内的学习记录
func (r *StudyLogRepository) FindByTextbookAndYear(textbookID uint, year int) ([]model.StudyLog, error) {
	var logs []model.StudyLog
	err := r.DB.Where("textbook_id = ? AND date LIKE ?", textbookID, fmtYearPrefix(year)).Order("date").Find(&logs).Error
	return logs, err
}
