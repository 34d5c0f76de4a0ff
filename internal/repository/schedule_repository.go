package repository

import (
	"exam_prep_backend/internal/model"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	DB *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

// Create 创建学习计划
func (r *ScheduleRepository) Create(schedule *model.StudySchedule) error {
	return r.DB.Create(schedule).Error
}

// Update 更新学习计划
func (r *ScheduleRepository) Update(schedule *model.StudySchedule) error {
	return r.DB.Model(&model.StudySchedule{}).
		Where("id = ?", schedule.ID).
		Updates(map[string]interface{}{
			"start_date":     schedule.StartDate,
			"end_date":       schedule.EndDate,
			"daily_goal":     schedule.DailyGoal,
			"buffer_days":    schedule.BufferDays,
			"weekday_quotas": schedule.WeekdayQuotas,
			"total_problems": schedule.TotalProblems,
		}).Error
}

// Delete 删除学习计划
func (r *ScheduleRepository) Delete(id uint) error {
	return r.DB.Delete(&model.StudySchedule{}, id).Error
}

// FindByID 根据ID查找学习计划
func (r *ScheduleRepository) FindByID(id uint) (*model.StudySchedule, error) {
	var schedule model.StudySchedule
	err := r.DB.Preload("Textbook").First(&schedule, id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// FindByTextbookID 查找某教材的学习计划
func (r *ScheduleRepository) FindByTextbookID(textbookID uint) (*model.StudySchedule, error) {
	var schedule model.StudySchedule
	err := r.DB.Where("textbook_id = ?", textbookID).First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// FindAllWithTextbook 获取所有学习计划并预加载教材（时间轴聚合用）
func (r *ScheduleRepository) FindAllWithTextbook() ([]model.StudySchedule, error) {
	var schedules []model.StudySchedule
	err := r.DB.Preload("Textbook").Order("start_date").Find(&schedules).Error
	return schedules, err
}
