package repository

import (
	"exam_prep_backend/internal/model"

	"gorm.io/gorm"
)

type UniversityRepository struct {
	DB *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) *UniversityRepository {
	return &UniversityRepository{DB: db}
}

// Create 创建大学
func (r *UniversityRepository) Create(university *model.University) error {
	return r.DB.Create(university).Error
}

// Update 更新大学
func (r *UniversityRepository) Update(university *model.University) error {
	return r.DB.Model(&model.University{}).
		Where("id = ?", university.ID).
		Updates(map[string]interface{}{
			"name":    university.Name,
			"faculty": university.Faculty,
		}).Error
}

// Delete 删除大学
func (r *UniversityRepository) Delete(id uint) error {
	return r.DB.Delete(&model.University{}, id).Error
}

// FindByID 根据ID查找大学
func (r *UniversityRepository) FindByID(id uint) (*model.University, error) {
	var university model.University
	err := r.DB.Preload("Exams").First(&university, id).Error
	if err != nil {
		return nil, err
	}
	return &university, nil
}

// FindAll 获取全部大学
func (r *UniversityRepository) FindAll() ([]model.University, error) {
	var universities []model.University
	err := r.DB.Order("created_at").Find(&universities).Error
	return universities, err
}
