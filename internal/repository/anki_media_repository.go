package repository

import (
	"exam_prep_backend/internal/model"

	"gorm.io/gorm"
)

type AnkiMediaRepository struct {
	DB *gorm.DB
}

func NewAnkiMediaRepository(db *gorm.DB) *AnkiMediaRepository {
	return &AnkiMediaRepository{DB: db}
}

// Create 记录一次媒体上传
func (r *AnkiMediaRepository) Create(media *model.AnkiMedia) error {
	return r.DB.Create(media).Error
}

// Delete 删除媒体记录
func (r *AnkiMediaRepository) Delete(id string) error {
	return r.DB.Delete(&model.AnkiMedia{}, "id = ?", id).Error
}

// FindByID 根据ID查找媒体记录
func (r *AnkiMediaRepository) FindByID(id string) (*model.AnkiMedia, error) {
	var media model.AnkiMedia
	err := r.DB.First(&media, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// FindAll 获取全部媒体记录
func (r *AnkiMediaRepository) FindAll() ([]model.AnkiMedia, error) {
	var media []model.AnkiMedia
	err := r.DB.Order("created_at DESC").Find(&media).Error
	return media, err
}
