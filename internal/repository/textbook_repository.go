package repository

import (
	"exam_prep_backend/internal/model"

	"gorm.io/gorm"
)

type TextbookRepository struct {
	DB *gorm.DB
}

func NewTextbookRepository(db *gorm.DB) *TextbookRepository {
	return &TextbookRepository{DB: db}
}

// Create 创建教材
func (r *TextbookRepository) Create(textbook *model.Textbook) error {
	return r.DB.Create(textbook).Error
}

// Update 更新教材
func (r *TextbookRepository) Update(textbook *model.Textbook) error {
	return r.DB.Model(&model.Textbook{}).
		Where("id = ?", textbook.ID).
		Updates(map[string]interface{}{
			"title":          textbook.Title,
			"subject":        textbook.Subject,
			"total_problems": textbook.TotalProblems,
			"anki_deck_id":   textbook.AnkiDeckID,
		}).Error
}

// Delete 删除教材
func (r *TextbookRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Textbook{}, id).Error
}

// FindByID 根据ID查找教材
func (r *TextbookRepository) FindByID(id uint) (*model.Textbook, error) {
	var textbook model.Textbook
	err := r.DB.First(&textbook, id).Error
	if err != nil {
		return nil, err
	}
	return &textbook, nil
}

// FindAll 获取所有教材
func (r *TextbookRepository) FindAll() ([]model.Textbook, error) {
	var textbooks []model.Textbook
	err := r.DB.Order("created_at").Find(&textbooks).Error
	return textbooks, err
}

// FindBySubject 按科目获取教材
func (r *TextbookRepository) FindBySubject(subject string) ([]model.Textbook, error) {
	var textbooks []model.Textbook
	err := r.DB.Where("subject = ?", subject).Order("created_at").Find(&textbooks).Error
	return textbooks, err
}
