package repository

import (
	"devita_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, id).Error
	return &category, err
}

func (r *CategoryRepository) FindByUserID(userID uint) ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByUserAndName(userID uint, name string) (*model.Category, error) {
	var category model.Category
	err := r.DB.Where("user_id = ? AND name = ?", userID, name).First(&category).Error
	return &category, err
}

func (r *CategoryRepository) Update(category *model.Category) error {
	return r.DB.Save(category).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Category{}, id).Error
}
