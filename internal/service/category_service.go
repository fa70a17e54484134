package service

import (
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type CategoryService struct {
	Categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{Categories: categories}
}

type CategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

func (s *CategoryService) validate(req CategoryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return util.ErrInvalidCategoryName
	}
	if strings.TrimSpace(req.Color) == "" {
		return util.ErrInvalidCategoryColor
	}
	return nil
}

func (s *CategoryService) owned(userID, categoryID uint) (*model.Category, error) {
	category, err := s.Categories.FindByID(categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, util.ErrCategoryAccessDenied
	}
	return category, nil
}

func (s *CategoryService) ListCategories(userID uint) ([]model.Category, error) {
	return s.Categories.FindByUserID(userID)
}

func (s *CategoryService) CreateCategory(userID uint, req CategoryRequest) (*model.Category, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	_, err := s.Categories.FindByUserAndName(userID, req.Name)
	if err == nil {
		return nil, util.ErrCategoryExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &model.Category{UserID: userID, Name: req.Name, Color: req.Color}
	if err := s.Categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames or recolors a category. The mission categories
// are fixed: neither their current name nor a rename onto one of their
// names is allowed.
func (s *CategoryService) UpdateCategory(userID, categoryID uint, req CategoryRequest) (*model.Category, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	category, err := s.owned(userID, categoryID)
	if err != nil {
		return nil, err
	}
	if model.IsMissionCategory(category.Name) || model.IsMissionCategory(req.Name) {
		return nil, util.ErrMissionCategoryProtected
	}

	if req.Name != category.Name {
		_, err := s.Categories.FindByUserAndName(userID, req.Name)
		if err == nil {
			return nil, util.ErrCategoryExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	category.Name = req.Name
	category.Color = req.Color
	if err := s.Categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(userID, categoryID uint) error {
	category, err := s.owned(userID, categoryID)
	if err != nil {
		return err
	}
	if model.IsMissionCategory(category.Name) {
		return util.ErrMissionCategoryProtected
	}
	return s.Categories.Delete(categoryID)
}
