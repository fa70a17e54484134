package repository

import (
	"devita_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type TodoRepository struct {
	DB *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{DB: db}
}

func (r *TodoRepository) Create(todo *model.Todo) error {
	return r.DB.Create(todo).Error
}

func (r *TodoRepository) FindByID(id uint) (*model.Todo, error) {
	var todo model.Todo
	err := r.DB.Preload("Category").First(&todo, id).Error
	return &todo, err
}

func (r *TodoRepository) Update(todo *model.Todo) error {
	return r.DB.Save(todo).Error
}

func (r *TodoRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Todo{}, id).Error
}

// FindByUserAndDateRange returns the user's todos with start <= date < end.
func (r *TodoRepository) FindByUserAndDateRange(userID uint, start, end time.Time) ([]model.Todo, error) {
	var todos []model.Todo
	err := r.DB.Preload("Category").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC, id ASC").
		Find(&todos).Error
	return todos, err
}
