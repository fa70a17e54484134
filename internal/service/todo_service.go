package service

import (
	"context"
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"devita_backend/pkg/logger"
	"errors"
	"time"

	"go.uber.org/zap"

	"gorm.io/gorm"
)

// RewardGranter is the slice of RewardService the todo flow needs.
type RewardGranter interface {
	ProcessReward(ctx context.Context, userID uint, categoryName string) error
}

type TodoService struct {
	Todos      TodoStore
	Categories CategoryStore
	Rewards    RewardGranter

	// Loc anchors calendar weeks and months.
	Loc *time.Location
}

func NewTodoService(todos TodoStore, categories CategoryStore, rewards RewardGranter, loc *time.Location) *TodoService {
	return &TodoService{Todos: todos, Categories: categories, Rewards: rewards, Loc: loc}
}

type TodoRequest struct {
	CategoryID uint   `json:"categoryId" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Date       string `json:"date" binding:"required"` // 2006-01-02
}

type UpdateTodoRequest struct {
	CategoryID uint   `json:"categoryId"`
	Title      string `json:"title"`
	Date       string `json:"date"`
}

const dateLayout = "2006-01-02"

func (s *TodoService) parseDate(raw string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, raw, s.Loc)
	if err != nil {
		return time.Time{}, util.ErrInvalidInput
	}
	return date, nil
}

// ownedCategory loads a category and checks it belongs to userID.
func (s *TodoService) ownedCategory(userID, categoryID uint) (*model.Category, error) {
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

func (s *TodoService) ownedTodo(userID, todoID uint) (*model.Todo, error) {
	todo, err := s.Todos.FindByID(todoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTodoNotFound
	}
	if err != nil {
		return nil, err
	}
	if todo.UserID != userID {
		return nil, util.ErrTodoAccessDenied
	}
	return todo, nil
}

func (s *TodoService) CreateTodo(userID uint, req TodoRequest) (*model.Todo, error) {
	if _, err := s.ownedCategory(userID, req.CategoryID); err != nil {
		return nil, err
	}
	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	todo := &model.Todo{
		UserID:     userID,
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Date:       date,
	}
	if err := s.Todos.Create(todo); err != nil {
		return nil, err
	}
	return s.Todos.FindByID(todo.ID)
}

func (s *TodoService) UpdateTodo(userID, todoID uint, req UpdateTodoRequest) (*model.Todo, error) {
	todo, err := s.ownedTodo(userID, todoID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != 0 && req.CategoryID != todo.CategoryID {
		if _, err := s.ownedCategory(userID, req.CategoryID); err != nil {
			return nil, err
		}
		todo.CategoryID = req.CategoryID
	}
	if req.Title != "" {
		todo.Title = req.Title
	}
	if req.Date != "" {
		date, err := s.parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		todo.Date = date
	}

	if err := s.Todos.Update(todo); err != nil {
		return nil, err
	}
	return s.Todos.FindByID(todo.ID)
}

func (s *TodoService) DeleteTodo(userID, todoID uint) error {
	if _, err := s.ownedTodo(userID, todoID); err != nil {
		return err
	}
	return s.Todos.Delete(todoID)
}

// ToggleTodo flips completion status. Completing a todo triggers the
// reward flow: a daily-cap rejection propagates to the caller (the
// completion itself stands), while a reward infrastructure failure is only
// logged so flaky cache nodes cannot block the checkbox.
func (s *TodoService) ToggleTodo(ctx context.Context, userID, todoID uint) (*model.Todo, error) {
	todo, err := s.ownedTodo(userID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Status = !todo.Status
	if err := s.Todos.Update(todo); err != nil {
		return nil, err
	}

	if todo.Status {
		if err := s.Rewards.ProcessReward(ctx, userID, todo.Category.Name); err != nil {
			if errors.Is(err, util.ErrCacheUnavailable) {
				logger.Log.Error("reward skipped, cache unavailable",
					zap.Uint("userID", userID),
					zap.Uint("todoID", todoID),
					zap.Error(err),
				)
				return todo, nil
			}
			return todo, err
		}
	}
	return todo, nil
}

type CalendarDay struct {
	Date  string       `json:"date"`
	Todos []model.Todo `json:"todos"`
}

// Calendar returns the user's todos grouped by day for the week (Monday
// through Sunday) or month containing date.
func (s *TodoService) Calendar(userID uint, view, rawDate string) ([]CalendarDay, error) {
	date, err := s.parseDate(rawDate)
	if err != nil {
		return nil, err
	}

	var start, end time.Time
	switch view {
	case "weekly":
		weekday := int(date.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday closes the week
		}
		start = date.AddDate(0, 0, -(weekday - 1))
		end = start.AddDate(0, 0, 7)
	case "monthly":
		start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, s.Loc)
		end = start.AddDate(0, 1, 0)
	default:
		return nil, util.ErrInvalidViewType
	}

	todos, err := s.Todos.FindByUserAndDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]model.Todo)
	for _, todo := range todos {
		day := todo.Date.In(s.Loc).Format(dateLayout)
		byDay[day] = append(byDay[day], todo)
	}

	days := make([]CalendarDay, 0, int(end.Sub(start).Hours()/24))
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		days = append(days, CalendarDay{Date: key, Todos: byDay[key]})
	}
	return days, nil
}
