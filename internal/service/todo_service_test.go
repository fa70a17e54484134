package service

import (
	"context"
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

type fakeTodoStore struct {
	todos      map[uint]*model.Todo
	categories *fakeCategoryStore
	nextID     uint
}

func newFakeTodoStore(categories *fakeCategoryStore) *fakeTodoStore {
	return &fakeTodoStore{todos: make(map[uint]*model.Todo), categories: categories}
}

func (f *fakeTodoStore) Create(todo *model.Todo) error {
	f.nextID++
	todo.ID = f.nextID
	copied := *todo
	f.todos[todo.ID] = &copied
	return nil
}

func (f *fakeTodoStore) FindByID(id uint) (*model.Todo, error) {
	todo, ok := f.todos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *todo
	if f.categories != nil {
		if cat, err := f.categories.FindByID(todo.CategoryID); err == nil {
			copied.Category = *cat
		}
	}
	return &copied, nil
}

func (f *fakeTodoStore) Update(todo *model.Todo) error {
	copied := *todo
	f.todos[todo.ID] = &copied
	return nil
}

func (f *fakeTodoStore) Delete(id uint) error {
	delete(f.todos, id)
	return nil
}

func (f *fakeTodoStore) FindByUserAndDateRange(userID uint, start, end time.Time) ([]model.Todo, error) {
	var out []model.Todo
	for _, todo := range f.todos {
		if todo.UserID == userID && !todo.Date.Before(start) && todo.Date.Before(end) {
			out = append(out, *todo)
		}
	}
	return out, nil
}

type fakeCategoryStore struct {
	categories map[uint]*model.Category
	nextID     uint
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uint]*model.Category)}
}

func (f *fakeCategoryStore) Create(category *model.Category) error {
	f.nextID++
	category.ID = f.nextID
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryStore) FindByID(id uint) (*model.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCategoryStore) FindByUserID(userID uint) ([]model.Category, error) {
	var out []model.Category
	for _, category := range f.categories {
		if category.UserID == userID {
			out = append(out, *category)
		}
	}
	return out, nil
}

func (f *fakeCategoryStore) FindByUserAndName(userID uint, name string) (*model.Category, error) {
	for _, category := range f.categories {
		if category.UserID == userID && category.Name == name {
			copied := *category
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryStore) Update(category *model.Category) error {
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryStore) Delete(id uint) error {
	delete(f.categories, id)
	return nil
}

type fakeGranter struct {
	err   error
	calls []string
}

func (f *fakeGranter) ProcessReward(ctx context.Context, userID uint, categoryName string) error {
	f.calls = append(f.calls, fmt.Sprintf("%d:%s", userID, categoryName))
	return f.err
}

func newTestTodoService(t *testing.T) (*TodoService, *fakeTodoStore, *fakeCategoryStore, *fakeGranter) {
	t.Helper()
	categories := newFakeCategoryStore()
	todos := newFakeTodoStore(categories)
	granter := &fakeGranter{}
	svc := NewTodoService(todos, categories, granter, seoul(t))
	return svc, todos, categories, granter
}

func seedCategory(t *testing.T, store *fakeCategoryStore, userID uint, name string) *model.Category {
	t.Helper()
	category := &model.Category{UserID: userID, Name: name, Color: "#112233"}
	require.NoError(t, store.Create(category))
	return category
}

func TestCreateTodoChecksCategoryOwnership(t *testing.T) {
	svc, _, categories, _ := newTestTodoService(t)
	category := seedCategory(t, categories, 2, "일반")

	_, err := svc.CreateTodo(1, TodoRequest{CategoryID: category.ID, Title: "run", Date: "2026-08-28"})
	assert.ErrorIs(t, err, util.ErrCategoryAccessDenied)
}

func TestCreateTodoRejectsBadDate(t *testing.T) {
	svc, _, categories, _ := newTestTodoService(t)
	category := seedCategory(t, categories, 1, "일반")

	_, err := svc.CreateTodo(1, TodoRequest{CategoryID: category.ID, Title: "run", Date: "28-08-2026"})
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestToggleTodoGrantsRewardOnCompletion(t *testing.T) {
	svc, todos, categories, granter := newTestTodoService(t)
	category := seedCategory(t, categories, 1, model.CategoryDailyMissionName)
	todo := &model.Todo{UserID: 1, CategoryID: category.ID, Title: "stretch"}
	require.NoError(t, todos.Create(todo))

	got, err := svc.ToggleTodo(context.Background(), 1, todo.ID)
	require.NoError(t, err)
	assert.True(t, got.Status)
	assert.Equal(t, []string{"1:" + model.CategoryDailyMissionName}, granter.calls)
}

func TestToggleTodoUncompleteDoesNotGrant(t *testing.T) {
	svc, todos, categories, granter := newTestTodoService(t)
	category := seedCategory(t, categories, 1, "일반")
	todo := &model.Todo{UserID: 1, CategoryID: category.ID, Title: "read", Status: true}
	require.NoError(t, todos.Create(todo))

	got, err := svc.ToggleTodo(context.Background(), 1, todo.ID)
	require.NoError(t, err)
	assert.False(t, got.Status)
	assert.Empty(t, granter.calls)
}

func TestToggleTodoSwallowsCacheFailure(t *testing.T) {
	svc, todos, categories, granter := newTestTodoService(t)
	granter.err = fmt.Errorf("%w: boom", util.ErrCacheUnavailable)
	category := seedCategory(t, categories, 1, "일반")
	todo := &model.Todo{UserID: 1, CategoryID: category.ID, Title: "water"}
	require.NoError(t, todos.Create(todo))

	got, err := svc.ToggleTodo(context.Background(), 1, todo.ID)
	require.NoError(t, err, "infra failure must not undo the completion")
	assert.True(t, got.Status)
	assert.True(t, todos.todos[todo.ID].Status)
}

func TestToggleTodoPropagatesDailyLimit(t *testing.T) {
	svc, todos, categories, granter := newTestTodoService(t)
	granter.err = util.ErrDailyRewardLimitExceeded
	category := seedCategory(t, categories, 1, model.CategoryFreeMissionName)
	todo := &model.Todo{UserID: 1, CategoryID: category.ID, Title: "walk"}
	require.NoError(t, todos.Create(todo))

	_, err := svc.ToggleTodo(context.Background(), 1, todo.ID)
	assert.ErrorIs(t, err, util.ErrDailyRewardLimitExceeded)
	// The completion itself stands.
	assert.True(t, todos.todos[todo.ID].Status)
}

func TestToggleTodoOwnership(t *testing.T) {
	svc, todos, categories, _ := newTestTodoService(t)
	category := seedCategory(t, categories, 2, "일반")
	todo := &model.Todo{UserID: 2, CategoryID: category.ID, Title: "swim"}
	require.NoError(t, todos.Create(todo))

	_, err := svc.ToggleTodo(context.Background(), 1, todo.ID)
	assert.ErrorIs(t, err, util.ErrTodoAccessDenied)
}

func TestCalendarWeeklyRunsMondayToSunday(t *testing.T) {
	svc, todos, categories, _ := newTestTodoService(t)
	loc := seoul(t)
	category := seedCategory(t, categories, 1, "일반")

	// 2026-08-28 is a Friday; its week is 08-24 (Mon) .. 08-30 (Sun).
	mkTodo := func(day int) {
		require.NoError(t, todos.Create(&model.Todo{
			UserID:     1,
			CategoryID: category.ID,
			Title:      "t",
			Date:       time.Date(2026, 8, day, 0, 0, 0, 0, loc),
		}))
	}
	mkTodo(23) // previous Sunday, out of range
	mkTodo(24)
	mkTodo(30)
	mkTodo(31) // next Monday, out of range

	days, err := svc.Calendar(1, "weekly", "2026-08-28")
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, "2026-08-24", days[0].Date)
	assert.Equal(t, "2026-08-30", days[6].Date)
	assert.Len(t, days[0].Todos, 1)
	assert.Len(t, days[6].Todos, 1)
	assert.Empty(t, days[1].Todos)
}

func TestCalendarMonthly(t *testing.T) {
	svc, todos, categories, _ := newTestTodoService(t)
	loc := seoul(t)
	category := seedCategory(t, categories, 1, "일반")
	require.NoError(t, todos.Create(&model.Todo{
		UserID:     1,
		CategoryID: category.ID,
		Title:      "t",
		Date:       time.Date(2026, 2, 15, 0, 0, 0, 0, loc),
	}))

	days, err := svc.Calendar(1, "monthly", "2026-02-01")
	require.NoError(t, err)
	assert.Len(t, days, 28)
	assert.Len(t, days[14].Todos, 1)
}

func TestCalendarRejectsUnknownView(t *testing.T) {
	svc, _, _, _ := newTestTodoService(t)

	_, err := svc.Calendar(1, "yearly", "2026-08-28")
	assert.ErrorIs(t, err, util.ErrInvalidViewType)
}
