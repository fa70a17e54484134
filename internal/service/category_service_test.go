package service

import (
	"devita_backend/internal/model"
	"devita_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategoryService() (*CategoryService, *fakeCategoryStore) {
	store := newFakeCategoryStore()
	return NewCategoryService(store), store
}

func TestCreateCategoryValidation(t *testing.T) {
	svc, _ := newTestCategoryService()

	_, err := svc.CreateCategory(1, CategoryRequest{Name: "  ", Color: "#fff"})
	assert.ErrorIs(t, err, util.ErrInvalidCategoryName)

	_, err = svc.CreateCategory(1, CategoryRequest{Name: "study", Color: ""})
	assert.ErrorIs(t, err, util.ErrInvalidCategoryColor)
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	svc, _ := newTestCategoryService()

	_, err := svc.CreateCategory(1, CategoryRequest{Name: "study", Color: "#fff"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(1, CategoryRequest{Name: "study", Color: "#000"})
	assert.ErrorIs(t, err, util.ErrCategoryExists)
}

func TestSameNameAllowedForDifferentUsers(t *testing.T) {
	svc, _ := newTestCategoryService()

	_, err := svc.CreateCategory(1, CategoryRequest{Name: "study", Color: "#fff"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(2, CategoryRequest{Name: "study", Color: "#fff"})
	assert.NoError(t, err)
}

func TestDeleteMissionCategoryForbidden(t *testing.T) {
	svc, store := newTestCategoryService()
	category := &model.Category{UserID: 1, Name: model.CategoryDailyMissionName, Color: model.CategoryDailyMissionColor}
	require.NoError(t, store.Create(category))

	err := svc.DeleteCategory(1, category.ID)
	assert.ErrorIs(t, err, util.ErrMissionCategoryProtected)
}

func TestUpdateMissionCategoryForbidden(t *testing.T) {
	svc, store := newTestCategoryService()
	category := &model.Category{UserID: 1, Name: model.CategoryFreeMissionName, Color: model.CategoryFreeMissionColor}
	require.NoError(t, store.Create(category))

	_, err := svc.UpdateCategory(1, category.ID, CategoryRequest{Name: "hijacked", Color: "#000"})
	assert.ErrorIs(t, err, util.ErrMissionCategoryProtected)
}

func TestRenameOntoMissionCategoryForbidden(t *testing.T) {
	svc, store := newTestCategoryService()
	category := &model.Category{UserID: 1, Name: "study", Color: "#fff"}
	require.NoError(t, store.Create(category))

	_, err := svc.UpdateCategory(1, category.ID, CategoryRequest{Name: model.CategoryDailyMissionName, Color: "#fff"})
	assert.ErrorIs(t, err, util.ErrMissionCategoryProtected)
}

func TestCategoryOwnership(t *testing.T) {
	svc, store := newTestCategoryService()
	category := &model.Category{UserID: 2, Name: "study", Color: "#fff"}
	require.NoError(t, store.Create(category))

	err := svc.DeleteCategory(1, category.ID)
	assert.ErrorIs(t, err, util.ErrCategoryAccessDenied)

	err = svc.DeleteCategory(1, 999)
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
}
