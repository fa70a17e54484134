package controller

import (
	"devita_backend/internal/service"
	"devita_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/categories [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	categories, err := c.CategoryService.ListCategories(user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body service.CategoryRequest true "category"
// @Success 201 {object} util.Response
// @Router /api/categories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.CreateCategory(user.UserID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// @Summary Update category
// @Description Mission categories are fixed and cannot be renamed
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param categoryId path int true "category ID"
// @Param category body service.CategoryRequest true "category"
// @Success 200 {object} util.Response
// @Router /api/categories/{categoryId} [put]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	categoryID, err := strconv.Atoi(ctx.Param("categoryId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid category ID")
		return
	}

	var req service.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.UpdateCategory(user.UserID, uint(categoryID), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// @Summary Delete category
// @Description Mission categories cannot be deleted
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param categoryId path int true "category ID"
// @Success 200 {object} util.Response
// @Router /api/categories/{categoryId} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	categoryID, err := strconv.Atoi(ctx.Param("categoryId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid category ID")
		return
	}

	if err := c.CategoryService.DeleteCategory(user.UserID, uint(categoryID)); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "deleted"})
}
