package controller

import (
	"devita_backend/internal/service"
	"devita_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TodoController struct {
	TodoService *service.TodoService
}

func NewTodoController(todoService *service.TodoService) *TodoController {
	return &TodoController{TodoService: todoService}
}

// @Summary Create todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param todo body service.TodoRequest true "todo"
// @Success 201 {object} util.Response
// @Router /api/todos [post]
func (c *TodoController) CreateTodo(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.TodoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	todo, err := c.TodoService.CreateTodo(user.UserID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, todo)
}

// @Summary Update todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param todoId path int true "todo ID"
// @Param todo body service.UpdateTodoRequest true "fields to update"
// @Success 200 {object} util.Response
// @Router /api/todos/{todoId} [put]
func (c *TodoController) UpdateTodo(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	todoID, err := strconv.Atoi(ctx.Param("todoId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid todo ID")
		return
	}

	var req service.UpdateTodoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	todo, err := c.TodoService.UpdateTodo(user.UserID, uint(todoID), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, todo)
}

// @Summary Delete todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param todoId path int true "todo ID"
// @Success 200 {object} util.Response
// @Router /api/todos/{todoId} [delete]
func (c *TodoController) DeleteTodo(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	todoID, err := strconv.Atoi(ctx.Param("todoId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid todo ID")
		return
	}

	if err := c.TodoService.DeleteTodo(user.UserID, uint(todoID)); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "deleted"})
}

// @Summary Toggle todo completion
// @Description Flips completion. Completing grants the category's reward; hitting the daily cap returns 403 while the completion itself stands.
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param todoId path int true "todo ID"
// @Success 200 {object} util.Response
// @Router /api/todos/{todoId}/toggle [patch]
func (c *TodoController) ToggleTodo(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	todoID, err := strconv.Atoi(ctx.Param("todoId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid todo ID")
		return
	}

	todo, err := c.TodoService.ToggleTodo(ctx.Request.Context(), user.UserID, uint(todoID))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, todo)
}

// @Summary Calendar view
// @Description Todos grouped by day for the week (Mon-Sun) or month containing the date
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param view query string true "view type" Enums(weekly, monthly)
// @Param date query string true "anchor date (2006-01-02)"
// @Success 200 {object} util.Response
// @Router /api/todos/calendar [get]
func (c *TodoController) Calendar(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	view := ctx.Query("view")
	date := ctx.Query("date")

	days, err := c.TodoService.Calendar(user.UserID, view, date)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, days)
}
