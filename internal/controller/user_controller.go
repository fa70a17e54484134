package controller

import (
	"devita_backend/internal/service"
	"devita_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary Get my profile
// @Description Nickname, email and current reward balances
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/users/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	info, err := c.UserService.GetUserInfo(user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, info)
}

// @Summary Get preferred categories
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/users/me/preferred-categories [get]
func (c *UserController) GetPreferredCategories(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	preferred, err := c.UserService.GetPreferredCategories(user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"preferredCategories": preferred})
}

// @Summary Update preferred categories
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.PreferredCategoriesRequest true "preferred categories"
// @Success 200 {object} util.Response
// @Router /api/users/me/preferred-categories [put]
func (c *UserController) UpdatePreferredCategories(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PreferredCategoriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.UpdatePreferredCategories(user.UserID, req); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "updated"})
}
