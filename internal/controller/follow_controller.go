package controller

import (
	"devita_backend/internal/service"
	"devita_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FollowController struct {
	FollowService *service.FollowService
}

func NewFollowController(followService *service.FollowService) *FollowController {
	return &FollowController{FollowService: followService}
}

// @Summary Follow user
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user to follow"
// @Success 201 {object} util.Response
// @Router /api/follows/{userId} [post]
func (c *FollowController) Follow(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	targetID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	if err := c.FollowService.Follow(user.UserID, uint(targetID)); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"message": "followed"})
}

// @Summary Unfollow user
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user to unfollow"
// @Success 200 {object} util.Response
// @Router /api/follows/{userId} [delete]
func (c *FollowController) Unfollow(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	targetID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	if err := c.FollowService.Unfollow(user.UserID, uint(targetID)); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "unfollowed"})
}

// @Summary List followers
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/follows/followers [get]
func (c *FollowController) Followers(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	list, err := c.FollowService.Followers(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// @Summary List followings
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/follows/followings [get]
func (c *FollowController) Followings(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	list, err := c.FollowService.Followings(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// @Summary Follow counts
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/follows/counts [get]
func (c *FollowController) Counts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	counts, err := c.FollowService.Counts(user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, counts)
}
