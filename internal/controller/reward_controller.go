package controller

import (
	"devita_backend/internal/service"
	"devita_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RewardController struct {
	RewardService *service.RewardService
}

func NewRewardController(rewardService *service.RewardService) *RewardController {
	return &RewardController{RewardService: rewardService}
}

// @Summary Get reward balances
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/rewards [get]
func (c *RewardController) GetReward(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	reward, err := c.RewardService.GetReward(user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, reward)
}

// @Summary Use nutrition
// @Description Spends one nutrition point to water the plant and gain experience
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/rewards/nutrition/use [post]
func (c *RewardController) UseNutrition(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	rewardID, err := c.RewardService.UseNutrition(user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"rewardId": rewardID})
}
