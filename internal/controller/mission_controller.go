package controller

import (
	"devita_backend/internal/service"
	"devita_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MissionController struct {
	MissionService *service.MissionService
}

func NewMissionController(missionService *service.MissionService) *MissionController {
	return &MissionController{MissionService: missionService}
}

// @Summary Generate daily mission
// @Description Asks the AI server for one daily mission based on the user's preferred categories
// @Tags missions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/missions/daily [get]
func (c *MissionController) DailyMission(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	mission, err := c.MissionService.DailyMission(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"mission": mission})
}

// @Summary Generate free missions
// @Description Asks the AI server for free mission candidates
// @Tags missions
// @Produce json
// @Security BearerAuth
// @Param count query int false "number of candidates" default(3)
// @Success 200 {object} util.Response
// @Router /api/missions/free [get]
func (c *MissionController) FreeMissions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	count, _ := strconv.Atoi(ctx.DefaultQuery("count", "3"))

	missions, err := c.MissionService.FreeMissions(ctx.Request.Context(), user.UserID, count)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"missions": missions})
}

// @Summary Save free mission
// @Description Stores a picked free mission as a todo in the free mission category
// @Tags missions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mission body service.SaveFreeMissionRequest true "mission"
// @Success 201 {object} util.Response
// @Router /api/missions/free [post]
func (c *MissionController) SaveFreeMission(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SaveFreeMissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	todo, err := c.MissionService.SaveFreeMission(user.UserID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, todo)
}
