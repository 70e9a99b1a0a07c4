package controller

import (
	"io"

	"career_advisor_backend/internal/model"
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/internal/validate"

	"github.com/gin-gonic/gin"
)

type StreakController struct {
	StreakService *service.StreakService
}

func NewStreakController(streakService *service.StreakService) *StreakController {
	return &StreakController{StreakService: streakService}
}

// StreakResponse is the wire shape for streak endpoints: the counter and
// the last active date, nothing else.
// swagger:model StreakResponse
type StreakResponse struct {
	CurrentStreak  int     `json:"current_streak"`
	LastActiveDate *string `json:"last_active_date"`
}

func streakResponse(streak *model.Streak) StreakResponse {
	return StreakResponse{
		CurrentStreak:  streak.CurrentStreak,
		LastActiveDate: streak.LastActiveDate,
	}
}

// Get godoc
// @Summary Fetch the caller's activity streak
// @Description Returns the streak, creating a zero streak on first read
// @Tags streak
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=StreakResponse}
// @Failure 401 {object} util.ErrorResponse
// @Router /api/streak [get]
func (c *StreakController) Get(ctx *gin.Context) {
	streak, err := c.StreakService.Get(util.UserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, streakResponse(streak))
}

// Advance godoc
// @Summary Record today's activity
// @Description Same-day repeat is a no-op, a consecutive day increments, a gap resets to 1
// @Tags streak
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=StreakResponse}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/streak [post]
func (c *StreakController) Advance(ctx *gin.Context) {
	// The body is optional, but one that names an owner is still rejected.
	var body map[string]interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil && err != io.EOF {
		util.BadRequestCode(ctx, "Invalid JSON body", validate.CodeInvalidJSON)
		return
	}
	if body != nil {
		if verr := validate.CheckOwnerKeys(body); verr != nil {
			util.BadRequestCode(ctx, verr.Message, verr.Code)
			return
		}
	}

	streak, err := c.StreakService.Advance(util.UserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, streakResponse(streak))
}
