package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/internal/validate"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Upsert godoc
// @Summary Record completion for a resource
// @Description One row per (user, resource); a repeat write updates in place
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Progress}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/progress [post]
func (c *ProgressController) Upsert(ctx *gin.Context) {
	var body map[string]interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequestCode(ctx, "Invalid JSON body", validate.CodeInvalidJSON)
		return
	}

	input, verr := validate.Progress(body)
	if verr != nil {
		util.BadRequestCode(ctx, verr.Message, verr.Code)
		return
	}

	progress, err := c.ProgressService.Upsert(util.UserID(ctx), input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// List godoc
// @Summary List the caller's progress with resource metadata
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.ProgressEntry}
// @Failure 401 {object} util.ErrorResponse
// @Router /api/progress [get]
func (c *ProgressController) List(ctx *gin.Context) {
	entries, err := c.ProgressService.List(util.UserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
