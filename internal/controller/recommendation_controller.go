package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/internal/validate"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// Upsert godoc
// @Summary Store the caller's recommendation set
// @Description One set per user; a repeat write replaces it
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.RecommendationView}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/recommendations [post]
func (c *RecommendationController) Upsert(ctx *gin.Context) {
	var body map[string]interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequestCode(ctx, "Invalid JSON body", validate.CodeInvalidJSON)
		return
	}

	input, verr := validate.Recommendation(body)
	if verr != nil {
		util.BadRequestCode(ctx, verr.Message, verr.Code)
		return
	}

	view, err := c.RecommendationService.Upsert(util.UserID(ctx), input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Latest godoc
// @Summary Fetch the caller's stored recommendations
// @Description Returns null data when nothing has been stored yet
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.RecommendationView}
// @Failure 401 {object} util.ErrorResponse
// @Router /api/recommendations [get]
func (c *RecommendationController) Latest(ctx *gin.Context) {
	view, err := c.RecommendationService.Latest(util.UserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if view == nil {
		util.Success(ctx, nil)
		return
	}
	util.Success(ctx, view)
}
