package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/internal/validate"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	RatingService *service.RatingService
}

func NewRatingController(ratingService *service.RatingService) *RatingController {
	return &RatingController{RatingService: ratingService}
}

// Upsert godoc
// @Summary Rate a resource
// @Description One rating per (user, resource); a repeat write replaces it
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Rating}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/ratings [post]
func (c *RatingController) Upsert(ctx *gin.Context) {
	var body map[string]interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequestCode(ctx, "Invalid JSON body", validate.CodeInvalidJSON)
		return
	}

	input, verr := validate.Rating(body)
	if verr != nil {
		util.BadRequestCode(ctx, verr.Message, verr.Code)
		return
	}

	rating, err := c.RatingService.Upsert(util.UserID(ctx), input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rating)
}

// List godoc
// @Summary List the caller's ratings with resource metadata
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.RatingEntry}
// @Failure 401 {object} util.ErrorResponse
// @Router /api/ratings [get]
func (c *RatingController) List(ctx *gin.Context) {
	entries, err := c.RatingService.List(util.UserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
