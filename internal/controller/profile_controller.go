package controller

import (
	"errors"

	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/internal/validate"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// Get godoc
// @Summary Fetch the caller's profile
// @Description Returns the profile, creating a default one on first read
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Failure 401 {object} util.ErrorResponse
// @Router /api/profile [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	profile, err := c.ProfileService.Get(util.UserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// Update godoc
// @Summary Partially update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserProfile}
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/profile [put]
func (c *ProfileController) Update(ctx *gin.Context) {
	var body map[string]interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequestCode(ctx, "Invalid JSON body", validate.CodeInvalidJSON)
		return
	}

	update, verr := validate.Profile(body)
	if verr != nil {
		util.BadRequestCode(ctx, verr.Message, verr.Code)
		return
	}

	profile, err := c.ProfileService.Update(util.UserID(ctx), update)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx, "Profile not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}
