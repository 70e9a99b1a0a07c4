package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/internal/validate"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// Create godoc
// @Summary Submit a completed assessment
// @Description Stores the quiz answers and result and mirrors the result into the caller's profile
// @Tags assessments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} util.Response{data=model.Assessment}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/assessments [post]
func (c *AssessmentController) Create(ctx *gin.Context) {
	var body map[string]interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequestCode(ctx, "Invalid JSON body", validate.CodeInvalidJSON)
		return
	}

	input, verr := validate.Assessment(body)
	if verr != nil {
		util.BadRequestCode(ctx, verr.Message, verr.Code)
		return
	}

	assessment, err := c.AssessmentService.Create(util.UserID(ctx), input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, assessment)
}

// List godoc
// @Summary List the caller's assessments
// @Tags assessments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Failure 401 {object} util.ErrorResponse
// @Router /api/assessments [get]
func (c *AssessmentController) List(ctx *gin.Context) {
	assessments, err := c.AssessmentService.List(util.UserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assessments)
}
