package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/internal/validate"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// List godoc
// @Summary Query the learning resource catalog
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param tag query string false "substring match against tags"
// @Param locale query string false "exact locale match"
// @Param type query string false "course, video, article, or book"
// @Param limit query int false "page size, max 100"
// @Param offset query int false "page offset"
// @Success 200 {object} util.Response{data=[]model.Resource}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/resources [get]
func (c *ResourceController) List(ctx *gin.Context) {
	query, verr := validate.Resources(
		ctx.Query("tag"),
		ctx.Query("locale"),
		ctx.Query("type"),
		ctx.Query("limit"),
		ctx.Query("offset"),
	)
	if verr != nil {
		util.BadRequestCode(ctx, verr.Message, verr.Code)
		return
	}

	resources, err := c.ResourceService.List(ctx.Request.Context(), query)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resources)
}
