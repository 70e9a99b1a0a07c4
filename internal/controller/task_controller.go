package controller

import (
	"errors"
	"strconv"

	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/internal/validate"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// Create godoc
// @Summary Create one or more tasks
// @Description Accepts a single task object or an array of them
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} util.Response{data=[]model.Task}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/tasks [post]
func (c *TaskController) Create(ctx *gin.Context) {
	var body interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequestCode(ctx, "Invalid JSON body", validate.CodeInvalidJSON)
		return
	}

	inputs, verr := validate.Tasks(body)
	if verr != nil {
		util.BadRequestCode(ctx, verr.Message, verr.Code)
		return
	}

	tasks, err := c.TaskService.Create(util.UserID(ctx), inputs)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// The response shape follows the request shape: an array in, an array
	// out; a single object in, that object out.
	if _, isArray := body.([]interface{}); !isArray {
		util.Created(ctx, tasks[0])
		return
	}
	util.Created(ctx, tasks)
}

// List godoc
// @Summary List the caller's tasks
// @Description Paginated newest first; due_date=today narrows the returned page to tasks due today
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param due_date query string false "only 'today' is recognized"
// @Param limit query int false "page size, max 100"
// @Param offset query int false "page offset"
// @Success 200 {object} util.Response{data=[]model.Task}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/tasks [get]
func (c *TaskController) List(ctx *gin.Context) {
	limit, offset, verr := validate.Page(ctx.Query("limit"), ctx.Query("offset"))
	if verr != nil {
		util.BadRequestCode(ctx, verr.Message, verr.Code)
		return
	}

	dueToday := ctx.Query("due_date") == "today"
	tasks, err := c.TaskService.List(util.UserID(ctx), dueToday, limit, offset)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}

// Patch godoc
// @Summary Update one of the caller's tasks
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query int true "task id"
// @Success 200 {object} util.Response{data=model.Task}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/tasks [patch]
func (c *TaskController) Patch(ctx *gin.Context) {
	id, ok := taskID(ctx)
	if !ok {
		return
	}

	var body map[string]interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequestCode(ctx, "Invalid JSON body", validate.CodeInvalidJSON)
		return
	}

	patch, verr := validate.PatchTask(body)
	if verr != nil {
		util.BadRequestCode(ctx, verr.Message, verr.Code)
		return
	}

	task, err := c.TaskService.Patch(id, util.UserID(ctx), patch)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx, "Task not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, task)
}

// Delete godoc
// @Summary Delete one of the caller's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id query int true "task id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/tasks [delete]
func (c *TaskController) Delete(ctx *gin.Context) {
	id, ok := taskID(ctx)
	if !ok {
		return
	}

	if err := c.TaskService.Delete(id, util.UserID(ctx)); err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx, "Task not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

func taskID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Query("id"), 10, 32)
	if err != nil || id == 0 {
		util.BadRequestCode(ctx, "Valid task id is required", validate.CodeInvalidTaskID)
		return 0, false
	}
	return uint(id), true
}
