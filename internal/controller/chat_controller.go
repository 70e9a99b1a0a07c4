package controller

import (
	"career_advisor_backend/internal/service"
	"career_advisor_backend/internal/util"
	"career_advisor_backend/internal/validate"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// Reply godoc
// @Summary Ask the advisor a question
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ChatReply}
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /api/chat [post]
func (c *ChatController) Reply(ctx *gin.Context) {
	var body map[string]interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequestCode(ctx, "Invalid JSON body", validate.CodeInvalidJSON)
		return
	}

	message, verr := validate.Chat(body)
	if verr != nil {
		util.BadRequestCode(ctx, verr.Message, verr.Code)
		return
	}

	util.Success(ctx, c.ChatService.Reply(message))
}
