package service

import (
	"career_advisor_backend/internal/advisor"

	"github.com/google/uuid"
)

// ChatReply is one advisor answer.
type ChatReply struct {
	ID    string `json:"id"`
	Reply string `json:"reply"`
}

type ChatService struct{}

func NewChatService() *ChatService {
	return &ChatService{}
}

// Reply answers a chat message from the rule table.
func (s *ChatService) Reply(message string) ChatReply {
	return ChatReply{
		ID:    uuid.NewString(),
		Reply: advisor.Reply(message),
	}
}
