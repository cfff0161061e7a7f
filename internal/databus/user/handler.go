package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

const accountDeletedNotice = "This account has been deleted"

// UserEvent is the payload of the user topic. Producers set only the
// fields relevant to the change, everything else stays nil.
type UserEvent struct {
	UserID    string  `json:"user_uuid"`
	Nickname  *string `json:"nickname,omitempty"`
	AvatarURL *string `json:"avatar_link,omitempty"`
	IsDeleted bool    `json:"is_deleted,omitempty"`
}

type HandlerStruct struct {
	repository DBRepo
}

func New(repo DBRepo) *HandlerStruct {
	return &HandlerStruct{repository: repo}
}

func (h *HandlerStruct) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserEventHandler")

	var event UserEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user event: %v", err))
		return
	}

	if _, err := uuid.Parse(event.UserID); err != nil {
		logger.Error(fmt.Sprintf("user event carries invalid uuid: %q", event.UserID))
		return
	}

	if event.Nickname != nil {
		if err := h.repository.UpdateUserNickname(ctx, event.UserID, *event.Nickname); err != nil {
			logger.Error(fmt.Sprintf("failed to update nickname for %s: %v", event.UserID, err))
		}
	}

	if event.AvatarURL != nil {
		if err := h.repository.UpdateUserAvatar(ctx, event.UserID, *event.AvatarURL); err != nil {
			logger.Error(fmt.Sprintf("failed to update avatar for %s: %v", event.UserID, err))
		}
	}

	if event.IsDeleted {
		h.handleUserDeleted(ctx, logger, event.UserID)
	}
}

// handleUserDeleted tombstones the local user row and drops a system
// notice into each of the user's conversations so companions see why the
// thread went quiet. Deleted sides are not restored by these notices.
func (h *HandlerStruct) handleUserDeleted(ctx context.Context, logger logger_lib.LoggerInterface, userID string) {
	if err := h.repository.MarkUserDeleted(ctx, userID); err != nil {
		logger.Error(fmt.Sprintf("failed to mark user %s deleted: %v", userID, err))
		return
	}

	userUUID := uuid.MustParse(userID)
	conversationIDs, err := h.repository.GetUserConversationIDs(ctx, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list conversations for %s: %v", userID, err))
		return
	}

	for _, conversationID := range conversationIDs {
		message := model.Message{
			ID:             uuid.New(),
			ConversationID: conversationID,
			SenderID:       nil,
			Content:        accountDeletedNotice,
			IsSystem:       true,
			SentAt:         time.Now(),
		}
		if err := h.repository.SaveMessage(ctx, &message); err != nil {
			logger.Error(fmt.Sprintf("failed to save system message in %s: %v", conversationID, err))
			continue
		}
		if err := h.repository.Touch(ctx, conversationID, message.SentAt); err != nil {
			logger.Error(fmt.Sprintf("failed to touch conversation %s: %v", conversationID, err))
		}
	}
}
