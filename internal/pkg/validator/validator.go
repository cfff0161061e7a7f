package validator

import (
	"strings"

	"github.com/google/uuid"

	api "github.com/s21platform/messenger-service/internal/generated"
	"github.com/s21platform/messenger-service/internal/pkg/apperr"
)

const maxContentLength = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateConversation(req *api.CreateConversationRequest, requesterID string) error {
	if strings.TrimSpace(req.CompanionId) == "" {
		return apperr.InvalidArg("companion_id is required")
	}

	if _, err := uuid.Parse(req.CompanionId); err != nil {
		return apperr.InvalidArg("companion_id is not a valid uuid")
	}

	if req.CompanionId == requesterID {
		return apperr.InvalidArg("cannot start a conversation with yourself")
	}

	return nil
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return apperr.InvalidArg("content cannot be empty")
	}

	if len([]rune(req.Content)) > maxContentLength {
		return apperr.InvalidArg("content exceeds maximum length of 500 characters")
	}

	return nil
}
