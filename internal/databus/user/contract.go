//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/model"
)

type DBRepo interface {
	UpdateUserNickname(ctx context.Context, userID, nickname string) error
	UpdateUserAvatar(ctx context.Context, userID, avatarURL string) error
	MarkUserDeleted(ctx context.Context, userID string) error
	GetUserConversationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	SaveMessage(ctx context.Context, message *model.Message) error
	Touch(ctx context.Context, conversationID uuid.UUID, lastMessageAt time.Time) error
}
