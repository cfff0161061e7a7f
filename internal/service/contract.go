//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/model"
)

type DBRepo interface {
	GetConversation(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error)
	GetConversationForUpdate(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error)
	Touch(ctx context.Context, conversationID uuid.UUID, lastMessageAt time.Time) error
	SaveMessage(ctx context.Context, message *model.Message) error
	MarkMessagesAsRead(ctx context.Context, conversationID, readerID uuid.UUID) error
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

// FanOutClient pushes real-time updates. Failures are logged and dropped,
// the RPC result never depends on delivery.
type FanOutClient interface {
	Publish(ctx context.Context, channel string, update model.CentrifugoUpdate) error
}
