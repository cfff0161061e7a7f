//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	api "github.com/s21platform/messenger-service/internal/generated"
	"github.com/s21platform/messenger-service/internal/model"
)

type DBRepo interface {
	GetConversation(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error)
	GetConversationForUpdate(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error)
	GetOrCreateConversation(ctx context.Context, requesterID, companionID uuid.UUID) (*model.Conversation, error)
	MarkParticipantDeleted(ctx context.Context, conversationID, userID uuid.UUID) error
	RestoreBothParticipants(ctx context.Context, conversationID uuid.UUID) error
	Touch(ctx context.Context, conversationID uuid.UUID, lastMessageAt time.Time) error
	GetUserConversations(ctx context.Context, requesterID uuid.UUID) (*model.ConversationPreviewList, error)

	SaveMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error)
	GetConversationMessages(ctx context.Context, conversationID, viewerID uuid.UUID) (*model.MessageList, error)
	MarkMessagesAsRead(ctx context.Context, conversationID, readerID uuid.UUID) error
	HideMessageForUser(ctx context.Context, messageID, userID uuid.UUID) error
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	AddNewUser(ctx context.Context, userInfo *model.UserInfo) error
	GetUserInfo(ctx context.Context, userID string) (*model.UserInfo, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type UserClient interface {
	GetUserInfoByUUID(ctx context.Context, userUUID string) (*model.UserInfo, error)
}

type AttachmentClient interface {
	ListAttachments(ctx context.Context, messageID string) ([]model.Attachment, error)
}

// FanOutClient is the real-time push boundary. Both methods are best
// effort; callers log failures and move on.
type FanOutClient interface {
	Publish(ctx context.Context, channel string, update model.CentrifugoUpdate) error
	DeliverToUser(ctx context.Context, userID string, update model.CentrifugoUpdate) error
}

type NotificationProducer interface {
	ProduceMessage(ctx context.Context, message interface{}, key interface{}) error
}

type Validator interface {
	ValidateCreateConversation(req *api.CreateConversationRequest, requesterID string) error
	ValidateSendMessage(req *api.SendMessageRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, conversationID string) (string, int64, error)
	ValidateConnectToken(tokenString string) (*model.CentrifugoConnectClaims, error)
	ValidateSubscribeToken(tokenString string) (*model.CentrifugoSubscribeClaims, error)
}
