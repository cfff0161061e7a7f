package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/apperr"
	"github.com/s21platform/messenger-service/internal/pkg/tx"
	"github.com/s21platform/messenger-service/pkg/messenger"
)

type Service struct {
	messenger.UnimplementedMessengerServiceServer
	repository DBRepo
	fanOut     FanOutClient
}

func New(repo DBRepo, fanOut FanOutClient) *Service {
	return &Service{
		repository: repo,
		fanOut:     fanOut,
	}
}

func (s *Service) GetUnreadCount(ctx context.Context, _ *messenger.GetUnreadCountIn) (*messenger.GetUnreadCountOut, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("GetUnreadCount")

	userID, ok := ctx.Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		return nil, status.Error(codes.Unauthenticated, "failed to get user ID")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		logger.Error("user id is not a valid uuid")
		return nil, status.Error(codes.InvalidArgument, "user id is not a valid uuid")
	}

	count, err := s.repository.GetUnreadCount(ctx, userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get unread count: %v", err))
		return nil, grpcError(err)
	}

	return &messenger.GetUnreadCountOut{Count: count}, nil
}

func (s *Service) MarkConversationAsRead(ctx context.Context, in *messenger.MarkConversationAsReadIn) (*messenger.MarkConversationAsReadOut, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("MarkConversationAsRead")

	userID, ok := ctx.Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		return nil, status.Error(codes.Unauthenticated, "failed to get user ID")
	}

	conversationUUID, err := uuid.Parse(in.ConversationId)
	if err != nil {
		logger.Error("conversation id is not a valid uuid")
		return nil, status.Error(codes.InvalidArgument, "conversation id is not a valid uuid")
	}
	readerUUID := uuid.MustParse(userID)

	conversation, err := s.repository.GetConversation(ctx, conversationUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		return nil, grpcError(err)
	}

	if !conversation.IsParticipant(readerUUID) {
		logger.Error(fmt.Sprintf("user %s is not a participant of conversation %s", userID, in.ConversationId))
		return nil, status.Error(codes.PermissionDenied, "user is not a participant of the conversation")
	}

	if err := s.repository.MarkMessagesAsRead(ctx, conversationUUID, readerUUID); err != nil {
		logger.Error(fmt.Sprintf("failed to mark messages as read: %v", err))
		return nil, grpcError(err)
	}

	return &messenger.MarkConversationAsReadOut{}, nil
}

// SendSystemMessage appends a platform-authored message to a conversation.
// Unlike a user send it does not clear the participants' deleted flags: a
// system notice must not re-surface a thread the user removed.
func (s *Service) SendSystemMessage(ctx context.Context, in *messenger.SendSystemMessageIn) (*messenger.SendSystemMessageOut, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("SendSystemMessage")

	conversationUUID, err := uuid.Parse(in.ConversationId)
	if err != nil {
		logger.Error("conversation id is not a valid uuid")
		return nil, status.Error(codes.InvalidArgument, "conversation id is not a valid uuid")
	}

	if in.Content == "" {
		logger.Error("system message content is empty")
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	var message model.Message
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		conversation, err := s.repository.GetConversationForUpdate(ctx, conversationUUID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
			return err
		}

		message = model.Message{
			ID:             uuid.New(),
			ConversationID: conversation.ID,
			SenderID:       nil,
			Content:        in.Content,
			IsSystem:       true,
			SentAt:         time.Now(),
		}

		if err := s.repository.SaveMessage(ctx, &message); err != nil {
			logger.Error(fmt.Sprintf("failed to save system message: %v", err))
			return err
		}

		if err := s.repository.Touch(ctx, conversationUUID, message.SentAt); err != nil {
			logger.Error(fmt.Sprintf("failed to touch conversation: %v", err))
			return err
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to send system message transaction: %v", err))
		return nil, grpcError(err)
	}

	update := model.CentrifugoUpdate{
		Event:   model.NewMessageEvent,
		Payload: &message,
	}
	if err := s.fanOut.Publish(ctx, message.ConversationID.String(), update); err != nil {
		logger.Error(fmt.Sprintf("failed to publish system message: %v", err))
	}

	return &messenger.SendSystemMessageOut{MessageId: message.ID.String()}, nil
}

func grpcError(err error) error {
	switch apperr.CodeOf(err) {
	case apperr.CodeInvalidArgument:
		return status.Error(codes.InvalidArgument, err.Error())
	case apperr.CodeNotFound:
		return status.Error(codes.NotFound, err.Error())
	case apperr.CodePermissionDenied:
		return status.Error(codes.PermissionDenied, err.Error())
	case apperr.CodeRecipientUnavailable:
		return status.Error(codes.FailedPrecondition, err.Error())
	case apperr.CodeTransientStoreFailure:
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
