package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	api "github.com/s21platform/messenger-service/internal/generated"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/apperr"
	"github.com/s21platform/messenger-service/internal/pkg/tx"
)

type Handler struct {
	repository       DBRepo
	userClient       UserClient
	attachmentClient AttachmentClient
	fanOut           FanOutClient
	producer         NotificationProducer
	validator        Validator
	jwtGenerator     JWTGenerator
}

func New(
	repo DBRepo,
	userClient UserClient,
	attachmentClient AttachmentClient,
	fanOut FanOutClient,
	producer NotificationProducer,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		repository:       repo,
		userClient:       userClient,
		attachmentClient: attachmentClient,
		fanOut:           fanOut,
		producer:         producer,
		validator:        validator,
		jwtGenerator:     jwtGenerator,
	}
}

func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateConversation")

	var req api.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester ID")
		h.writeError(w, "failed to get requester ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateConversation(&req, requesterID); err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeAppError(w, err)
		return
	}

	requesterUUID := uuid.MustParse(requesterID)
	companionUUID := uuid.MustParse(req.CompanionId)

	var conversation *model.Conversation
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		for _, userID := range []string{requesterID, req.CompanionId} {
			if err := h.ensureUserCached(ctx, userID); err != nil {
				logger.Error(fmt.Sprintf("failed to cache user %s: %v", userID, err))
				return err
			}
		}

		var err error
		conversation, err = h.repository.GetOrCreateConversation(ctx, requesterUUID, companionUUID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get or create conversation: %v", err))
			return err
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete conversation transaction: %v", err))
		h.writeAppError(w, err)
		return
	}

	response := api.CreateConversationResponse{
		ConversationId: conversation.ID.String(),
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ensureUserCached pulls display data from the user service into the local
// cache if the user is not there yet.
func (h *Handler) ensureUserCached(ctx context.Context, userID string) error {
	_, err := h.repository.GetUserInfo(ctx, userID)
	if err == nil {
		return nil
	}
	if apperr.CodeOf(err) != apperr.CodeNotFound {
		return err
	}

	userInfo, err := h.userClient.GetUserInfoByUUID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user info for %s: %v", userID, err)
	}

	return h.repository.AddNewUser(ctx, userInfo)
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	previews, err := h.repository.GetUserConversations(r.Context(), uuid.MustParse(requesterID))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversations: %v", err))
		h.writeAppError(w, err)
		return
	}

	conversations := make([]api.ConversationPreview, len(*previews))
	for i, preview := range *previews {
		var lastMessageTimestamp *string
		if preview.LastMessageTimestamp != nil {
			timestamp := preview.LastMessageTimestamp.Format(time.RFC3339)
			lastMessageTimestamp = &timestamp
		}

		conversations[i] = api.ConversationPreview{
			ConversationId:       preview.ConversationID.String(),
			CompanionId:          preview.CompanionID.String(),
			CompanionNickname:    preview.CompanionNickname,
			CompanionAvatarUrl:   &preview.CompanionAvatarURL,
			LastMessageContent:   preview.LastMessageContent,
			LastMessageTimestamp: lastMessageTimestamp,
			UnreadCount:          preview.UnreadCount,
		}
	}

	response := api.GetConversationsResponse{
		Conversations: conversations,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConversationMessages(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationMessages")

	viewerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to find uuid")
		h.writeError(w, "failed to find uuid", http.StatusInternalServerError)
		return
	}

	conversationUUID, err := uuid.Parse(conversationId)
	if err != nil {
		logger.Error("conversation id is not a valid uuid")
		h.writeError(w, "conversation id is not a valid uuid", http.StatusBadRequest)
		return
	}
	viewerUUID := uuid.MustParse(viewerID)

	conversation, err := h.repository.GetConversation(r.Context(), conversationUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		h.writeAppError(w, err)
		return
	}

	if !conversation.IsParticipant(viewerUUID) {
		logger.Error("user is not a participant of the conversation")
		h.writeError(w, "user is not a participant of the conversation", http.StatusForbidden)
		return
	}

	messages, err := h.repository.GetConversationMessages(r.Context(), conversationUUID, viewerUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeAppError(w, err)
		return
	}

	visible := messages.VisibleTo(conversation.StateFor(viewerUUID))

	apiMessages := make([]api.Message, len(visible))
	for i, msg := range visible {
		var senderId *string
		if msg.SenderID != nil {
			sender := msg.SenderID.String()
			senderId = &sender
		}

		apiMessages[i] = api.Message{
			Id:       msg.ID.String(),
			SenderId: senderId,
			Content:  msg.Content,
			IsRead:   msg.IsRead,
			IsSystem: msg.IsSystem,
			SentAt:   msg.SentAt.Format(time.RFC3339),
		}

		attachments, err := h.attachmentClient.ListAttachments(r.Context(), msg.ID.String())
		if err != nil {
			// attachment service being down should not hide the text
			logger.Warn(fmt.Sprintf("failed to list attachments for %s: %v", msg.ID, err))
			continue
		}
		if len(attachments) > 0 {
			apiAttachments := make([]api.Attachment, len(attachments))
			for j, att := range attachments {
				apiAttachments[j] = api.Attachment{
					Id:         att.ID.String(),
					StorageKey: att.StorageKey,
					ScanStatus: att.ScanStatus,
				}
			}
			apiMessages[i].Attachments = &apiAttachments
		}
	}

	response := api.GetConversationMessagesResponse{
		Messages: apiMessages,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeAppError(w, err)
		return
	}

	conversationUUID, err := uuid.Parse(conversationId)
	if err != nil {
		logger.Error("conversation id is not a valid uuid")
		h.writeError(w, "conversation id is not a valid uuid", http.StatusBadRequest)
		return
	}
	senderUUID := uuid.MustParse(senderID)

	var message model.Message
	var recipientUUID uuid.UUID
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		// row lock: concurrent sends to the same conversation serialize here
		conversation, err := h.repository.GetConversationForUpdate(ctx, conversationUUID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
			return err
		}

		if !conversation.IsParticipant(senderUUID) {
			logger.Error(fmt.Sprintf("user %s is not a participant of conversation %s", senderID, conversationId))
			return apperr.Forbidden("user is not a participant of the conversation")
		}

		recipientUUID = conversation.Companion(senderUUID)
		recipient, err := h.repository.GetUserInfo(ctx, recipientUUID.String())
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get recipient info: %v", err))
			return err
		}
		if recipient.IsDeleted() {
			return apperr.RecipientUnavailable("recipient account is deleted")
		}

		message = model.Message{
			ID:             uuid.New(),
			ConversationID: conversationUUID,
			SenderID:       &senderUUID,
			Content:        req.Content,
			SentAt:         time.Now(),
		}

		if err := h.repository.SaveMessage(ctx, &message); err != nil {
			logger.Error(fmt.Sprintf("failed to save message: %v", err))
			return err
		}

		if err := h.repository.Touch(ctx, conversationUUID, message.SentAt); err != nil {
			logger.Error(fmt.Sprintf("failed to touch conversation: %v", err))
			return err
		}

		// a fresh message re-surfaces the thread for both sides; watermarks stay
		if err := h.repository.RestoreBothParticipants(ctx, conversationUUID); err != nil {
			logger.Error(fmt.Sprintf("failed to restore participants: %v", err))
			return err
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message transaction: %v", err))
		h.writeAppError(w, err)
		return
	}

	h.notifyMessageSent(r.Context(), logger, &message, senderUUID, recipientUUID)

	response := api.SendMessageResponse{
		MessageId: message.ID.String(),
		SentAt:    message.SentAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}

// notifyMessageSent runs after the send transaction commits. Everything in
// here is best effort: the message is durable already, so fan-out or
// notification failures are logged and dropped, never surfaced to the sender.
func (h *Handler) notifyMessageSent(ctx context.Context, logger logger_lib.LoggerInterface, message *model.Message, senderUUID, recipientUUID uuid.UUID) {
	newMessage := model.CentrifugoUpdate{
		Event:   model.NewMessageEvent,
		Payload: message,
	}
	if err := h.fanOut.Publish(ctx, message.ConversationID.String(), newMessage); err != nil {
		logger.Error(fmt.Sprintf("failed to publish message to conversation channel: %v", err))
	}

	conversationUpdated := model.CentrifugoUpdate{
		Event:   model.ConversationUpdatedEvent,
		Payload: map[string]string{"conversation_id": message.ConversationID.String()},
	}
	for _, userID := range []uuid.UUID{senderUUID, recipientUUID} {
		if err := h.fanOut.DeliverToUser(ctx, userID.String(), conversationUpdated); err != nil {
			logger.Error(fmt.Sprintf("failed to deliver conversation update to %s: %v", userID, err))
		}
	}

	notification := model.MessageSentNotification{
		ConversationID: message.ConversationID.String(),
		MessageID:      message.ID.String(),
		SenderID:       senderUUID.String(),
		RecipientID:    recipientUUID.String(),
		SentAt:         message.SentAt,
	}
	if err := h.producer.ProduceMessage(ctx, notification, notification.RecipientID); err != nil {
		logger.Error(fmt.Sprintf("failed to produce notification: %v", err))
	}
}

func (h *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteConversation")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	conversationUUID, err := uuid.Parse(conversationId)
	if err != nil {
		logger.Error("conversation id is not a valid uuid")
		h.writeError(w, "conversation id is not a valid uuid", http.StatusBadRequest)
		return
	}
	userUUID := uuid.MustParse(userID)

	conversation, err := h.repository.GetConversation(r.Context(), conversationUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		h.writeAppError(w, err)
		return
	}

	if !conversation.IsParticipant(userUUID) {
		logger.Error("user is not a participant of the conversation")
		h.writeError(w, "user is not a participant of the conversation", http.StatusForbidden)
		return
	}

	if err := h.repository.MarkParticipantDeleted(r.Context(), conversationUUID, userUUID); err != nil {
		logger.Error(fmt.Sprintf("failed to delete conversation: %v", err))
		h.writeAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MarkConversationRead(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkConversationRead")

	readerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	conversationUUID, err := uuid.Parse(conversationId)
	if err != nil {
		logger.Error("conversation id is not a valid uuid")
		h.writeError(w, "conversation id is not a valid uuid", http.StatusBadRequest)
		return
	}
	readerUUID := uuid.MustParse(readerID)

	conversation, err := h.repository.GetConversation(r.Context(), conversationUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		h.writeAppError(w, err)
		return
	}

	if !conversation.IsParticipant(readerUUID) {
		logger.Error("user is not a participant of the conversation")
		h.writeError(w, "user is not a participant of the conversation", http.StatusForbidden)
		return
	}

	if err := h.repository.MarkMessagesAsRead(r.Context(), conversationUUID, readerUUID); err != nil {
		logger.Error(fmt.Sprintf("failed to mark messages as read: %v", err))
		h.writeAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HideMessage(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("HideMessage")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	messageUUID, err := uuid.Parse(messageId)
	if err != nil {
		logger.Error("message id is not a valid uuid")
		h.writeError(w, "message id is not a valid uuid", http.StatusBadRequest)
		return
	}
	userUUID := uuid.MustParse(userID)

	message, err := h.repository.GetMessage(r.Context(), messageUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get message: %v", err))
		h.writeAppError(w, err)
		return
	}

	conversation, err := h.repository.GetConversation(r.Context(), message.ConversationID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		h.writeAppError(w, err)
		return
	}

	if !conversation.IsParticipant(userUUID) {
		logger.Error("user is not a participant of the conversation")
		h.writeError(w, "user is not a participant of the conversation", http.StatusForbidden)
		return
	}

	if err := h.repository.HideMessageForUser(r.Context(), messageUUID, userUUID); err != nil {
		logger.Error(fmt.Sprintf("failed to hide message: %v", err))
		h.writeAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUnreadCount")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	count, err := h.repository.GetUnreadCount(r.Context(), uuid.MustParse(userID))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get unread count: %v", err))
		h.writeAppError(w, err)
		return
	}

	response := api.GetUnreadCountResponse{
		Count: count,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	response := api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConversationSubscribeToken(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationSubscribeToken")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	conversationUUID, err := uuid.Parse(conversationId)
	if err != nil {
		logger.Error("conversation id is not a valid uuid")
		h.writeError(w, "conversation id is not a valid uuid", http.StatusBadRequest)
		return
	}

	conversation, err := h.repository.GetConversation(r.Context(), conversationUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		h.writeAppError(w, err)
		return
	}

	if !conversation.IsParticipant(uuid.MustParse(userID)) {
		logger.Error("user is not a participant of the conversation")
		h.writeError(w, "user is not a participant of the conversation", http.StatusForbidden)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userID, conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetConversationSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   conversationId,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}

func (h *Handler) writeAppError(w http.ResponseWriter, err error) {
	h.writeError(w, err.Error(), statusFromCode(apperr.CodeOf(err)))
}

func statusFromCode(code apperr.Code) int {
	switch code {
	case apperr.CodeInvalidArgument:
		return http.StatusBadRequest
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodePermissionDenied:
		return http.StatusForbidden
	case apperr.CodeRecipientUnavailable:
		return http.StatusGone
	case apperr.CodeTransientStoreFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
