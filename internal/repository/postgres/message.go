package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/apperr"
)

var messageColumns = []string{
	"id",
	"conversation_id",
	"sender_id",
	"content",
	"is_read",
	"is_system",
	"sent_at",
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns(messageColumns...).
		Values(message.ID, message.ConversationID, message.SenderID, message.Content, message.IsRead, message.IsSystem, message.SentAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("failed to save message", err)
	}

	return nil
}

func (r *Repository) GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("message not found")
	}
	if err != nil {
		return nil, storeErr("failed to get message", err)
	}

	return &message, nil
}

// GetConversationMessages returns the full log for a conversation, oldest
// first, minus the messages the viewer has individually hidden. Watermark
// filtering happens in the caller against the viewer's participant state.
func (r *Repository) GetConversationMessages(ctx context.Context, conversationID, viewerID uuid.UUID) (*model.MessageList, error) {
	queryBuilder := sq.Select(
		"m.id",
		"m.conversation_id",
		"m.sender_id",
		"m.content",
		"m.is_read",
		"m.is_system",
		"m.sent_at",
	).
		From("messages m").
		Where(sq.Eq{"m.conversation_id": conversationID}).
		Where(sq.Expr("NOT EXISTS (SELECT 1 FROM message_user_states s WHERE s.message_id = m.id AND s.user_id = ?)", viewerID)).
		OrderBy("m.sent_at ASC", "m.id ASC")

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, storeErr("failed to get messages", err)
	}

	return &messages, nil
}

// MarkMessagesAsRead flips is_read on everything in the conversation the
// reader did not send. Idempotent: already-read rows are skipped by the
// filter and a second call matches nothing.
func (r *Repository) MarkMessagesAsRead(ctx context.Context, conversationID, readerID uuid.UUID) error {
	query, args, err := sq.Update("messages").
		Set("is_read", true).
		Where(sq.Eq{"conversation_id": conversationID, "is_read": false}).
		Where(sq.Expr("(sender_id IS NULL OR sender_id <> ?)", readerID)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("failed to mark messages as read", err)
	}

	return nil
}

// HideMessageForUser records a per-user hide. This is a moderation-style
// removal of a single message from one viewer, separate from leaving the
// conversation.
func (r *Repository) HideMessageForUser(ctx context.Context, messageID, userID uuid.UUID) error {
	query, args, err := sq.Insert("message_user_states").
		Columns("message_id", "user_id").
		Values(messageID, userID).
		Suffix("ON CONFLICT (message_id, user_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("failed to hide message", err)
	}

	return nil
}

// GetUnreadCount derives the user's total unread counter from current state:
// unread messages from other senders across all conversations the user has
// not deleted, watermark and per-message hides applied. Nothing is cached
// server-side, so the counter cannot drift.
func (r *Repository) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	queryBuilder := sq.Select("COUNT(*)").
		From("messages m").
		Join("conversations c ON c.id = m.conversation_id").
		Where(sq.Eq{"m.is_read": false}).
		Where(sq.Expr("(m.sender_id IS NULL OR m.sender_id <> ?)", userID)).
		Where(sq.Expr(`(
			(c.participant_one_id = ? AND c.participant_one_deleted = false
				AND (c.participant_one_deleted_at IS NULL OR m.sent_at > c.participant_one_deleted_at))
			OR
			(c.participant_two_id = ? AND c.participant_two_deleted = false
				AND (c.participant_two_deleted_at IS NULL OR m.sent_at > c.participant_two_deleted_at))
		)`, userID, userID)).
		Where(sq.Expr("NOT EXISTS (SELECT 1 FROM message_user_states s WHERE s.message_id = m.id AND s.user_id = ?)", userID))

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	err = r.Chk(ctx).GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, storeErr("failed to count unread messages", err)
	}

	return count, nil
}
