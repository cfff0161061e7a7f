package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/apperr"
)

var conversationColumns = []string{
	"id",
	"participant_one_id",
	"participant_two_id",
	"participant_one_deleted",
	"participant_two_deleted",
	"participant_one_deleted_at",
	"participant_two_deleted_at",
	"created_at",
	"last_message_at",
}

func (r *Repository) GetConversation(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error) {
	return r.getConversation(ctx, conversationID, false)
}

// GetConversationForUpdate locks the conversation row for the rest of the
// current transaction. Send flows take this lock so concurrent sends to the
// same conversation serialize on the last_message_at bump.
func (r *Repository) GetConversationForUpdate(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error) {
	return r.getConversation(ctx, conversationID, true)
}

func (r *Repository) getConversation(ctx context.Context, conversationID uuid.UUID, forUpdate bool) (*model.Conversation, error) {
	queryBuilder := sq.Select(conversationColumns...).
		From("conversations").
		Where(sq.Eq{"id": conversationID})

	if forUpdate {
		queryBuilder = queryBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("conversation not found")
	}
	if err != nil {
		return nil, storeErr("failed to get conversation", err)
	}

	return &conversation, nil
}

func (r *Repository) getConversationByPair(ctx context.Context, userA, userB uuid.UUID) (*model.Conversation, error) {
	query, args, err := sq.Select(conversationColumns...).
		From("conversations").
		Where(sq.Or{
			sq.And{sq.Eq{"participant_one_id": userA}, sq.Eq{"participant_two_id": userB}},
			sq.And{sq.Eq{"participant_one_id": userB}, sq.Eq{"participant_two_id": userA}},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

// GetOrCreateConversation returns the single conversation for the unordered
// (requester, companion) pair, creating it when absent. An existing
// conversation the requester had deleted comes back active for them; the
// deletion watermark stays in place. Safe under concurrent calls for the
// same pair: the unique index on (least(id), greatest(id)) rejects the
// duplicate insert and the loser re-reads the winner's row.
func (r *Repository) GetOrCreateConversation(ctx context.Context, requesterID, companionID uuid.UUID) (*model.Conversation, error) {
	conversation, err := r.getConversationByPair(ctx, requesterID, companionID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, storeErr("failed to look up conversation pair", err)
	}

	if err == nil {
		if conversation.StateFor(requesterID).Deleted {
			if err := r.RestoreParticipant(ctx, conversation.ID, requesterID); err != nil {
				return nil, err
			}
			if conversation.ParticipantOneID == requesterID {
				conversation.ParticipantOneDeleted = false
			} else {
				conversation.ParticipantTwoDeleted = false
			}
		}
		return conversation, nil
	}

	query, args, err := sq.Insert("conversations").
		Columns("id", "participant_one_id", "participant_two_id").
		Values(uuid.New(), requesterID, companionID).
		Suffix("ON CONFLICT DO NOTHING RETURNING " + strings.Join(conversationColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var created model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &created, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		// lost the insert race, the other caller's row is the conversation
		conversation, err = r.getConversationByPair(ctx, requesterID, companionID)
		if err != nil {
			return nil, storeErr("failed to re-read conversation pair", err)
		}
		return conversation, nil
	}
	if err != nil {
		return nil, storeErr("failed to create conversation", err)
	}

	return &created, nil
}

// RestoreParticipant clears the deleted flag for userID's side only. The
// deleted_at watermark is left untouched.
func (r *Repository) RestoreParticipant(ctx context.Context, conversationID, userID uuid.UUID) error {
	query, args, err := sq.Update("conversations").
		Set("participant_one_deleted", sq.Expr("CASE WHEN participant_one_id = ? THEN false ELSE participant_one_deleted END", userID)).
		Set("participant_two_deleted", sq.Expr("CASE WHEN participant_two_id = ? THEN false ELSE participant_two_deleted END", userID)).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("failed to restore participant", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperr.NotFound("conversation not found")
	}

	return nil
}

// RestoreBothParticipants clears both deleted flags; watermarks stay. Runs
// inside the send transaction so a fresh message re-surfaces the thread for
// both sides.
func (r *Repository) RestoreBothParticipants(ctx context.Context, conversationID uuid.UUID) error {
	query, args, err := sq.Update("conversations").
		Set("participant_one_deleted", false).
		Set("participant_two_deleted", false).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("failed to restore participants", err)
	}

	return nil
}

// MarkParticipantDeleted soft-deletes the conversation for userID's side.
// The watermark is stamped only when the flag actually flips, so repeating
// the call never advances deleted_at.
func (r *Repository) MarkParticipantDeleted(ctx context.Context, conversationID, userID uuid.UUID) error {
	for _, side := range []struct {
		idColumn      string
		deletedColumn string
		atColumn      string
	}{
		{"participant_one_id", "participant_one_deleted", "participant_one_deleted_at"},
		{"participant_two_id", "participant_two_deleted", "participant_two_deleted_at"},
	} {
		query, args, err := sq.Update("conversations").
			Set(side.deletedColumn, true).
			Set(side.atColumn, sq.Expr("now()")).
			Where(sq.Eq{
				"id":               conversationID,
				side.idColumn:      userID,
				side.deletedColumn: false,
			}).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		if _, err := r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
			return storeErr("failed to mark participant deleted", err)
		}
	}

	return nil
}

// Touch bumps last_message_at. Callers hold the row lock from
// GetConversationForUpdate, so commit order decides the final value.
func (r *Repository) Touch(ctx context.Context, conversationID uuid.UUID, lastMessageAt time.Time) error {
	query, args, err := sq.Update("conversations").
		Set("last_message_at", lastMessageAt).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	result, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("failed to touch conversation", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return apperr.NotFound("conversation not found")
	}

	return nil
}

// GetUserConversations lists the requester's visible conversations, newest
// activity first, with companion display data and per-conversation unread
// counts. Conversations currently deleted for the requester are excluded;
// preview fields respect the requester's watermark.
func (r *Repository) GetUserConversations(ctx context.Context, requesterID uuid.UUID) (*model.ConversationPreviewList, error) {
	watermarkFilter := `(CASE WHEN c.participant_one_id = ?
		THEN (c.participant_one_deleted_at IS NULL OR m.sent_at > c.participant_one_deleted_at)
		ELSE (c.participant_two_deleted_at IS NULL OR m.sent_at > c.participant_two_deleted_at) END)`

	queryBuilder := sq.Select("c.id AS conversation_id").
		Column(sq.Alias(sq.Expr("CASE WHEN c.participant_one_id = ? THEN c.participant_two_id ELSE c.participant_one_id END", requesterID), "companion_id")).
		Columns(
			"u.nickname AS companion_nickname",
			"u.avatar_url AS companion_avatar_url",
		).
		Column(sq.Alias(sq.Expr(`(SELECT m.content FROM messages m
			WHERE m.conversation_id = c.id AND `+watermarkFilter+`
			ORDER BY m.sent_at DESC, m.id DESC LIMIT 1)`, requesterID), "last_message_content")).
		Column(sq.Alias(sq.Expr(`(SELECT m.sent_at FROM messages m
			WHERE m.conversation_id = c.id AND `+watermarkFilter+`
			ORDER BY m.sent_at DESC, m.id DESC LIMIT 1)`, requesterID), "last_message_timestamp")).
		Column(sq.Alias(sq.Expr(`(SELECT COUNT(*) FROM messages m
			WHERE m.conversation_id = c.id
			AND m.is_read = false
			AND (m.sender_id IS NULL OR m.sender_id <> ?)
			AND `+watermarkFilter+`
			AND NOT EXISTS (SELECT 1 FROM message_user_states s WHERE s.message_id = m.id AND s.user_id = ?))`,
			requesterID, requesterID, requesterID), "unread_count")).
		From("conversations c").
		JoinClause(sq.Expr("JOIN users u ON u.id = CASE WHEN c.participant_one_id = ? THEN c.participant_two_id ELSE c.participant_one_id END", requesterID)).
		Where(sq.Or{
			sq.And{sq.Eq{"c.participant_one_id": requesterID}, sq.Eq{"c.participant_one_deleted": false}},
			sq.And{sq.Eq{"c.participant_two_id": requesterID}, sq.Eq{"c.participant_two_deleted": false}},
		}).
		OrderBy("c.last_message_at DESC NULLS LAST", "c.id")

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var previews model.ConversationPreviewList
	err = r.Chk(ctx).SelectContext(ctx, &previews, query, args...)
	if err != nil {
		return nil, storeErr("failed to get conversations", err)
	}

	return &previews, nil
}
