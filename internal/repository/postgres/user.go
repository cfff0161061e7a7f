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

func (r *Repository) AddNewUser(ctx context.Context, userInfo *model.UserInfo) error {
	query, args, err := sq.Insert("users").
		Columns("id", "nickname", "avatar_url").
		Values(userInfo.UserID, userInfo.Nickname, userInfo.AvatarURL).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetUserInfo(ctx context.Context, userID string) (*model.UserInfo, error) {
	query, args, err := sq.Select("id", "nickname", "avatar_url", "deleted_at").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var userInfo model.UserInfo
	err = r.Chk(ctx).GetContext(ctx, &userInfo, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, storeErr("failed to get user", err)
	}

	return &userInfo, nil
}

func (r *Repository) UpdateUserNickname(ctx context.Context, userUUID, newNickname string) error {
	query, args, err := sq.Update("users").
		Set("nickname", newNickname).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateUserAvatar(ctx context.Context, userUUID, avatarLink string) error {
	query, args, err := sq.Update("users").
		Set("avatar_url", avatarLink).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

// MarkUserDeleted mirrors an account deletion from the identity provider.
// New sends to this user are rejected afterwards.
func (r *Repository) MarkUserDeleted(ctx context.Context, userUUID string) error {
	query, args, err := sq.Update("users").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userUUID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr("failed to mark user deleted", err)
	}

	return nil
}

// GetUserConversationIDs lists every conversation the user participates in,
// deleted sides included. Used by the worker to fan system messages out to
// all of a departed user's threads.
func (r *Repository) GetUserConversationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := sq.Select("id").
		From("conversations").
		Where(sq.Or{
			sq.Eq{"participant_one_id": userID},
			sq.Eq{"participant_two_id": userID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversationIDs []uuid.UUID
	err = r.Chk(ctx).SelectContext(ctx, &conversationIDs, query, args...)
	if err != nil {
		return nil, storeErr("failed to get user conversations", err)
	}

	return conversationIDs, nil
}
