package model

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantState is one side's lifecycle slot on a conversation. The
// watermark outlives a restore: clearing Deleted never clears DeletedAt,
// so earlier messages stay hidden for that side.
type ParticipantState struct {
	Deleted   bool
	DeletedAt *time.Time
}

// Visible reports whether a message sent at sentAt is visible to the side
// holding this state. Messages at or before the watermark are hidden.
func (s ParticipantState) Visible(sentAt time.Time) bool {
	return s.DeletedAt == nil || sentAt.After(*s.DeletedAt)
}

type Conversation struct {
	ID                      uuid.UUID  `db:"id" json:"id"`
	ParticipantOneID        uuid.UUID  `db:"participant_one_id" json:"participant_one_id"`
	ParticipantTwoID        uuid.UUID  `db:"participant_two_id" json:"participant_two_id"`
	ParticipantOneDeleted   bool       `db:"participant_one_deleted" json:"-"`
	ParticipantTwoDeleted   bool       `db:"participant_two_deleted" json:"-"`
	ParticipantOneDeletedAt *time.Time `db:"participant_one_deleted_at" json:"-"`
	ParticipantTwoDeletedAt *time.Time `db:"participant_two_deleted_at" json:"-"`
	CreatedAt               time.Time  `db:"created_at" json:"created_at"`
	LastMessageAt           *time.Time `db:"last_message_at" json:"last_message_at,omitempty"`
}

func (c *Conversation) IsParticipant(userID uuid.UUID) bool {
	return c.ParticipantOneID == userID || c.ParticipantTwoID == userID
}

// Companion returns the other side of the conversation.
func (c *Conversation) Companion(userID uuid.UUID) uuid.UUID {
	if c.ParticipantOneID == userID {
		return c.ParticipantTwoID
	}
	return c.ParticipantOneID
}

func (c *Conversation) StateFor(userID uuid.UUID) ParticipantState {
	if c.ParticipantOneID == userID {
		return ParticipantState{Deleted: c.ParticipantOneDeleted, DeletedAt: c.ParticipantOneDeletedAt}
	}
	return ParticipantState{Deleted: c.ParticipantTwoDeleted, DeletedAt: c.ParticipantTwoDeletedAt}
}

type ConversationPreviewList []ConversationPreview

// ConversationPreview is one row of a user's conversation list: the
// companion's display data plus last-message and unread derived fields.
type ConversationPreview struct {
	ConversationID       uuid.UUID  `db:"conversation_id"`
	CompanionID          uuid.UUID  `db:"companion_id"`
	CompanionNickname    string     `db:"companion_nickname"`
	CompanionAvatarURL   string     `db:"companion_avatar_url"`
	LastMessageContent   *string    `db:"last_message_content"`
	LastMessageTimestamp *time.Time `db:"last_message_timestamp"`
	UnreadCount          int64      `db:"unread_count"`
}
