package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageList []Message

type Message struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	ConversationID uuid.UUID  `db:"conversation_id" json:"conversation_id"`
	SenderID       *uuid.UUID `db:"sender_id" json:"sender_id,omitempty"` // nil for system messages
	Content        string     `db:"content" json:"content"`
	IsRead         bool       `db:"is_read" json:"is_read"`
	IsSystem       bool       `db:"is_system" json:"is_system"`
	SentAt         time.Time  `db:"sent_at" json:"sent_at"`
}

// SentBy reports whether the message was sent by userID. System messages
// belong to nobody.
func (m *Message) SentBy(userID uuid.UUID) bool {
	return m.SenderID != nil && *m.SenderID == userID
}

// VisibleTo filters the list by a viewer's participant state. The input is
// expected to be ordered by sent_at ascending; order is preserved.
func (l MessageList) VisibleTo(state ParticipantState) MessageList {
	visible := make(MessageList, 0, len(l))
	for _, m := range l {
		if state.Visible(m.SentAt) {
			visible = append(visible, m)
		}
	}
	return visible
}

type Attachment struct {
	ID         uuid.UUID `json:"id"`
	MessageID  uuid.UUID `json:"message_id"`
	StorageKey string    `json:"storage_key"`
	ScanStatus string    `json:"scan_status"`
}
