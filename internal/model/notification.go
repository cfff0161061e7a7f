package model

import "time"

// MessageSentNotification is produced to the notification topic after a send
// commits; the email notification service decides whether to contact an
// offline recipient.
type MessageSentNotification struct {
	ConversationID string    `json:"conversation_id"`
	MessageID      string    `json:"message_id"`
	SenderID       string    `json:"sender_id"`
	RecipientID    string    `json:"recipient_id"`
	SentAt         time.Time `json:"sent_at"`
}
