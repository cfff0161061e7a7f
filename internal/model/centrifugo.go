package model

import "github.com/golang-jwt/jwt/v5"

const (
	NewMessageEvent          = "NEW_MESSAGE"
	ConversationUpdatedEvent = "CONVERSATION_UPDATED"
)

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string           `json:"channel"`
	Data    CentrifugoUpdate `json:"data"`
}

// CentrifugoUpdate is the envelope pushed into a channel: event type plus
// the event-specific payload (a Message for NEW_MESSAGE, a conversation id
// for CONVERSATION_UPDATED).
type CentrifugoUpdate struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID         string `json:"user_id"`
	ConversationID string `json:"conversation_id"`
}
