package messaging

import (
	"context"
	"waterreminder/internal/core/domain/reminder"
)

// Channel and message type values used by the messaging gateway in
// inbound webhook events.
const (
	ChannelRCS       = "rcs"
	MessageTypeReply = "reply"
)

// Reply is a user-actionable suggestion. PostbackData is echoed back
// verbatim in the reply webhook.
type Reply struct {
	Text         string
	PostbackData string
}

type Suggestion struct {
	Reply Reply
}

// RichCard is a structured outbound message with a single standalone card.
type RichCard struct {
	Title       string
	Description string
	MediaURL    string
	Suggestions []Suggestion
}

type RichCardMessage struct {
	To   reminder.Number
	From string
	Card RichCard
}

// Sender delivers rich-card messages through an external messaging gateway.
type Sender interface {
	SendRichCard(ctx context.Context, msg RichCardMessage) error
}
