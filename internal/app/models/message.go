package models

import (
	"mindcare-service/internal/pkg/constvars"
	"time"
)

type Message struct {
	ID             string
	ConversationID string
	SenderName     string
	SenderID       string
	ReceiverID     string
	Text           string
	Timestamp      time.Time
	Read           bool
}

// MessageFromDocument decodes a message of the given conversation. A message
// without a timestamp is stamped with fallback.
func MessageFromDocument(conversationID string, doc Document, fallback time.Time) Message {
	timestamp, ok := doc.Time(constvars.MessageFieldTimestamp)
	if !ok {
		timestamp = fallback
	}

	return Message{
		ID:             doc.ID,
		ConversationID: conversationID,
		SenderName:     doc.String(constvars.MessageFieldSenderName),
		SenderID:       doc.String(constvars.MessageFieldSenderID),
		ReceiverID:     doc.String(constvars.MessageFieldReceiverID),
		Text:           doc.String(constvars.MessageFieldText),
		Timestamp:      timestamp,
		Read:           doc.Bool(constvars.MessageFieldRead),
	}
}
