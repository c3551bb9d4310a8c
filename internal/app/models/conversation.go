package models

import (
	"mindcare-service/internal/pkg/constvars"
	"strings"
)

type Conversation struct {
	ID           string
	Participants []string
}

func ConversationFromDocument(doc Document) Conversation {
	return Conversation{
		ID:           doc.ID,
		Participants: doc.Strings(constvars.ConversationFieldParticipants),
	}
}

// HasParticipant tests membership against the explicit participant set. Legacy
// chats without one fall back to the "<idA>_<idB>" key, compared token by token.
func (c Conversation) HasParticipant(userID string) bool {
	if userID == "" {
		return false
	}

	participants := c.Participants
	if len(participants) == 0 {
		participants = strings.Split(c.ID, constvars.ConversationKeySeparator)
	}

	for _, participant := range participants {
		if participant == userID {
			return true
		}
	}
	return false
}
