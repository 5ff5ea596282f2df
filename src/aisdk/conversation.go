package aisdk

import (
	"time"
)

// Conversation is an ordered, append-only (within a turn) sequence of messages.
type Conversation struct {
	ID            string
	Messages      []*Message
	SystemPrompt  string
	CreatedAt     time.Time
	LastMessageAt time.Time
	TurnCount     int
}

// NewConversation creates a conversation seeded with the system prompt as the
// first message, followed by any prior history.
func NewConversation(id, systemPrompt string, history []*Message) *Conversation {
	now := time.Now()
	messages := make([]*Message, 0, len(history)+1)
	if systemPrompt != "" {
		messages = append(messages, &Message{
			Role:      RoleSystem,
			Content:   systemPrompt,
			CreatedAt: now,
		})
	}
	messages = append(messages, history...)
	return &Conversation{
		ID:           id,
		Messages:     messages,
		SystemPrompt: systemPrompt,
		CreatedAt:    now,
	}
}

// Append adds messages to the end of the conversation.
func (c *Conversation) Append(msgs ...*Message) {
	c.Messages = append(c.Messages, msgs...)
	c.LastMessageAt = time.Now()
}

// LastMessage returns the most recent message, or nil if the conversation is empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// History returns the messages that follow the leading system message, which
// is the portion callers carry between turns.
func (c *Conversation) History() []*Message {
	if len(c.Messages) > 0 && c.Messages[0].Role == RoleSystem {
		return c.Messages[1:]
	}
	return c.Messages
}
