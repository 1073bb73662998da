package models

import "time"

// Chat message senders.
const (
	ChatFromUser = "user"
	ChatFromBot  = "bot"
)

// ChatMessage is one line of a session-scoped, append-only chat log.
type ChatMessage struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// ChatExchange is a persisted request/reply pair.
type ChatExchange struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}
