package models

import "time"

// ChatMessage is one turn in a chatbot conversation.
type ChatMessage struct {
	Role    string    `json:"role"` // "user" or "assistant"
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// ChatContext is the rolling conversation state kept per user.
type ChatContext struct {
	History []ChatMessage `json:"history"`
}
