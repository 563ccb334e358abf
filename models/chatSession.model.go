package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChatSession is one chatbot conversation. Sessions are keyed by a UUID so a
// browser tab maps to exactly one transcript; there is no process-global
// "current chat" state.
type ChatSession struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Username  string         `gorm:"index;not null" json:"username"`
	Messages  datatypes.JSON `gorm:"type:json" json:"messages"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (ChatSession) TableName() string { return "chat_sessions" }

// ChatMessage is one entry in a session transcript.
type ChatMessage struct {
	Role string    `json:"role"` // "user" or "bot"
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}
