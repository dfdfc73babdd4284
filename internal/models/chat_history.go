package models

import "time"

// ChatRole identifies which side of the exchange a chat entry belongs to.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatHistory stores one side of a chat exchange with the AI assistant.
// Entries are always inserted in user/assistant pairs by the chat service.
type ChatHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Role      ChatRole  `gorm:"size:10;not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Mode      string    `gorm:"size:20;default:normie" json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the singular table name the schema uses.
func (ChatHistory) TableName() string { return "chat_history" }
