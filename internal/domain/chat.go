package domain

import "time"

const MaxMessageLength = 4000

type Conversation struct {
	ID           int64     `json:"id"`
	ManagerID    int       `json:"manager_id"`
	ManagerName  string    `json:"manager_name,omitempty"`
	ClientUserID int       `json:"client_user_id"`
	ClientName   string    `json:"client_name,omitempty"`
	LastMessage  *Message  `json:"last_message"`
	UnreadCount  int       `json:"unread_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasParticipant indica se o usuário participa da conversa
func (c *Conversation) HasParticipant(userID int) bool {
	return c.ManagerID == userID || c.ClientUserID == userID
}

// OtherParticipant devolve o outro lado da conversa
func (c *Conversation) OtherParticipant(userID int) int {
	if c.ManagerID == userID {
		return c.ClientUserID
	}
	return c.ManagerID
}

type Message struct {
	ID             int64      `json:"id"`
	ConversationID int64      `json:"conversation_id"`
	SenderID       int        `json:"sender_id"`
	Content        string     `json:"content"`
	Read           bool       `json:"read"`
	ReadAt         *time.Time `json:"read_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

type MessageFilters struct {
	BeforeID *int64
	Limit    int
}
