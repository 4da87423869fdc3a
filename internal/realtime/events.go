package realtime

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Eventos enviados ao navegador
const (
	EventMessageNew        = "message:new"
	EventMessageRead       = "message:read"
	EventTyping            = "typing"
	EventAlertNew          = "alert:new"
	EventRecommendationNew = "recommendation:new"
	EventError             = "error"
	EventPong              = "pong"
)

// Eventos recebidos do navegador
const (
	EventMessageSend = "message:send"
	EventPing        = "ping"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type InboundEvent struct {
	Type string      `json:"type"`
	Data InboundData `json:"data"`
}

type InboundData struct {
	ConversationID int64  `json:"conversation_id"`
	Content        string `json:"content"`
}

type ErrorData struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type TypingData struct {
	ConversationID int64 `json:"conversation_id"`
	UserID         int   `json:"user_id"`
}

type ReadData struct {
	ConversationID int64 `json:"conversation_id"`
	ReaderID       int   `json:"reader_id"`
	Count          int64 `json:"count"`
}
