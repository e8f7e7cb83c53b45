package dto

import (
	"github.com/agrisense/plant-chatbot/internal/domain/chat"
	"github.com/agrisense/plant-chatbot/pkg/bot"
)

// ChatMessageRequest is one text turn from the user
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatMessageResponse carries the resolved bot reply plus the
// chronological history for client-side replay.
type ChatMessageResponse struct {
	Response string          `json:"response"`
	Intent   bot.Intent      `json:"intent"`
	Topic    bot.DetailTopic `json:"topic,omitempty"`
	Language bot.Language    `json:"language"`
	History  []chat.Message  `json:"history"`
}

// HistoryResponse returns the persisted conversation entries in
// chronological order.
type HistoryResponse struct {
	History []chat.Message `json:"history"`
}

// WelcomeResponse carries the startup or post-reset greeting
type WelcomeResponse struct {
	Message string `json:"message"`
}
