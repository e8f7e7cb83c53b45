package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agrisense/plant-chatbot/internal/adapter/api/dto"
	"github.com/agrisense/plant-chatbot/internal/domain/chat"
	"github.com/agrisense/plant-chatbot/internal/domain/settings"
	"github.com/agrisense/plant-chatbot/pkg/bot"
	"github.com/agrisense/plant-chatbot/pkg/logger"
	"github.com/agrisense/plant-chatbot/pkg/session"
)

const defaultHistoryLimit = 50

// ChatController handles the text conversation endpoints
type ChatController struct {
	engine       *bot.Engine
	chatRepo     chat.Repository
	settingsRepo settings.Repository
	typingDelay  time.Duration
	logger       logger.Logger
}

// NewChatController creates a chat controller. typingDelay reproduces
// the reference front-end's artificial pause before a reply; zero
// disables it.
func NewChatController(engine *bot.Engine, chatRepo chat.Repository, settingsRepo settings.Repository, typingDelay time.Duration, log logger.Logger) *ChatController {
	return &ChatController{
		engine:       engine,
		chatRepo:     chatRepo,
		settingsRepo: settingsRepo,
		typingDelay:  typingDelay,
		logger:       log,
	}
}

// ProcessMessage godoc
// @Summary Process a chat message
// @Description Resolve the intent of a user message and return the bot reply with history
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body dto.ChatMessageRequest true "Message to process"
// @Success 200 {object} dto.ChatMessageResponse
// @Router /api/v1/chat/messages [post]
func (c *ChatController) ProcessMessage(ctx *gin.Context) {
	var req dto.ChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Message invalide", err.Error()))
		return
	}

	sessionID := session.GetSessionID(ctx)
	reqCtx := ctx.Request.Context()

	profile, err := c.settingsRepo.Load(reqCtx, sessionID)
	if err != nil {
		// Defaults keep the conversation usable
		c.logger.Warn("Failed to load settings, using defaults",
			"session_id", sessionID,
			"error", err)
	}

	userMsg := chat.NewMessage(sessionID, chat.RoleUser, req.Message)
	if err := c.chatRepo.SaveMessage(reqCtx, userMsg); err != nil {
		c.logger.Error("Failed to save user message", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError, "Erreur lors de l'enregistrement du message", err.Error()))
		return
	}

	if c.typingDelay > 0 {
		select {
		case <-time.After(c.typingDelay):
		case <-reqCtx.Done():
			return
		}
	}

	reply := c.engine.Reply(req.Message, profile.UserID)

	botMsg := chat.NewMessage(sessionID, chat.RoleBot, reply.Message)
	if err := c.chatRepo.SaveMessage(reqCtx, botMsg); err != nil {
		c.logger.Error("Failed to save bot message", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError, "Erreur lors de l'enregistrement de la réponse", err.Error()))
		return
	}

	history, err := c.chatRepo.GetHistory(reqCtx, sessionID, defaultHistoryLimit, 0)
	if err != nil {
		c.logger.Error("Failed to load history", "error", err)
		history = nil
	}
	reverseMessages(history)

	ctx.JSON(http.StatusOK, dto.ChatMessageResponse{
		Response: reply.Message,
		Intent:   reply.Intent,
		Topic:    reply.Topic,
		Language: reply.Language,
		History:  history,
	})
}

// GetWelcome godoc
// @Summary Get the welcome message
// @Description Return the startup greeting, persisted once while the history is empty
// @Tags Chat
// @Produce json
// @Success 200 {object} dto.WelcomeResponse
// @Router /api/v1/chat/welcome [get]
func (c *ChatController) GetWelcome(ctx *gin.Context) {
	sessionID := session.GetSessionID(ctx)
	reqCtx := ctx.Request.Context()

	profile, err := c.settingsRepo.Load(reqCtx, sessionID)
	if err != nil {
		c.logger.Warn("Failed to load settings, using defaults",
			"session_id", sessionID,
			"error", err)
	}

	message := bot.WelcomeMessage(profile.UserID)

	count, err := c.chatRepo.CountMessages(reqCtx, sessionID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError, "Erreur lors de la lecture de l'historique", err.Error()))
		return
	}

	// The greeting enters the log only on a fresh session
	if count == 0 {
		welcome := chat.NewMessage(sessionID, chat.RoleBot, message)
		if err := c.chatRepo.SaveMessage(reqCtx, welcome); err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError, "Erreur lors de l'enregistrement du message", err.Error()))
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.WelcomeResponse{Message: message})
}

// GetHistory godoc
// @Summary Get chat history
// @Description Return the session's conversation entries in chronological order
// @Tags Chat
// @Produce json
// @Success 200 {object} dto.HistoryResponse
// @Router /api/v1/chat/history [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	sessionID := session.GetSessionID(ctx)

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit < 1 {
		limit = defaultHistoryLimit
	}
	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	history, err := c.chatRepo.GetHistory(ctx.Request.Context(), sessionID, limit, offset)
	if err != nil {
		c.logger.Error("Failed to load history", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError, "Erreur lors de la lecture de l'historique", err.Error()))
		return
	}

	// The repository returns newest first; the client renders oldest first
	reverseMessages(history)

	ctx.JSON(http.StatusOK, dto.HistoryResponse{History: history})
}

// DeleteHistory godoc
// @Summary Clear chat history
// @Description Delete every conversation entry of the session and return the post-reset greeting
// @Tags Chat
// @Produce json
// @Success 200 {object} dto.WelcomeResponse
// @Router /api/v1/chat/history [delete]
func (c *ChatController) DeleteHistory(ctx *gin.Context) {
	sessionID := session.GetSessionID(ctx)
	reqCtx := ctx.Request.Context()

	if err := c.chatRepo.DeleteHistory(reqCtx, sessionID); err != nil {
		c.logger.Error("Failed to delete history", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError, "Erreur lors de la suppression de l'historique", err.Error()))
		return
	}

	reset := bot.ResetMessage()
	resetMsg := chat.NewMessage(sessionID, chat.RoleBot, reset)
	if err := c.chatRepo.SaveMessage(reqCtx, resetMsg); err != nil {
		c.logger.Error("Failed to save reset message", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError, "Erreur lors de l'enregistrement du message", err.Error()))
		return
	}

	c.logger.Info("Conversation reset", "session_id", sessionID)

	ctx.JSON(http.StatusOK, dto.WelcomeResponse{Message: reset})
}

// reverseMessages flips newest-first storage order into the
// chronological order clients display.
func reverseMessages(messages []chat.Message) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
