package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrisense/plant-chatbot/internal/adapter/api/dto"
	"github.com/agrisense/plant-chatbot/internal/domain/chat"
	"github.com/agrisense/plant-chatbot/internal/domain/settings"
	"github.com/agrisense/plant-chatbot/pkg/bot"
	"github.com/agrisense/plant-chatbot/pkg/logger"
	"github.com/agrisense/plant-chatbot/pkg/session"
)

// SettingsController handles the session profile endpoints
type SettingsController struct {
	settingsRepo settings.Repository
	chatRepo     chat.Repository
	logger       logger.Logger
}

// NewSettingsController creates a settings controller
func NewSettingsController(settingsRepo settings.Repository, chatRepo chat.Repository, log logger.Logger) *SettingsController {
	return &SettingsController{
		settingsRepo: settingsRepo,
		chatRepo:     chatRepo,
		logger:       log,
	}
}

// Get godoc
// @Summary Get session settings
// @Description Return the stored profile merged over defaults
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Router /api/v1/settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	sessionID := session.GetSessionID(ctx)

	profile, err := c.settingsRepo.Load(ctx.Request.Context(), sessionID)
	if err != nil {
		c.logger.Warn("Failed to load settings, using defaults",
			"session_id", sessionID,
			"error", err)
	}

	ctx.JSON(http.StatusOK, dto.SettingsResponse{
		APIURL: profile.APIURL,
		UserID: profile.UserID,
	})
}

// Update godoc
// @Summary Save session settings
// @Description Persist the profile and return the bot's confirmation message
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body dto.SettingsRequest true "Profile to save"
// @Success 200 {object} dto.SettingsResponse
// @Router /api/v1/settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.SettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Paramètres invalides", err.Error()))
		return
	}

	sessionID := session.GetSessionID(ctx)
	reqCtx := ctx.Request.Context()

	previous, err := c.settingsRepo.Load(reqCtx, sessionID)
	if err != nil {
		c.logger.Warn("Failed to load previous settings",
			"session_id", sessionID,
			"error", err)
	}

	profile := settings.Profile{
		APIURL: req.APIURL,
		UserID: req.UserID,
	}
	if err := profile.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Paramètres invalides", err.Error()))
		return
	}

	if err := c.settingsRepo.Save(reqCtx, sessionID, profile); err != nil {
		c.logger.Error("Failed to save settings", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError, "Erreur lors de l'enregistrement des paramètres", err.Error()))
		return
	}

	// The bot greets the user by name when the display name just changed
	nameChanged := profile.UserID != previous.UserID
	message := bot.SettingsSavedMessage(languageParam(ctx), profile.UserID, nameChanged)

	confirmation := chat.NewMessage(sessionID, chat.RoleBot, message)
	if err := c.chatRepo.SaveMessage(reqCtx, confirmation); err != nil {
		c.logger.Error("Failed to save settings confirmation", "error", err)
	}

	c.logger.Info("Settings saved",
		"session_id", sessionID,
		"api_url", profile.APIURL,
		"has_display_name", profile.UserID != "")

	ctx.JSON(http.StatusOK, dto.SettingsResponse{
		APIURL:  profile.APIURL,
		UserID:  profile.UserID,
		Message: message,
	})
}
