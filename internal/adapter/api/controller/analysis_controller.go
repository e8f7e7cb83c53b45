package controller

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/agrisense/plant-chatbot/internal/adapter/api/dto"
	"github.com/agrisense/plant-chatbot/internal/domain/chat"
	"github.com/agrisense/plant-chatbot/internal/domain/settings"
	"github.com/agrisense/plant-chatbot/pkg/analysis"
	"github.com/agrisense/plant-chatbot/pkg/bot"
	"github.com/agrisense/plant-chatbot/pkg/classifier"
	"github.com/agrisense/plant-chatbot/pkg/logger"
	"github.com/agrisense/plant-chatbot/pkg/session"
)

// AnalysisController handles photo submission and result formatting
type AnalysisController struct {
	classifier   *classifier.Client
	chatRepo     chat.Repository
	settingsRepo settings.Repository
	logger       logger.Logger

	// inFlight guards against a second analyze request for the same
	// session while one is pending; concurrent sends are rejected, not
	// queued.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewAnalysisController creates an analysis controller
func NewAnalysisController(client *classifier.Client, chatRepo chat.Repository, settingsRepo settings.Repository, log logger.Logger) *AnalysisController {
	return &AnalysisController{
		classifier:   client,
		chatRepo:     chatRepo,
		settingsRepo: settingsRepo,
		logger:       log,
		inFlight:     make(map[string]struct{}),
	}
}

// Analyze godoc
// @Summary Analyze a plant photo
// @Description Forward the uploaded image to the classifier and return the localized diagnosis
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Plant photo (max 10 MiB)"
// @Param lang formData string false "Display language (fr, en, ar)"
// @Success 200 {object} dto.AnalysisResponse
// @Router /api/v1/chat/analyze [post]
func (c *AnalysisController) Analyze(ctx *gin.Context) {
	sessionID := session.GetSessionID(ctx)

	if !c.acquire(sessionID) {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(
			http.StatusConflict,
			"Une analyse est déjà en cours",
			"Attendez la fin de l'analyse précédente avant d'en lancer une nouvelle"))
		return
	}
	defer c.release(sessionID)

	file, header, err := ctx.Request.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Veuillez sélectionner une image valide", err.Error()))
		return
	}
	defer file.Close()

	// Both checks run before any network activity; a rejected
	// attachment leaves no trace in the conversation log.
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Veuillez sélectionner une image valide",
			fmt.Sprintf("type de fichier non supporté: %s", header.Header.Get("Content-Type"))))
		return
	}
	if header.Size > classifier.MaxImageBytes {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "L'image est trop grande (max 10MB)",
			fmt.Sprintf("taille reçue: %d octets", header.Size)))
		return
	}

	lang := languageParam(ctx)
	reqCtx := ctx.Request.Context()

	profile, err := c.settingsRepo.Load(reqCtx, sessionID)
	if err != nil {
		c.logger.Warn("Failed to load settings, using defaults",
			"session_id", sessionID,
			"error", err)
	}

	result, err := c.classifier.Predict(reqCtx, profile.APIURL, file, header.Filename, profile.UserID)
	if err != nil {
		c.logger.Error("Analysis failed",
			"session_id", sessionID,
			"endpoint", profile.APIURL,
			"error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(
			http.StatusBadGateway,
			fmt.Sprintf("❌ Erreur lors de l'analyse : %v", err),
			"Veuillez vérifier que l'URL de l'API est correcte dans les paramètres."))
		return
	}

	display := analysis.Format(*result, lang)
	summary := analysis.Summary(display)

	// The log keeps the short plain-text summary, not the rich model
	summaryMsg := chat.NewMessage(sessionID, chat.RoleBot, summary)
	if err := c.chatRepo.SaveMessage(reqCtx, summaryMsg); err != nil {
		c.logger.Error("Failed to save analysis summary", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError, "Erreur lors de l'enregistrement du message", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.AnalysisResponse{
		Result:  display,
		Summary: summary,
	})
}

func (c *AnalysisController) acquire(sessionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, pending := c.inFlight[sessionID]; pending {
		return false
	}
	c.inFlight[sessionID] = struct{}{}
	return true
}

func (c *AnalysisController) release(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.inFlight, sessionID)
}

// languageParam reads the optional display language, defaulting to French
func languageParam(ctx *gin.Context) bot.Language {
	value := ctx.PostForm("lang")
	if value == "" {
		value = ctx.Query("lang")
	}

	switch bot.Language(value) {
	case bot.LangEnglish:
		return bot.LangEnglish
	case bot.LangArabic:
		return bot.LangArabic
	default:
		return bot.DefaultLanguage
	}
}
