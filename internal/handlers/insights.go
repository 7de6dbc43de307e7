package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodcast/backend/internal/apierror"
	"github.com/moodcast/backend/internal/logger"
	"github.com/moodcast/backend/internal/service"
)

// InsightsHandler serves streaks, predictions, prompts and dashboard data.
type InsightsHandler struct {
	insightService service.InsightService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightService service.InsightService) *InsightsHandler {
	return &InsightsHandler{
		insightService: insightService,
	}
}

func (h *InsightsHandler) userID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return "", false
	}
	return userID.(string), true
}

func (h *InsightsHandler) fail(c *gin.Context, msg string, err error) {
	log := logger.Ctx(c.Request.Context())
	log.Error(msg, logger.Err(err))
	apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
}

// GetStreaks handles GET /api/v1/streaks/current
func (h *InsightsHandler) GetStreaks(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	streaks, err := h.insightService.GetStreaks(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "failed to calculate streaks", err)
		return
	}

	c.JSON(http.StatusOK, streaks)
}

// GetAchievements handles GET /api/v1/streaks/achievements
func (h *InsightsHandler) GetAchievements(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	achievements, err := h.insightService.GetAchievements(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "failed to evaluate achievements", err)
		return
	}

	c.JSON(http.StatusOK, achievements)
}

// GetMoodForecast handles GET /api/v1/predictions/mood-forecast
func (h *InsightsHandler) GetMoodForecast(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	forecast, err := h.insightService.GetMoodForecast(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "failed to generate mood forecast", err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// GetCopingStrategies handles GET /api/v1/predictions/coping-strategies
func (h *InsightsHandler) GetCopingStrategies(c *gin.Context) {
	if _, ok := h.userID(c); !ok {
		return
	}

	c.JSON(http.StatusOK, h.insightService.GetCopingStrategies(c.Query("mood")))
}

// GetDailyPrompt handles GET /api/v1/prompts/daily
func (h *InsightsHandler) GetDailyPrompt(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	prompt, err := h.insightService.GetDailyPrompt(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "failed to generate daily prompt", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"prompt": prompt})
}

// GetPromptSuggestions handles GET /api/v1/prompts/suggestions
func (h *InsightsHandler) GetPromptSuggestions(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	suggestions, err := h.insightService.GetPromptSuggestions(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "failed to generate prompt suggestions", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// GetWeeklyInsights handles GET /api/v1/insights/weekly
func (h *InsightsHandler) GetWeeklyInsights(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	insights, err := h.insightService.GetWeeklyInsights(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "failed to build weekly insights", err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

// GetPatterns handles GET /api/v1/insights/patterns
func (h *InsightsHandler) GetPatterns(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	patterns, err := h.insightService.GetPatterns(c.Request.Context(), userID, days)
	if err != nil {
		h.fail(c, "failed to build time-of-day patterns", err)
		return
	}

	c.JSON(http.StatusOK, patterns)
}

// GetDashboardStats handles GET /api/v1/dashboard/stats
func (h *InsightsHandler) GetDashboardStats(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	stats, err := h.insightService.GetDashboardStats(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "failed to build dashboard stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetTrend handles GET /api/v1/dashboard/trend
func (h *InsightsHandler) GetTrend(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	trend, err := h.insightService.GetTrend(c.Request.Context(), userID, days)
	if err != nil {
		h.fail(c, "failed to build sentiment trend", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": trend})
}
