package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moodcast/backend/internal/apierror"
	"github.com/moodcast/backend/internal/logger"
	"github.com/moodcast/backend/internal/models"
	"github.com/moodcast/backend/internal/service"
)

type AnalyzeHandler struct {
	analyzeService service.AnalyzeService
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analyzeService service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzeService: analyzeService,
	}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c), "Text is required for analysis"))
		return
	}

	analysis, err := h.analyzeService.Analyze(c.Request.Context(), userID.(string), req.Text)
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("analysis failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewClassifierError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// GetHistory handles GET /api/v1/analyze/history
func (h *AnalyzeHandler) GetHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	analyses, err := h.analyzeService.GetHistory(c.Request.Context(), userID.(string), limit)
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to fetch analysis history", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(analyses),
		"analyses": analyses,
	})
}
