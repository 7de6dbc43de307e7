// Package handlers wires HTTP requests to the service layer.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodcast/backend/internal/apierror"
	"github.com/moodcast/backend/internal/logger"
	"github.com/moodcast/backend/internal/models"
	"github.com/moodcast/backend/internal/service"
)

type JournalHandler struct {
	journalService service.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// CreateJournal handles POST /api/v1/journals
func (h *JournalHandler) CreateJournal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fieldErrors := []apierror.FieldError{}
		if req.Title == "" {
			fieldErrors = append(fieldErrors, apierror.FieldError{Field: "title", Message: "is required", Code: "required"})
		}
		if req.Content == "" {
			fieldErrors = append(fieldErrors, apierror.FieldError{Field: "content", Message: "is required", Code: "required"})
		}
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), fieldErrors))
		return
	}

	entry, err := h.journalService.CreateJournal(c.Request.Context(), userID.(string), &req)
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to create journal entry", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetJournal handles GET /api/v1/journals/:id
func (h *JournalHandler) GetJournal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	journalID := c.Param("id")
	entry, err := h.journalService.GetJournal(c.Request.Context(), userID.(string), journalID)
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to get journal entry", logger.Err(err), logger.String("journal_id", journalID))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	if entry == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "journal entry", journalID))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetJournals handles GET /api/v1/journals
func (h *JournalHandler) GetJournals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.journalService.GetUserJournals(c.Request.Context(), userID.(string), limit, offset)
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to list journal entries", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(entries),
		"journals": entries,
	})
}

// UpdateJournal handles PUT /api/v1/journals/:id
func (h *JournalHandler) UpdateJournal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(apierror.GetRequestID(c), "Invalid JSON format"))
		return
	}

	journalID := c.Param("id")
	entry, err := h.journalService.UpdateJournal(c.Request.Context(), userID.(string), journalID, &req)
	if err != nil {
		log := logger.Ctx(c.Request.Context())
		log.Error("failed to update journal entry", logger.Err(err), logger.String("journal_id", journalID))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	if entry == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "journal entry", journalID))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteJournal handles DELETE /api/v1/journals/:id
func (h *JournalHandler) DeleteJournal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	journalID := c.Param("id")
	if err := h.journalService.DeleteJournal(c.Request.Context(), userID.(string), journalID); err != nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(apierror.GetRequestID(c), "journal entry", journalID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "journal entry deleted"})
}
