package handlers

import (
	"errors"
	"net/http"
	"time"

	"carelog-go/internal/models"
	"carelog-go/internal/repository"
	"carelog-go/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EventsHandler struct {
	log   *zap.Logger
	batch *services.BatchService
}

func NewEventsHandler(log *zap.Logger, batch *services.BatchService) *EventsHandler {
	return &EventsHandler{log: log, batch: batch}
}

type eventPayload struct {
	EventTime       time.Time `json:"eventTime" binding:"required"`
	LoggedTime      time.Time `json:"loggedTime"`
	AssistanceLevel string    `json:"assistanceLevel"`
	IsRefusal       *bool     `json:"isRefusal"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
}

type ingestPayload struct {
	ResidentID int            `json:"residentId" binding:"required"`
	Domain     string         `json:"domain" binding:"required"`
	Events     []eventPayload `json:"events" binding:"required"`
}

// Ingest accepts normalized events for one resident/domain. Malformed
// assistance levels are rejected here, before anything reaches a scorer.
// Sources without structured fields fall back to the text heuristics.
// POST /api/events
func (h *EventsHandler) Ingest(c *gin.Context) {
	var payload ingestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(payload.Events) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one event is required"})
		return
	}

	domain, err := repository.GetDomainByName(payload.Domain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown care domain " + payload.Domain})
			return
		}
		h.log.Error("Failed to look up domain", zap.String("domain", payload.Domain), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up domain"})
		return
	}

	events := make([]models.CareEvent, 0, len(payload.Events))
	for i, e := range payload.Events {
		var level models.AssistanceLevel
		if e.AssistanceLevel != "" {
			level, err = models.ParseAssistanceLevel(e.AssistanceLevel)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "eventIndex": i})
				return
			}
		} else {
			level = models.ClassifyAssistance(e.Title, e.Description)
		}

		isRefusal := models.DetectRefusal(e.Title, e.Description)
		if e.IsRefusal != nil {
			isRefusal = *e.IsRefusal
		}

		loggedTime := e.LoggedTime
		if loggedTime.IsZero() {
			loggedTime = e.EventTime
		}

		events = append(events, models.CareEvent{
			ResidentID:      payload.ResidentID,
			DomainID:        domain.ID,
			EventTime:       e.EventTime,
			LoggedTime:      loggedTime,
			AssistanceLevel: level,
			IsRefusal:       isRefusal,
			Title:           e.Title,
			Description:     e.Description,
		})
	}

	if err := repository.SaveEventsTx(events); err != nil {
		h.log.Error("Failed to save events", zap.Int("residentID", payload.ResidentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save events"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"saved": len(events)})
}

// Recalculate triggers a batch recalculation run outside the nightly
// schedule. The run happens in the background; an already-running batch is
// reported as a conflict.
// POST /api/recalculate
func (h *EventsHandler) Recalculate(c *gin.Context) {
	go func() {
		if err := h.batch.Run(time.Now().UTC()); err != nil {
			h.log.Error("Manual batch recalculation failed", zap.Error(err))
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"status": "recalculation started"})
}
