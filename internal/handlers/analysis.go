package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"carelog-go/internal/config"
	"carelog-go/internal/repository"
	"carelog-go/internal/scoring"
	"carelog-go/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AnalysisHandler struct {
	log    *zap.Logger
	engine *scoring.Engine
}

func NewAnalysisHandler(log *zap.Logger, engine *scoring.Engine) *AnalysisHandler {
	return &AnalysisHandler{log: log, engine: engine}
}

func defaultWindowDays() int {
	if windows := config.Conf.Scoring.WindowDays; len(windows) > 0 {
		return windows[0]
	}
	return 7
}

// Analyze runs a fresh analysis for one resident in one domain.
// GET /api/residents/:id/analysis?domain=Oral%20Care&days=7
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	residentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident id"})
		return
	}

	domainName := c.Query("domain")
	if domainName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain query parameter is required"})
		return
	}

	windowDays, err := utils.ParseWindowDays(c.Query("days"), defaultWindowDays())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	domain, err := repository.GetDomainByName(domainName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown care domain " + domainName})
			return
		}
		h.log.Error("Failed to look up domain", zap.String("domain", domainName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up domain"})
		return
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -windowDays)
	events, err := repository.GetEventsForWindow(residentID, domain.ID, start, end)
	if err != nil {
		h.log.Error("Failed to fetch events", zap.Int("residentID", residentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}

	result, err := h.engine.Analyze(residentID, domainName, events, windowDays)
	if err != nil {
		var notFound *scoring.DomainNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// History returns stored scores for a resident/domain pair.
// GET /api/residents/:id/history?domain=Toileting&days=7&limit=30
func (h *AnalysisHandler) History(c *gin.Context) {
	residentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resident id"})
		return
	}

	domainName := c.Query("domain")
	if domainName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain query parameter is required"})
		return
	}

	windowDays, err := utils.ParseWindowDays(c.Query("days"), defaultWindowDays())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := 30
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
	}

	domain, err := repository.GetDomainByName(domainName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown care domain " + domainName})
			return
		}
		h.log.Error("Failed to look up domain", zap.String("domain", domainName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up domain"})
		return
	}

	history, err := repository.GetScoreHistory(residentID, domain.ID, windowDays, limit)
	if err != nil {
		h.log.Error("Failed to fetch score history", zap.Int("residentID", residentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch score history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"residentId": residentID,
		"domain":     domainName,
		"windowDays": windowDays,
		"history":    history,
	})
}
