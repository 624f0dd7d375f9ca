package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"carelog-go/internal/repository"
	"carelog-go/internal/scoring"
	"carelog-go/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type DashboardHandler struct {
	log    *zap.Logger
	engine *scoring.Engine
}

func NewDashboardHandler(log *zap.Logger, engine *scoring.Engine) *DashboardHandler {
	return &DashboardHandler{log: log, engine: engine}
}

// unitCells computes one rollup cell per domain for a unit by running fresh
// analyses over the stored events. The engine is pure and cheap, so the
// dashboard always reflects current data rather than the last batch run.
func (h *DashboardHandler) unitCells(unitID, windowDays int) (string, []scoring.RollupCell, error) {
	unit, err := repository.GetCareUnit(unitID)
	if err != nil {
		return "", nil, err
	}

	residents, err := repository.GetResidentsForUnit(unitID)
	if err != nil {
		return "", nil, err
	}
	domains, err := repository.GetDomains()
	if err != nil {
		return "", nil, err
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -windowDays)

	cells := make([]scoring.RollupCell, 0, len(domains))
	for _, domain := range domains {
		results := make([]scoring.AnalysisResult, 0, len(residents))
		for _, resident := range residents {
			events, err := repository.GetEventsForWindow(resident.ID, domain.ID, start, end)
			if err != nil {
				return "", nil, err
			}
			result, err := h.engine.Analyze(resident.ID, domain.Name, events, windowDays)
			if err != nil {
				return "", nil, err
			}
			results = append(results, result)
		}
		cells = append(cells, scoring.Rollup(unit.Name, domain.Name, results))
	}
	return unit.Name, cells, nil
}

// Rollup returns the per-domain worst-wins summary for a unit.
// GET /api/units/:id/rollup?days=7
func (h *DashboardHandler) Rollup(c *gin.Context) {
	unitID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid unit id"})
		return
	}

	windowDays, err := utils.ParseWindowDays(c.Query("days"), defaultWindowDays())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unitName, cells, err := h.unitCells(unitID, windowDays)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown care unit"})
			return
		}
		h.log.Error("Failed to build rollup", zap.Int("unitID", unitID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build rollup"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"unit":       unitName,
		"windowDays": windowDays,
		"cells":      cells,
	})
}

// Chart renders a bar chart of CRS level counts per domain for a unit.
// GET /dashboard/units/:id/chart?days=7
func (h *DashboardHandler) Chart(c *gin.Context) {
	unitID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid unit id")
		return
	}

	windowDays, err := utils.ParseWindowDays(c.Query("days"), defaultWindowDays())
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	unitName, cells, err := h.unitCells(unitID, windowDays)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "unknown care unit")
			return
		}
		h.log.Error("Failed to build chart data", zap.Int("unitID", unitID), zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to build chart data")
		return
	}

	domains := make([]string, 0, len(cells))
	var green, amber, red []opts.BarData
	for _, cell := range cells {
		domains = append(domains, cell.DomainName)
		green = append(green, opts.BarData{Value: cell.GreenCount})
		amber = append(amber, opts.BarData{Value: cell.AmberCount})
		red = append(red, opts.BarData{Value: cell.RedCount})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Care risk by domain: " + unitName,
			Subtitle: "Residents per CRS level, " + strconv.Itoa(windowDays) + "-day window",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(domains).
		AddSeries("GREEN", green).
		AddSeries("AMBER", amber).
		AddSeries("RED", red)

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := bar.Render(c.Writer); err != nil {
		h.log.Error("Failed to render chart", zap.Error(err))
		c.String(http.StatusInternalServerError, "failed to render chart")
	}
}
