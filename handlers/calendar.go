package handlers

import (
	"net/http"
	"strconv"
	"time"

	"studyplan/config"
	"studyplan/models"
	"studyplan/services/planner"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves week windows, capacity and weekly stats.
type CalendarHandler struct {
	Service planner.PlannerService
}

func NewCalendarHandler(svc planner.PlannerService) *CalendarHandler {
	return &CalendarHandler{Service: svc}
}

func (h *CalendarHandler) WeekHandler(c *gin.Context) {
	offset, ok := intQuery(c, "offset", 0)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Service.Week(offset))
}

func (h *CalendarHandler) CapacityHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	offset, ok := intQuery(c, "offset", 0)
	if !ok {
		return
	}

	report, err := h.Service.WeekCapacity(c.Request.Context(), userID, offset)
	if err != nil {
		respondError(c, "Failed to compute capacity", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// SetCapacityHandler updates one weekday, 0=Monday .. 6=Sunday.
func (h *CalendarHandler) SetCapacityHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day", "message": "day must be an integer between 0 and 6"})
		return
	}
	var req models.UpdateCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.Service.SetDayCapacity(c.Request.Context(), userID, day, *req.Minutes); err != nil {
		respondError(c, "Failed to update capacity", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Capacity updated", "day": day, "minutes": *req.Minutes})
}

// StatsHandler takes weekStart as RFC 3339 or a YYYY-MM-DD date in the
// planning timezone; empty means the current week.
func (h *CalendarHandler) StatsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	weekStart, err := parseWeekStart(c.Query("weekStart"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekStart", "message": err.Error()})
		return
	}

	report, err := h.Service.WeekStats(c.Request.Context(), userID, weekStart)
	if err != nil {
		respondError(c, "Failed to compute week stats", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func parseWeekStart(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, config.Location())
}
