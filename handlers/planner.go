package handlers

import (
	"net/http"

	"studyplan/models"
	"studyplan/services/planner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler serves slot suggestion and plan commits.
type PlannerHandler struct {
	Service planner.PlannerService
}

func NewPlannerHandler(svc planner.PlannerService) *PlannerHandler {
	return &PlannerHandler{Service: svc}
}

func (h *PlannerHandler) SuggestHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.SuggestSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	outcome, err := h.Service.Suggest(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, "Failed to suggest sessions", err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *PlannerHandler) PlanHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.PlanSessionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	outcome, err := h.Service.Plan(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, "Failed to plan sessions", err)
		return
	}
	if req.Commit {
		getLogger(c).Info("Plan committed",
			zap.String("userId", userID),
			zap.Int("created", len(outcome.Created)),
			zap.Int("unplacedMinutes", outcome.UnplacedMinutes),
		)
		c.JSON(http.StatusCreated, outcome)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *PlannerHandler) TemplateHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.TemplatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	outcome, err := h.Service.PlanTemplate(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, "Failed to apply template", err)
		return
	}
	status := http.StatusOK
	if req.Commit {
		status = http.StatusCreated
	}
	c.JSON(status, outcome)
}

func (h *PlannerHandler) DistributeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	outcome, err := h.Service.Distribute(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, "Failed to distribute sessions", err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}
