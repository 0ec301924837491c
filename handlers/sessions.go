package handlers

import (
	"net/http"

	"studyplan/models"
	"studyplan/services/planner"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves the study session resource.
type SessionHandler struct {
	Service planner.PlannerService
}

func NewSessionHandler(svc planner.PlannerService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.SessionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	view, err := h.Service.CreateSession(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, "Failed to create session", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Session created", "session": view})
}

// BulkCreateSessionsHandler accepts the whole batch or none of it.
func (h *SessionHandler) BulkCreateSessionsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.BulkCreateSessionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	views, err := h.Service.BulkCreate(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, "Failed to create sessions", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sessions created", "sessions": views})
}

func (h *SessionHandler) ListSessionsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	offset, ok := intQuery(c, "week", 0)
	if !ok {
		return
	}

	week, err := h.Service.ListWeek(c.Request.Context(), userID, offset)
	if err != nil {
		respondError(c, "Failed to list sessions", err)
		return
	}
	c.JSON(http.StatusOK, week)
}

func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	view, err := h.Service.GetSession(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, "Failed to fetch session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

func (h *SessionHandler) UpdateSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	view, err := h.Service.UpdateSession(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, "Failed to update session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session updated", "session": view})
}

func (h *SessionHandler) StartSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	view, err := h.Service.StartSession(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, "Failed to start session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

func (h *SessionHandler) CompleteSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	view, err := h.Service.CompleteSession(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, "Failed to complete session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

func (h *SessionHandler) DeleteSessionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteSession(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, "Failed to delete session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}
