package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"studyplan/services/planner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// currentUserID reads the user set by JWTAuthUserMiddleware. It writes the
// 401 itself when the user is missing.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID in context"})
		return "", false
	}
	return userID, true
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, planner.ErrInvalidSession), errors.Is(err, planner.ErrInvalidCapacity):
		status = http.StatusBadRequest
	case errors.Is(err, planner.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, planner.ErrForbidden):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		getLogger(c).Error(msg, zap.Error(err))
	} else {
		getLogger(c).Warn(msg, zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg, "message": err.Error()})
}

func bindError(c *gin.Context, err error) {
	getLogger(c).Warn("Invalid request payload", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
}

// intQuery parses an optional integer query parameter.
func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameter", "message": name + " must be an integer"})
		return 0, false
	}
	return n, true
}
