package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"habit-coach/internal/logger"
	"habit-coach/internal/model"
	"habit-coach/internal/service"

	"github.com/gin-gonic/gin"
)

type AdjustHandler struct {
	engine    *service.AdjustEngine
	lifecycle *service.LifecycleService
}

func NewAdjustHandler(engine *service.AdjustEngine, lifecycle *service.LifecycleService) *AdjustHandler {
	return &AdjustHandler{engine: engine, lifecycle: lifecycle}
}

// GET /adjust_habits/:user_id
//
// Runs the rule engine. "No routine data" and "nothing new to suggest"
// are different answers: the first comes back as a message, the second
// as an empty adjustments list.
func (h *AdjustHandler) Adjust(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	proposals, err := h.engine.Evaluate(c.Request.Context(), userID)
	if errors.Is(err, service.ErrNoRoutine) {
		c.JSON(http.StatusOK, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		logger.Error("adjust.run failed", "uid", userID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if proposals == nil {
		proposals = []model.ProposedAdjustment{}
	}
	logger.Info("adjust.run", "uid", userID, "proposals", len(proposals))
	c.JSON(http.StatusOK, model.AdjustmentsResponse{Adjustments: proposals})
}

// POST /update_habit/:adjustment_id  body: {"status":"accepted"|"rejected"}
func (h *AdjustHandler) Update(c *gin.Context) {
	adjustmentID, err := strconv.Atoi(c.Param("adjustment_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid adjustment id"})
		return
	}

	var req model.UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry, err := h.lifecycle.Resolve(c.Request.Context(), adjustmentID, model.Status(req.Status))
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusOK, gin.H{"message": err.Error()})
		return
	case err != nil:
		logger.Error("resolve.failed", "adjustment_id", adjustmentID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("resolve.ok", "adjustment_id", adjustmentID, "uid", entry.UserID, "habit", entry.Habit, "status", entry.Status)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("habit adjustment %d marked as %s and moved to history", adjustmentID, entry.Status),
	})
}
