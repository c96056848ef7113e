package handler

import (
	"net/http"
	"strconv"

	"habit-coach/internal/logger"
	"habit-coach/internal/model"
	"habit-coach/internal/service"

	"github.com/gin-gonic/gin"
)

type RoutineHandler struct{ routines *service.RoutineService }

func NewRoutineHandler(routines *service.RoutineService) *RoutineHandler {
	return &RoutineHandler{routines: routines}
}

// POST /routines
func (h *RoutineHandler) Create(c *gin.Context) {
	var req model.CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	id, err := h.routines.Create(c.Request.Context(), req)
	if err != nil {
		logger.Error("routine.create failed", "uid", req.UserID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("routine.create", "uid", req.UserID, "routine_id", id, "date", req.Date)
	c.JSON(http.StatusOK, gin.H{"routine_id": id, "message": "routine added"})
}

// GET /routines/:user_id
func (h *RoutineHandler) List(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	routines, err := h.routines.ListByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("routine.list failed", "uid", userID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(routines) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no routine data found for this user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"routines": routines})
}
