package handler

import (
	"net/http"
	"strconv"

	"habit-coach/internal/logger"
	"habit-coach/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{ reports *service.ReportService }

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GET /habit_progress/:user_id
func (h *ReportHandler) Progress(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	report, err := h.reports.Progress(c.Request.Context(), userID)
	if err != nil {
		fail(c, "report.progress", userID, err)
		return
	}
	if report == nil {
		c.JSON(http.StatusOK, gin.H{"message": "no habit progress data found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /habit_history/:user_id
func (h *ReportHandler) History(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	report, err := h.reports.History(c.Request.Context(), userID)
	if err != nil {
		fail(c, "report.history", userID, err)
		return
	}
	if report == nil {
		c.JSON(http.StatusOK, gin.H{"message": "no habit history found for this user"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /daily_reminders/:user_id
func (h *ReportHandler) Reminders(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	reminders, err := h.reports.Reminders(c.Request.Context(), userID)
	if err != nil {
		fail(c, "report.reminders", userID, err)
		return
	}
	if len(reminders) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no habit reminders for today"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_reminders": reminders})
}

// GET /chat_insights/:user_id
func (h *ReportHandler) Insights(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	insights, err := h.reports.Insights(c.Request.Context(), userID)
	if err != nil {
		fail(c, "report.insights", userID, err)
		return
	}
	if len(insights) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no habit history found for this user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

// GET /habit_projections/:user_id
func (h *ReportHandler) Projections(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	projections, err := h.reports.Projections(c.Request.Context(), userID)
	if err != nil {
		fail(c, "report.projections", userID, err)
		return
	}
	if len(projections) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no habit progress found for this user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"habit_projections": projections})
}

func userIDParam(c *gin.Context) (int, bool) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return userID, true
}

func fail(c *gin.Context, event string, userID int, err error) {
	logger.Error(event+" failed", "uid", userID, "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
