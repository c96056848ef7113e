package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"habit-coach/internal/config"
	"habit-coach/internal/handler"
	"habit-coach/internal/logger"
	"habit-coach/internal/middleware"
	"habit-coach/internal/model"
	"habit-coach/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.Routine{}, &model.Adjustment{}, &model.HistoryEntry{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	routineSvc := service.NewRoutineService(db)
	engine := service.NewAdjustEngine(db)
	lifecycleSvc := service.NewLifecycleService(db)
	reportSvc := service.NewReportService(db)

	routineH := handler.NewRoutineHandler(routineSvc)
	adjustH := handler.NewAdjustHandler(engine, lifecycleSvc)
	reportH := handler.NewReportHandler(reportSvc)

	r := gin.Default()
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "habit-coach API is running"})
	})

	r.POST("/routines", routineH.Create)
	r.GET("/routines/:user_id", routineH.List)
	r.GET("/adjust_habits/:user_id", adjustH.Adjust)
	r.POST("/update_habit/:adjustment_id", adjustH.Update)
	r.GET("/habit_progress/:user_id", reportH.Progress)
	r.GET("/habit_history/:user_id", reportH.History)
	r.GET("/daily_reminders/:user_id", reportH.Reminders)
	r.GET("/chat_insights/:user_id", reportH.Insights)
	r.GET("/habit_projections/:user_id", reportH.Projections)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
