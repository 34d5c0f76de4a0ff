package app

import (
	"exam_prep_backend/docs"
	"exam_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/textbooks", c.textbook.GetTextbooks)
		api.GET("/textbooks/:id", c.textbook.GetTextbook)
		api.POST("/textbooks", c.textbook.CreateTextbook)
		api.PUT("/textbooks/:id", c.textbook.UpdateTextbook)
		api.DELETE("/textbooks/:id", c.textbook.DeleteTextbook)
		api.PUT("/textbooks/:id/anki-deck", c.textbook.LinkAnkiDeck)

		api.GET("/schedules", c.schedule.GetSchedules)
		api.GET("/schedules/:id", c.schedule.GetSchedule)
		api.POST("/schedules/resolve", c.schedule.ResolveSchedule)
		api.POST("/schedules", c.schedule.CreateSchedule)
		api.PUT("/schedules/:id", c.schedule.UpdateSchedule)
		api.DELETE("/schedules/:id", c.schedule.DeleteSchedule)

		api.GET("/study-logs", c.studyLog.GetLogs)
		api.POST("/study-logs", c.studyLog.UpsertLog)
		api.DELETE("/study-logs/:id", c.studyLog.DeleteLog)

		api.GET("/exams", c.exam.GetExams)
		api.GET("/exams/:id", c.exam.GetExam)
		api.POST("/exams", c.exam.CreateExam)
		api.PUT("/exams/:id", c.exam.UpdateExam)
		api.DELETE("/exams/:id", c.exam.DeleteExam)

		api.GET("/universities", c.exam.GetUniversities)
		api.POST("/universities", c.exam.CreateUniversity)
		api.PUT("/universities/:id", c.exam.UpdateUniversity)
		api.DELETE("/universities/:id", c.exam.DeleteUniversity)

		api.GET("/timeline", c.timeline.GetTimeline)
		api.GET("/calendar/layout", c.calendar.GetLayout)

		api.GET("/progress", c.progress.GetAllProgress)
		api.GET("/progress/:textbookId", c.progress.GetProgress)

		api.GET("/analytics/heatmap", c.analytics.GetHeatmap)

		api.GET("/anki/media", c.media.GetMediaList)
		api.POST("/anki/media", c.media.UploadImage)
		api.DELETE("/anki/media/:id", c.media.DeleteMedia)
	}
}
