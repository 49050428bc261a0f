package routes

import (
	"github.com/Lappanawat/flowmind-ranocturia/config"
	"github.com/Lappanawat/flowmind-ranocturia/controllers"
	"github.com/Lappanawat/flowmind-ranocturia/middlewares"
	"github.com/Lappanawat/flowmind-ranocturia/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config) (*gin.Engine, error) {
	ocr, err := services.NewOCREngine(cfg)
	if err != nil {
		return nil, err
	}

	diarySvc := services.NewDiaryService(ocr)
	analysisSvc := services.NewAnalysisService(services.NewMetricsService(cfg.TotalOutputLimitMl))
	hub := services.NewRealtimeHub()

	diaryCtl := controllers.NewDiaryController(diarySvc)
	analysisCtl := controllers.NewAnalysisController(analysisSvc)
	rtCtl := controllers.NewRealtimeController(hub, analysisSvc)

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	diary := r.Group("/diary")
	{
		diary.POST("/extract", diaryCtl.ExtractTable)
		diary.POST("/parse", diaryCtl.ParseText)
		diary.POST("/analyze", analysisCtl.Analyze)
		diary.GET("/sample", diaryCtl.SampleTable)
		diary.GET("/timeslots", diaryCtl.TimeSlots)
	}

	r.GET("/ws/analyze", rtCtl.AnalyzeWS)

	return r, nil
}
