package controllers

import (
	"net/http"

	"github.com/Lappanawat/flowmind-ranocturia/models"
	"github.com/Lappanawat/flowmind-ranocturia/services"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	Svc *services.AnalysisService
}

func NewAnalysisController(svc *services.AnalysisService) *AnalysisController {
	return &AnalysisController{Svc: svc}
}

type AnalyzeRequest struct {
	Rows []models.VoidingEvent `json:"rows" binding:"required"`
	Age  int                   `json:"age"`
}

// POST /diary/analyze — compute the screening indices for an (edited)
// table. Stateless: nothing is kept after the response.
func (ac *AnalysisController) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Age < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must be non-negative"})
		return
	}
	for _, r := range req.Rows {
		if r.IntakeMl < 0 || r.OutputMl < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "volumes must be non-negative"})
			return
		}
	}

	c.JSON(http.StatusOK, ac.Svc.Analyze(models.VoidingDiary(req.Rows), req.Age))
}
