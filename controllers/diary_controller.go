package controllers

import (
	"errors"
	"net/http"

	"github.com/Lappanawat/flowmind-ranocturia/models"
	"github.com/Lappanawat/flowmind-ranocturia/services"
	"github.com/Lappanawat/flowmind-ranocturia/utils"

	"github.com/gin-gonic/gin"
)

type DiaryController struct {
	Svc *services.DiaryService
}

func NewDiaryController(svc *services.DiaryService) *DiaryController {
	return &DiaryController{Svc: svc}
}

type ExtractRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /diary/extract { "image_base64": "data:image/jpeg;base64,…" }
func (dc *DiaryController) ExtractTable(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	table, raw, err := dc.Svc.ExtractFromImage(c.Request.Context(), req.ImageBase64)
	if err != nil {
		if errors.Is(err, utils.ErrImageDecode) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table, "raw_text": raw})
}

type ParseRequest struct {
	Text string `json:"text"`
}

// POST /diary/parse — parse recognizer text without the image round trip.
func (dc *DiaryController) ParseText(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": dc.Svc.ParseText(req.Text)})
}

// GET /diary/sample — example rows for first-time users.
func (dc *DiaryController) SampleTable(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"table": models.SampleDiary()})
}

// GET /diary/timeslots — options for the table editor's time column.
func (dc *DiaryController) TimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"time_slots": utils.GenerateTimeSlots()})
}
