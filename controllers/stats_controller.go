package controllers

import (
	"net/http"

	"github.com/Sofzenix/neurowell/services"
	"github.com/gin-gonic/gin"
)

// StatsController 用户统计接口
type StatsController struct {
	events *services.EventStore
}

func NewStatsController(events *services.EventStore) *StatsController {
	return &StatsController{events: events}
}

// GetStats 返回用户整体统计
func (sc *StatsController) GetStats(c *gin.Context) {
	stats, err := sc.events.Statistics(userIDParam(c))
	if err != nil {
		respondError(c, err, "Failed to load statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
