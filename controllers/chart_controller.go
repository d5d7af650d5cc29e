package controllers

import (
	"net/http"

	"github.com/Sofzenix/neurowell/services"
	"github.com/gin-gonic/gin"
)

// ChartController 单张图表和进度条接口
type ChartController struct {
	projector *services.ChartProjector
}

func NewChartController(projector *services.ChartProjector) *ChartController {
	return &ChartController{projector: projector}
}

// GetRadarChart 情绪雷达图
func (cc *ChartController) GetRadarChart(c *gin.Context) {
	radar, err := cc.projector.RadarChart(userIDParam(c))
	if err != nil {
		respondError(c, err, "Failed to load radar chart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"chart": gin.H{
			"type": "radar",
			"data": radar,
		},
	})
}

// GetBarChart 最近7天心情柱状图
func (cc *ChartController) GetBarChart(c *gin.Context) {
	bar, err := cc.projector.BarChart(userIDParam(c))
	if err != nil {
		respondError(c, err, "Failed to load bar chart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"chart": gin.H{
			"type": "bar",
			"data": bar,
			"options": gin.H{
				"scales": gin.H{
					"y": gin.H{
						"beginAtZero": true,
						"max":         100,
					},
				},
			},
		},
	})
}

// GetPieChart 情绪占比饼图
func (cc *ChartController) GetPieChart(c *gin.Context) {
	pie, err := cc.projector.PieChart(userIDParam(c))
	if err != nil {
		respondError(c, err, "Failed to load pie chart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"chart": gin.H{
			"type": "pie",
			"data": pie,
		},
	})
}

// GetProgress 进度条数据，按前端展示格式返回列表
func (cc *ChartController) GetProgress(c *gin.Context) {
	progress, err := cc.projector.Progress(userIDParam(c))
	if err != nil {
		respondError(c, err, "Failed to load progress data")
		return
	}

	// 固定顺序输出
	progressBars := make([]gin.H, 0, 3)
	for _, emotion := range []string{"happy", "calm", "anxious"} {
		item := progress[emotion]
		progressBars = append(progressBars, gin.H{
			"name":  item.Label,
			"value": item.Score,
			"width": item.Width,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"progress_bars": progressBars,
	})
}
