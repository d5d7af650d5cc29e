package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Sofzenix/neurowell/services"
	"github.com/gin-gonic/gin"
)

// DashboardController 仪表盘和个人资料接口
type DashboardController struct {
	profiles  *services.ProfileService
	moods     *services.DailyMoodStore
	projector *services.ChartProjector
	cache     *services.DashboardCache
}

func NewDashboardController(profiles *services.ProfileService, moods *services.DailyMoodStore,
	projector *services.ChartProjector, cache *services.DashboardCache) *DashboardController {
	return &DashboardController{profiles: profiles, moods: moods, projector: projector, cache: cache}
}

// GetDashboard 返回仪表盘全量数据：资料摘要、三张图表和进度条
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	userID := userIDParam(c)

	// 命中缓存直接返回
	if payload, ok := dc.cache.Get(c.Request.Context(), userID); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	userInfo, err := dc.profiles.GetUserInfo(userID)
	if err != nil {
		respondError(c, err, "Failed to load dashboard data")
		return
	}
	moodScore, err := dc.moods.MoodScore(userID)
	if err != nil {
		respondError(c, err, "Failed to load dashboard data")
		return
	}

	radar, err := dc.projector.RadarChart(userID)
	if err != nil {
		respondError(c, err, "Failed to load dashboard data")
		return
	}
	bar, err := dc.projector.BarChart(userID)
	if err != nil {
		respondError(c, err, "Failed to load dashboard data")
		return
	}
	pie, err := dc.projector.PieChart(userID)
	if err != nil {
		respondError(c, err, "Failed to load dashboard data")
		return
	}
	progress, err := dc.projector.Progress(userID)
	if err != nil {
		respondError(c, err, "Failed to load dashboard data")
		return
	}

	response := gin.H{
		"success": true,
		"profile": gin.H{
			"name":       userInfo.FullName,
			"email":      userInfo.Email,
			"mood_score": moodScore,
		},
		"charts": gin.H{
			"radar": radar,
			"bar":   bar,
			"pie":   pie,
		},
		"progress_bars": progress,
		"timestamp":     time.Now().Format(time.RFC3339),
	}

	if payload, err := json.Marshal(response); err == nil {
		dc.cache.Set(c.Request.Context(), userID, payload)
	}
	c.JSON(http.StatusOK, response)
}

// GetProfile 返回完整个人资料和当前心情分数
func (dc *DashboardController) GetProfile(c *gin.Context) {
	userID := userIDParam(c)

	userInfo, err := dc.profiles.GetUserInfo(userID)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	moodScore, err := dc.moods.MoodScore(userID)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"profile": gin.H{
			"name":         userInfo.FullName,
			"email":        userInfo.Email,
			"age":          userInfo.Age,
			"phone":        userInfo.Phone,
			"gender":       userInfo.Gender,
			"member_since": userInfo.MemberSince,
			"mood_score":   moodScore,
		},
	})
}
