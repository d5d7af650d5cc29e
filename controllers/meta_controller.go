package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// MetaController 健康检查和服务信息接口
type MetaController struct{}

// HealthCheck 健康检查
func (mc *MetaController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "neurowell-analytics",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

// ServiceInfo 服务信息
func (mc *MetaController) ServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     "Neurowell Analytics API",
		"description": "Mood aggregation and reporting for Neurowell Emotion Tracker",
		"endpoints": gin.H{
			"dashboard": "/api/analytics/dashboard",
			"profile":   "/api/analytics/profile",
			"charts":    "/api/analytics/charts/[radar|bar|pie]",
			"analyzer":  "/api/analytics/analyzer/[log|detect]",
			"report":    "/api/analytics/report/generate",
			"stats":     "/api/analytics/stats",
		},
		"database": "MySQL",
	})
}
