package controllers

import (
	"net/http"

	"github.com/Sofzenix/neurowell/models"
	"github.com/Sofzenix/neurowell/services"
	"github.com/gin-gonic/gin"
)

// ReportController 报告生成与归档接口
type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// GenerateReport 生成报告并归档后返回
func (rc *ReportController) GenerateReport(c *gin.Context) {
	var req models.GenerateReportRequest
	// 请求体可为空，全部取默认值
	if err := c.ShouldBindJSON(&req); err != nil {
		req = models.GenerateReportRequest{}
	}
	if req.UserID == 0 {
		req.UserID = 1
	}
	if req.ReportType == "" {
		req.ReportType = models.ReportWeekly
	}

	report, err := rc.reports.GenerateReport(req.UserID, req.ReportType)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"report":  report,
		"message": "Report generated successfully",
	})
}

// ListReports 报告归档列表，按生成时间倒序
func (rc *ReportController) ListReports(c *gin.Context) {
	reports, err := rc.reports.ListReports(userIDParam(c))
	if err != nil {
		respondError(c, err, "Failed to list reports")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reports": reports,
		"count":   len(reports),
	})
}
