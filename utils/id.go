package utils

import (
	"fmt"
	"time"
)

// ReportID 生成报告编号，形如 NW_1_20250830_153012
func ReportID(userID uint) string {
	return fmt.Sprintf("NW_%d_%s", userID, time.Now().Format("20060102_150405"))
}
