package models

import "time"

// 报告类型
const (
	ReportWeekly  = "weekly"
	ReportMonthly = "monthly"
	ReportCustom  = "custom"
)

// Report 生成后的报告归档记录，只追加不修改
type Report struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	ReportType  string    `gorm:"type:varchar(20)" json:"report_type"`
	ReportData  string    `gorm:"type:text" json:"-"` // JSON
	GeneratedAt time.Time `gorm:"autoCreateTime" json:"generated_at"`
}
