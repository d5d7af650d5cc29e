package models

import "time"

// 情绪来源
const (
	SourceFace   = "face"
	SourceVoice  = "voice"
	SourceText   = "text"
	SourceManual = "manual"
	SourceSample = "sample"
)

// EmotionLog 情绪观测记录，只追加不修改
type EmotionLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Emotion    string    `gorm:"type:varchar(50);not null" json:"emotion"`
	Source     string    `gorm:"type:varchar(20);not null" json:"source"`
	Confidence float64   `gorm:"default:0.8" json:"confidence"`
	Timestamp  time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

// TableName 与既有表名保持一致
func (EmotionLog) TableName() string {
	return "emotion_logs"
}
