package models

// DailyMood 每用户每天一条的滚动心情记录
// 同一天的后续观测会更新 mood_score 和 dominant_emotion
type DailyMood struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint   `gorm:"not null;uniqueIndex:idx_daily_mood_user_date" json:"user_id"`
	Date            string `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_mood_user_date" json:"date"` // YYYY-MM-DD
	MoodScore       int    `json:"mood_score"` // 0-100
	DominantEmotion string `gorm:"type:varchar(50)" json:"dominant_emotion"`
}

// TableName 与既有表名保持一致
func (DailyMood) TableName() string {
	return "daily_mood"
}
