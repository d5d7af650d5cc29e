package services

import (
	"strings"
	"time"

	"github.com/Sofzenix/neurowell/models"

	"gorm.io/gorm"
)

// EventStore 情绪观测记录存储，只追加不修改
type EventStore struct {
	db *gorm.DB
}

// NewEventStore 用注入的数据库句柄构造存储
func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

// WithTx 返回绑定到事务句柄的存储副本
func (s *EventStore) WithTx(tx *gorm.DB) *EventStore {
	return &EventStore{db: tx}
}

// Append 追加一条情绪记录，返回记录ID
func (s *EventStore) Append(userID uint, emotion, source string, confidence float64) (models.EmotionLog, error) {
	if strings.TrimSpace(emotion) == "" {
		return models.EmotionLog{}, NewValidationError("Emotion not specified")
	}
	if confidence < 0 || confidence > 1 {
		return models.EmotionLog{}, NewValidationError("Confidence must be between 0 and 1")
	}

	log := models.EmotionLog{
		UserID:     userID,
		Emotion:    strings.ToLower(emotion),
		Source:     source,
		Confidence: confidence,
		Timestamp:  time.Now(),
	}
	if err := s.db.Create(&log).Error; err != nil {
		return models.EmotionLog{}, err
	}
	return log, nil
}

// QueryByUser 按用户查询情绪记录，可选按情绪和时间范围过滤
func (s *EventStore) QueryByUser(userID uint, emotion string, from, to *time.Time) ([]models.EmotionLog, error) {
	query := s.db.Where("user_id = ?", userID)
	if emotion != "" {
		query = query.Where("emotion = ?", strings.ToLower(emotion))
	}
	if from != nil {
		query = query.Where("timestamp >= ?", *from)
	}
	if to != nil {
		query = query.Where("timestamp <= ?", *to)
	}

	var logs []models.EmotionLog
	if err := query.Order("timestamp").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// AggregateConfidence 某情绪的平均置信度，无记录时second返回false
func (s *EventStore) AggregateConfidence(userID uint, emotion string) (float64, bool, error) {
	var row struct {
		Avg   *float64
		Count int64
	}
	err := s.db.Model(&models.EmotionLog{}).
		Select("AVG(confidence) as avg, COUNT(*) as count").
		Where("user_id = ? AND emotion = ?", userID, strings.ToLower(emotion)).
		Scan(&row).Error
	if err != nil {
		return 0, false, err
	}
	if row.Count == 0 || row.Avg == nil {
		return 0, false, nil
	}
	return *row.Avg, true, nil
}

// Statistics 用户整体统计：总记录数、活跃天数、首末时间和各情绪频次
func (s *EventStore) Statistics(userID uint) (models.Statistics, error) {
	var stats models.Statistics

	if err := s.db.Model(&models.EmotionLog{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalLogs).Error; err != nil {
		return stats, err
	}

	if err := s.db.Raw(
		"SELECT COUNT(DISTINCT DATE(timestamp)) FROM emotion_logs WHERE user_id = ?",
		userID,
	).Scan(&stats.ActiveDays).Error; err != nil {
		return stats, err
	}

	if stats.TotalLogs > 0 {
		var first, last models.EmotionLog
		if err := s.db.Where("user_id = ?", userID).
			Order("timestamp").First(&first).Error; err != nil {
			return stats, err
		}
		if err := s.db.Where("user_id = ?", userID).
			Order("timestamp DESC").First(&last).Error; err != nil {
			return stats, err
		}
		stats.FirstLog = first.Timestamp.Format(time.RFC3339)
		stats.LastLog = last.Timestamp.Format(time.RFC3339)
	}

	var rows []struct {
		Emotion string
		Count   int64
		Avg     float64
	}
	if err := s.db.Model(&models.EmotionLog{}).
		Select("emotion, COUNT(*) as count, AVG(confidence * 100) as avg").
		Where("user_id = ?", userID).
		Group("emotion").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return stats, err
	}

	stats.EmotionStats = make([]models.EmotionStat, 0, len(rows))
	for _, row := range rows {
		stats.EmotionStats = append(stats.EmotionStats, models.EmotionStat{
			Emotion:       row.Emotion,
			Count:         row.Count,
			AvgConfidence: round1(row.Avg),
		})
	}
	return stats, nil
}
