package services

import (
	"strings"

	"github.com/Sofzenix/neurowell/models"

	"gorm.io/gorm"
)

// Recorder 把一次情绪观测的落库和当天聚合合并放进同一个事务，
// 任一步失败时整体回滚，不留下孤立的观测记录
type Recorder struct {
	db     *gorm.DB
	events *EventStore
	moods  *DailyMoodStore
}

// NewRecorder 用注入的数据库句柄和两个存储构造记录器
func NewRecorder(db *gorm.DB, events *EventStore, moods *DailyMoodStore) *Recorder {
	return &Recorder{db: db, events: events, moods: moods}
}

// Record 追加情绪记录并合并进指定日期的聚合，返回更新后的聚合
func (r *Recorder) Record(userID uint, emotion, source string, confidence float64, date string) (models.DailyMood, error) {
	var mood models.DailyMood
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if _, err := r.events.WithTx(tx).Append(userID, emotion, source, confidence); err != nil {
			return err
		}
		merged, err := r.moods.WithTx(tx).Merge(userID, date, strings.ToLower(emotion))
		if err != nil {
			return err
		}
		mood = merged
		return nil
	})
	if err != nil {
		return models.DailyMood{}, err
	}
	return mood, nil
}
