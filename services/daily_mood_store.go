package services

import (
	"errors"

	"github.com/Sofzenix/neurowell/models"

	"gorm.io/gorm"
)

// DailyMoodStore 每日心情聚合存储，每用户每天一条记录
type DailyMoodStore struct {
	db     *gorm.DB
	scorer *MoodScorer
}

// NewDailyMoodStore 用注入的数据库句柄和打分器构造存储
func NewDailyMoodStore(db *gorm.DB, scorer *MoodScorer) *DailyMoodStore {
	return &DailyMoodStore{db: db, scorer: scorer}
}

// WithTx 返回绑定到事务句柄的存储副本
func (s *DailyMoodStore) WithTx(tx *gorm.DB) *DailyMoodStore {
	return &DailyMoodStore{db: tx, scorer: s.scorer}
}

// Merge 将一次情绪观测合并进当天的聚合记录。
// 当天首条观测直接取基础分；后续观测取 (现有分 + 基础分) / 2，
// dominant_emotion 始终被最新一次观测覆盖（按最近感受优先，非按频次）。
// 注意：同一 (user, date) 的并发合并存在读写竞争，可能丢失更新，
// 这是已知限制，调用方串行提交时不受影响。
func (s *DailyMoodStore) Merge(userID uint, date, emotion string) (models.DailyMood, error) {
	baseScore := s.scorer.BaseScore(emotion)

	var mood models.DailyMood
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&mood).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		mood = models.DailyMood{
			UserID:          userID,
			Date:            date,
			MoodScore:       baseScore,
			DominantEmotion: emotion,
		}
		if err := s.db.Create(&mood).Error; err != nil {
			return models.DailyMood{}, err
		}
		return mood, nil
	}
	if err != nil {
		return models.DailyMood{}, err
	}

	mood.MoodScore = (mood.MoodScore + baseScore) / 2
	mood.DominantEmotion = emotion
	if err := s.db.Model(&models.DailyMood{}).
		Where("user_id = ? AND date = ?", userID, date).
		Updates(map[string]interface{}{
			"mood_score":       mood.MoodScore,
			"dominant_emotion": mood.DominantEmotion,
		}).Error; err != nil {
		return models.DailyMood{}, err
	}
	return mood, nil
}

// MoodScore 最近7天心情分数的平均值，无数据时返回默认值82.0
func (s *DailyMoodStore) MoodScore(userID uint) (float64, error) {
	var scores []int
	err := s.db.Model(&models.DailyMood{}).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(7).
		Pluck("mood_score", &scores).Error
	if err != nil {
		return 0, err
	}
	if len(scores) == 0 {
		return 82.0, nil
	}

	sum := 0
	for _, score := range scores {
		sum += score
	}
	return round1(float64(sum) / float64(len(scores))), nil
}

// RecentMoods 最近n天的聚合记录，按日期升序返回
func (s *DailyMoodStore) RecentMoods(userID uint, n int) ([]models.DailyMood, error) {
	var moods []models.DailyMood
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(n).
		Find(&moods).Error
	if err != nil {
		return nil, err
	}

	// 翻转为时间升序
	for i, j := 0, len(moods)-1; i < j; i, j = i+1, j-1 {
		moods[i], moods[j] = moods[j], moods[i]
	}
	return moods, nil
}
