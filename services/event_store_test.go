package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Sofzenix/neurowell/models"
)

func TestAppendValidation(t *testing.T) {
	db := newTestDB(t)
	events := NewEventStore(db)

	var validationErr *ValidationError

	if _, err := events.Append(1, "", models.SourceText, 0.8); !errors.As(err, &validationErr) {
		t.Fatalf("empty emotion: got %v, want ValidationError", err)
	}
	if _, err := events.Append(1, "happy", models.SourceText, 1.2); !errors.As(err, &validationErr) {
		t.Fatalf("confidence > 1: got %v, want ValidationError", err)
	}
	if _, err := events.Append(1, "happy", models.SourceText, -0.1); !errors.As(err, &validationErr) {
		t.Fatalf("confidence < 0: got %v, want ValidationError", err)
	}

	var count int64
	db.Model(&models.EmotionLog{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected appends persisted %d rows", count)
	}
}

func TestAppendLowercasesEmotion(t *testing.T) {
	db := newTestDB(t)
	events := NewEventStore(db)

	log, err := events.Append(1, "Happy", models.SourceFace, 0.9)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if log.ID == 0 {
		t.Fatalf("append did not assign an id")
	}
	if log.Emotion != "happy" {
		t.Fatalf("stored emotion = %q, want happy", log.Emotion)
	}
}

func TestQueryByUserFilters(t *testing.T) {
	db := newTestDB(t)
	events := NewEventStore(db)

	events.Append(1, "happy", models.SourceText, 0.9)
	events.Append(1, "sad", models.SourceText, 0.6)
	events.Append(2, "happy", models.SourceText, 0.8)

	logs, err := events.QueryByUser(1, "", nil, nil)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("user filter returned %d rows, want 2", len(logs))
	}

	logs, err = events.QueryByUser(1, "Happy", nil, nil)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(logs) != 1 || logs[0].Emotion != "happy" {
		t.Fatalf("emotion filter returned %+v, want one happy row", logs)
	}
}

func TestQueryByUserDateRange(t *testing.T) {
	db := newTestDB(t)
	events := NewEventStore(db)

	base := time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		log := models.EmotionLog{
			UserID:     1,
			Emotion:    "happy",
			Source:     models.SourceText,
			Confidence: 0.8,
			Timestamp:  base.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(&log).Error; err != nil {
			t.Fatalf("seed log: %v", err)
		}
	}

	// 窗口两端均为闭区间
	from := base
	to := base.Add(time.Hour)
	logs, err := events.QueryByUser(1, "", &from, &to)
	if err != nil {
		t.Fatalf("query window: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("window returned %d rows, want 2", len(logs))
	}
	if !logs[0].Timestamp.Equal(from) || !logs[1].Timestamp.Equal(to) {
		t.Fatalf("window rows at %v / %v, want %v / %v",
			logs[0].Timestamp, logs[1].Timestamp, from, to)
	}

	onlyFrom := base.Add(2 * time.Hour)
	logs, err = events.QueryByUser(1, "", &onlyFrom, nil)
	if err != nil {
		t.Fatalf("query from: %v", err)
	}
	if len(logs) != 1 || !logs[0].Timestamp.Equal(onlyFrom) {
		t.Fatalf("from filter returned %+v, want the latest row", logs)
	}

	onlyTo := base
	logs, err = events.QueryByUser(1, "", nil, &onlyTo)
	if err != nil {
		t.Fatalf("query to: %v", err)
	}
	if len(logs) != 1 || !logs[0].Timestamp.Equal(onlyTo) {
		t.Fatalf("to filter returned %+v, want the earliest row", logs)
	}
}

func TestAggregateConfidence(t *testing.T) {
	db := newTestDB(t)
	events := NewEventStore(db)

	events.Append(1, "happy", models.SourceText, 0.8)
	events.Append(1, "happy", models.SourceText, 0.6)

	avg, ok, err := events.AggregateConfidence(1, "happy")
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if !ok {
		t.Fatalf("expected data for happy")
	}
	if avg < 0.699 || avg > 0.701 {
		t.Fatalf("avg confidence = %v, want 0.7", avg)
	}

	_, ok, err = events.AggregateConfidence(1, "angry")
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if ok {
		t.Fatalf("expected no data for angry")
	}
}

func TestStatistics(t *testing.T) {
	db := newTestDB(t)
	events := NewEventStore(db)

	events.Append(1, "happy", models.SourceText, 0.8)
	events.Append(1, "happy", models.SourceFace, 0.6)
	events.Append(1, "sad", models.SourceText, 0.4)

	stats, err := events.Statistics(1)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalLogs != 3 {
		t.Fatalf("total logs = %d, want 3", stats.TotalLogs)
	}
	if stats.ActiveDays != 1 {
		t.Fatalf("active days = %d, want 1", stats.ActiveDays)
	}
	if stats.FirstLog == "" || stats.LastLog == "" {
		t.Fatalf("first/last timestamps missing: %+v", stats)
	}
	if len(stats.EmotionStats) != 2 {
		t.Fatalf("emotion stats = %d entries, want 2", len(stats.EmotionStats))
	}
	// 按频次倒序
	if stats.EmotionStats[0].Emotion != "happy" || stats.EmotionStats[0].Count != 2 {
		t.Fatalf("top emotion = %+v, want happy x2", stats.EmotionStats[0])
	}
	if stats.EmotionStats[0].AvgConfidence != 70.0 {
		t.Fatalf("avg confidence = %v, want 70.0", stats.EmotionStats[0].AvgConfidence)
	}
}

func TestStatisticsEmptyUser(t *testing.T) {
	db := newTestDB(t)
	events := NewEventStore(db)

	stats, err := events.Statistics(42)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalLogs != 0 || stats.ActiveDays != 0 {
		t.Fatalf("empty user stats = %+v, want zeros", stats)
	}
	if len(stats.EmotionStats) != 0 {
		t.Fatalf("empty user emotion stats = %+v", stats.EmotionStats)
	}
}
