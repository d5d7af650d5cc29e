package services

import (
	"testing"

	"github.com/Sofzenix/neurowell/models"
)

func TestRecordAppendsAndMerges(t *testing.T) {
	db := newTestDB(t)
	scorer := NewMoodScorer(DefaultScorePolicy())
	recorder := NewRecorder(db, NewEventStore(db), NewDailyMoodStore(db, scorer))

	mood, err := recorder.Record(1, "Happy", models.SourceText, 0.9, "2025-08-20")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if mood.MoodScore != 80 || mood.DominantEmotion != "happy" {
		t.Fatalf("merged mood = %+v, want score 80 dominant happy", mood)
	}

	var logs int64
	db.Model(&models.EmotionLog{}).Count(&logs)
	if logs != 1 {
		t.Fatalf("emotion logs = %d, want 1", logs)
	}
}

func TestRecordRollsBackOnMergeFailure(t *testing.T) {
	db := newTestDB(t)
	scorer := NewMoodScorer(DefaultScorePolicy())
	recorder := NewRecorder(db, NewEventStore(db), NewDailyMoodStore(db, scorer))

	// 聚合表不可写时整个事务回滚，观测记录不能单独落库
	if err := db.Migrator().DropTable(&models.DailyMood{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	if _, err := recorder.Record(1, "happy", models.SourceText, 0.9, "2025-08-20"); err == nil {
		t.Fatalf("expected merge failure")
	}

	var logs int64
	db.Model(&models.EmotionLog{}).Count(&logs)
	if logs != 0 {
		t.Fatalf("emotion logs after rollback = %d, want 0", logs)
	}
}

func TestRecordRejectsInvalidObservation(t *testing.T) {
	db := newTestDB(t)
	scorer := NewMoodScorer(DefaultScorePolicy())
	recorder := NewRecorder(db, NewEventStore(db), NewDailyMoodStore(db, scorer))

	if _, err := recorder.Record(1, "", models.SourceText, 0.9, "2025-08-20"); err == nil {
		t.Fatalf("expected validation failure")
	}

	var logs int64
	db.Model(&models.EmotionLog{}).Count(&logs)
	if logs != 0 {
		t.Fatalf("emotion logs after rejected record = %d, want 0", logs)
	}
}
