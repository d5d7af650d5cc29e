package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Sofzenix/neurowell/models"
)

func TestBuildInsightsOrdering(t *testing.T) {
	insights := BuildInsights(85, "Calm", 90)

	if len(insights) != 3 {
		t.Fatalf("insights = %d entries, want 3", len(insights))
	}
	if !strings.Contains(insights[0], "Excellent emotional well-being") {
		t.Fatalf("insight[0] = %q, want excellent tier", insights[0])
	}
	if !strings.Contains(insights[1], "Positive trend") {
		t.Fatalf("insight[1] = %q, want positive trend", insights[1])
	}
	if !strings.Contains(insights[2], "Calmness dominates") {
		t.Fatalf("insight[2] = %q, want calm sentence", insights[2])
	}
}

func TestBuildInsightsTiers(t *testing.T) {
	if got := BuildInsights(70, "Happy", 70)[0]; !strings.Contains(got, "Good emotional balance") {
		t.Fatalf("mid tier = %q", got)
	}
	if got := BuildInsights(40, "Happy", 40)[0]; !strings.Contains(got, "room for emotional improvement") {
		t.Fatalf("low tier = %q", got)
	}
}

func TestBuildInsightsNoTrendOnEqual(t *testing.T) {
	insights := BuildInsights(70, "Happy", 70)
	if len(insights) != 2 {
		t.Fatalf("equal averages should skip trend, got %v", insights)
	}
}

func TestBuildInsightsDeclineAndUnknownEmotion(t *testing.T) {
	insights := BuildInsights(70, "Excited", 60)
	if !strings.Contains(insights[1], "Slight decline") {
		t.Fatalf("insight[1] = %q, want decline", insights[1])
	}
	if !strings.Contains(insights[2], "Keep tracking your emotions") {
		t.Fatalf("insight[2] = %q, want generic sentence", insights[2])
	}
}

func TestBuildRecommendationsBaseline(t *testing.T) {
	recs := BuildRecommendations(85, "Happy")

	if len(recs) != 4 {
		t.Fatalf("high mood recs = %d, want 4 baseline", len(recs))
	}
	wantPrefixes := []string{
		"Practice 10 minutes of mindfulness",
		"Maintain a consistent sleep schedule",
		"Engage in 30 minutes of physical activity",
		"Keep a gratitude journal",
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(recs[i], prefix) {
			t.Fatalf("rec[%d] = %q, want prefix %q", i, recs[i], prefix)
		}
	}
}

func TestBuildRecommendationsTruncation(t *testing.T) {
	// 低分 + 主导Sad 共8条候选，截断到5条，低分建议先于情绪建议
	recs := BuildRecommendations(40, "Sad")

	if len(recs) != 5 {
		t.Fatalf("recs = %d, want 5", len(recs))
	}
	if !strings.HasPrefix(recs[4], "Consider talking to a friend") {
		t.Fatalf("rec[4] = %q, want low-mood recommendation first", recs[4])
	}

	// 只有情绪建议时按其顺序追加
	recs = BuildRecommendations(85, "Anxious")
	if len(recs) != 5 {
		t.Fatalf("anxious recs = %d, want 5", len(recs))
	}
	if !strings.HasPrefix(recs[4], "Practice deep breathing") {
		t.Fatalf("rec[4] = %q, want breathing recommendation", recs[4])
	}
}

func newReportService(t *testing.T) (*ReportService, *EventStore, *DailyMoodStore) {
	t.Helper()
	db := newTestDB(t)
	scorer := NewMoodScorer(DefaultScorePolicy())
	moods := NewDailyMoodStore(db, scorer)
	projector := NewChartProjector(db)
	profiles := NewProfileService(db)
	return NewReportService(db, moods, projector, profiles), NewEventStore(db), moods
}

func TestGenerateReportDefaults(t *testing.T) {
	reports, _, _ := newReportService(t)

	report, err := reports.GenerateReport(1, models.ReportWeekly)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !strings.HasPrefix(report.ReportID, "NW_1_") {
		t.Fatalf("report id = %q", report.ReportID)
	}
	if report.Summary.AverageMoodScore != 82.0 {
		t.Fatalf("average mood = %v, want default 82.0", report.Summary.AverageMoodScore)
	}
	if report.Summary.DominantEmotion != "Happy" {
		t.Fatalf("dominant = %q, want Happy from fallback pie", report.Summary.DominantEmotion)
	}
	// 默认柱状图 (70+75+60+82+68+80+77)/7 = 73.1
	if report.Summary.WeeklyAverage != 73.1 {
		t.Fatalf("weekly average = %v, want 73.1", report.Summary.WeeklyAverage)
	}
	if report.Summary.HappinessLevel != 82 || report.Summary.CalmnessLevel != 70 || report.Summary.AnxietyLevel != 35 {
		t.Fatalf("progress levels = %+v", report.Summary)
	}
	if len(report.Recommendations) == 0 || len(report.Recommendations) > 5 {
		t.Fatalf("recommendations = %d entries", len(report.Recommendations))
	}
	if report.Period != "Last 7 days" {
		t.Fatalf("period = %q", report.Period)
	}
}

func TestGenerateReportArchivesPayload(t *testing.T) {
	reports, _, _ := newReportService(t)

	first, err := reports.GenerateReport(1, models.ReportWeekly)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := reports.GenerateReport(1, models.ReportMonthly); err != nil {
		t.Fatalf("generate: %v", err)
	}

	list, err := reports.ListReports(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("archived reports = %d, want 2", len(list))
	}

	// 归档内容可反序列化回完整报告
	var record models.Report
	if err := reports.db.First(&record, "user_id = ?", 1).Error; err != nil {
		t.Fatalf("load record: %v", err)
	}
	var payload models.ReportPayload
	if err := json.Unmarshal([]byte(record.ReportData), &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.ReportID != first.ReportID {
		t.Fatalf("payload id = %q, want %q", payload.ReportID, first.ReportID)
	}
}

func TestGenerateReportWithLoggedData(t *testing.T) {
	reports, events, moods := newReportService(t)

	if _, err := events.Append(1, "sad", models.SourceText, 0.6); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := moods.Merge(1, "2025-08-25", "sad"); err != nil {
		t.Fatalf("merge: %v", err)
	}

	report, err := reports.GenerateReport(1, models.ReportWeekly)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if report.Summary.AverageMoodScore != 30.0 {
		t.Fatalf("average mood = %v, want 30.0", report.Summary.AverageMoodScore)
	}
	if report.Summary.DominantEmotion != "Sad" {
		t.Fatalf("dominant = %q, want Sad", report.Summary.DominantEmotion)
	}
	if len(report.Recommendations) != 5 {
		t.Fatalf("low mood + sad should hit the 5-item cap, got %d", len(report.Recommendations))
	}
}
