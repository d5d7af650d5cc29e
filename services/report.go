package services

import (
	"encoding/json"
	"time"

	"github.com/Sofzenix/neurowell/models"
	"github.com/Sofzenix/neurowell/utils"

	"gorm.io/gorm"
)

// 基础建议，任何报告都包含
var baselineRecommendations = []string{
	"Practice 10 minutes of mindfulness meditation daily",
	"Maintain a consistent sleep schedule (7-8 hours)",
	"Engage in 30 minutes of physical activity daily",
	"Keep a gratitude journal and write 3 things you're thankful for each day",
}

// 主导情绪对应的洞察语句
var emotionInsights = map[string]string{
	"Happy":   "Happiness is your dominant emotion. You're radiating positive energy!",
	"Calm":    "Calmness dominates your emotional state. Great emotional regulation!",
	"Sad":     "Sadness is detected. Remember, it's okay to feel sad sometimes.",
	"Anxious": "Anxiety is prominent. Try breathing exercises to manage stress.",
	"Angry":   "Anger is detected. Physical activity can help channel this energy.",
}

// ReportService 报告生成与归档
type ReportService struct {
	db        *gorm.DB
	moods     *DailyMoodStore
	projector *ChartProjector
	profiles  *ProfileService
}

// NewReportService 用注入的依赖构造服务
func NewReportService(db *gorm.DB, moods *DailyMoodStore, projector *ChartProjector, profiles *ProfileService) *ReportService {
	return &ReportService{db: db, moods: moods, projector: projector, profiles: profiles}
}

// BuildInsights 按规则生成洞察语句，顺序固定：
// 分数档位 → 周趋势 → 主导情绪
func BuildInsights(moodScore float64, dominantEmotion string, weeklyAvg float64) []string {
	var insights []string

	switch {
	case moodScore >= 80:
		insights = append(insights, "Excellent emotional well-being! Your mood scores are consistently high.")
	case moodScore >= 60:
		insights = append(insights, "Good emotional balance. You're maintaining healthy emotional patterns.")
	default:
		insights = append(insights, "We notice room for emotional improvement. Consider mindfulness practices.")
	}

	// 周均分与当前分持平时不输出趋势语句
	if weeklyAvg > moodScore {
		insights = append(insights, "Positive trend detected! Your mood has improved this week.")
	} else if weeklyAvg < moodScore {
		insights = append(insights, "Slight decline detected. Consider stress-reduction techniques.")
	}

	if sentence, ok := emotionInsights[dominantEmotion]; ok {
		insights = append(insights, sentence)
	} else {
		insights = append(insights, "Keep tracking your emotions for better awareness.")
	}

	return insights
}

// BuildRecommendations 按规则生成建议，追加顺序固定，最多返回5条
func BuildRecommendations(moodScore float64, dominantEmotion string) []string {
	recommendations := make([]string, len(baselineRecommendations))
	copy(recommendations, baselineRecommendations)

	if moodScore < 60 {
		recommendations = append(recommendations,
			"Consider talking to a friend or loved one about your feelings",
			"Try progressive muscle relaxation before bed")
	}

	if dominantEmotion == "Anxious" || dominantEmotion == "Sad" {
		recommendations = append(recommendations,
			"Practice deep breathing exercises when feeling overwhelmed",
			"Limit caffeine intake and increase water consumption")
	}

	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
}

// GenerateReport 汇总各项投影生成报告并归档
func (s *ReportService) GenerateReport(userID uint, reportType string) (models.ReportPayload, error) {
	userInfo, err := s.profiles.GetUserInfo(userID)
	if err != nil {
		return models.ReportPayload{}, err
	}

	moodScore, err := s.moods.MoodScore(userID)
	if err != nil {
		return models.ReportPayload{}, err
	}

	// 主导情绪取饼图第一个标签
	pie, err := s.projector.PieChart(userID)
	if err != nil {
		return models.ReportPayload{}, err
	}
	dominantEmotion := "Happiness"
	if len(pie.Labels) > 0 {
		dominantEmotion = pie.Labels[0]
	}

	// 周均分取柱状图数据的平均
	bar, err := s.projector.BarChart(userID)
	if err != nil {
		return models.ReportPayload{}, err
	}
	weeklyAvg := 0.0
	if len(bar.Datasets) > 0 && len(bar.Datasets[0].Data) > 0 {
		sum := 0
		for _, score := range bar.Datasets[0].Data {
			sum += score
		}
		weeklyAvg = round1(float64(sum) / float64(len(bar.Datasets[0].Data)))
	}

	progress, err := s.projector.Progress(userID)
	if err != nil {
		return models.ReportPayload{}, err
	}

	payload := models.ReportPayload{
		ReportID:    utils.ReportID(userID),
		UserID:      userID,
		UserName:    userInfo.FullName,
		ReportType:  reportType,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Period:      "Last 7 days",
		Summary: models.ReportSummary{
			AverageMoodScore: round1(moodScore),
			DominantEmotion:  dominantEmotion,
			WeeklyAverage:    weeklyAvg,
			HappinessLevel:   progress["happy"].Score,
			CalmnessLevel:    progress["calm"].Score,
			AnxietyLevel:     progress["anxious"].Score,
		},
		Insights:        BuildInsights(moodScore, dominantEmotion, weeklyAvg),
		Recommendations: BuildRecommendations(moodScore, dominantEmotion),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return models.ReportPayload{}, err
	}
	record := models.Report{
		UserID:      userID,
		ReportType:  reportType,
		ReportData:  string(data),
		GeneratedAt: time.Now(),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return models.ReportPayload{}, err
	}

	return payload, nil
}

// ListReports 报告归档列表，按生成时间倒序
func (s *ReportService) ListReports(userID uint) ([]models.ReportMeta, error) {
	var reports []models.Report
	err := s.db.Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}

	list := make([]models.ReportMeta, 0, len(reports))
	for _, report := range reports {
		list = append(list, models.ReportMeta{
			ID:          report.ID,
			Type:        report.ReportType,
			GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		})
	}
	return list, nil
}
