package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Sofzenix/neurowell/models"

	"gorm.io/gorm"
)

// 雷达图/饼图的固定情绪顺序
var canonicalEmotions = []string{"happy", "sad", "angry", "calm", "anxious"}

// 无数据时的默认数据集，保证前端图表不为空
var (
	radarDefaults = map[string]float64{
		"happy": 82, "sad": 40, "angry": 25, "calm": 70, "anxious": 35,
	}
	barDefaultScores = []int{70, 75, 60, 82, 68, 80, 77}
	barDefaultLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	pieDefaultLabels = []string{"Happy", "Calm", "Sad", "Angry", "Anxious"}
	pieDefaultData   = []float64{40, 25, 15, 10, 10}
	progressDefaults = map[string]float64{"happy": 82, "calm": 70, "anxious": 35}
)

// 饼图固定配色
var pieColors = map[string]string{
	"Happy":   "#2cb67d",
	"Calm":    "#7f5af0",
	"Sad":     "#f65a5a",
	"Angry":   "#f5a623",
	"Anxious": "#23a26f",
}

const pieFallbackColor = "#8e8e93"

// ChartProjector 图表投影，只读视图
type ChartProjector struct {
	db *gorm.DB
}

// NewChartProjector 用注入的数据库句柄构造投影器
func NewChartProjector(db *gorm.DB) *ChartProjector {
	return &ChartProjector{db: db}
}

// avgConfidenceByEmotion 按情绪分组的平均置信度（百分制）
func (p *ChartProjector) avgConfidenceByEmotion(userID uint, emotions []string) (map[string]float64, error) {
	query := p.db.Model(&models.EmotionLog{}).
		Select("emotion, AVG(confidence * 100) as avg").
		Where("user_id = ?", userID)
	if len(emotions) > 0 {
		query = query.Where("emotion IN ?", emotions)
	}

	var rows []struct {
		Emotion string
		Avg     float64
	}
	if err := query.Group("emotion").Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[string]float64, len(rows))
	for _, row := range rows {
		result[row.Emotion] = row.Avg
	}
	return result, nil
}

// RadarChart 情绪雷达图：各情绪的平均置信度，
// 缺数据的情绪逐项回退到默认值
func (p *ChartProjector) RadarChart(userID uint) (models.RadarChart, error) {
	averages, err := p.avgConfidenceByEmotion(userID, nil)
	if err != nil {
		return models.RadarChart{}, err
	}

	data := make([]float64, 0, len(canonicalEmotions))
	for _, emotion := range canonicalEmotions {
		if avg, ok := averages[emotion]; ok {
			data = append(data, round1(avg))
		} else {
			data = append(data, radarDefaults[emotion])
		}
	}

	return models.RadarChart{
		Labels: []string{"Happiness", "Sadness", "Anger", "Calmness", "Anxiety"},
		Datasets: []models.RadarDataset{{
			Label:           "Mood %",
			Data:            data,
			BackgroundColor: "rgba(44, 182, 125, 0.3)",
			BorderColor:     "#2cb67d",
			BorderWidth:     2,
		}},
	}, nil
}

// BarChart 最近7天心情柱状图。不足7天时整体回退到默认序列，
// 不做部分数据和默认值的混拼
func (p *ChartProjector) BarChart(userID uint) (models.BarChart, error) {
	var moods []models.DailyMood
	err := p.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(7).
		Find(&moods).Error
	if err != nil {
		return models.BarChart{}, err
	}

	var labels []string
	var data []int
	if len(moods) < 7 {
		labels = barDefaultLabels
		data = barDefaultScores
	} else {
		// 翻转为时间升序
		for i, j := 0, len(moods)-1; i < j; i, j = i+1, j-1 {
			moods[i], moods[j] = moods[j], moods[i]
		}
		labels = make([]string, 0, len(moods))
		data = make([]int, 0, len(moods))
		for _, mood := range moods {
			label := mood.Date
			if day, err := time.Parse("2006-01-02", mood.Date); err == nil {
				label = day.Format("Mon")
			}
			labels = append(labels, label)
			data = append(data, mood.MoodScore)
		}
	}

	return models.BarChart{
		Labels: labels,
		Datasets: []models.BarDataset{{
			Label:           "Mood %",
			Data:            data,
			BackgroundColor: "#2cb67d",
		}},
	}, nil
}

// PieChart 情绪占比饼图：按记录条数计算百分比，
// 完全无记录时回退到默认分布
func (p *ChartProjector) PieChart(userID uint) (models.PieChart, error) {
	var rows []struct {
		Emotion string
		Count   int64
	}
	err := p.db.Model(&models.EmotionLog{}).
		Select("emotion, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("emotion").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return models.PieChart{}, err
	}

	if len(rows) == 0 {
		colors := make([]string, 0, len(pieDefaultLabels))
		for _, label := range pieDefaultLabels {
			colors = append(colors, pieColors[label])
		}
		return models.PieChart{
			Labels: pieDefaultLabels,
			Datasets: []models.PieDataset{{
				Data:            pieDefaultData,
				BackgroundColor: colors,
			}},
		}, nil
	}

	var total int64
	for _, row := range rows {
		total += row.Count
	}

	labels := make([]string, 0, len(rows))
	data := make([]float64, 0, len(rows))
	colors := make([]string, 0, len(rows))
	for _, row := range rows {
		label := displayEmotion(row.Emotion)
		labels = append(labels, label)
		data = append(data, round1(float64(row.Count)/float64(total)*100))
		if color, ok := pieColors[label]; ok {
			colors = append(colors, color)
		} else {
			colors = append(colors, pieFallbackColor)
		}
	}

	return models.PieChart{
		Labels: labels,
		Datasets: []models.PieDataset{{
			Data:            data,
			BackgroundColor: colors,
		}},
	}, nil
}

// Progress 进度条数据：happy/calm/anxious 三项的平均置信度，
// 各项独立回退到默认值
func (p *ChartProjector) Progress(userID uint) (models.ProgressData, error) {
	tracked := []string{"happy", "calm", "anxious"}
	averages, err := p.avgConfidenceByEmotion(userID, tracked)
	if err != nil {
		return nil, err
	}

	progressLabels := map[string]string{
		"happy":   "Happiness",
		"calm":    "Calmness",
		"anxious": "Anxiety",
	}

	progress := make(models.ProgressData, len(tracked))
	for _, emotion := range tracked {
		score := progressDefaults[emotion]
		if avg, ok := averages[emotion]; ok {
			score = round1(avg)
		}
		progress[emotion] = models.ProgressItem{
			Score: score,
			Label: progressLabels[emotion],
			Width: formatWidth(score),
		}
	}
	return progress, nil
}

// displayEmotion 情绪标签转展示名
func displayEmotion(emotion string) string {
	if emotion == "" {
		return emotion
	}
	return strings.ToUpper(emotion[:1]) + strings.ToLower(emotion[1:])
}

func formatWidth(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64) + "%"
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
