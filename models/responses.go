package models

// RadarDataset 雷达图数据集
type RadarDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
}

// RadarChart 雷达图响应结构体
type RadarChart struct {
	Labels   []string       `json:"labels"`
	Datasets []RadarDataset `json:"datasets"`
}

// BarDataset 柱状图数据集
type BarDataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BackgroundColor string `json:"backgroundColor"`
}

// BarChart 柱状图响应结构体
type BarChart struct {
	Labels   []string     `json:"labels"`
	Datasets []BarDataset `json:"datasets"`
}

// PieDataset 饼图数据集
type PieDataset struct {
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
}

// PieChart 饼图响应结构体
type PieChart struct {
	Labels   []string     `json:"labels"`
	Datasets []PieDataset `json:"datasets"`
}

// ProgressItem 单个进度条数据
type ProgressItem struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
	Width string  `json:"width"`
}

// ProgressData 进度条数据，按情绪键索引
type ProgressData map[string]ProgressItem

// ReportSummary 报告摘要指标
type ReportSummary struct {
	AverageMoodScore float64 `json:"average_mood_score"`
	DominantEmotion  string  `json:"dominant_emotion"`
	WeeklyAverage    float64 `json:"weekly_average"`
	HappinessLevel   float64 `json:"happiness_level"`
	CalmnessLevel    float64 `json:"calmness_level"`
	AnxietyLevel     float64 `json:"anxiety_level"`
}

// ReportPayload 报告完整内容，序列化后存入 reports 表
type ReportPayload struct {
	ReportID        string        `json:"report_id"`
	UserID          uint          `json:"user_id"`
	UserName        string        `json:"user_name"`
	ReportType      string        `json:"report_type"`
	GeneratedAt     string        `json:"generated_at"`
	Period          string        `json:"period"`
	Summary         ReportSummary `json:"summary"`
	Insights        []string      `json:"insights"`
	Recommendations []string      `json:"recommendations"`
}

// ReportMeta 报告列表条目
type ReportMeta struct {
	ID          uint   `json:"id"`
	Type        string `json:"type"`
	GeneratedAt string `json:"generated_at"`
}

// EmotionStat 单个情绪的统计数据
type EmotionStat struct {
	Emotion       string  `json:"emotion"`
	Count         int64   `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// Statistics 用户整体统计
type Statistics struct {
	TotalLogs    int64         `json:"total_logs"`
	ActiveDays   int64         `json:"active_days"`
	FirstLog     string        `json:"first_log,omitempty"`
	LastLog      string        `json:"last_log,omitempty"`
	EmotionStats []EmotionStat `json:"emotion_stats"`
}

// UserProfile 仪表盘展示用的用户信息
type UserProfile struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Age         int    `json:"age"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	MemberSince string `json:"member_since"`
}
