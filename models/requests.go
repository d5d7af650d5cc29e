package models

// LogEmotionRequest 记录情绪请求结构体
type LogEmotionRequest struct {
	UserID     uint     `json:"user_id"`
	Emotion    string   `json:"emotion"`
	Source     string   `json:"source"`
	Confidence *float64 `json:"confidence"` // 缺省时取0.8
}

// ApplyDefaults 填充缺省值
func (r *LogEmotionRequest) ApplyDefaults() {
	if r.UserID == 0 {
		r.UserID = 1
	}
	if r.Source == "" {
		r.Source = SourceText
	}
	if r.Confidence == nil {
		c := 0.8
		r.Confidence = &c
	}
}

// DetectEmotionRequest 文本情绪识别请求结构体
type DetectEmotionRequest struct {
	UserID uint   `json:"user_id"`
	Text   string `json:"text"`
}

// GenerateReportRequest 报告生成请求结构体
type GenerateReportRequest struct {
	UserID     uint   `json:"user_id"`
	ReportType string `json:"report_type"`
}

// UpdateMoodRequest 手动更新心情请求结构体
type UpdateMoodRequest struct {
	UserID  uint   `json:"user_id"`
	Score   int    `json:"score"`
	Emotion string `json:"emotion"`
}
