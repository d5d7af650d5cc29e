package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Sofzenix/neurowell/config"
	"github.com/Sofzenix/neurowell/models"
	"github.com/Sofzenix/neurowell/services"
	"github.com/gin-gonic/gin"
)

// AnalyzerController 情绪记录和文本识别接口
type AnalyzerController struct {
	recorder   *services.Recorder
	moods      *services.DailyMoodStore
	detector   *services.Detector
	classifier *services.EmotionClassifier // 可为nil，未配置时只走关键词匹配
	cache      *services.DashboardCache
}

func NewAnalyzerController(recorder *services.Recorder, moods *services.DailyMoodStore,
	detector *services.Detector, classifier *services.EmotionClassifier,
	cache *services.DashboardCache) *AnalyzerController {
	return &AnalyzerController{
		recorder:   recorder,
		moods:      moods,
		detector:   detector,
		classifier: classifier,
		cache:      cache,
	}
}

// logAndMerge 在单个事务内追加情绪记录并合并进当天聚合，返回更新后的聚合
func (ac *AnalyzerController) logAndMerge(c *gin.Context, userID uint, emotion, source string, confidence float64) (models.DailyMood, error) {
	today := time.Now().Format("2006-01-02")
	mood, err := ac.recorder.Record(userID, emotion, source, confidence, today)
	if err != nil {
		return models.DailyMood{}, err
	}

	ac.cache.Invalidate(c.Request.Context(), userID)
	return mood, nil
}

// LogEmotion 记录一次情绪观测，返回更新后的当天心情分数
func (ac *AnalyzerController) LogEmotion(c *gin.Context) {
	var req models.LogEmotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}
	req.ApplyDefaults()

	mood, err := ac.logAndMerge(c, req.UserID, req.Emotion, req.Source, *req.Confidence)
	if err != nil {
		respondError(c, err, "Failed to log emotion")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Emotion logged: " + req.Emotion + " from " + req.Source,
		"emotion":    req.Emotion,
		"mood_score": mood.MoodScore,
	})
}

// DetectEmotion 文本情绪识别。配置了分类模型时优先调用模型，
// 模型失败只降级为关键词匹配，不中断请求
func (ac *AnalyzerController) DetectEmotion(c *gin.Context) {
	var req models.DetectEmotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}
	if req.UserID == 0 {
		req.UserID = 1
	}

	detected := ""
	confidence := services.DetectKeywordConfidence
	var upstreamErr error

	if ac.classifier != nil {
		label, conf, err := ac.classifier.Classify(c.Request.Context(), req.Text)
		if err != nil {
			upstreamErr = err
			config.Logger.Warnw("情绪分类模型调用失败，降级为关键词匹配", "error", err)
		} else {
			detected = label
			confidence = conf
		}
	}
	if detected == "" {
		detected = ac.detector.DetectText(req.Text)
		confidence = services.DetectKeywordConfidence
	}

	if _, err := ac.logAndMerge(c, req.UserID, detected, models.SourceText, confidence); err != nil {
		respondError(c, err, "Failed to log detected emotion")
		return
	}

	response := gin.H{
		"success":          true,
		"detected_emotion": ac.detector.DisplayLabel(detected),
		"raw_emotion":      detected,
		"confidence":       confidence,
		"text_preview":     textPreview(req.Text),
	}
	if upstreamErr != nil {
		response["error"] = upstreamErr.Error()
	}
	c.JSON(http.StatusOK, response)
}

// UpdateMood 手动录入心情，来源记为manual、置信度1.0
func (ac *AnalyzerController) UpdateMood(c *gin.Context) {
	var req models.UpdateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}
	if req.UserID == 0 {
		req.UserID = 1
	}
	if req.Emotion == "" {
		req.Emotion = "neutral"
	}

	if _, err := ac.logAndMerge(c, req.UserID, req.Emotion, models.SourceManual, 1.0); err != nil {
		respondError(c, err, "Failed to update mood")
		return
	}

	moodScore, err := ac.moods.MoodScore(req.UserID)
	if err != nil {
		respondError(c, err, "Failed to update mood")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"mood_score": moodScore,
		"message":    fmt.Sprintf("Mood updated to %d%% (%s)", req.Score, req.Emotion),
	})
}

// textPreview 截取前50个字符作为预览
func textPreview(text string) string {
	runes := []rune(text)
	if len(runes) <= 50 {
		return text
	}
	return string(runes[:50]) + "..."
}
