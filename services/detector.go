package services

import "strings"

// 关键词匹配表，命中最多的情绪胜出
var emotionKeywords = map[string][]string{
	"happy":   {"happy", "joy", "good", "great", "excited", "love", "awesome"},
	"sad":     {"sad", "bad", "unhappy", "depressed", "cry", "lonely", "hurt"},
	"angry":   {"angry", "mad", "hate", "frustrated", "annoyed", "upset"},
	"calm":    {"calm", "peaceful", "relaxed", "chill", "quiet", "serene"},
	"anxious": {"anxious", "worried", "nervous", "stressed", "scared", "fear"},
}

// 识别结果的展示文案
var emotionDisplay = map[string]string{
	"happy":   "Happy 😊",
	"sad":     "Sad 😢",
	"angry":   "Angry 😡",
	"calm":    "Calm 😌",
	"anxious": "Anxious 😟",
	"neutral": "Neutral 😐",
}

// DetectKeywordConfidence 关键词识别的固定置信度
const DetectKeywordConfidence = 0.7

// Detector 基于关键词的文本情绪识别，无外部依赖
type Detector struct{}

// NewDetector 构造识别器
func NewDetector() *Detector {
	return &Detector{}
}

// DetectText 对文本做关键词匹配，无命中时返回neutral
func (d *Detector) DetectText(text string) string {
	detected := "neutral"
	maxMatches := 0

	textLower := strings.ToLower(text)
	for _, emotion := range canonicalEmotions {
		matches := 0
		for _, keyword := range emotionKeywords[emotion] {
			if strings.Contains(textLower, keyword) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			detected = emotion
		}
	}
	return detected
}

// DisplayLabel 情绪标签转展示文案
func (d *Detector) DisplayLabel(emotion string) string {
	if label, ok := emotionDisplay[emotion]; ok {
		return label
	}
	return emotionDisplay["neutral"]
}
