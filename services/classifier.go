package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ClassifierConfidence 模型分类结果的置信度
const ClassifierConfidence = 0.85

// EmotionClassifier 调用大模型做文本情绪分类，属于可选能力，
// 未配置时分析接口只走关键词匹配
type EmotionClassifier struct {
	model llms.Model
}

func NewEmotionClassifier(apiKey, apiEndpoint, modelName string) (*EmotionClassifier, error) {
	model, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier client: %w", err)
	}

	return &EmotionClassifier{model: model}, nil
}

// Classify 返回情绪标签和置信度，上游失败时返回UpstreamError
func (c *EmotionClassifier) Classify(ctx context.Context, text string) (string, float64, error) {
	prompt := fmt.Sprintf(
		"Classify the dominant emotion of the following text. "+
			"Answer with exactly one word out of: happy, sad, angry, calm, anxious, neutral.\n\nText: %s",
		text,
	)

	completion, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt)
	if err != nil {
		return "", 0, &UpstreamError{Message: "emotion classifier unavailable", Err: err}
	}

	label := strings.Trim(strings.ToLower(strings.TrimSpace(completion)), ".\"'")
	switch label {
	case "happy", "sad", "angry", "calm", "anxious", "neutral":
		return label, ClassifierConfidence, nil
	}
	return "", 0, &UpstreamError{Message: fmt.Sprintf("unexpected classifier output: %q", label)}
}
