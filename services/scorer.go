package services

import "strings"

// ScorePolicy 情绪到基础分数的映射表，带版本号便于替换打分策略
type ScorePolicy struct {
	Version      string
	Scores       map[string]int
	DefaultScore int
}

// DefaultScorePolicy 返回v1打分表
func DefaultScorePolicy() ScorePolicy {
	return ScorePolicy{
		Version: "v1",
		Scores: map[string]int{
			"happy":      80,
			"joy":        85,
			"excited":    75,
			"calm":       70,
			"relaxed":    75,
			"peaceful":   80,
			"neutral":    50,
			"sad":        30,
			"depressed":  20,
			"angry":      25,
			"frustrated": 30,
			"anxious":    35,
			"stressed":   30,
			"worried":    40,
		},
		DefaultScore: 50,
	}
}

// MoodScorer 纯函数打分器，不持有任何连接
type MoodScorer struct {
	policy ScorePolicy
}

// NewMoodScorer 用指定打分策略构造打分器
func NewMoodScorer(policy ScorePolicy) *MoodScorer {
	return &MoodScorer{policy: policy}
}

// BaseScore 情绪标签转基础心情分数，未知标签返回默认分
func (s *MoodScorer) BaseScore(emotion string) int {
	if score, ok := s.policy.Scores[strings.ToLower(emotion)]; ok {
		return score
	}
	return s.policy.DefaultScore
}

// ScoreToEmotion 心情分数反向转情绪标签，用于回填数据
func (s *MoodScorer) ScoreToEmotion(score int) string {
	switch {
	case score >= 80:
		return "happy"
	case score >= 60:
		return "calm"
	case score >= 40:
		return "neutral"
	case score >= 20:
		return "sad"
	default:
		return "anxious"
	}
}
