package services

import "testing"

func TestBaseScoreTable(t *testing.T) {
	scorer := NewMoodScorer(DefaultScorePolicy())

	cases := map[string]int{
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
	}
	for emotion, want := range cases {
		got := scorer.BaseScore(emotion)
		if got != want {
			t.Fatalf("BaseScore(%q) = %d, want %d", emotion, got, want)
		}
		if got < 0 || got > 100 {
			t.Fatalf("BaseScore(%q) = %d, out of [0,100]", emotion, got)
		}
	}
}

func TestBaseScoreUnknownAndCase(t *testing.T) {
	scorer := NewMoodScorer(DefaultScorePolicy())

	if got := scorer.BaseScore("confused"); got != 50 {
		t.Fatalf("unknown emotion score = %d, want 50", got)
	}
	if got := scorer.BaseScore(""); got != 50 {
		t.Fatalf("empty emotion score = %d, want 50", got)
	}
	if got := scorer.BaseScore("Happy"); got != 80 {
		t.Fatalf("mixed case score = %d, want 80", got)
	}
}

func TestScoreToEmotion(t *testing.T) {
	scorer := NewMoodScorer(DefaultScorePolicy())

	cases := []struct {
		score int
		want  string
	}{
		{100, "happy"},
		{80, "happy"},
		{79, "calm"},
		{60, "calm"},
		{59, "neutral"},
		{40, "neutral"},
		{39, "sad"},
		{20, "sad"},
		{19, "anxious"},
		{0, "anxious"},
	}
	for _, tc := range cases {
		if got := scorer.ScoreToEmotion(tc.score); got != tc.want {
			t.Fatalf("ScoreToEmotion(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestCustomScorePolicy(t *testing.T) {
	scorer := NewMoodScorer(ScorePolicy{
		Version:      "test",
		Scores:       map[string]int{"happy": 95},
		DefaultScore: 42,
	})

	if got := scorer.BaseScore("happy"); got != 95 {
		t.Fatalf("custom policy score = %d, want 95", got)
	}
	if got := scorer.BaseScore("sad"); got != 42 {
		t.Fatalf("custom policy default = %d, want 42", got)
	}
}
