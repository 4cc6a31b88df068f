package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozrabal/mentor-api-sub000/internal/models"
)

func mustScores(t *testing.T, clarity, completeness, relevance, confidence float64) models.AnswerScores {
	t.Helper()
	scores, err := models.NewAnswerScores(clarity, completeness, relevance, confidence)
	require.NoError(t, err)
	return scores
}

func TestGenerateSkipsGoodAnswers(t *testing.T) {
	gen := NewFeedbackGenerator()

	// Overall of exactly 50 clears the bar.
	atThreshold := mustScores(t, 5, 5, 5, 5)
	assert.Empty(t, gen.Generate(atThreshold, models.QuestionTypeBehavioral))

	strong := mustScores(t, 9, 8, 9, 7)
	assert.Empty(t, gen.Generate(strong, models.QuestionTypeTechnical))
}

func TestGenerateTargetsLowestDimension(t *testing.T) {
	gen := NewFeedbackGenerator()

	tests := []struct {
		name         string
		scores       models.AnswerScores
		questionType string
		want         string
	}{
		{
			name:         "clarity lowest",
			scores:       mustScores(t, 1, 4, 4, 4),
			questionType: models.QuestionTypeBehavioral,
			want:         "complete sentences",
		},
		{
			name:         "completeness lowest behavioral",
			scores:       mustScores(t, 4, 1, 4, 4),
			questionType: models.QuestionTypeBehavioral,
			want:         "STAR",
		},
		{
			name:         "completeness lowest technical",
			scores:       mustScores(t, 4, 1, 4, 4),
			questionType: models.QuestionTypeTechnical,
			want:         "trade-offs",
		},
		{
			name:         "relevance lowest",
			scores:       mustScores(t, 4, 4, 1, 4),
			questionType: models.QuestionTypeBehavioral,
			want:         "role",
		},
		{
			name:         "confidence lowest",
			scores:       mustScores(t, 4, 4, 4, 1),
			questionType: models.QuestionTypeBehavioral,
			want:         "filler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gen.Generate(tt.scores, tt.questionType)
			require.NotEmpty(t, got)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestGenerateBreaksTiesInDimensionOrder(t *testing.T) {
	gen := NewFeedbackGenerator()

	// All dimensions equally weak: clarity is evaluated first and wins.
	tied := mustScores(t, 2, 2, 2, 2)
	got := gen.Generate(tied, models.QuestionTypeBehavioral)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "complete sentences")

	// Completeness ties with confidence below the rest: completeness wins.
	partial := mustScores(t, 4, 2, 4, 2)
	got = gen.Generate(partial, models.QuestionTypeBehavioral)
	assert.Contains(t, got, "STAR")
}
