package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozrabal/mentor-api-sub000/internal/models"
)

func TestQuestionFromInputDefaults(t *testing.T) {
	q, err := questionFromInput("", QuestionInput{
		Text:     "Walk me through a recent project.",
		Category: "communication",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, models.QuestionTypeBehavioral, q.Type)
	assert.Equal(t, 5, q.Difficulty)
}

func TestQuestionFromInputKeepsProvidedID(t *testing.T) {
	q, err := questionFromInput("seed-001", QuestionInput{
		Text:       "How would you shard this database?",
		Category:   "system design",
		Type:       models.QuestionTypeTechnical,
		Difficulty: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, "seed-001", q.ID)
	assert.Equal(t, models.QuestionTypeTechnical, q.Type)
	assert.Equal(t, 8, q.Difficulty)
}

func TestQuestionFromInputValidation(t *testing.T) {
	tests := []struct {
		name  string
		input QuestionInput
	}{
		{"missing text", QuestionInput{Category: "communication"}},
		{"missing category", QuestionInput{Text: "A question?"}},
		{"unknown type", QuestionInput{Text: "A question?", Category: "communication", Type: "trivia"}},
		{"difficulty too high", QuestionInput{Text: "A question?", Category: "communication", Difficulty: 11}},
		{"difficulty too low", QuestionInput{Text: "A question?", Category: "communication", Difficulty: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := questionFromInput("", tt.input)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}
