package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnswerScoresBounds(t *testing.T) {
	tests := []struct {
		name    string
		values  [4]float64
		wantErr bool
	}{
		{"all zero", [4]float64{0, 0, 0, 0}, false},
		{"all max", [4]float64{10, 10, 10, 10}, false},
		{"mixed", [4]float64{3.5, 7.2, 0, 10}, false},
		{"negative clarity", [4]float64{-0.1, 5, 5, 5}, true},
		{"completeness above max", [4]float64{5, 10.1, 5, 5}, true},
		{"negative confidence", [4]float64{5, 5, 5, -3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnswerScores(tt.values[0], tt.values[1], tt.values[2], tt.values[3])
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAnswerScoresOverall(t *testing.T) {
	perfect, err := NewAnswerScores(10, 10, 10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 100, perfect.Overall(), 1e-9)

	zero, err := NewAnswerScores(0, 0, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, zero.Overall(), 1e-9)

	uniform, err := NewAnswerScores(5, 5, 5, 5)
	require.NoError(t, err)
	assert.InDelta(t, 50, uniform.Overall(), 1e-9)

	// Clarity carries 30% of the overall.
	clarityOnly, err := NewAnswerScores(10, 0, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 30, clarityOnly.Overall(), 1e-9)

	// Confidence carries 15%.
	confidenceOnly, err := NewAnswerScores(0, 0, 0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 15, confidenceOnly.Overall(), 1e-9)
}
