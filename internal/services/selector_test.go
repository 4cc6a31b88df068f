package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozrabal/mentor-api-sub000/internal/models"
)

type stubPool struct {
	candidates []models.Question
	fallback   []models.Question
	err        error

	calls         int
	gotCategory   string
	gotMin        int
	gotMax        int
	gotType       string
	gotExclude    []string
	fallbackCalls int
}

func (p *stubPool) FindCandidates(_ context.Context, category string, minDifficulty, maxDifficulty int, questionType string, excludeIDs []string) ([]models.Question, error) {
	p.calls++
	p.gotCategory = category
	p.gotMin = minDifficulty
	p.gotMax = maxDifficulty
	p.gotType = questionType
	p.gotExclude = excludeIDs
	return p.candidates, p.err
}

func (p *stubPool) FindAny(_ context.Context, excludeIDs []string) ([]models.Question, error) {
	p.fallbackCalls++
	p.gotExclude = excludeIDs
	return p.fallback, nil
}

func bankQuestion(id, category string, difficulty int) models.Question {
	return models.Question{
		ID:         id,
		Text:       "Tell me about a time you showed " + category + ".",
		Category:   category,
		Type:       models.QuestionTypeBehavioral,
		Difficulty: difficulty,
	}
}

func testSelector(pool QuestionPool) *QuestionSelector {
	return NewQuestionSelector(pool, rand.New(rand.NewSource(1)))
}

func selectorSession(t *testing.T, first models.Question) *models.InterviewSession {
	t.Helper()
	return models.NewInterviewSession(1, 1, models.InterviewTypeMixed, first, time.Now())
}

// answerWith records an answer with a uniform score across all dimensions so
// the overall equals value*10.
func answerWith(t *testing.T, s *models.InterviewSession, value float64) {
	t.Helper()
	current, ok := s.CurrentQuestion()
	require.True(t, ok)
	scores, err := models.NewAnswerScores(value, value, value, value)
	require.NoError(t, err)
	require.NoError(t, s.SubmitAnswer(current.ID, "answer", 30, scores, time.Now()))
}

func TestSelectNextStopsAtSessionEnd(t *testing.T) {
	pool := &stubPool{}
	s := selectorSession(t, bankQuestion("q0", "communication", 5))

	// Spend the whole time budget in one answer.
	scores, err := models.NewAnswerScores(5, 5, 5, 5)
	require.NoError(t, err)
	require.NoError(t, s.SubmitAnswer("q0", "answer", models.SessionTimeBudget, scores, time.Now()))

	next, err := testSelector(pool).SelectNext(context.Background(), s, nil, 5, models.InterviewTypeMixed)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Zero(t, pool.calls)
}

func TestSelectFirstUsesHighestWeightCompetency(t *testing.T) {
	pool := &stubPool{candidates: []models.Question{bankQuestion("q1", "system design", 5)}}
	competencies := []models.JobCompetency{
		{Name: "communication", Weight: 0.4, Depth: 5},
		{Name: "system design", Weight: 0.9, Depth: 7},
	}

	first, err := testSelector(pool).SelectFirst(context.Background(), competencies, 5, models.InterviewTypeTechnical)
	require.NoError(t, err)
	require.NotNil(t, first)

	assert.Equal(t, "system design", pool.gotCategory)
	assert.Equal(t, 4, pool.gotMin)
	assert.Equal(t, 6, pool.gotMax)
	assert.Equal(t, models.InterviewTypeTechnical, pool.gotType)
	assert.Equal(t, "q1", first.ID)
}

func TestSelectFirstWithoutCompetencies(t *testing.T) {
	pool := &stubPool{candidates: []models.Question{bankQuestion("q1", "general", 5)}}

	_, err := testSelector(pool).SelectFirst(context.Background(), nil, 5, models.InterviewTypeMixed)
	require.NoError(t, err)

	assert.Equal(t, "general", pool.gotCategory)
	assert.Empty(t, pool.gotType)
}

func TestSelectNextTargetsWeakestCategory(t *testing.T) {
	pool := &stubPool{candidates: []models.Question{bankQuestion("q3", "communication", 5)}}
	s := selectorSession(t, bankQuestion("q0", "communication", 5))

	answerWith(t, s, 5.5)
	require.NoError(t, s.AddQuestion(bankQuestion("q1", "system design", 5)))
	answerWith(t, s, 7)

	_, err := testSelector(pool).SelectNext(context.Background(), s, nil, 5, models.InterviewTypeMixed)
	require.NoError(t, err)

	assert.Equal(t, "communication", pool.gotCategory)
	assert.Equal(t, []string{"q0", "q1"}, pool.gotExclude)
}

func TestSelectNextBreaksCategoryTiesLexically(t *testing.T) {
	pool := &stubPool{candidates: []models.Question{bankQuestion("q3", "alpha", 5)}}
	s := selectorSession(t, bankQuestion("q0", "beta", 5))

	answerWith(t, s, 6)
	require.NoError(t, s.AddQuestion(bankQuestion("q1", "alpha", 5)))
	answerWith(t, s, 6)

	_, err := testSelector(pool).SelectNext(context.Background(), s, nil, 5, models.InterviewTypeMixed)
	require.NoError(t, err)

	assert.Equal(t, "alpha", pool.gotCategory)
}

func TestSelectNextAdaptsDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		base    float64
		last    float64
		wantMin int
		wantMax int
	}{
		{"weak answer lowers difficulty", 5, 4, 3, 5},
		{"middling answer keeps difficulty", 5, 6, 4, 6},
		{"strong answer raises difficulty", 5, 8, 5, 7},
		{"clamped at the floor", 1, 2, 0, 2},
		{"clamped at the ceiling", 10, 9, 9, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := &stubPool{candidates: []models.Question{bankQuestion("q1", "communication", 5)}}
			s := selectorSession(t, bankQuestion("q0", "communication", 5))
			answerWith(t, s, tt.last)

			_, err := testSelector(pool).SelectNext(context.Background(), s, nil, tt.base, models.InterviewTypeMixed)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMin, pool.gotMin)
			assert.Equal(t, tt.wantMax, pool.gotMax)
		})
	}
}

func TestSelectNextFallsBackToAnyQuestion(t *testing.T) {
	pool := &stubPool{fallback: []models.Question{bankQuestion("q1", "other", 2)}}
	s := selectorSession(t, bankQuestion("q0", "communication", 5))
	answerWith(t, s, 5)

	next, err := testSelector(pool).SelectNext(context.Background(), s, nil, 5, models.InterviewTypeMixed)
	require.NoError(t, err)

	require.NotNil(t, next)
	assert.Equal(t, "q1", next.ID)
	assert.Equal(t, 1, pool.fallbackCalls)
}

func TestSelectNextWithExhaustedPool(t *testing.T) {
	pool := &stubPool{}
	s := selectorSession(t, bankQuestion("q0", "communication", 5))
	answerWith(t, s, 5)

	next, err := testSelector(pool).SelectNext(context.Background(), s, nil, 5, models.InterviewTypeMixed)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestSelectNextPropagatesPoolErrors(t *testing.T) {
	poolErr := errors.New("pool unavailable")
	pool := &stubPool{err: poolErr}
	s := selectorSession(t, bankQuestion("q0", "communication", 5))
	answerWith(t, s, 5)

	_, err := testSelector(pool).SelectNext(context.Background(), s, nil, 5, models.InterviewTypeMixed)
	assert.ErrorIs(t, err, poolErr)
}
