package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func bankQuestion(id string) Question {
	return Question{
		ID:         id,
		Text:       "Tell me about a project you led.",
		Category:   "leadership",
		Type:       QuestionTypeBehavioral,
		Difficulty: 5,
	}
}

func uniformScores(t *testing.T, value float64) AnswerScores {
	t.Helper()
	scores, err := NewAnswerScores(value, value, value, value)
	require.NoError(t, err)
	return scores
}

func TestNewInterviewSession(t *testing.T) {
	s := NewInterviewSession(1, 2, InterviewTypeBehavioral, bankQuestion("q1"), sessionNow)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, SessionStatusInProgress, s.Status)
	assert.Equal(t, uint(1), s.UserID)
	assert.Equal(t, uint(2), s.JobProfileID)
	assert.Equal(t, 0, s.Answered())
	assert.Equal(t, "0/10", s.Progress())
	assert.Equal(t, SessionTimeBudget, s.TimeRemaining())

	current, ok := s.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "q1", current.ID)
}

func TestSubmitAnswerAdvancesSession(t *testing.T) {
	s := NewInterviewSession(1, 2, InterviewTypeBehavioral, bankQuestion("q1"), sessionNow)

	err := s.SubmitAnswer("q1", "My answer.", 90, uniformScores(t, 6), sessionNow)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Answered())
	assert.Equal(t, "1/10", s.Progress())
	assert.Equal(t, SessionTimeBudget-90, s.TimeRemaining())

	// q1 is answered and no new question was added yet.
	_, ok := s.CurrentQuestion()
	assert.False(t, ok)

	last, ok := s.LastScore()
	require.True(t, ok)
	assert.InDelta(t, 60, last, 1e-9)

	require.NoError(t, s.AddQuestion(bankQuestion("q2")))
	current, ok := s.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "q2", current.ID)
	assert.Equal(t, []string{"q1", "q2"}, s.AskedIDs())
}

func TestSubmitAnswerRejectsStaleQuestion(t *testing.T) {
	s := NewInterviewSession(1, 2, InterviewTypeBehavioral, bankQuestion("q1"), sessionNow)

	err := s.SubmitAnswer("q9", "answer", 10, uniformScores(t, 5), sessionNow)
	require.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, 0, s.Answered())

	// Answering the same question twice fails the second time.
	require.NoError(t, s.SubmitAnswer("q1", "answer", 10, uniformScores(t, 5), sessionNow))
	err = s.SubmitAnswer("q1", "answer again", 10, uniformScores(t, 5), sessionNow)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestSubmitAnswerRejectsNegativeDuration(t *testing.T) {
	s := NewInterviewSession(1, 2, InterviewTypeBehavioral, bankQuestion("q1"), sessionNow)

	err := s.SubmitAnswer("q1", "answer", -1, uniformScores(t, 5), sessionNow)
	require.ErrorIs(t, err, ErrValidation)
}

func TestCompletedSessionIsTerminal(t *testing.T) {
	s := NewInterviewSession(1, 2, InterviewTypeBehavioral, bankQuestion("q1"), sessionNow)

	require.NoError(t, s.Complete(72.5, true, sessionNow))
	assert.Equal(t, SessionStatusCompleted, s.Status)
	require.NotNil(t, s.FinalScore)
	assert.InDelta(t, 72.5, *s.FinalScore, 1e-9)
	assert.True(t, s.EndedEarly)
	require.NotNil(t, s.CompletedAt)
	assert.Equal(t, sessionNow, *s.CompletedAt)

	assert.ErrorIs(t, s.SubmitAnswer("q1", "late answer", 10, uniformScores(t, 5), sessionNow), ErrInvalidState)
	assert.ErrorIs(t, s.AddQuestion(bankQuestion("q2")), ErrInvalidState)
	assert.ErrorIs(t, s.Complete(10, false, sessionNow), ErrInvalidState)
	assert.ErrorIs(t, s.Cancel(sessionNow), ErrInvalidState)

	_, ok := s.CurrentQuestion()
	assert.False(t, ok)
}

func TestCancelledSessionIsTerminal(t *testing.T) {
	s := NewInterviewSession(1, 2, InterviewTypeBehavioral, bankQuestion("q1"), sessionNow)

	require.NoError(t, s.Cancel(sessionNow))
	assert.Equal(t, SessionStatusCancelled, s.Status)
	assert.Nil(t, s.FinalScore)

	assert.ErrorIs(t, s.Complete(50, false, sessionNow), ErrInvalidState)
	assert.ErrorIs(t, s.Cancel(sessionNow), ErrInvalidState)
}

func TestShouldEndAfterMaxQuestions(t *testing.T) {
	s := NewInterviewSession(1, 2, InterviewTypeBehavioral, bankQuestion("q0"), sessionNow)

	for i := 0; i < MaxQuestions; i++ {
		current, ok := s.CurrentQuestion()
		require.True(t, ok)
		require.NoError(t, s.SubmitAnswer(current.ID, "answer", 30, uniformScores(t, 5), sessionNow))
		if i < MaxQuestions-1 {
			require.NoError(t, s.AddQuestion(bankQuestion(current.ID+"x")))
		}
		assert.Equal(t, i+1 == MaxQuestions, s.ShouldEnd())
	}

	assert.Equal(t, "10/10", s.Progress())
}

func TestShouldEndWhenTimeBudgetSpent(t *testing.T) {
	s := NewInterviewSession(1, 2, InterviewTypeBehavioral, bankQuestion("q1"), sessionNow)
	assert.False(t, s.ShouldEnd())

	require.NoError(t, s.SubmitAnswer("q1", "a very long answer", SessionTimeBudget+200, uniformScores(t, 5), sessionNow))

	assert.Equal(t, 0, s.TimeRemaining())
	assert.True(t, s.ShouldEnd())
}

func TestLastScoreWithoutAnswers(t *testing.T) {
	s := NewInterviewSession(1, 2, InterviewTypeBehavioral, bankQuestion("q1"), sessionNow)

	_, ok := s.LastScore()
	assert.False(t, ok)
}
