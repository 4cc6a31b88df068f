package services

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"github.com/ozrabal/mentor-api-sub000/internal/models"
)

// QuestionPool is the external question-bank collaborator the selector draws
// candidates from.
type QuestionPool interface {
	// FindCandidates returns unasked questions matching the category, a
	// difficulty range and, when questionType is non-empty, the question type.
	FindCandidates(ctx context.Context, category string, minDifficulty, maxDifficulty int, questionType string, excludeIDs []string) ([]models.Question, error)
	// FindAny returns unasked questions with no further filters.
	FindAny(ctx context.Context, excludeIDs []string) ([]models.Question, error)
}

// Category probed when a job profile carries no competencies.
const defaultCategory = "general"

// QuestionSelector picks the next question adaptively: it probes the
// candidate's weakest competency at a difficulty tuned by the last score, and
// breaks ties between candidates with the injected randomness source.
type QuestionSelector struct {
	pool QuestionPool
	rng  *rand.Rand
}

func NewQuestionSelector(pool QuestionPool, rng *rand.Rand) *QuestionSelector {
	return &QuestionSelector{pool: pool, rng: rng}
}

// SelectNext proposes the next question for the session, or nil when the
// session budget is exhausted or the pool has nothing left to ask.
func (s *QuestionSelector) SelectNext(ctx context.Context, session *models.InterviewSession, competencies []models.JobCompetency, baseDifficulty float64, interviewType string) (*models.Question, error) {
	if session.ShouldEnd() {
		return nil, nil
	}

	category := s.weakestCategory(session, competencies)
	difficulty := targetDifficulty(baseDifficulty, session)

	questionType := ""
	if interviewType != models.InterviewTypeMixed {
		questionType = interviewType
	}

	exclude := session.AskedIDs()
	candidates, err := s.pool.FindCandidates(ctx, category, difficulty-1, difficulty+1, questionType, exclude)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		candidates, err = s.pool.FindAny(ctx, exclude)
		if err != nil {
			return nil, err
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	picked := candidates[s.rng.Intn(len(candidates))]
	return &picked, nil
}

// SelectFirst picks the opening question for a session with no history yet.
func (s *QuestionSelector) SelectFirst(ctx context.Context, competencies []models.JobCompetency, baseDifficulty float64, interviewType string) (*models.Question, error) {
	probe := &models.InterviewSession{Status: models.SessionStatusInProgress}
	return s.SelectNext(ctx, probe, competencies, baseDifficulty, interviewType)
}

// weakestCategory returns the answered category with the lowest average
// overall score. With no answers yet it falls back to the highest-weight
// competency.
func (s *QuestionSelector) weakestCategory(session *models.InterviewSession, competencies []models.JobCompetency) string {
	if session.Answered() == 0 {
		best := ""
		bestWeight := -1.0
		for _, c := range competencies {
			if c.Weight > bestWeight {
				best = c.Name
				bestWeight = c.Weight
			}
		}
		if best != "" {
			return best
		}
		return defaultCategory
	}

	categoryOf := make(map[string]string, len(session.Asked))
	for _, q := range session.Asked {
		categoryOf[q.QuestionID] = q.Question.Category
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, t := range session.Turns {
		cat := categoryOf[t.QuestionID]
		sums[cat] += t.Overall
		counts[cat]++
	}

	categories := make([]string, 0, len(counts))
	for cat := range counts {
		categories = append(categories, cat)
	}
	// Lexical order keeps average ties deterministic.
	sort.Strings(categories)

	weakest := categories[0]
	weakestAvg := sums[weakest] / float64(counts[weakest])
	for _, cat := range categories[1:] {
		avg := sums[cat] / float64(counts[cat])
		if avg < weakestAvg {
			weakest = cat
			weakestAvg = avg
		}
	}
	return weakest
}

// targetDifficulty nudges the base difficulty down after a weak answer and up
// after a strong one, clamped to [1,10].
func targetDifficulty(baseDifficulty float64, session *models.InterviewSession) int {
	difficulty := int(math.Round(baseDifficulty))
	if last, ok := session.LastScore(); ok {
		switch {
		case last < 50:
			difficulty--
		case last > 75:
			difficulty++
		}
	}
	if difficulty < 1 {
		return 1
	}
	if difficulty > 10 {
		return 10
	}
	return difficulty
}
