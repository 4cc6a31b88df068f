package services

import (
	"strings"

	"github.com/ozrabal/mentor-api-sub000/internal/models"
)

// ScoringEngine maps a free-text answer onto the four rubric dimensions using
// deterministic lexical heuristics. Scoring is total: malformed or empty
// input yields low scores, never an error.
type ScoringEngine struct{}

func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// Score rates an answer against the question it was given for. competencies
// are the names of the job competencies the interview probes.
func (e *ScoringEngine) Score(answerText, questionCategory, questionType string, competencies []string) models.AnswerScores {
	text := strings.ToLower(answerText)
	words := strings.Fields(text)

	// Sub-scores are clamped to [0,10], so construction cannot fail.
	scores, _ := models.NewAnswerScores(
		clarityScore(text, words),
		completenessScore(text, words, questionType),
		relevanceScore(text, questionCategory, competencies),
		confidenceScore(text, words),
	)
	return scores
}

func clarityScore(text string, words []string) float64 {
	var score float64

	switch marks := terminalMarks(text); {
	case marks >= 3:
		score += 3
	case marks >= 1:
		score += 1.5
	}

	for _, kw := range structureKeywords {
		if strings.Contains(text, kw) {
			score += 3
			break
		}
	}

	switch wc := len(words); {
	case wc >= 50 && wc <= 200:
		score += 2
	case (wc >= 30 && wc < 50) || (wc > 200 && wc <= 300):
		score += 1
	}

	switch ratio := uniqueWordRatio(words); {
	case ratio > 0.6:
		score += 2
	case ratio > 0.4:
		score += 1
	}

	return clamp10(score)
}

func completenessScore(text string, words []string, questionType string) float64 {
	switch questionType {
	case models.QuestionTypeBehavioral:
		return clamp10(2.5 * float64(matchedGroups(text, starGroups)))
	case models.QuestionTypeTechnical:
		return clamp10(2.5 * float64(matchedGroups(text, technicalGroups)))
	}

	switch wc := len(words); {
	case wc >= 100:
		return 10
	case wc >= 50:
		return 5
	case wc >= 30:
		return 2.5
	}
	return 0
}

func relevanceScore(text, questionCategory string, competencies []string) float64 {
	var score float64

	if questionCategory != "" && strings.Contains(text, strings.ToLower(questionCategory)) {
		score += 2
	}

	mentioned := 0
	for _, name := range competencies {
		if name != "" && strings.Contains(text, strings.ToLower(name)) {
			mentioned++
		}
	}
	switch {
	case mentioned >= 2:
		score += 4
	case mentioned == 1:
		score += 2
	}

	if containsAny(text, technicalTerms) {
		score += 3
	}
	if containsAny(text, roleTerms) {
		score += 3
	}

	return clamp10(score)
}

func confidenceScore(text string, words []string) float64 {
	score := 2.0

	if len(words) >= 50 {
		score += 2
	}

	switch fillers := fillerCount(text, words); {
	case fillers == 0:
		score += 3
	case fillers <= 2:
		score += 1.5
	}

	switch marks := terminalMarks(text); {
	case marks >= 3:
		score += 3
	case marks >= 1:
		score += 1.5
	}

	return clamp10(score)
}

func terminalMarks(text string) int {
	return strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
}

func uniqueWordRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[trimPunct(w)] = struct{}{}
	}
	return float64(len(seen)) / float64(len(words))
}

func fillerCount(text string, words []string) int {
	count := 0
	for _, filler := range fillerWords {
		if strings.Contains(filler, " ") {
			count += strings.Count(text, filler)
			continue
		}
		for _, w := range words {
			if trimPunct(w) == filler {
				count++
			}
		}
	}
	return count
}

func matchedGroups(text string, groups [][]string) int {
	matched := 0
	for _, group := range groups {
		if containsAny(text, group) {
			matched++
		}
	}
	return matched
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func trimPunct(w string) string {
	return strings.Trim(w, ".,!?;:\"'()")
}

func clamp10(v float64) float64 {
	if v > 10 {
		return 10
	}
	if v < 0 {
		return 0
	}
	return v
}
