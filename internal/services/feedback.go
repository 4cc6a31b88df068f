package services

import "github.com/ozrabal/mentor-api-sub000/internal/models"

// Answers scoring at or above this overall value get no remediation advice.
const feedbackThreshold = 50.0

// FeedbackGenerator emits one advisory sentence for the weakest dimension of
// a poorly scored answer.
type FeedbackGenerator struct{}

func NewFeedbackGenerator() *FeedbackGenerator {
	return &FeedbackGenerator{}
}

// Generate returns remediation text for the lowest-scoring dimension, or an
// empty string when the overall score clears the threshold. Ties go to the
// dimension evaluated first: clarity, completeness, relevance, confidence.
func (g *FeedbackGenerator) Generate(scores models.AnswerScores, questionType string) string {
	if scores.Overall() >= feedbackThreshold {
		return ""
	}

	lowest := "clarity"
	lowestValue := scores.Clarity
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"completeness", scores.Completeness},
		{"relevance", scores.Relevance},
		{"confidence", scores.Confidence},
	} {
		if d.value < lowestValue {
			lowest = d.name
			lowestValue = d.value
		}
	}

	switch lowest {
	case "clarity":
		return "Structure your answer in complete sentences and spell out the situation, what you did and how it turned out."
	case "completeness":
		if questionType == models.QuestionTypeBehavioral {
			return "Cover the full STAR arc: describe the situation, your task, the action you took and the result it produced."
		}
		return "Go deeper: state the problem, walk through your approach and name the trade-offs you weighed."
	case "relevance":
		return "Tie your answer back to the role: mention the skills the position asks for and how your experience maps to them."
	default:
		return "Speak with more conviction: drop filler words and finish your sentences decisively."
	}
}
