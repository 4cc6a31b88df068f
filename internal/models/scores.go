package models

import "fmt"

// Dimension weights of the overall answer score.
const (
	clarityWeight      = 0.30
	completenessWeight = 0.30
	relevanceWeight    = 0.25
	confidenceWeight   = 0.15
)

// AnswerScores holds the four rubric dimensions of a scored answer, each
// bounded to [0,10].
type AnswerScores struct {
	Clarity      float64 `json:"clarity"`
	Completeness float64 `json:"completeness"`
	Relevance    float64 `json:"relevance"`
	Confidence   float64 `json:"confidence"`
}

func NewAnswerScores(clarity, completeness, relevance, confidence float64) (AnswerScores, error) {
	for _, v := range []float64{clarity, completeness, relevance, confidence} {
		if v < 0 || v > 10 {
			return AnswerScores{}, fmt.Errorf("%w: dimension score %.2f outside [0,10]", ErrValidation, v)
		}
	}
	return AnswerScores{
		Clarity:      clarity,
		Completeness: completeness,
		Relevance:    relevance,
		Confidence:   confidence,
	}, nil
}

// Overall maps the weighted dimension mix onto a 0-100 scale.
func (s AnswerScores) Overall() float64 {
	weighted := s.Clarity*clarityWeight +
		s.Completeness*completenessWeight +
		s.Relevance*relevanceWeight +
		s.Confidence*confidenceWeight
	return weighted / 10 * 100
}
