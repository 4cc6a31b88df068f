package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ozrabal/mentor-api-sub000/internal/models"
)

// Dimension averages below gapThreshold become report gaps; averages at or
// above strengthThreshold become strengths.
const (
	gapThreshold      = 6.0
	strengthThreshold = 7.0
	maxReportGaps     = 3
)

const (
	GapPriorityHigh   = "high"
	GapPriorityMedium = "medium"
	GapPriorityLow    = "low"
)

type CompetencyScore struct {
	Competency string  `json:"competency"`
	Score      float64 `json:"score"`
	Gap        float64 `json:"gap"`
	Comment    string  `json:"comment"`
}

type ReportGap struct {
	Dimension string `json:"dimension"`
	Priority  string `json:"priority"`
	Advice    string `json:"advice"`
}

type ReportMeta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type CompletionReport struct {
	SessionID          string            `json:"session_id"`
	FinalScore         float64           `json:"final_score"`
	SuccessProbability float64           `json:"success_probability"`
	Breakdown          []CompetencyScore `json:"competency_breakdown"`
	TopGaps            []ReportGap       `json:"top_gaps"`
	Strengths          []string          `json:"strengths"`
	Report             ReportMeta        `json:"report"`
}

var gapAdvice = map[string]string{
	"clarity":      "Answers were hard to follow; practice delivering structured, complete sentences.",
	"completeness": "Answers left out key parts of the story; cover situation, actions and outcomes end to end.",
	"relevance":    "Answers drifted from the role; anchor them in the competencies the job asks for.",
	"confidence":   "Delivery sounded hesitant; cut filler words and commit to your statements.",
}

var strengthRemarks = map[string]string{
	"clarity":      "Communicates in a clear, well-structured way.",
	"completeness": "Gives thorough answers that cover the whole story.",
	"relevance":    "Keeps answers anchored to the role and its competencies.",
	"confidence":   "Delivers answers with conviction.",
}

// Dimension evaluation order used for gap/strength reporting.
var reportDimensions = []string{"clarity", "completeness", "relevance", "confidence"}

// ReportAggregator turns a finished interview into its closing report and
// drives the session's transition to completed.
type ReportAggregator struct{}

func NewReportAggregator() *ReportAggregator {
	return &ReportAggregator{}
}

// Aggregate computes the final metrics of a session and completes it. The
// session must still be in progress.
func (a *ReportAggregator) Aggregate(session *models.InterviewSession, competencies []models.JobCompetency, endedEarly bool, now time.Time) (*CompletionReport, error) {
	if session.Status != models.SessionStatusInProgress {
		return nil, fmt.Errorf("%w: cannot report on a %s session", models.ErrInvalidState, session.Status)
	}

	finalScore := meanOverall(session.Turns)
	if err := session.Complete(finalScore, endedEarly, now); err != nil {
		return nil, err
	}

	return &CompletionReport{
		SessionID:          session.ID,
		FinalScore:         finalScore,
		SuccessProbability: successProbability(finalScore),
		Breakdown:          competencyBreakdown(session, competencies),
		TopGaps:            topGaps(session.Turns),
		Strengths:          strengths(session.Turns),
		Report: ReportMeta{
			ID:        uuid.NewString(),
			CreatedAt: now,
		},
	}, nil
}

func meanOverall(turns []models.InterviewTurn) float64 {
	if len(turns) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range turns {
		sum += t.Overall
	}
	return sum / float64(len(turns))
}

// successProbability buckets the final score into a coarse outcome estimate.
func successProbability(finalScore float64) float64 {
	switch {
	case finalScore >= 80:
		return 0.85
	case finalScore >= 70:
		return 0.72
	case finalScore >= 60:
		return 0.55
	case finalScore >= 50:
		return 0.40
	default:
		return 0.25
	}
}

func competencyBreakdown(session *models.InterviewSession, competencies []models.JobCompetency) []CompetencyScore {
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

	breakdown := make([]CompetencyScore, 0, len(competencies))
	for _, c := range competencies {
		score := 0.0
		if counts[c.Name] > 0 {
			score = sums[c.Name] / float64(counts[c.Name])
		}
		gap := float64(c.Depth)*10 - score
		if gap < 0 {
			gap = 0
		}
		breakdown = append(breakdown, CompetencyScore{
			Competency: c.Name,
			Score:      score,
			Gap:        gap,
			Comment:    competencyComment(c.Name, score, counts[c.Name]),
		})
	}
	return breakdown
}

func competencyComment(name string, score float64, answered int) string {
	switch {
	case answered == 0:
		return fmt.Sprintf("%s was not probed during this session.", name)
	case score >= 75:
		return fmt.Sprintf("Strong showing on %s.", name)
	case score >= 50:
		return fmt.Sprintf("Adequate on %s, with room to grow.", name)
	default:
		return fmt.Sprintf("%s fell short of the expected depth.", name)
	}
}

func dimensionAverages(turns []models.InterviewTurn) map[string]float64 {
	avgs := map[string]float64{"clarity": 0, "completeness": 0, "relevance": 0, "confidence": 0}
	if len(turns) == 0 {
		return avgs
	}
	for _, t := range turns {
		avgs["clarity"] += t.Clarity
		avgs["completeness"] += t.Completeness
		avgs["relevance"] += t.Relevance
		avgs["confidence"] += t.Confidence
	}
	n := float64(len(turns))
	for dim := range avgs {
		avgs[dim] /= n
	}
	return avgs
}

// topGaps reports up to three below-threshold dimensions, weakest first.
func topGaps(turns []models.InterviewTurn) []ReportGap {
	avgs := dimensionAverages(turns)

	gaps := make([]ReportGap, 0, len(reportDimensions))
	for _, dim := range reportDimensions {
		avg := avgs[dim]
		if avg >= gapThreshold {
			continue
		}
		gaps = append(gaps, ReportGap{
			Dimension: dim,
			Priority:  gapPriority(avg),
			Advice:    gapAdvice[dim],
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return avgs[gaps[i].Dimension] < avgs[gaps[j].Dimension]
	})
	if len(gaps) > maxReportGaps {
		gaps = gaps[:maxReportGaps]
	}
	return gaps
}

func gapPriority(avg float64) string {
	switch {
	case avg < 4:
		return GapPriorityHigh
	case avg < 5:
		return GapPriorityMedium
	default:
		return GapPriorityLow
	}
}

func strengths(turns []models.InterviewTurn) []string {
	avgs := dimensionAverages(turns)
	out := make([]string, 0, len(reportDimensions))
	for _, dim := range reportDimensions {
		if avgs[dim] >= strengthThreshold {
			out = append(out, strengthRemarks[dim])
		}
	}
	return out
}
