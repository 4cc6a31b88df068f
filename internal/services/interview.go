package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ozrabal/mentor-api-sub000/internal/models"
)

// SessionStore is the persistence collaborator for interview sessions.
// Save has upsert semantics.
type SessionStore interface {
	Load(ctx context.Context, id string) (*models.InterviewSession, error)
	Save(ctx context.Context, session *models.InterviewSession) error
	ListByUser(ctx context.Context, userID uint) ([]models.InterviewSession, error)
}

// ReportStore persists and retrieves closing reports.
type ReportStore interface {
	SaveReport(ctx context.Context, report *models.InterviewReport) error
	ReportBySession(ctx context.Context, sessionID string) (*models.InterviewReport, error)
}

// JobProfileStore resolves the job context an interview runs against.
type JobProfileStore interface {
	Get(ctx context.Context, id uint) (*models.JobProfile, error)
}

// InterviewService orchestrates the interview lifecycle: it scores answers,
// advances the session state machine, asks the selector for the next question
// and persists the result. Sessions are single-writer; callers serialize
// requests per session id.
type InterviewService struct {
	sessions SessionStore
	reports  ReportStore
	profiles JobProfileStore
	scoring  *ScoringEngine
	feedback *FeedbackGenerator
	selector *QuestionSelector
	reporter *ReportAggregator
	clock    func() time.Time
	logger   *zap.Logger
}

func NewInterviewService(
	sessions SessionStore,
	reports ReportStore,
	profiles JobProfileStore,
	scoring *ScoringEngine,
	feedback *FeedbackGenerator,
	selector *QuestionSelector,
	reporter *ReportAggregator,
	clock func() time.Time,
	logger *zap.Logger,
) *InterviewService {
	return &InterviewService{
		sessions: sessions,
		reports:  reports,
		profiles: profiles,
		scoring:  scoring,
		feedback: feedback,
		selector: selector,
		reporter: reporter,
		clock:    clock,
		logger:   logger,
	}
}

type StartResult struct {
	SessionID     string          `json:"session_id"`
	FirstQuestion models.Question `json:"first_question"`
	Progress      string          `json:"progress"`
	TimeRemaining int             `json:"time_remaining"`
}

type AnswerResult struct {
	Scores        models.AnswerScores `json:"scores"`
	OverallScore  float64             `json:"overall_score"`
	NextQuestion  *models.Question    `json:"next_question,omitempty"`
	Feedback      string              `json:"feedback,omitempty"`
	Progress      string              `json:"progress"`
	TimeRemaining int                 `json:"time_remaining"`
}

type SessionState struct {
	models.InterviewSession
	CurrentQuestion *models.Question `json:"current_question,omitempty"`
	Progress        string           `json:"progress"`
	TimeRemaining   int              `json:"time_remaining"`
}

type SessionSummary struct {
	ID            string     `json:"id"`
	JobProfileID  uint       `json:"job_profile_id"`
	InterviewType string     `json:"interview_type"`
	Status        string     `json:"status"`
	Answered      int        `json:"answered"`
	FinalScore    *float64   `json:"final_score,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// Start opens a session against a job profile and seeds its first question.
func (s *InterviewService) Start(ctx context.Context, userID, jobProfileID uint, interviewType string) (*StartResult, error) {
	if interviewType == "" {
		interviewType = models.InterviewTypeMixed
	}
	switch interviewType {
	case models.InterviewTypeBehavioral, models.InterviewTypeTechnical, models.InterviewTypeMixed:
	default:
		return nil, fmt.Errorf("%w: unknown interview type %q", models.ErrValidation, interviewType)
	}

	profile, err := s.profiles.Get(ctx, jobProfileID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != userID {
		return nil, fmt.Errorf("%w: job profile %d", ErrForbidden, jobProfileID)
	}

	first, err := s.selector.SelectFirst(ctx, profile.Competencies, float64(profile.DifficultyLevel), interviewType)
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, fmt.Errorf("%w: no questions available for this profile", ErrNotFound)
	}

	session := models.NewInterviewSession(userID, jobProfileID, interviewType, *first, s.clock())
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("interview started",
		zap.String("session_id", session.ID),
		zap.Uint("user_id", userID),
		zap.String("interview_type", interviewType))

	return &StartResult{
		SessionID:     session.ID,
		FirstQuestion: *first,
		Progress:      session.Progress(),
		TimeRemaining: session.TimeRemaining(),
	}, nil
}

// SubmitAnswer scores the answer to the current question, appends it to the
// session, proposes the next question and persists the mutated session.
func (s *InterviewService) SubmitAnswer(ctx context.Context, sessionID string, userID uint, questionID, answerText string, durationSeconds int) (*AnswerResult, error) {
	session, err := s.ownedSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, session.JobProfileID)
	if err != nil {
		return nil, err
	}

	current, ok := session.CurrentQuestion()
	if !ok || current.ID != questionID {
		return nil, fmt.Errorf("%w: question %s is not the current question", models.ErrInvalidState, questionID)
	}

	scores := s.scoring.Score(answerText, current.Category, current.Type, competencyNames(profile.Competencies))
	if err := session.SubmitAnswer(questionID, answerText, durationSeconds, scores, s.clock()); err != nil {
		return nil, err
	}

	next, err := s.selector.SelectNext(ctx, session, profile.Competencies, float64(profile.DifficultyLevel), session.InterviewType)
	if err != nil {
		return nil, err
	}
	if next != nil {
		if err := session.AddQuestion(*next); err != nil {
			return nil, err
		}
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &AnswerResult{
		Scores:        scores,
		OverallScore:  scores.Overall(),
		NextQuestion:  next,
		Feedback:      s.feedback.Generate(scores, current.Type),
		Progress:      session.Progress(),
		TimeRemaining: session.TimeRemaining(),
	}, nil
}

// Complete aggregates the closing report, transitions the session to
// completed and persists both.
func (s *InterviewService) Complete(ctx context.Context, sessionID string, userID uint, endedEarly bool) (*CompletionReport, error) {
	session, err := s.ownedSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, session.JobProfileID)
	if err != nil {
		return nil, err
	}

	report, err := s.reporter.Aggregate(session, profile.Competencies, endedEarly, s.clock())
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	row, err := reportRow(report)
	if err != nil {
		return nil, err
	}
	if err := s.reports.SaveReport(ctx, row); err != nil {
		return nil, err
	}

	s.logger.Info("interview completed",
		zap.String("session_id", session.ID),
		zap.Float64("final_score", report.FinalScore),
		zap.Bool("ended_early", endedEarly))

	return report, nil
}

// Cancel marks a session as cancelled. No report is produced.
func (s *InterviewService) Cancel(ctx context.Context, sessionID string, userID uint) error {
	session, err := s.ownedSession(ctx, sessionID, userID)
	if err != nil {
		return err
	}
	if err := session.Cancel(s.clock()); err != nil {
		return err
	}
	return s.sessions.Save(ctx, session)
}

// Get returns the owner's view of a session including the current question.
func (s *InterviewService) Get(ctx context.Context, sessionID string, userID uint) (*SessionState, error) {
	session, err := s.ownedSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	state := &SessionState{
		InterviewSession: *session,
		Progress:         session.Progress(),
		TimeRemaining:    session.TimeRemaining(),
	}
	if current, ok := session.CurrentQuestion(); ok {
		state.CurrentQuestion = &current
	}
	return state, nil
}

func (s *InterviewService) List(ctx context.Context, userID uint) ([]SessionSummary, error) {
	sessions, err := s.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]SessionSummary, len(sessions))
	for i, sess := range sessions {
		summaries[i] = SessionSummary{
			ID:            sess.ID,
			JobProfileID:  sess.JobProfileID,
			InterviewType: sess.InterviewType,
			Status:        sess.Status,
			Answered:      sess.Answered(),
			FinalScore:    sess.FinalScore,
			CreatedAt:     sess.CreatedAt,
			CompletedAt:   sess.CompletedAt,
		}
	}
	return summaries, nil
}

// GetReport returns the stored closing report of a completed session.
func (s *InterviewService) GetReport(ctx context.Context, sessionID string, userID uint) (*CompletionReport, error) {
	session, err := s.ownedSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionStatusCompleted {
		return nil, fmt.Errorf("%w: session %s has no report", models.ErrInvalidState, sessionID)
	}

	row, err := s.reports.ReportBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return reportFromRow(row)
}

func (s *InterviewService) ownedSession(ctx context.Context, sessionID string, userID uint) (*models.InterviewSession, error) {
	session, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("%w: session %s", ErrForbidden, sessionID)
	}
	return session, nil
}

func competencyNames(competencies []models.JobCompetency) []string {
	names := make([]string, len(competencies))
	for i, c := range competencies {
		names[i] = c.Name
	}
	return names
}

func reportRow(report *CompletionReport) (*models.InterviewReport, error) {
	breakdown, err := json.Marshal(report.Breakdown)
	if err != nil {
		return nil, err
	}
	gaps, err := json.Marshal(report.TopGaps)
	if err != nil {
		return nil, err
	}
	strengths, err := json.Marshal(report.Strengths)
	if err != nil {
		return nil, err
	}
	return &models.InterviewReport{
		ID:                 report.Report.ID,
		SessionID:          report.SessionID,
		FinalScore:         report.FinalScore,
		SuccessProbability: report.SuccessProbability,
		Breakdown:          string(breakdown),
		Gaps:               string(gaps),
		Strengths:          string(strengths),
		CreatedAt:          report.Report.CreatedAt,
	}, nil
}

func reportFromRow(row *models.InterviewReport) (*CompletionReport, error) {
	report := &CompletionReport{
		SessionID:          row.SessionID,
		FinalScore:         row.FinalScore,
		SuccessProbability: row.SuccessProbability,
		Report:             ReportMeta{ID: row.ID, CreatedAt: row.CreatedAt},
	}
	if err := json.Unmarshal([]byte(row.Breakdown), &report.Breakdown); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(row.Gaps), &report.TopGaps); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(row.Strengths), &report.Strengths); err != nil {
		return nil, err
	}
	return report, nil
}
