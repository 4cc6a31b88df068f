package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
	SessionStatusCancelled  = "cancelled"
)

const (
	InterviewTypeBehavioral = "behavioral"
	InterviewTypeTechnical  = "technical"
	InterviewTypeMixed      = "mixed"
)

// An interview ends after MaxQuestions answered questions or once the
// accumulated answer time exhausts SessionTimeBudget seconds.
const (
	MaxQuestions      = 10
	SessionTimeBudget = 1800
)

// InterviewSession is the aggregate root of one candidate's interview attempt.
// Asked holds every question put to the candidate in order; Turns holds one
// record per answered question. While the session is in progress the current
// unanswered question is Asked[len(Turns)].
type InterviewSession struct {
	ID            string            `gorm:"primaryKey;size:36" json:"id"`
	UserID        uint              `gorm:"not null;index" json:"user_id"`
	JobProfileID  uint              `gorm:"not null;index" json:"job_profile_id"`
	InterviewType string            `gorm:"size:20;not null" json:"interview_type"`
	Status        string            `gorm:"size:20;not null;default:'in_progress'" json:"status"`
	FinalScore    *float64          `json:"final_score,omitempty"`
	EndedEarly    bool              `gorm:"not null;default:false" json:"ended_early"`
	Asked         []SessionQuestion `gorm:"foreignKey:SessionID" json:"asked,omitempty"`
	Turns         []InterviewTurn   `gorm:"foreignKey:SessionID" json:"turns,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
}

type SessionQuestion struct {
	ID         uint     `gorm:"primaryKey" json:"-"`
	SessionID  string   `gorm:"size:36;not null;index" json:"-"`
	Position   int      `gorm:"not null" json:"position"`
	QuestionID string   `gorm:"size:36;not null" json:"question_id"`
	Question   Question `gorm:"foreignKey:QuestionID" json:"question"`
}

type InterviewTurn struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	SessionID       string    `gorm:"size:36;not null;index" json:"-"`
	Position        int       `gorm:"not null" json:"position"`
	QuestionID      string    `gorm:"size:36;not null" json:"question_id"`
	AnswerText      string    `gorm:"type:text;not null" json:"answer_text"`
	DurationSeconds int       `gorm:"not null" json:"duration_seconds"`
	SubmittedAt     time.Time `json:"submitted_at"`
	Clarity         float64   `gorm:"not null" json:"clarity"`
	Completeness    float64   `gorm:"not null" json:"completeness"`
	Relevance       float64   `gorm:"not null" json:"relevance"`
	Confidence      float64   `gorm:"not null" json:"confidence"`
	Overall         float64   `gorm:"not null" json:"overall"`
}

func (t InterviewTurn) Scores() AnswerScores {
	return AnswerScores{
		Clarity:      t.Clarity,
		Completeness: t.Completeness,
		Relevance:    t.Relevance,
		Confidence:   t.Confidence,
	}
}

// NewInterviewSession creates an in-progress session seeded with its first
// question.
func NewInterviewSession(userID, jobProfileID uint, interviewType string, first Question, now time.Time) *InterviewSession {
	id := uuid.NewString()
	return &InterviewSession{
		ID:            id,
		UserID:        userID,
		JobProfileID:  jobProfileID,
		InterviewType: interviewType,
		Status:        SessionStatusInProgress,
		Asked: []SessionQuestion{{
			SessionID:  id,
			Position:   0,
			QuestionID: first.ID,
			Question:   first,
		}},
		CreatedAt: now,
	}
}

// CurrentQuestion returns the last asked, not yet answered question.
func (s *InterviewSession) CurrentQuestion() (Question, bool) {
	if s.Status != SessionStatusInProgress || len(s.Turns) >= len(s.Asked) {
		return Question{}, false
	}
	return s.Asked[len(s.Turns)].Question, true
}

func (s *InterviewSession) SubmitAnswer(questionID, text string, durationSeconds int, scores AnswerScores, now time.Time) error {
	if s.Status != SessionStatusInProgress {
		return fmt.Errorf("%w: cannot answer a %s session", ErrInvalidState, s.Status)
	}
	if durationSeconds < 0 {
		return fmt.Errorf("%w: negative answer duration", ErrValidation)
	}
	current, ok := s.CurrentQuestion()
	if !ok || current.ID != questionID {
		return fmt.Errorf("%w: question %s is not the current question", ErrInvalidState, questionID)
	}
	s.Turns = append(s.Turns, InterviewTurn{
		SessionID:       s.ID,
		Position:        len(s.Turns),
		QuestionID:      questionID,
		AnswerText:      text,
		DurationSeconds: durationSeconds,
		SubmittedAt:     now,
		Clarity:         scores.Clarity,
		Completeness:    scores.Completeness,
		Relevance:       scores.Relevance,
		Confidence:      scores.Confidence,
		Overall:         scores.Overall(),
	})
	return nil
}

// AddQuestion appends a question to the asked list; it becomes the new
// current question.
func (s *InterviewSession) AddQuestion(q Question) error {
	if s.Status != SessionStatusInProgress {
		return fmt.Errorf("%w: cannot add a question to a %s session", ErrInvalidState, s.Status)
	}
	s.Asked = append(s.Asked, SessionQuestion{
		SessionID:  s.ID,
		Position:   len(s.Asked),
		QuestionID: q.ID,
		Question:   q,
	})
	return nil
}

func (s *InterviewSession) Complete(finalScore float64, endedEarly bool, now time.Time) error {
	if s.Status != SessionStatusInProgress {
		return fmt.Errorf("%w: cannot complete a %s session", ErrInvalidState, s.Status)
	}
	s.Status = SessionStatusCompleted
	s.FinalScore = &finalScore
	s.EndedEarly = endedEarly
	s.CompletedAt = &now
	return nil
}

func (s *InterviewSession) Cancel(now time.Time) error {
	if s.Status != SessionStatusInProgress {
		return fmt.Errorf("%w: cannot cancel a %s session", ErrInvalidState, s.Status)
	}
	s.Status = SessionStatusCancelled
	s.CompletedAt = &now
	return nil
}

func (s *InterviewSession) Answered() int {
	return len(s.Turns)
}

func (s *InterviewSession) Progress() string {
	return fmt.Sprintf("%d/%d", len(s.Turns), MaxQuestions)
}

// TimeRemaining is the unspent part of the session budget in seconds,
// computed from accumulated answer durations rather than wall-clock time.
func (s *InterviewSession) TimeRemaining() int {
	spent := 0
	for _, t := range s.Turns {
		spent += t.DurationSeconds
	}
	if spent >= SessionTimeBudget {
		return 0
	}
	return SessionTimeBudget - spent
}

func (s *InterviewSession) ShouldEnd() bool {
	return len(s.Turns) >= MaxQuestions || s.TimeRemaining() <= 0
}

// LastScore returns the overall score of the most recently answered question.
func (s *InterviewSession) LastScore() (float64, bool) {
	if len(s.Turns) == 0 {
		return 0, false
	}
	return s.Turns[len(s.Turns)-1].Overall, true
}

// AskedIDs lists every question already put to the candidate.
func (s *InterviewSession) AskedIDs() []string {
	ids := make([]string, len(s.Asked))
	for i, q := range s.Asked {
		ids[i] = q.QuestionID
	}
	return ids
}
