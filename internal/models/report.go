package models

import "time"

// InterviewReport is the persisted closing report of a completed session.
// Breakdown, Gaps and Strengths hold the JSON-encoded report sections.
type InterviewReport struct {
	ID                 string    `gorm:"primaryKey;size:36" json:"id"`
	SessionID          string    `gorm:"size:36;not null;uniqueIndex" json:"session_id"`
	FinalScore         float64   `gorm:"not null" json:"final_score"`
	SuccessProbability float64   `gorm:"not null" json:"success_probability"`
	Breakdown          string    `gorm:"type:jsonb" json:"-"`
	Gaps               string    `gorm:"type:jsonb" json:"-"`
	Strengths          string    `gorm:"type:jsonb" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
}
