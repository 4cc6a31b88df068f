package models

import "time"

type JobProfile struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title           string          `gorm:"size:255;not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	DifficultyLevel int             `gorm:"not null;default:5" json:"difficulty_level"`
	Competencies    []JobCompetency `gorm:"foreignKey:JobProfileID" json:"competencies,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// JobCompetency is a named skill area the interview probes. Weight is the
// relative importance in [0,1], Depth the expected expertise level in [1,10].
type JobCompetency struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	JobProfileID uint    `gorm:"not null;index" json:"job_profile_id"`
	Name         string  `gorm:"size:100;not null" json:"name"`
	Weight       float64 `gorm:"not null;default:0.5" json:"weight"`
	Depth        int     `gorm:"not null;default:5" json:"depth"`
}
