package models

import "time"

type Question struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	Category   string    `gorm:"size:100;not null;index" json:"category"`
	Type       string    `gorm:"size:20;not null;default:'behavioral'" json:"type"`
	Difficulty int       `gorm:"not null;default:5" json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	QuestionTypeBehavioral = "behavioral"
	QuestionTypeTechnical  = "technical"
)
