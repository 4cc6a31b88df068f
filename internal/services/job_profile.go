package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ozrabal/mentor-api-sub000/internal/models"
)

// JobProfileService manages the job contexts interviews run against. It
// implements JobProfileStore.
type JobProfileService struct {
	db      *gorm.DB
	extract *ExtractService
}

func NewJobProfileService(db *gorm.DB, extract *ExtractService) *JobProfileService {
	return &JobProfileService{db: db, extract: extract}
}

type CompetencyInput struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Depth  int     `json:"depth"`
}

type JobProfileInput struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	DifficultyLevel int               `json:"difficulty_level"`
	Competencies    []CompetencyInput `json:"competencies"`
}

func (s *JobProfileService) Create(ctx context.Context, userID uint, input JobProfileInput) (*models.JobProfile, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: profile title is required", models.ErrValidation)
	}
	if input.DifficultyLevel == 0 {
		input.DifficultyLevel = 5
	}
	if input.DifficultyLevel < 1 || input.DifficultyLevel > 10 {
		return nil, fmt.Errorf("%w: difficulty level %d outside [1,10]", models.ErrValidation, input.DifficultyLevel)
	}

	profile := models.JobProfile{
		UserID:          userID,
		Title:           input.Title,
		Description:     input.Description,
		DifficultyLevel: input.DifficultyLevel,
	}
	for _, c := range input.Competencies {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: competency name is required", models.ErrValidation)
		}
		if c.Weight < 0 || c.Weight > 1 {
			return nil, fmt.Errorf("%w: competency weight %.2f outside [0,1]", models.ErrValidation, c.Weight)
		}
		if c.Depth < 1 || c.Depth > 10 {
			return nil, fmt.Errorf("%w: competency depth %d outside [1,10]", models.ErrValidation, c.Depth)
		}
		profile.Competencies = append(profile.Competencies, models.JobCompetency{
			Name:   c.Name,
			Weight: c.Weight,
			Depth:  c.Depth,
		})
	}

	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Ingest structures a raw job description through the extraction collaborator
// and stores the resulting profile.
func (s *JobProfileService) Ingest(ctx context.Context, userID uint, title, description string) (*models.JobProfile, error) {
	if description == "" {
		return nil, fmt.Errorf("%w: job description is required", models.ErrValidation)
	}

	extraction, err := s.extract.StructureJob(ctx, description)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = extraction.Title
	}
	input := JobProfileInput{
		Title:           title,
		Description:     description,
		DifficultyLevel: extraction.DifficultyLevel,
	}
	for _, c := range extraction.Competencies {
		input.Competencies = append(input.Competencies, CompetencyInput{
			Name:   c.Name,
			Weight: c.Weight,
			Depth:  c.Depth,
		})
	}
	return s.Create(ctx, userID, input)
}

func (s *JobProfileService) Get(ctx context.Context, id uint) (*models.JobProfile, error) {
	var profile models.JobProfile
	err := s.db.WithContext(ctx).Preload("Competencies").First(&profile, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: job profile %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *JobProfileService) List(ctx context.Context, userID uint) ([]models.JobProfile, error) {
	var profiles []models.JobProfile
	err := s.db.WithContext(ctx).
		Preload("Competencies").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// ExtractionAvailable reports whether profile ingestion is configured.
func (s *JobProfileService) ExtractionAvailable() bool {
	return s.extract.IsAvailable()
}
