package services

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ozrabal/mentor-api-sub000/internal/models"
)

// QuestionBank is the gorm-backed question pool.
type QuestionBank struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewQuestionBank(db *gorm.DB, logger *zap.Logger) *QuestionBank {
	return &QuestionBank{db: db, logger: logger}
}

func (b *QuestionBank) FindCandidates(ctx context.Context, category string, minDifficulty, maxDifficulty int, questionType string, excludeIDs []string) ([]models.Question, error) {
	query := b.db.WithContext(ctx).
		Where("category = ? AND difficulty BETWEEN ? AND ?", category, minDifficulty, maxDifficulty)
	if questionType != "" {
		query = query.Where("type = ?", questionType)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (b *QuestionBank) FindAny(ctx context.Context, excludeIDs []string) ([]models.Question, error) {
	query := b.db.WithContext(ctx)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

type QuestionInput struct {
	Text       string `json:"text" yaml:"text"`
	Category   string `json:"category" yaml:"category"`
	Type       string `json:"type" yaml:"type"`
	Difficulty int    `json:"difficulty" yaml:"difficulty"`
}

func (b *QuestionBank) Add(ctx context.Context, input QuestionInput) (*models.Question, error) {
	question, err := questionFromInput("", input)
	if err != nil {
		return nil, err
	}
	if err := b.db.WithContext(ctx).Create(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

func (b *QuestionBank) List(ctx context.Context, category, questionType string) ([]models.Question, error) {
	query := b.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if questionType != "" {
		query = query.Where("type = ?", questionType)
	}

	var questions []models.Question
	if err := query.Order("category ASC, difficulty ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

type bankFile struct {
	Questions []struct {
		ID            string `yaml:"id"`
		QuestionInput `yaml:",inline"`
	} `yaml:"questions"`
}

// SeedFromFile loads a YAML question bank and upserts it by question id.
// Safe to run on every startup.
func (b *QuestionBank) SeedFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read question bank %s: %w", path, err)
	}

	var bank bankFile
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return fmt.Errorf("parse question bank %s: %w", path, err)
	}

	questions := make([]models.Question, 0, len(bank.Questions))
	for i, entry := range bank.Questions {
		question, err := questionFromInput(entry.ID, entry.QuestionInput)
		if err != nil {
			return fmt.Errorf("question bank %s entry %d: %w", path, i, err)
		}
		questions = append(questions, *question)
	}
	if len(questions) == 0 {
		return fmt.Errorf("question bank %s contains no questions", path)
	}

	err = b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&questions).Error
	if err != nil {
		return err
	}

	b.logger.Info("question bank seeded", zap.String("path", path), zap.Int("questions", len(questions)))
	return nil
}

func questionFromInput(id string, input QuestionInput) (*models.Question, error) {
	if input.Text == "" {
		return nil, fmt.Errorf("%w: question text is required", models.ErrValidation)
	}
	if input.Category == "" {
		return nil, fmt.Errorf("%w: question category is required", models.ErrValidation)
	}

	questionType := input.Type
	if questionType == "" {
		questionType = models.QuestionTypeBehavioral
	}
	if questionType != models.QuestionTypeBehavioral && questionType != models.QuestionTypeTechnical {
		return nil, fmt.Errorf("%w: unknown question type %q", models.ErrValidation, questionType)
	}

	difficulty := input.Difficulty
	if difficulty == 0 {
		difficulty = 5
	}
	if difficulty < 1 || difficulty > 10 {
		return nil, fmt.Errorf("%w: difficulty %d outside [1,10]", models.ErrValidation, difficulty)
	}

	if id == "" {
		id = uuid.NewString()
	}

	return &models.Question{
		ID:         id,
		Text:       input.Text,
		Category:   input.Category,
		Type:       questionType,
		Difficulty: difficulty,
	}, nil
}
