package repository

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/wfparrish/rhcsa-command-tool/internal/model"
	"gorm.io/gorm"
)

// LoadDatabase reads every question with its steps, in stored order.
func LoadDatabase(db *gorm.DB) ([]model.Question, error) {
	var questions []model.Question
	err := db.Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("steps.position ASC")
	}).Order("questions.position ASC").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: query questions: %v", ErrStartupData, err)
	}
	return questions, nil
}

// SeedDatabase replaces the stored question set with questions, in one transaction.
func SeedDatabase(db *gorm.DB, questions []model.Question) error {
	if err := db.AutoMigrate(&model.Question{}, &model.Step{}); err != nil {
		return fmt.Errorf("migrate question tables: %w", err)
	}

	// Validates ids and assigns positions.
	store, err := NewQuestionStore(questions)
	if err != nil {
		return err
	}
	ordered := store.FindAll()
	// Row ids from an earlier load are reassigned on insert.
	for i := range ordered {
		ordered[i].RowID = 0
		for j := range ordered[i].Steps {
			ordered[i].Steps[j].RowID = 0
			ordered[i].Steps[j].QuestionRowID = 0
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&model.Step{}).Error; err != nil {
			return fmt.Errorf("clear steps: %w", err)
		}
		if err := all.Delete(&model.Question{}).Error; err != nil {
			return fmt.Errorf("clear questions: %w", err)
		}
		if len(ordered) == 0 {
			return nil
		}
		if err := tx.Create(&ordered).Error; err != nil {
			return fmt.Errorf("insert questions: %w", err)
		}
		log.Info().Int("questions", len(ordered)).Msg("Question tables seeded")
		return nil
	})
}
