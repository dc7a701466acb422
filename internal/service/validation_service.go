package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/wfparrish/rhcsa-command-tool/internal/dto"
	"github.com/wfparrish/rhcsa-command-tool/internal/repository"
)

type ValidationService interface {
	Validate(questionID, stepID int, userAnswer string) (*dto.ValidationResponse, error)
}

type validationService struct {
	repo repository.QuestionRepository
}

func NewValidationService(repo repository.QuestionRepository) ValidationService {
	return &validationService{repo: repo}
}

// Validate compares userAnswer with the stored answer after NormalizeAnswer.
// A wrong answer is a normal result, not an error.
func (s *validationService) Validate(questionID, stepID int, userAnswer string) (*dto.ValidationResponse, error) {
	question, ok := s.repo.FindByID(questionID)
	if !ok {
		log.Warn().Int("questionId", questionID).Msg("Validation requested for unknown question")
		return nil, fmt.Errorf("question %d: %w", questionID, ErrQuestionNotFound)
	}

	step, ok := question.FindStep(stepID)
	if !ok {
		log.Warn().Int("questionId", questionID).Int("stepId", stepID).Msg("Validation requested for unknown step")
		return nil, fmt.Errorf("step %d of question %d: %w", stepID, questionID, ErrStepNotFound)
	}

	if NormalizeAnswer(userAnswer) == NormalizeAnswer(step.Answer) {
		explanation := step.Explanation
		return &dto.ValidationResponse{IsCorrect: true, Explanation: &explanation}, nil
	}
	correct := step.Answer
	return &dto.ValidationResponse{IsCorrect: false, CorrectAnswer: &correct}, nil
}

// NormalizeAnswer trims surrounding whitespace and lower-cases. Inner spacing is kept.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
