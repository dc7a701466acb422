package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/cucumber/godog"
	"github.com/wfparrish/rhcsa-command-tool/internal/dto"
	"github.com/wfparrish/rhcsa-command-tool/internal/model"
	"github.com/wfparrish/rhcsa-command-tool/internal/repository"
)

func TestValidationFeatures(t *testing.T) {
	options := godog.Options{
		Format:   "progress",
		Paths:    []string{"features"},
		Output:   io.Discard,
		TestingT: t,
		Strict:   true,
	}

	suite := godog.TestSuite{
		Name:                "validation",
		ScenarioInitializer: initializeValidationScenario,
		Options:             &options,
	}

	if suite.Run() != 0 {
		t.Fatalf("validation features failed")
	}
}

type validationScenario struct {
	questions []model.Question
	result    *dto.ValidationResponse
	err       error
}

func initializeValidationScenario(ctx *godog.ScenarioContext) {
	s := &validationScenario{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*s = validationScenario{}
		return ctx, nil
	})

	ctx.Step(`^a question (\d+) with step (\d+) expecting "([^"]*)" explained as "([^"]*)"$`, s.aQuestionWithStep)
	ctx.Step(`^I validate question (\d+) step (\d+) with "([^"]*)"$`, s.iValidate)
	ctx.Step(`^the answer is correct$`, s.theAnswerIsCorrect)
	ctx.Step(`^the answer is incorrect$`, s.theAnswerIsIncorrect)
	ctx.Step(`^the explanation is "([^"]*)"$`, s.theExplanationIs)
	ctx.Step(`^the correct answer is "([^"]*)"$`, s.theCorrectAnswerIs)
	ctx.Step(`^the question is not found$`, s.notFound(ErrQuestionNotFound))
	ctx.Step(`^the step is not found$`, s.notFound(ErrStepNotFound))
}

func (s *validationScenario) aQuestionWithStep(questionID, stepID int, answer, explanation string) error {
	s.questions = append(s.questions, model.Question{
		ID:    questionID,
		Title: fmt.Sprintf("Question %d", questionID),
		Steps: []model.Step{{ID: stepID, Instruction: "type it", Answer: answer, Explanation: explanation}},
	})
	return nil
}

func (s *validationScenario) iValidate(questionID, stepID int, answer string) error {
	repo, err := repository.NewQuestionStore(s.questions)
	if err != nil {
		return err
	}
	s.result, s.err = NewValidationService(repo).Validate(questionID, stepID, answer)
	return nil
}

func (s *validationScenario) theAnswerIsCorrect() error {
	if s.err != nil {
		return s.err
	}
	if !s.result.IsCorrect {
		return fmt.Errorf("expected a correct verdict")
	}
	return nil
}

func (s *validationScenario) theAnswerIsIncorrect() error {
	if s.err != nil {
		return s.err
	}
	if s.result.IsCorrect {
		return fmt.Errorf("expected an incorrect verdict")
	}
	return nil
}

func (s *validationScenario) theExplanationIs(want string) error {
	if s.result == nil || s.result.Explanation == nil {
		return fmt.Errorf("expected explanation %q, got none", want)
	}
	if *s.result.Explanation != want {
		return fmt.Errorf("expected explanation %q, got %q", want, *s.result.Explanation)
	}
	return nil
}

func (s *validationScenario) theCorrectAnswerIs(want string) error {
	if s.result == nil || s.result.CorrectAnswer == nil {
		return fmt.Errorf("expected correct answer %q, got none", want)
	}
	if *s.result.CorrectAnswer != want {
		return fmt.Errorf("expected correct answer %q, got %q", want, *s.result.CorrectAnswer)
	}
	return nil
}

func (s *validationScenario) notFound(want error) func() error {
	return func() error {
		if !errors.Is(s.err, want) {
			return fmt.Errorf("expected %v, got %v", want, s.err)
		}
		return nil
	}
}
