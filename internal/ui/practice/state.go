package practice

import "github.com/wfparrish/rhcsa-command-tool/internal/dto"

const (
	FeedbackCorrect         = "Correct!"
	FeedbackIncorrectPrefix = "Incorrect. The correct answer is: "
	FeedbackError           = "An error occurred"
)

// StepStatus is the per-step lifecycle: idle, awaiting a verdict, showing feedback.
type StepStatus int

const (
	StepIdle StepStatus = iota
	StepAwaiting
	StepFeedback
)

func (s StepStatus) String() string {
	switch s {
	case StepAwaiting:
		return "awaiting"
	case StepFeedback:
		return "feedback"
	default:
		return "idle"
	}
}

// StepState is the local input and last feedback for one step of the displayed question.
type StepState struct {
	Answer      string
	Status      StepStatus
	Correct     bool
	Feedback    string
	Explanation string
}

// State is everything the practice screen renders.
type State struct {
	Questions []dto.PublicQuestionResponse
	Current   int
	Steps     map[int]StepState

	Loading   bool
	LoadError string

	// Generation changes on navigation and reset; verdicts from an older generation are dropped.
	Generation int
}

// CurrentQuestion returns the displayed question, if any.
func (s State) CurrentQuestion() (dto.PublicQuestionResponse, bool) {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return dto.PublicQuestionResponse{}, false
	}
	return s.Questions[s.Current], true
}

// Step returns the local state for stepID, idle if untouched.
func (s State) Step(stepID int) StepState {
	return s.Steps[stepID]
}

func (s State) hasStep(stepID int) bool {
	q, ok := s.CurrentQuestion()
	if !ok {
		return false
	}
	for _, step := range q.Steps {
		if step.ID == stepID {
			return true
		}
	}
	return false
}
