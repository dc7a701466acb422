package practice

import "github.com/wfparrish/rhcsa-command-tool/internal/dto"

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

type QuestionsLoaded struct {
	Questions []dto.PublicQuestionResponse
}

type QuestionsFailed struct {
	Err error
}

type AnswerEdited struct {
	StepID int
	Text   string
}

type SubmitRequested struct {
	StepID int
}

type ValidationSucceeded struct {
	Generation int
	StepID     int
	Result     dto.ValidationResponse
}

type ValidationFailed struct {
	Generation int
	StepID     int
	Err        error
}

type NextQuestion struct{}

type PrevQuestion struct{}

// ResetQuestion clears every answer and feedback of the displayed question.
type ResetQuestion struct{}

func (QuestionsLoaded) isEvent()     {}
func (QuestionsFailed) isEvent()     {}
func (AnswerEdited) isEvent()        {}
func (SubmitRequested) isEvent()     {}
func (ValidationSucceeded) isEvent() {}
func (ValidationFailed) isEvent()    {}
func (NextQuestion) isEvent()        {}
func (PrevQuestion) isEvent()        {}
func (ResetQuestion) isEvent()       {}
