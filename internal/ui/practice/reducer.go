package practice

// Reduce applies an event and returns the new state. The input state is not modified.
func Reduce(state State, event Event) State {
	switch e := event.(type) {
	case QuestionsLoaded:
		state.Questions = e.Questions
		state.Loading = false
		state.LoadError = ""
		state.Current = 0
		return clearLocal(state)
	case QuestionsFailed:
		state.Loading = false
		state.LoadError = FeedbackError
		return state
	case AnswerEdited:
		if !state.hasStep(e.StepID) {
			return state
		}
		step := state.Step(e.StepID)
		step.Answer = e.Text
		return withStep(state, e.StepID, step)
	case SubmitRequested:
		if !state.hasStep(e.StepID) {
			return state
		}
		step := state.Step(e.StepID)
		if step.Status == StepAwaiting {
			return state
		}
		step.Status = StepAwaiting
		step.Correct = false
		step.Feedback = ""
		step.Explanation = ""
		return withStep(state, e.StepID, step)
	case ValidationSucceeded:
		if !accepts(state, e.Generation, e.StepID) {
			return state
		}
		step := state.Step(e.StepID)
		step.Status = StepFeedback
		step.Correct = e.Result.IsCorrect
		step.Explanation = ""
		if e.Result.IsCorrect {
			step.Feedback = FeedbackCorrect
			if e.Result.Explanation != nil {
				step.Explanation = *e.Result.Explanation
			}
		} else {
			correct := ""
			if e.Result.CorrectAnswer != nil {
				correct = *e.Result.CorrectAnswer
			}
			step.Feedback = FeedbackIncorrectPrefix + correct
		}
		return withStep(state, e.StepID, step)
	case ValidationFailed:
		if !accepts(state, e.Generation, e.StepID) {
			return state
		}
		step := state.Step(e.StepID)
		step.Status = StepFeedback
		step.Correct = false
		step.Feedback = FeedbackError
		step.Explanation = ""
		return withStep(state, e.StepID, step)
	case NextQuestion:
		if state.Current+1 >= len(state.Questions) {
			return state
		}
		state.Current++
		return clearLocal(state)
	case PrevQuestion:
		if state.Current <= 0 {
			return state
		}
		state.Current--
		return clearLocal(state)
	case ResetQuestion:
		return clearLocal(state)
	}
	return state
}

func accepts(state State, generation, stepID int) bool {
	return generation == state.Generation && state.Step(stepID).Status == StepAwaiting
}

func clearLocal(state State) State {
	state.Steps = map[int]StepState{}
	state.Generation++
	return state
}

func withStep(state State, stepID int, step StepState) State {
	steps := make(map[int]StepState, len(state.Steps)+1)
	for id, s := range state.Steps {
		steps[id] = s
	}
	steps[stepID] = step
	state.Steps = steps
	return state
}
