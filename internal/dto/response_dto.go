package dto

// PublicStepResponse is a step without its answer or explanation.
type PublicStepResponse struct {
	ID          int    `json:"id"`
	Instruction string `json:"instruction"`
}

// PublicQuestionResponse is a question safe to send before it is attempted.
type PublicQuestionResponse struct {
	ID    int                  `json:"id"`
	Title string               `json:"title"`
	Steps []PublicStepResponse `json:"steps"`
}

// ValidationResponse carries Explanation only when correct and CorrectAnswer only when not.
type ValidationResponse struct {
	IsCorrect     bool    `json:"isCorrect"`
	Explanation   *string `json:"explanation,omitempty"`
	CorrectAnswer *string `json:"correctAnswer,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Questions int    `json:"questions"`
}
