package dto

// ValidateRequest is the body of POST /api/validate. Pointers distinguish an
// absent field from a zero value; an empty userAnswer is allowed.
type ValidateRequest struct {
	QuestionID *int    `json:"questionId" binding:"required" example:"1"`
	StepID     *int    `json:"stepId" binding:"required" example:"1"`
	UserAnswer *string `json:"userAnswer" binding:"required" example:"ls -l"`
}
