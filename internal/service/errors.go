package service

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrStepNotFound     = errors.New("step not found")
)
