package model

// Question is a titled group of ordered steps. Loaded once at startup, never mutated.
type Question struct {
	// RowID is the storage key. Question ids may be zero, which gorm treats as unset.
	RowID uint   `gorm:"primarykey" json:"-" yaml:"-"`
	ID    int    `gorm:"column:question_id;not null;uniqueIndex" json:"id" yaml:"id"`
	Title string `gorm:"not null" json:"title" yaml:"title"`
	// Position preserves file order when questions round-trip through a database.
	Position int    `gorm:"not null" json:"-" yaml:"-"`
	Steps    []Step `gorm:"foreignKey:QuestionRowID;references:RowID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"steps" yaml:"steps"`
}

// Step is a single instruction/answer/explanation unit within a question.
type Step struct {
	// RowID is the storage key; step ids are only unique within their question.
	RowID         uint   `gorm:"primarykey" json:"-" yaml:"-"`
	ID            int    `gorm:"column:step_id;not null;uniqueIndex:idx_question_step" json:"id" yaml:"id"`
	QuestionRowID uint   `gorm:"not null;uniqueIndex:idx_question_step" json:"-" yaml:"-"`
	QuestionID    int    `gorm:"not null" json:"-" yaml:"-"`
	Position      int    `gorm:"not null" json:"-" yaml:"-"`
	Instruction   string `gorm:"type:text;not null" json:"instruction" yaml:"instruction"`
	Answer        string `gorm:"type:text;not null" json:"answer" yaml:"answer"`
	Explanation   string `gorm:"type:text" json:"explanation" yaml:"explanation"`
}

// FindStep returns the step with the given id, if the question has one.
func (q *Question) FindStep(stepID int) (*Step, bool) {
	for i := range q.Steps {
		if q.Steps[i].ID == stepID {
			return &q.Steps[i], true
		}
	}
	return nil, false
}
