package repository

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/wfparrish/rhcsa-command-tool/config"
	"github.com/wfparrish/rhcsa-command-tool/internal/database"
	"github.com/wfparrish/rhcsa-command-tool/internal/model"
)

// ErrStartupData marks question data that cannot be loaded. The server treats it as fatal.
var ErrStartupData = errors.New("question data could not be loaded")

// QuestionRepository is the read-only question store. Returned values are copies.
type QuestionRepository interface {
	FindAll() []model.Question
	FindByID(id int) (*model.Question, bool)
	Count() int
}

type questionStore struct {
	questions []model.Question
	byID      map[int]int // question id -> index in questions
}

// NewQuestionStore indexes questions in the given order. Duplicate question ids, or
// duplicate step ids within one question, are rejected.
func NewQuestionStore(questions []model.Question) (QuestionRepository, error) {
	store := &questionStore{
		questions: make([]model.Question, 0, len(questions)),
		byID:      make(map[int]int, len(questions)),
	}
	for i, q := range questions {
		if _, dup := store.byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %d", ErrStartupData, q.ID)
		}
		stepIDs := make(map[int]struct{}, len(q.Steps))
		for _, step := range q.Steps {
			if _, dup := stepIDs[step.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate step id %d in question %d", ErrStartupData, step.ID, q.ID)
			}
			stepIDs[step.ID] = struct{}{}
		}

		cloned := cloneQuestion(q)
		cloned.Position = i
		for j := range cloned.Steps {
			cloned.Steps[j].QuestionID = q.ID
			cloned.Steps[j].Position = j
		}
		store.byID[q.ID] = len(store.questions)
		store.questions = append(store.questions, cloned)
	}
	return store, nil
}

func (s *questionStore) FindAll() []model.Question {
	out := make([]model.Question, len(s.questions))
	for i, q := range s.questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

func (s *questionStore) FindByID(id int) (*model.Question, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	q := cloneQuestion(s.questions[idx])
	return &q, true
}

func (s *questionStore) Count() int {
	return len(s.questions)
}

func cloneQuestion(q model.Question) model.Question {
	out := q
	if q.Steps != nil {
		out.Steps = make([]model.Step, len(q.Steps))
		copy(out.Steps, q.Steps)
	}
	return out
}

// NewQuestionRepository loads questions from the configured source once.
func NewQuestionRepository(cfg *config.Config) (QuestionRepository, error) {
	var (
		questions []model.Question
		err       error
	)
	switch cfg.Questions.Source {
	case config.SourceDatabase:
		questions, err = loadFromDatabase(cfg)
	default:
		questions, err = LoadFile(cfg.Questions.File)
	}
	if err != nil {
		return nil, err
	}

	repo, err := NewQuestionStore(questions)
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", cfg.Questions.Source).Int("questions", repo.Count()).Msg("Question store loaded")
	return repo, nil
}

func loadFromDatabase(cfg *config.Config) ([]model.Question, error) {
	db, err := database.NewDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartupData, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	return LoadDatabase(db)
}
