package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/wfparrish/rhcsa-command-tool/internal/dto"
	"github.com/wfparrish/rhcsa-command-tool/internal/model"
	"github.com/wfparrish/rhcsa-command-tool/internal/repository"
)

// QuestionService delivers the stripped question set: answers and explanations never leave it.
type QuestionService interface {
	ListPublic() ([]dto.PublicQuestionResponse, error)
	GetPublic(id int) (*dto.PublicQuestionResponse, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

// ListPublic never returns nil, so an empty store encodes as [].
func (s *questionService) ListPublic() ([]dto.PublicQuestionResponse, error) {
	questions := s.repo.FindAll()
	resp := make([]dto.PublicQuestionResponse, 0, len(questions))
	for i := range questions {
		public, err := toPublic(&questions[i])
		if err != nil {
			log.Error().Err(err).Int("questionId", questions[i].ID).Msg("Failed to strip question")
			return nil, err
		}
		resp = append(resp, *public)
	}
	return resp, nil
}

func (s *questionService) GetPublic(id int) (*dto.PublicQuestionResponse, error) {
	question, ok := s.repo.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("question %d: %w", id, ErrQuestionNotFound)
	}
	return toPublic(question)
}

func toPublic(q *model.Question) (*dto.PublicQuestionResponse, error) {
	resp := dto.PublicQuestionResponse{Steps: make([]dto.PublicStepResponse, 0, len(q.Steps))}
	if err := copier.Copy(&resp, q); err != nil {
		return nil, fmt.Errorf("copy question %d: %w", q.ID, err)
	}
	if resp.Steps == nil {
		resp.Steps = []dto.PublicStepResponse{}
	}
	return &resp, nil
}
