package service

import (
	"testing"

	"github.com/wfparrish/rhcsa-command-tool/internal/model"
	"github.com/wfparrish/rhcsa-command-tool/internal/repository"
)

func fixtureQuestions() []model.Question {
	return []model.Question{
		{ID: 1, Title: "Listing files", Steps: []model.Step{
			{ID: 1, Instruction: "Show a long listing", Answer: "ls -l", Explanation: "lists files"},
			{ID: 2, Instruction: "Show hidden files", Answer: "ls -a", Explanation: "includes dotfiles"},
		}},
		{ID: 2, Title: "Users", Steps: []model.Step{
			{ID: 5, Instruction: "Create user alice", Answer: "useradd alice", Explanation: ""},
		}},
	}
}

func newFixtureRepo(t *testing.T, questions []model.Question) repository.QuestionRepository {
	t.Helper()
	repo, err := repository.NewQuestionStore(questions)
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	return repo
}
