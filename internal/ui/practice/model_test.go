package practice

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wfparrish/rhcsa-command-tool/internal/dto"
)

type fakeAPI struct {
	questions []dto.PublicQuestionResponse
	listErr   error
	calls     []string
}

func (f *fakeAPI) ListQuestions(ctx context.Context) ([]dto.PublicQuestionResponse, error) {
	return f.questions, f.listErr
}

func (f *fakeAPI) Validate(ctx context.Context, questionID, stepID int, userAnswer string) (*dto.ValidationResponse, error) {
	f.calls = append(f.calls, userAnswer)
	if strings.EqualFold(strings.TrimSpace(userAnswer), "ls -l") {
		return &dto.ValidationResponse{IsCorrect: true, Explanation: ptr("lists files")}, nil
	}
	if userAnswer == "fail" {
		return nil, errors.New("connection refused")
	}
	return &dto.ValidationResponse{IsCorrect: false, CorrectAnswer: ptr("ls -l")}, nil
}

func newLoadedModel(t *testing.T, api *fakeAPI) Model {
	t.Helper()
	m := NewModel(api, Options{NoColor: true})
	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeText(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model), cmd
}

func TestModelSubmitCorrectAnswer(t *testing.T) {
	api := &fakeAPI{questions: []dto.PublicQuestionResponse{
		{ID: 1, Title: "Files", Steps: []dto.PublicStepResponse{{ID: 1, Instruction: "Long listing"}}},
	}}
	m := newLoadedModel(t, api)

	m = typeText(m, "LS -L")
	m, cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatalf("expected a validation command")
	}
	if !strings.Contains(m.View(), "Checking...") {
		t.Fatalf("expected awaiting indicator, got:\n%s", m.View())
	}

	next, _ := m.Update(cmd())
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "Correct!") || !strings.Contains(view, "lists files") {
		t.Fatalf("expected correct feedback, got:\n%s", view)
	}
	if len(api.calls) != 1 || api.calls[0] != "LS -L" {
		t.Fatalf("expected raw answer to be sent once, got %v", api.calls)
	}
}

func TestModelIncorrectAndErrorFeedback(t *testing.T) {
	api := &fakeAPI{questions: []dto.PublicQuestionResponse{
		{ID: 1, Title: "Files", Steps: []dto.PublicStepResponse{{ID: 1, Instruction: "A"}, {ID: 2, Instruction: "B"}}},
	}}
	m := newLoadedModel(t, api)

	m = typeText(m, "ls")
	m, cmd := press(m, tea.KeyEnter)
	next, _ := m.Update(cmd())
	m = next.(Model)

	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "fail")
	m, cmd = press(m, tea.KeyEnter)
	next, _ = m.Update(cmd())
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "Incorrect. The correct answer is: ls -l") {
		t.Fatalf("expected incorrect feedback, got:\n%s", view)
	}
	if !strings.Contains(view, "An error occurred") {
		t.Fatalf("expected error feedback, got:\n%s", view)
	}
}

func TestModelNavigationAndReset(t *testing.T) {
	api := &fakeAPI{questions: []dto.PublicQuestionResponse{
		{ID: 1, Title: "Files", Steps: []dto.PublicStepResponse{{ID: 1, Instruction: "A"}}},
		{ID: 2, Title: "Users", Steps: []dto.PublicStepResponse{{ID: 1, Instruction: "B"}}},
	}}
	m := newLoadedModel(t, api)

	m = typeText(m, "ls")
	m, _ = press(m, tea.KeyCtrlN)
	if !strings.Contains(m.View(), "Question 2/2: Users") {
		t.Fatalf("expected second question, got:\n%s", m.View())
	}
	if m.State().Step(1).Answer != "" {
		t.Fatalf("expected input cleared on navigation")
	}

	m = typeText(m, "useradd")
	m, _ = press(m, tea.KeyCtrlR)
	if m.State().Step(1).Answer != "" || m.State().Current != 1 {
		t.Fatalf("expected reset to clear input and stay, got %+v", m.State())
	}

	m, _ = press(m, tea.KeyCtrlP)
	if !strings.Contains(m.View(), "Question 1/2: Files") {
		t.Fatalf("expected first question, got:\n%s", m.View())
	}
}

func TestModelLoadFailure(t *testing.T) {
	m := newLoadedModel(t, &fakeAPI{listErr: errors.New("dial tcp: refused")})
	if m.View() != "An error occurred" {
		t.Fatalf("expected generic error, got %q", m.View())
	}
}

func TestModelNoQuestions(t *testing.T) {
	m := newLoadedModel(t, &fakeAPI{questions: []dto.PublicQuestionResponse{}})
	if !strings.Contains(m.View(), "No questions available.") {
		t.Fatalf("unexpected view %q", m.View())
	}
	if _, cmd := press(m, tea.KeyEnter); cmd != nil {
		t.Fatalf("expected no command without questions")
	}
}
