package practice

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wfparrish/rhcsa-command-tool/internal/dto"
)

// API is the part of the practice API client the screen needs.
type API interface {
	ListQuestions(ctx context.Context) ([]dto.PublicQuestionResponse, error)
	Validate(ctx context.Context, questionID, stepID int, userAnswer string) (*dto.ValidationResponse, error)
}

// Options configures the practice screen.
type Options struct {
	NoColor        bool
	RequestTimeout time.Duration
}

// Model renders one question at a time and validates answers on demand.
type Model struct {
	api     API
	state   State
	inputs  []textinput.Model
	focus   int
	width   int
	noColor bool
	timeout time.Duration
}

// EventMsg wraps a reducer event produced by an API call.
type EventMsg struct {
	Event Event
}

func NewModel(api API, opts Options) Model {
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return Model{
		api:     api,
		state:   State{Loading: true},
		noColor: opts.NoColor,
		timeout: timeout,
	}
}

// State exposes the current reducer state.
func (m Model) State() State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return loadQuestions(m.api, m.timeout)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case EventMsg:
		before := m.state.Generation
		m.state = Reduce(m.state, typed.Event)
		if m.state.Generation != before {
			cmd := m.rebuildInputs()
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		cmd := m.moveFocus(1)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.moveFocus(-1)
		return m, cmd
	case "ctrl+n", "pgdown":
		return m.apply(NextQuestion{})
	case "ctrl+p", "pgup":
		return m.apply(PrevQuestion{})
	case "ctrl+r":
		return m.apply(ResetQuestion{})
	case "enter":
		return m.submitFocused()
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)
	if stepID, ok := m.focusedStepID(); ok {
		m.state = Reduce(m.state, AnswerEdited{StepID: stepID, Text: m.inputs[m.focus].Value()})
	}
	return m, cmd
}

func (m Model) apply(event Event) (tea.Model, tea.Cmd) {
	before := m.state.Generation
	m.state = Reduce(m.state, event)
	if m.state.Generation != before {
		cmd := m.rebuildInputs()
		return m, cmd
	}
	return m, nil
}

func (m Model) submitFocused() (tea.Model, tea.Cmd) {
	stepID, ok := m.focusedStepID()
	if !ok {
		return m, nil
	}
	q, _ := m.state.CurrentQuestion()
	before := m.state.Step(stepID).Status
	m.state = Reduce(m.state, SubmitRequested{StepID: stepID})
	if before == StepAwaiting || m.state.Step(stepID).Status != StepAwaiting {
		return m, nil
	}
	answer := m.state.Step(stepID).Answer
	return m, validate(m.api, m.timeout, m.state.Generation, q.ID, stepID, answer)
}

func (m Model) focusedStepID() (int, bool) {
	q, ok := m.state.CurrentQuestion()
	if !ok || m.focus < 0 || m.focus >= len(q.Steps) {
		return 0, false
	}
	return q.Steps[m.focus].ID, true
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *Model) rebuildInputs() tea.Cmd {
	q, ok := m.state.CurrentQuestion()
	m.inputs = nil
	m.focus = 0
	if !ok {
		return nil
	}
	m.inputs = make([]textinput.Model, len(q.Steps))
	for i, step := range q.Steps {
		in := textinput.New()
		in.Placeholder = "type the command"
		in.Prompt = "$ "
		in.CharLimit = 256
		in.SetValue(m.state.Step(step.ID).Answer)
		if !m.noColor {
			in.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
		}
		m.inputs[i] = in
	}
	if len(m.inputs) == 0 {
		return nil
	}
	return m.inputs[0].Focus()
}

func (m Model) View() string {
	return render(m)
}

func loadQuestions(api API, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		questions, err := api.ListQuestions(ctx)
		if err != nil {
			return EventMsg{Event: QuestionsFailed{Err: err}}
		}
		return EventMsg{Event: QuestionsLoaded{Questions: questions}}
	}
}

func validate(api API, timeout time.Duration, generation, questionID, stepID int, answer string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := api.Validate(ctx, questionID, stepID, answer)
		if err != nil {
			return EventMsg{Event: ValidationFailed{Generation: generation, StepID: stepID, Err: err}}
		}
		return EventMsg{Event: ValidationSucceeded{Generation: generation, StepID: stepID, Result: *res}}
	}
}
