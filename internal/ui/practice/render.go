package practice

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpLine = "enter submit • tab/shift+tab move • ctrl+n/ctrl+p next/prev • ctrl+r reset • esc quit"

func render(m Model) string {
	if m.state.Loading {
		return stylize("Loading questions...", m.noColor, lipgloss.Color("242"))
	}
	if m.state.LoadError != "" {
		return stylize(m.state.LoadError, m.noColor, lipgloss.Color("196"))
	}
	q, ok := m.state.CurrentQuestion()
	if !ok {
		return "No questions available.\n\n" + stylize(helpLine, m.noColor, lipgloss.Color("241"))
	}

	blocks := []string{renderHeader(m), ""}
	for i, step := range q.Steps {
		blocks = append(blocks, renderStep(m, i, step.ID, step.Instruction))
	}
	blocks = append(blocks, stylize(helpLine, m.noColor, lipgloss.Color("241")))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderHeader(m Model) string {
	q, _ := m.state.CurrentQuestion()
	line := fmt.Sprintf("Question %d/%d: %s", m.state.Current+1, len(m.state.Questions), q.Title)
	if m.noColor {
		return line
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Render(line)
}

func renderStep(m Model, index, stepID int, instruction string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d. %s\n", index+1, instruction))
	if index < len(m.inputs) {
		b.WriteString(m.inputs[index].View())
		b.WriteString("\n")
	}

	step := m.state.Step(stepID)
	switch step.Status {
	case StepAwaiting:
		b.WriteString(stylize("Checking...", m.noColor, lipgloss.Color("242")))
		b.WriteString("\n")
	case StepFeedback:
		color := lipgloss.Color("196")
		if step.Correct {
			color = lipgloss.Color("42")
		}
		b.WriteString(stylize(step.Feedback, m.noColor, color))
		b.WriteString("\n")
		if step.Explanation != "" {
			b.WriteString(stylize(step.Explanation, m.noColor, lipgloss.Color("244")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func stylize(line string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return line
	}
	return lipgloss.NewStyle().Foreground(color).Render(line)
}
