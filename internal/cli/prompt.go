package cli

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	errs "github.com/filthyfil/bigsort/pkg/errors"
)

// maxPromptDigits bounds typed input to the widest accepted value.
const maxPromptDigits = 10

// promptStep identifies the active input field.
type promptStep int

const (
	stepSize promptStep = iota
	stepMax
	stepDone
)

// promptLabels are the questions shown for each step.
var promptLabels = map[promptStep]string{
	stepSize: "Enter array size: ",
	stepMax:  "Enter max element value: ",
}

// =============================================================================
// PromptModel - Interactive size and max entry
// =============================================================================

// PromptModel is the bubbletea model that asks for the array size and the
// max element value. Fields preset at construction are skipped.
type PromptModel struct {
	Size     int
	MaxValue int
	Aborted  bool

	step      promptStep
	askedSize bool // size came from this prompt rather than a flag
	input     string
	errMsg    string
}

// NewPromptModel creates a prompt asking only for the values still unset.
func NewPromptModel(size, maxValue int) PromptModel {
	m := PromptModel{Size: size, MaxValue: maxValue, askedSize: size == 0}
	m.step = m.nextStep(stepSize)
	return m
}

// nextStep returns from, or the first later step, whose value is unset.
func (m PromptModel) nextStep(from promptStep) promptStep {
	if from <= stepSize && m.Size == 0 {
		return stepSize
	}
	if from <= stepMax && m.MaxValue == 0 {
		return stepMax
	}
	return stepDone
}

func (m PromptModel) Init() tea.Cmd {
	if m.step == stepDone {
		return tea.Quit
	}
	return nil
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.Aborted = true
		return m, tea.Quit
	case "enter":
		return m.accept()
	case "backspace":
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	}

	if key.Type == tea.KeyRunes {
		for _, r := range key.Runes {
			if r >= '0' && r <= '9' && len(m.input) < maxPromptDigits {
				m.input += string(r)
			}
		}
	}
	return m, nil
}

// accept parses the typed value, validates it for the current step, and
// advances to the next unset field.
func (m PromptModel) accept() (tea.Model, tea.Cmd) {
	v, err := strconv.Atoi(m.input)
	if err != nil {
		m.errMsg = "enter a whole number"
		return m, nil
	}
	if err := m.validate(v); err != nil {
		m.errMsg = errs.UserMessage(err)
		m.input = ""
		return m, nil
	}

	m.errMsg = ""
	m.input = ""
	switch m.step {
	case stepSize:
		m.Size = v
	case stepMax:
		m.MaxValue = v
	}

	m.step = m.nextStep(m.step + 1)
	if m.step == stepDone {
		return m, tea.Quit
	}
	return m, nil
}

// validate applies the range check for the current step.
func (m PromptModel) validate(v int) error {
	switch m.step {
	case stepSize:
		return errs.ValidateArraySize(v)
	case stepMax:
		return errs.ValidateMaxElement(v)
	}
	return nil
}

func (m PromptModel) View() string {
	if m.step == stepDone || m.Aborted {
		return ""
	}

	var b strings.Builder

	// Answered fields stay visible above the active question.
	if m.askedSize && m.step > stepSize {
		b.WriteString(styleIconSuccess.Render(iconSuccess))
		b.WriteString(" ")
		b.WriteString(StyleDim.Render(promptLabels[stepSize]))
		b.WriteString(StyleValue.Render(strconv.Itoa(m.Size)))
		b.WriteString("\n")
	}

	b.WriteString(StyleHighlight.Render(promptLabels[m.step]))
	b.WriteString(StyleNumber.Render(m.input))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(styleIconError.Render(iconError))
		b.WriteString(" ")
		b.WriteString(StyleWarning.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render("digits only  ⏎ confirm  esc cancel"))
	b.WriteString("\n")

	return b.String()
}

// promptMissing interactively fills in whichever of size and max are unset.
func promptMissing(opts *runOpts) error {
	p := tea.NewProgram(NewPromptModel(opts.size, opts.maxValue))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := finalModel.(PromptModel)
	if !ok || m.Aborted {
		return errs.New(errs.ErrCodeInvalidInput, "input cancelled")
	}
	opts.size = m.Size
	opts.maxValue = m.MaxValue
	return nil
}
