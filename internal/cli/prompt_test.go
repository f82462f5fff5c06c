package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press drives the model through a sequence of messages and returns the
// resulting model along with the last command.
func press(t *testing.T, m PromptModel, msgs ...tea.Msg) (PromptModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(PromptModel)
		if !ok {
			t.Fatalf("Update returned %T, want PromptModel", next)
		}
	}
	return m, cmd
}

// isQuit reports whether cmd produces a quit message.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestPromptFlow(t *testing.T) {
	m := NewPromptModel(0, 0)

	if view := m.View(); !strings.Contains(view, "Enter array size: ") {
		t.Errorf("initial view should ask for array size, got %q", view)
	}

	m, cmd := press(t, m, keyRunes("42"), tea.KeyMsg{Type: tea.KeyEnter})
	if isQuit(cmd) {
		t.Fatal("prompt should not quit before the max value is entered")
	}
	if m.Size != 42 {
		t.Errorf("Size = %d, want 42", m.Size)
	}
	if view := m.View(); !strings.Contains(view, "Enter max element value: ") {
		t.Errorf("view should ask for max element value, got %q", view)
	}

	m, cmd = press(t, m, keyRunes("100"), tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Error("prompt should quit after both values are entered")
	}
	if m.MaxValue != 100 {
		t.Errorf("MaxValue = %d, want 100", m.MaxValue)
	}
	if m.Aborted {
		t.Error("completed prompt should not be aborted")
	}
}

func TestPromptSkipsPresetSize(t *testing.T) {
	m := NewPromptModel(500, 0)

	view := m.View()
	if strings.Contains(view, "Enter array size: ") {
		t.Error("prompt should skip the preset size field")
	}
	if !strings.Contains(view, "Enter max element value: ") {
		t.Errorf("prompt should ask for max element value, got %q", view)
	}

	m, cmd := press(t, m, keyRunes("1000"), tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Error("prompt should quit after the one missing value")
	}
	if m.Size != 500 || m.MaxValue != 1000 {
		t.Errorf("got size=%d max=%d, want 500 and 1000", m.Size, m.MaxValue)
	}
}

func TestPromptPresetBothQuitsImmediately(t *testing.T) {
	m := NewPromptModel(5, 10)

	if !isQuit(m.Init()) {
		t.Error("prompt with both values preset should quit on Init")
	}
	if m.View() != "" {
		t.Error("completed prompt should render nothing")
	}
}

func TestPromptIgnoresNonDigits(t *testing.T) {
	m := NewPromptModel(0, 0)

	m, _ = press(t, m, keyRunes("abc"))
	if view := m.View(); strings.Contains(view, "abc") {
		t.Error("non-digit input should be ignored")
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if isQuit(cmd) {
		t.Error("empty input should not be accepted")
	}
	if view := m.View(); !strings.Contains(view, "enter a whole number") {
		t.Errorf("view should show a parse hint, got %q", view)
	}
}

func TestPromptRejectsZeroSize(t *testing.T) {
	m := NewPromptModel(0, 0)

	m, cmd := press(t, m, keyRunes("0"), tea.KeyMsg{Type: tea.KeyEnter})
	if isQuit(cmd) {
		t.Error("zero size should not be accepted")
	}
	if view := m.View(); !strings.Contains(view, "array size must be at least 1") {
		t.Errorf("view should show the validation message, got %q", view)
	}

	// A valid retry clears the error.
	m, _ = press(t, m, keyRunes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	if view := m.View(); strings.Contains(view, "must be at least 1") {
		t.Errorf("error should clear after a valid value, got %q", view)
	}
	if m.Size != 3 {
		t.Errorf("Size = %d, want 3", m.Size)
	}
}

func TestPromptBackspace(t *testing.T) {
	m := NewPromptModel(0, 0)

	m, _ = press(t, m,
		keyRunes("123"),
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.Size != 12 {
		t.Errorf("Size = %d, want 12 after backspace", m.Size)
	}
}

func TestPromptDigitLimit(t *testing.T) {
	m := NewPromptModel(0, 0)

	m, _ = press(t, m, keyRunes("99999999999999"))
	if got := len(m.input); got > maxPromptDigits {
		t.Errorf("input length = %d, want at most %d", got, maxPromptDigits)
	}
}

func TestPromptAbort(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := NewPromptModel(0, 0)
		m, cmd := press(t, m, key)
		if !m.Aborted {
			t.Errorf("%s should abort the prompt", key.String())
		}
		if !isQuit(cmd) {
			t.Errorf("%s should quit the program", key.String())
		}
	}
}

func TestPromptShowsAnsweredSize(t *testing.T) {
	m := NewPromptModel(0, 0)

	m, _ = press(t, m, keyRunes("7"), tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	if !strings.Contains(view, "Enter array size: ") || !strings.Contains(view, "7") {
		t.Errorf("answered size should stay visible, got %q", view)
	}
}
