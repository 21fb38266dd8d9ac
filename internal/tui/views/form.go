package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/ireum/internal/naming"
)

// SubmitMsg is sent when the user submits the form.
type SubmitMsg struct {
	Request naming.Request
}

// field identifies a form row.
type field int

const (
	fieldSurname field = iota
	fieldGender
	fieldStyle
	fieldLength
	fieldDollimja
	fieldCount
)

// FormModel collects the naming request.
type FormModel struct {
	surname  textinput.Model
	dollimja textinput.Model

	gender int
	style  int
	length int

	focus   field
	message string
	warning bool

	width int
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 20
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))
	return ti
}

// NewFormModel creates the form with the surname field focused.
func NewFormModel() FormModel {
	m := FormModel{
		surname:  newInput("예: 김", 4),
		dollimja: newInput("선택 사항", 4),
	}
	m.surname.Focus()
	return m
}

// SetSize updates the view dimensions.
func (m *FormModel) SetSize(width, _ int) {
	m.width = width
}

// SetMessage shows a warning or error under the form.
func (m *FormModel) SetMessage(msg string, warning bool) {
	m.message = msg
	m.warning = warning
}

// Request returns the request described by the current form state.
func (m FormModel) Request() naming.Request {
	return naming.Request{
		Surname:  m.surname.Value(),
		Gender:   naming.Genders[m.gender],
		Style:    naming.Styles[m.style],
		Length:   naming.Lengths[m.length],
		Dollimja: m.dollimja.Value(),
	}
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			req := m.Request()
			m.message = ""
			return m, func() tea.Msg { return SubmitMsg{Request: req} }
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, textinput.Blink
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, textinput.Blink
		case "left", "right":
			if m.cycle(msg.String() == "right") {
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldSurname:
		m.surname, cmd = m.surname.Update(msg)
	case fieldDollimja:
		m.dollimja, cmd = m.dollimja.Update(msg)
	}
	return m, cmd
}

func (m *FormModel) setFocus(f field) {
	m.focus = f
	m.surname.Blur()
	m.dollimja.Blur()
	switch f {
	case fieldSurname:
		m.surname.Focus()
	case fieldDollimja:
		m.dollimja.Focus()
	}
}

// cycle moves the focused option. It reports false for text fields.
func (m *FormModel) cycle(forward bool) bool {
	step := func(i, n int) int {
		if forward {
			return (i + 1) % n
		}
		return (i + n - 1) % n
	}
	switch m.focus {
	case fieldGender:
		m.gender = step(m.gender, len(naming.Genders))
	case fieldStyle:
		m.style = step(m.style, len(naming.Styles))
	case fieldLength:
		m.length = step(m.length, len(naming.Lengths))
	default:
		return false
	}
	return true
}

// View renders the form.
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(m.row(fieldSurname, "성씨", m.surname.View()))

	var genders []string
	for _, g := range naming.Genders {
		genders = append(genders, g.Label())
	}
	b.WriteString(m.row(fieldGender, "성별", options(genders, m.gender)))

	var styles []string
	for _, s := range naming.Styles {
		styles = append(styles, s.Label())
	}
	b.WriteString(m.row(fieldStyle, "스타일", options(styles, m.style)))

	var lengths []string
	for _, l := range naming.Lengths {
		lengths = append(lengths, l.Label())
	}
	b.WriteString(m.row(fieldLength, "이름 길이", options(lengths, m.length)))

	b.WriteString(m.row(fieldDollimja, "돌림자", m.dollimja.View()))

	if m.message != "" {
		b.WriteString("\n")
		if m.warning {
			b.WriteString(warningStyle.Render("⚠ " + wordWrap(m.message, m.width-2)))
		} else {
			b.WriteString(errorStyle.Render("✗ " + wordWrap(m.message, m.width-2)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↑↓: 이동 • ←/→: 선택 • enter: 이름 추천받기 • esc: 종료"))

	return b.String()
}

func (m FormModel) row(f field, label, value string) string {
	style := labelStyle
	if m.focus == f {
		style = focusedLabelStyle
	}
	return style.Render(label) + " " + value + "\n\n"
}

func options(labels []string, selected int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == selected {
			parts[i] = optionActiveStyle.Render(l)
		} else {
			parts[i] = optionStyle.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
