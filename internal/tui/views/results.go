package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/f3rmion/ireum/internal/hanja"
	"github.com/f3rmion/ireum/internal/naming"
	"github.com/f3rmion/ireum/internal/tui/bigchar"
)

// BackMsg asks the app to return to the form.
type BackMsg struct{}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Big-glyph cell size per character.
const (
	bigCols = 12
	bigRows = 6
)

// ResultsModel lists the suggested names as expandable cards.
type ResultsModel struct {
	cards    []naming.Card
	glyphs   map[int][]hanja.Glyph
	expanded map[int]bool
	selected int

	breaker *hanja.Breaker
	big     *bigchar.Renderer
	copy    func(string) error

	copied  bool
	copyErr error

	width  int
	height int
}

// NewResultsModel creates the results view. breaker and big may be nil;
// copy is used for the "y" key.
func NewResultsModel(breaker *hanja.Breaker, big *bigchar.Renderer, copy func(string) error) ResultsModel {
	return ResultsModel{
		breaker:  breaker,
		big:      big,
		copy:     copy,
		glyphs:   map[int][]hanja.Glyph{},
		expanded: map[int]bool{},
	}
}

// SetSize updates the view dimensions.
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetResults replaces the displayed names. The first card starts expanded.
func (m *ResultsModel) SetResults(rs naming.ResultSet) {
	m.cards = naming.Cards(rs)
	m.glyphs = map[int][]hanja.Glyph{}
	m.expanded = map[int]bool{}
	m.selected = 0
	m.copied = false
	m.copyErr = nil
	if len(m.cards) > 0 {
		m.expanded[0] = true
	}
}

// Selected returns the highlighted card.
func (m ResultsModel) Selected() (naming.Card, bool) {
	if m.selected < 0 || m.selected >= len(m.cards) {
		return naming.Card{}, false
	}
	return m.cards[m.selected], true
}

// Expanded reports whether card i shows its body.
func (m ResultsModel) Expanded(i int) bool { return m.expanded[i] }

// Update handles messages.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.selected < len(m.cards)-1 {
				m.selected++
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}
		case "enter", " ":
			if len(m.cards) > 0 {
				m.expanded[m.selected] = !m.expanded[m.selected]
			}
		case "e":
			all := true
			for i := range m.cards {
				all = all && m.expanded[i]
			}
			for i := range m.cards {
				m.expanded[i] = !all
			}
		case "y":
			card, ok := m.Selected()
			if !ok || m.copy == nil {
				return m, nil
			}
			if err := m.copy(card.Text()); err != nil {
				m.copyErr = err
				return m, nil
			}
			m.copied = true
			m.copyErr = nil
			return m, clearCopiedAfter(2 * time.Second)
		case "esc", "b", "n":
			return m, func() tea.Msg { return BackMsg{} }
		}

	case clearCopiedMsg:
		m.copied = false
	}

	return m, nil
}

// glyphsFor breaks down the hanja of card i once.
func (m ResultsModel) glyphsFor(i int) []hanja.Glyph {
	if g, ok := m.glyphs[i]; ok {
		return g
	}
	if m.breaker == nil || !m.cards[i].HasHanja() {
		return nil
	}
	g := m.breaker.Breakdown(m.cards[i].Hanja)
	m.glyphs[i] = g
	return g
}

// View renders the results.
func (m ResultsModel) View() string {
	var b strings.Builder

	if len(m.cards) == 0 {
		b.WriteString(warningStyle.Render("추천 결과가 비어 있습니다. 다시 시도해주세요."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc: 돌아가기"))
		return b.String()
	}

	if card, ok := m.Selected(); ok {
		if art := m.big.Word(card.Hangul, bigCols, bigRows); art != "" {
			b.WriteString(bigCharStyle.Render(art))
			b.WriteString("\n\n")
		}
	}

	for i, card := range m.cards {
		marker := "▸ "
		if m.expanded[i] {
			marker = "▾ "
		}
		title := marker + card.Title()
		if i == m.selected {
			b.WriteString(cardTitleActiveStyle.Render(title))
		} else {
			b.WriteString(cardTitleStyle.Render(title))
		}
		b.WriteString("\n")

		if m.expanded[i] {
			b.WriteString(cardBoxStyle.Render(m.cardBody(i)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(disclaimerStyle.Render(wordWrap(naming.Disclaimer, m.width-2)))
	b.WriteString("\n\n")

	switch {
	case m.copied:
		b.WriteString(copiedStyle.Render("✓ 클립보드에 복사했습니다"))
		b.WriteString("\n")
	case m.copyErr != nil:
		b.WriteString(errorStyle.Render("복사하지 못했습니다: " + m.copyErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("j/k: 이동 • enter: 펼치기 • e: 모두 펼치기 • y: 복사 • esc: 다시 입력 • q: 종료"))
	return b.String()
}

func (m ResultsModel) cardBody(i int) string {
	width := m.width - 20
	if width < 20 {
		width = 40
	}

	var lines []string
	for _, f := range m.cards[i].Body() {
		value := indent(wordWrap(f.Value, width), strings.Repeat(" ", 13))
		lines = append(lines, labelStyle.Render(f.Key)+" "+valueStyle.Render(value))
	}

	for _, g := range m.glyphsFor(i) {
		line := glyphStyle.Render(g.Char)
		if len(g.Pinyin) > 0 {
			line += " " + toneStyle.Render(fmt.Sprintf("중국어 %s (%d성)", g.Pinyin[0], g.Tone))
		}
		if g.Definition != "" {
			line += " " + valueStyle.Render(g.Definition)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
