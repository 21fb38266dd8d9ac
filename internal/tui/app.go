package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/ireum/internal/clipboard"
	"github.com/f3rmion/ireum/internal/hanja"
	"github.com/f3rmion/ireum/internal/namer"
	"github.com/f3rmion/ireum/internal/naming"
	"github.com/f3rmion/ireum/internal/tui/bigchar"
	"github.com/f3rmion/ireum/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewForm ViewType = iota
	ViewResults
)

// SuggestDoneMsg carries the outcome of one suggestion request.
type SuggestDoneMsg struct {
	Records naming.ResultSet
	Err     error
}

// Options are the collaborators of the app. Only Service is required.
type Options struct {
	Service namer.Suggester
	Format  naming.Format
	Breaker *hanja.Breaker
	BigChar *bigchar.Renderer
	Copy    func(string) error
	Context context.Context
}

// AppModel is the main TUI model
type AppModel struct {
	svc    namer.Suggester
	format naming.Format
	ctx    context.Context

	width  int
	height int
	ready  bool

	currentView ViewType
	busy        bool
	spinner     spinner.Model

	formView    views.FormModel
	resultsView views.ResultsModel

	showHelp bool
}

// NewApp creates the TUI application
func NewApp(opts Options) AppModel {
	if opts.Format == "" {
		opts.Format = naming.FormatJSON
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.Write
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	return AppModel{
		svc:         opts.Service,
		format:      opts.Format,
		ctx:         opts.Context,
		currentView: ViewForm,
		spinner:     sp,
		formView:    views.NewFormModel(),
		resultsView: views.NewResultsModel(opts.Breaker, opts.BigChar, opts.Copy),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// CurrentView reports which view is shown.
func (m AppModel) CurrentView() ViewType { return m.currentView }

// Busy reports whether a request is in flight.
func (m AppModel) Busy() bool { return m.busy }

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Input is blocked while the request is in flight.
		if m.busy {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			if m.currentView == ViewForm {
				return m, tea.Quit
			}
		case "q":
			if m.currentView == ViewResults {
				return m, tea.Quit
			}
		case "?":
			if m.currentView == ViewResults {
				m.showHelp = true
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - 4
		contentHeight := m.height - 4
		m.formView.SetSize(contentWidth, contentHeight)
		m.resultsView.SetSize(contentWidth, contentHeight)
		return m, nil

	case views.SubmitMsg:
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.formView.SetMessage("", false)
		return m, tea.Batch(m.spinner.Tick, m.suggest(msg.Request))

	case SuggestDoneMsg:
		m.busy = false
		if msg.Err != nil {
			m.resultsView.SetResults(nil)
			m.formView.SetMessage(naming.UserMessage(msg.Err), naming.Warning(msg.Err))
			m.currentView = ViewForm
			return m, nil
		}
		m.resultsView.SetResults(msg.Records)
		m.currentView = ViewResults
		return m, nil

	case views.BackMsg:
		m.currentView = ViewForm
		return m, textinput.Blink

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewForm:
		m.formView, cmd = m.formView.Update(msg)
	case ViewResults:
		m.resultsView, cmd = m.resultsView.Update(msg)
	}
	return m, cmd
}

// suggest runs the request off the UI goroutine.
func (m AppModel) suggest(req naming.Request) tea.Cmd {
	svc, ctx, format := m.svc, m.ctx, m.format
	return func() tea.Msg {
		rs, err := svc.Suggest(ctx, req, format)
		return SuggestDoneMsg{Records: rs, Err: err}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	header := TitleStyle.Render("👶 아기 이름 추천") + "  " + SubtitleStyle.Render(string(m.format))

	var content string
	switch {
	case m.busy:
		content = m.spinner.View() + " " + LoadingStyle.Render("이름을 생성하고 있습니다...")
	case m.currentView == ViewResults:
		content = m.resultsView.View()
	default:
		content = m.formView.View()
	}

	return ContentStyle.
		Width(m.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", content))
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).MarginTop(1)
	descStyle := lipgloss.NewStyle().Foreground(ColorText)

	helpText := TitleStyle.Render("아기 이름 추천") + "\n"

	helpText += sectionStyle.Render("입력 화면") + "\n"
	helpText += HelpKeyStyle.Render("tab ↑/↓") + descStyle.Render("항목 이동") + "\n"
	helpText += HelpKeyStyle.Render("←/→") + descStyle.Render("옵션 선택") + "\n"
	helpText += HelpKeyStyle.Render("enter") + descStyle.Render("이름 추천받기") + "\n"
	helpText += HelpKeyStyle.Render("esc") + descStyle.Render("종료") + "\n"

	helpText += sectionStyle.Render("결과 화면") + "\n"
	helpText += HelpKeyStyle.Render("j/k ↑/↓") + descStyle.Render("이름 이동") + "\n"
	helpText += HelpKeyStyle.Render("enter") + descStyle.Render("카드 펼치기/접기") + "\n"
	helpText += HelpKeyStyle.Render("e") + descStyle.Render("모두 펼치기") + "\n"
	helpText += HelpKeyStyle.Render("y") + descStyle.Render("클립보드에 복사") + "\n"
	helpText += HelpKeyStyle.Render("esc") + descStyle.Render("다시 입력") + "\n"
	helpText += HelpKeyStyle.Render("q") + descStyle.Render("종료") + "\n"

	helpText += "\n" + HelpStyle.Italic(true).Render("아무 키나 누르면 닫힙니다")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, HelpBoxStyle.Render(helpText))
}
