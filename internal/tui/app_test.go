package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/ireum/internal/llm"
	"github.com/f3rmion/ireum/internal/naming"
	"github.com/f3rmion/ireum/internal/tui/views"
)

type fakeSuggester struct {
	rs     naming.ResultSet
	err    error
	gotReq naming.Request
	gotFmt naming.Format
}

func (f *fakeSuggester) Suggest(_ context.Context, req naming.Request, format naming.Format) (naming.ResultSet, error) {
	f.gotReq, f.gotFmt = req, format
	return f.rs, f.err
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app, cmd
}

// collect runs cmd and any batched commands, returning the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var sampleSet = naming.ResultSet{
	{naming.KeyHangul: "도윤", naming.KeyHanja: "道潤", naming.KeyMeaning: "바른 길", naming.KeyTrait: "인기"},
	{naming.KeyHangul: "하람", naming.KeyMeaning: "소중한 사람", naming.KeyTrait: "순한글"},
}

func TestSubmitShowsResults(t *testing.T) {
	svc := &fakeSuggester{rs: sampleSet}
	var copied string
	m := NewApp(Options{
		Service: svc,
		Format:  naming.FormatText,
		Copy:    func(s string) error { copied = s; return nil },
	})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, _ = update(t, m, runes("김"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	submit, ok := find[views.SubmitMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, "김", submit.Request.Surname)
	assert.Equal(t, naming.GenderBoy, submit.Request.Gender)

	m, cmd = update(t, m, submit)
	assert.True(t, m.Busy())
	assert.Contains(t, m.View(), "이름을 생성하고 있습니다")

	// Keys are ignored while busy.
	blocked, blockedCmd := update(t, m, runes("x"))
	assert.Nil(t, blockedCmd)
	assert.True(t, blocked.Busy())

	done, ok := find[SuggestDoneMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, naming.FormatText, svc.gotFmt)
	assert.Equal(t, "김", svc.gotReq.Surname)

	m, _ = update(t, m, done)
	assert.False(t, m.Busy())
	assert.Equal(t, ViewResults, m.CurrentView())

	view := m.View()
	assert.Contains(t, view, "추천 이름 1: 도윤")
	assert.Contains(t, view, "추천 이름 2: 하람")
	assert.Contains(t, view, "AI에 의해 생성되었습니다.")

	m, _ = update(t, m, runes("y"))
	assert.Equal(t, naming.NewCard(1, sampleSet[0]).Text(), copied)
	assert.Contains(t, m.View(), "클립보드에 복사했습니다")

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	back, ok := find[views.BackMsg](collect(cmd))
	require.True(t, ok)
	m, _ = update(t, m, back)
	assert.Equal(t, ViewForm, m.CurrentView())
}

func TestSuggestErrorReturnsToForm(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "empty surname", err: &naming.EmptyInputError{Field: naming.FieldSurname}, want: "성씨를 입력해주세요."},
		{name: "provider", err: llm.ErrMissingAPIKey, want: "이름을 생성하지 못했습니다"},
		{name: "transport", err: errors.New("connection refused"), want: "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewApp(Options{Service: &fakeSuggester{}})
			m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
			m, _ = update(t, m, views.SubmitMsg{})
			m, _ = update(t, m, SuggestDoneMsg{Err: tt.err})

			assert.Equal(t, ViewForm, m.CurrentView())
			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestSuggestErrorClearsPreviousResults(t *testing.T) {
	m := NewApp(Options{Service: &fakeSuggester{}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, _ = update(t, m, views.SubmitMsg{})
	m, _ = update(t, m, SuggestDoneMsg{Records: sampleSet})
	_, ok := m.resultsView.Selected()
	require.True(t, ok)

	m, _ = update(t, m, views.SubmitMsg{})
	m, _ = update(t, m, SuggestDoneMsg{Err: errors.New("timeout")})

	assert.Equal(t, ViewForm, m.CurrentView())
	_, ok = m.resultsView.Selected()
	assert.False(t, ok)
	assert.NotContains(t, m.resultsView.View(), "도윤")
}

func TestQuitKeys(t *testing.T) {
	m := NewApp(Options{Service: &fakeSuggester{}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	_, ok := find[tea.QuitMsg](collect(cmd))
	assert.True(t, ok, "esc on the form quits")

	// q is ordinary text on the form.
	m, cmd = update(t, m, runes("q"))
	_, ok = find[tea.QuitMsg](collect(cmd))
	assert.False(t, ok)

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	_, ok = find[tea.QuitMsg](collect(cmd))
	assert.True(t, ok)
}
