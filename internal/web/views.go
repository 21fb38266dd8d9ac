package web

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/f3rmion/ireum/internal/hanja"
	"github.com/f3rmion/ireum/internal/naming"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplate = template.Must(template.New("page.html").ParseFS(templateFS, "templates/*.html"))

// Component renders a piece of HTML. It matches templ.Component so the
// pages can move to generated components without touching the handlers.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// option is one choice of a radio group or select.
type option struct {
	Value    string
	Label    string
	Selected bool
}

// cardView is a name card plus the per-character breakdown of its hanja.
type cardView struct {
	naming.Card
	Glyphs []hanja.Glyph
}

// Page is the single form page, with or without results.
type Page struct {
	Request    naming.Request
	Genders    []option
	Styles     []option
	Lengths    []option
	Cards      []cardView
	Message    string
	Warning    bool
	Disclaimer string
}

// NewPage builds the page for req. rs and err are the outcome of the last
// submission; both are empty for a fresh form.
func NewPage(req naming.Request, rs naming.ResultSet, err error, breaker *hanja.Breaker) Page {
	req = naming.Normalize(req)

	p := Page{Request: req}
	for _, g := range naming.Genders {
		p.Genders = append(p.Genders, option{Value: string(g), Label: g.Label(), Selected: g == req.Gender})
	}
	for _, s := range naming.Styles {
		p.Styles = append(p.Styles, option{Value: string(s), Label: s.Label(), Selected: s == req.Style})
	}
	for _, l := range naming.Lengths {
		p.Lengths = append(p.Lengths, option{Value: string(l), Label: l.Label(), Selected: l == req.Length})
	}

	if err != nil {
		p.Message = naming.UserMessage(err)
		p.Warning = naming.Warning(err)
		return p
	}

	for _, c := range naming.Cards(rs) {
		cv := cardView{Card: c}
		if c.HasHanja() && breaker != nil {
			cv.Glyphs = breaker.Breakdown(c.Hanja)
		}
		p.Cards = append(p.Cards, cv)
	}
	if len(p.Cards) > 0 {
		p.Disclaimer = naming.Disclaimer
	} else if rs != nil {
		p.Message = "추천 결과가 비어 있습니다. 다시 시도해주세요."
		p.Warning = true
	}
	return p
}

// Render writes the full HTML document.
func (p Page) Render(_ context.Context, w io.Writer) error {
	return pageTemplate.ExecuteTemplate(w, "page.html", p)
}
