// Package prompt builds the instructions sent to the language model.
package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/f3rmion/ireum/internal/naming"
)

// SystemPrompt is sent as the system role with every request.
const SystemPrompt = "당신은 한국의 아기 이름 추천 전문가입니다. 2020년 이후 아기 이름 트렌드에 맞춰서 아기 이름을 추천해주세요."

// Counts requested from the model.
const (
	TotalNames = 5
	HanjaNames = 4
	HangulOnly = TotalNames - HanjaNames
)

// Generator renders prompts from naming requests.
type Generator struct {
	templates map[naming.Format]*template.Template
}

// templateData is what the templates see.
type templateData struct {
	Surname    string
	Gender     string
	Classic    bool
	Length     string
	Dollimja   string
	Total      int
	Hanja      int
	HangulOnly int
	KeyHangul  string
	KeyHanja   string
	KeyMeaning string
	KeyTrait   string
}

// NewGenerator creates a generator with the built-in templates.
func NewGenerator() *Generator {
	return &Generator{
		templates: map[naming.Format]*template.Template{
			naming.FormatText: template.Must(template.New("text").Parse(textTemplate)),
			naming.FormatJSON: template.Must(template.New("json").Parse(jsonTemplate)),
		},
	}
}

// SetTemplate replaces the template used for a format. The template sees
// the same fields as the built-in ones (Surname, Gender, Classic, Length,
// Dollimja, the counts and the record keys).
func (g *Generator) SetTemplate(format naming.Format, tmpl string) error {
	t, err := template.New(string(format)).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	g.templates[format] = t
	return nil
}

// Generate renders the prompt for req in the given format.
func (g *Generator) Generate(req naming.Request, format naming.Format) (string, error) {
	t, ok := g.templates[format]
	if !ok {
		return "", fmt.Errorf("no template for format %q", format)
	}

	data := templateData{
		Surname:    req.Surname,
		Gender:     req.Gender.Label(),
		Classic:    req.Style == naming.StyleClassic,
		Dollimja:   req.Dollimja,
		Total:      TotalNames,
		Hanja:      HanjaNames,
		HangulOnly: HangulOnly,
		KeyHangul:  naming.KeyHangul,
		KeyHanja:   naming.KeyHanja,
		KeyMeaning: naming.KeyMeaning,
		KeyTrait:   naming.KeyTrait,
	}
	if req.Length != naming.LengthAny {
		data.Length = req.Length.Label()
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// Shared request wording for both formats.
const requestHeader = `{{- if .Classic -}}
전통적이고 고전적인 한국 작명 관습을 따르는
{{- else -}}
2020년 이후 한국의 최신 작명 트렌드를 반영한
{{- end }} '{{ .Surname }}'씨 {{ .Gender }}의 이름 {{ .Total }}개를 추천해주세요.
한자어로 지은 이름 {{ .Hanja }}개와 순한글 이름 {{ .HangulOnly }}개를 추천해주세요.
{{- if .Length }}
이름(성 제외)은 {{ .Length }}로 지어주세요.
{{- end }}
{{- if .Dollimja }}
돌림자 '{{ .Dollimja }}'를 사용합니다. 가능하면 이름의 첫째 또는 둘째 글자에 '{{ .Dollimja }}'가 들어가는 이름을 우선 추천해주세요.
{{- end }}`

// textTemplate asks for numbered key: value lines, one blank line between names.
const textTemplate = requestHeader + `

각 이름에 대해 다음 형식으로 제공해주세요:
1. {{ .KeyHangul }}: [한글이름]
2. {{ .KeyHanja }}: [한자이름] (한자어로 지은 경우에만)
3. {{ .KeyMeaning }}: [이름의 의미 설명]
4. {{ .KeyTrait }}: [이름의 특징이나 트렌드 관련 설명]

각 이름은 번호를 매겨 구분하고, 이름 사이에는 빈 줄을 하나 넣어주세요.`

// jsonTemplate asks for a bare JSON array.
const jsonTemplate = requestHeader + `

결과는 다른 설명 없이 JSON 배열로만 응답해주세요. 배열의 각 원소는 다음 키를 가진 객체입니다:
[
  {
    "{{ .KeyHangul }}": "한글이름",
    "{{ .KeyHanja }}": "한자이름 (순한글 이름이면 이 키를 생략)",
    "{{ .KeyMeaning }}": "이름의 의미 설명",
    "{{ .KeyTrait }}": "이름의 특징이나 트렌드 관련 설명"
  }
]`
