package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/ireum/internal/naming"
	"github.com/f3rmion/ireum/internal/prompt"
)

func TestGenerateText(t *testing.T) {
	req := naming.Request{Surname: "김", Gender: naming.GenderGirl, Style: naming.StyleTrendy}

	p, err := prompt.NewGenerator().Generate(req, naming.FormatText)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p, "2020년 이후 한국의 최신 작명 트렌드를 반영한 '김'씨 여자아이의 이름 5개를 추천해주세요."))
	assert.Contains(t, p, "한자어로 지은 이름 4개와 순한글 이름 1개")
	assert.Contains(t, p, "1. 이름(한글): [한글이름]")
	assert.Contains(t, p, "2. 이름(한자): [한자이름]")
	assert.NotContains(t, p, "돌림자")
	assert.NotContains(t, p, "성 제외")
	assert.NotContains(t, p, "JSON")
}

func TestGenerateJSON(t *testing.T) {
	req := naming.Request{Surname: "박", Gender: naming.GenderBoy, Style: naming.StyleClassic}

	p, err := prompt.NewGenerator().Generate(req, naming.FormatJSON)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p, "전통적이고 고전적인 한국 작명 관습을 따르는 '박'씨 남자아이의"))
	assert.Contains(t, p, "JSON 배열로만")
	assert.Contains(t, p, `"이름(한글)": "한글이름"`)
	assert.Contains(t, p, `"특징"`)
}

func generate(t *testing.T, req naming.Request, format naming.Format) string {
	t.Helper()
	p, err := prompt.NewGenerator().Generate(req, format)
	require.NoError(t, err)
	return p
}

func TestGenerateOptionalClauses(t *testing.T) {
	req := naming.Request{
		Surname:  "이",
		Gender:   naming.GenderBoy,
		Style:    naming.StyleTrendy,
		Length:   naming.LengthTwo,
		Dollimja: "준",
	}

	for _, format := range naming.Formats {
		t.Run(string(format), func(t *testing.T) {
			p := generate(t, req, format)
			require.NotEmpty(t, p)

			assert.Contains(t, p, "이름(성 제외)은 두 글자로 지어주세요.")
			assert.Contains(t, p, "돌림자 '준'를 사용합니다.")
			assert.Contains(t, p, "첫째 또는 둘째 글자")
			assert.NotContains(t, p, "\n\n\n")
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	req := naming.Request{Surname: "최", Gender: naming.GenderGirl, Style: naming.StyleTrendy, Dollimja: "서"}
	assert.Equal(t, generate(t, req, naming.FormatJSON), generate(t, req, naming.FormatJSON))
}

func TestSetTemplate(t *testing.T) {
	g := prompt.NewGenerator()

	require.NoError(t, g.SetTemplate(naming.FormatText, "{{ .Surname }}/{{ .Total }}"))
	p, err := g.Generate(naming.Request{Surname: "정"}, naming.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "정/5", p)

	assert.Error(t, g.SetTemplate(naming.FormatText, "{{ .Surname"))

	_, err = g.Generate(naming.Request{Surname: "정"}, naming.Format("xml"))
	assert.Error(t, err)
}
