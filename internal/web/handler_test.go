package web_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/ireum/internal/hanja"
	"github.com/f3rmion/ireum/internal/llm"
	"github.com/f3rmion/ireum/internal/naming"
	"github.com/f3rmion/ireum/internal/web"
)

type fakeSuggester struct {
	rs     naming.ResultSet
	err    error
	gotReq naming.Request
	gotFmt naming.Format
}

func (f *fakeSuggester) Suggest(_ context.Context, req naming.Request, format naming.Format) (naming.ResultSet, error) {
	f.gotReq, f.gotFmt = req, format
	if err := naming.Validate(naming.Normalize(req)); err != nil {
		return nil, err
	}
	return f.rs, f.err
}

var sampleSet = naming.ResultSet{
	{naming.KeyHangul: "도윤", naming.KeyHanja: "道潤", naming.KeyMeaning: "바른 길", naming.KeyTrait: "인기"},
	{naming.KeyHangul: "하람", naming.KeyMeaning: "소중한 사람", naming.KeyTrait: "순한글"},
}

func newTestServer(t *testing.T, svc *fakeSuggester, opts ...web.HandlerOption) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(web.NewHandler(svc, opts...).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestIndexRendersEmptyForm(t *testing.T) {
	srv := newTestServer(t, &fakeSuggester{})

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `action="/suggest"`)
	assert.Contains(t, body, "남자아이")
	assert.Contains(t, body, "여자아이")
	assert.NotContains(t, body, naming.Disclaimer)
}

func TestSuggestFormRendersCards(t *testing.T) {
	svc := &fakeSuggester{rs: sampleSet}
	srv := newTestServer(t, svc, web.WithFormat(naming.FormatText), web.WithBreaker(hanja.NewBreaker(nil)))

	resp, err := http.PostForm(srv.URL+"/suggest", url.Values{
		"surname":  {"김"},
		"gender":   {"girl"},
		"style":    {"classic"},
		"length":   {"2"},
		"dollimja": {"서"},
	})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, naming.FormatText, svc.gotFmt)
	assert.Equal(t, naming.Request{Surname: "김", Gender: naming.GenderGirl, Style: naming.StyleClassic, Length: naming.LengthTwo, Dollimja: "서"}, svc.gotReq)

	assert.Contains(t, body, "추천 이름 1: 도윤")
	assert.Contains(t, body, "추천 이름 2: 하람")
	assert.Contains(t, body, "道潤")
	assert.Contains(t, body, `<span class="reading">중국어 dào`)
	assert.Contains(t, body, "<details")
	assert.Contains(t, body, naming.Disclaimer)
	assert.Equal(t, 1, strings.Count(body, "<dt>한자</dt>"), "hanja line only for the hanja name")
	assert.Contains(t, body, `value="김"`)
}

func TestSuggestFormShowsValidationWarning(t *testing.T) {
	svc := &fakeSuggester{rs: sampleSet}
	srv := newTestServer(t, svc)

	resp, err := http.PostForm(srv.URL+"/suggest", url.Values{"surname": {"Kim"}})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Contains(t, body, "성씨는 한글로만 입력해주세요.")
	assert.Contains(t, body, `class="warning"`)
	assert.NotContains(t, body, "추천 이름 1")
}

func TestSuggestFormShowsUpstreamError(t *testing.T) {
	svc := &fakeSuggester{err: &llm.APIError{Provider: "openai", StatusCode: 401, Message: "bad key"}}
	srv := newTestServer(t, svc)

	resp, err := http.PostForm(srv.URL+"/suggest", url.Values{"surname": {"이"}})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Contains(t, body, "이름을 생성하지 못했습니다")
	assert.Contains(t, body, `class="error"`)
	assert.NotContains(t, body, naming.Disclaimer)
}

func TestSuggestFormEmptyResult(t *testing.T) {
	srv := newTestServer(t, &fakeSuggester{rs: naming.ResultSet{}})

	resp, err := http.PostForm(srv.URL+"/suggest", url.Values{"surname": {"박"}})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Contains(t, body, "추천 결과가 비어 있습니다")
	assert.NotContains(t, body, naming.Disclaimer)
}

func TestSuggestAPI(t *testing.T) {
	svc := &fakeSuggester{rs: sampleSet}
	srv := newTestServer(t, svc)

	resp, err := http.Post(srv.URL+"/api/suggest", "application/json",
		strings.NewReader(`{"surname":"최","gender":"boy","style":"trendy","format":"text"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, naming.FormatText, svc.gotFmt)
	assert.Equal(t, "최", svc.gotReq.Surname)

	var got struct {
		Format     string              `json:"format"`
		Names      []map[string]string `json:"names"`
		Disclaimer string              `json:"disclaimer"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "text", got.Format)
	require.Len(t, got.Names, 2)
	assert.Equal(t, "도윤", got.Names[0][naming.KeyHangul])
	assert.Equal(t, naming.Disclaimer, got.Disclaimer)
}

func TestSuggestAPIErrors(t *testing.T) {
	tests := []struct {
		name   string
		svc    *fakeSuggester
		body   string
		status int
		code   string
	}{
		{name: "malformed json", svc: &fakeSuggester{}, body: `{`, status: http.StatusBadRequest, code: "bad_request"},
		{name: "unknown format", svc: &fakeSuggester{}, body: `{"surname":"김","format":"xml"}`, status: http.StatusBadRequest, code: "invalid_input"},
		{name: "empty surname", svc: &fakeSuggester{}, body: `{"surname":""}`, status: http.StatusBadRequest, code: "invalid_input"},
		{name: "provider failure", svc: &fakeSuggester{err: llm.ErrEmptyResponse}, body: `{"surname":"김"}`, status: http.StatusBadGateway, code: "upstream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.svc)

			resp, err := http.Post(srv.URL+"/api/suggest", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			var got map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.code, got["error"])
			assert.NotEmpty(t, got["message"])
		})
	}
}

func TestHealthzAndStatic(t *testing.T) {
	srv := newTestServer(t, &fakeSuggester{})

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, readBody(t, resp))

	resp, err = http.Get(srv.URL + "/static/style.css")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), ".card")
}
