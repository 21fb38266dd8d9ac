package naming_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/ireum/internal/naming"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       naming.Request
		wantField string
		wantEmpty bool
	}{
		{
			name: "valid request",
			req:  naming.Request{Surname: "김", Gender: naming.GenderGirl, Style: naming.StyleTrendy},
		},
		{
			name: "valid with dollimja and length",
			req:  naming.Request{Surname: "남궁", Dollimja: "윤", Length: naming.LengthTwo},
		},
		{
			name:      "empty surname",
			req:       naming.Request{Surname: "   "},
			wantField: naming.FieldSurname,
			wantEmpty: true,
		},
		{
			name:      "latin surname",
			req:       naming.Request{Surname: "Kim"},
			wantField: naming.FieldSurname,
		},
		{
			name:      "hanja surname",
			req:       naming.Request{Surname: "金"},
			wantField: naming.FieldSurname,
		},
		{
			name:      "mixed dollimja",
			req:       naming.Request{Surname: "이", Dollimja: "윤a"},
			wantField: naming.FieldDollimja,
		},
		{
			name:      "unknown gender",
			req:       naming.Request{Surname: "박", Gender: "other"},
			wantField: naming.FieldGender,
		},
		{
			name:      "unknown length",
			req:       naming.Request{Surname: "박", Length: "4"},
			wantField: naming.FieldLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := naming.Validate(naming.Normalize(tt.req))
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, naming.Warning(err))

			if tt.wantEmpty {
				var empty *naming.EmptyInputError
				require.ErrorAs(t, err, &empty)
				assert.Equal(t, tt.wantField, empty.Field)
				return
			}

			var invalid *naming.InputValidationError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestNormalizeComposesJamo(t *testing.T) {
	// ㄱ + ㅣ + ㅁ as conjoining jamo, as some input methods send them.
	decomposed := "\u1100\u1175\u11b7"

	req := naming.Normalize(naming.Request{Surname: " " + decomposed + " "})

	assert.Equal(t, "김", req.Surname)
	assert.Equal(t, naming.GenderBoy, req.Gender)
	assert.Equal(t, naming.StyleTrendy, req.Style)
	assert.NoError(t, naming.Validate(req))
}

func TestParseFormat(t *testing.T) {
	f, err := naming.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, naming.FormatJSON, f)

	f, err = naming.ParseFormat(" TEXT ")
	require.NoError(t, err)
	assert.Equal(t, naming.FormatText, f)

	_, err = naming.ParseFormat("yaml")
	assert.Error(t, err)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", naming.UserMessage(nil))
	assert.Equal(t, "성씨를 입력해주세요.", naming.UserMessage(&naming.EmptyInputError{Field: naming.FieldSurname}))
	assert.Equal(t, "돌림자는 한글로만 입력해주세요.",
		naming.UserMessage(&naming.InputValidationError{Field: naming.FieldDollimja, Value: "x"}))

	msg := naming.UserMessage(errors.New("boom"))
	assert.Contains(t, msg, "boom")
	assert.False(t, naming.Warning(errors.New("boom")))
}

func TestCardOmitsMissingHanja(t *testing.T) {
	card := naming.NewCard(5, naming.NameRecord{
		naming.KeyHangul:  "하늘",
		naming.KeyMeaning: "넓은 하늘",
	})

	assert.False(t, card.HasHanja())
	assert.Equal(t, "추천 이름 5: 하늘", card.Title())

	body := card.Body()
	require.Len(t, body, 2)
	assert.Equal(t, "의미", body[0].Key)
	assert.Equal(t, "특징", body[1].Key)
	assert.Equal(t, "", body[1].Value)
	assert.NotContains(t, card.Text(), "한자")
}

func TestCardsKeepOrderAndExtras(t *testing.T) {
	rs := naming.ResultSet{
		{naming.KeyHangul: "도윤", naming.KeyHanja: "道潤", "발음": "do-yun", "획수": "25"},
		{naming.KeyHangul: "서아"},
	}

	cards := naming.Cards(rs)
	require.Len(t, cards, 2)

	assert.Equal(t, 1, cards[0].Index)
	assert.True(t, cards[0].HasHanja())
	assert.Equal(t, []naming.Field{{Key: "발음", Value: "do-yun"}, {Key: "획수", Value: "25"}}, cards[0].Extra)
	assert.Equal(t, naming.Field{Key: "한자", Value: "道潤"}, cards[0].Body()[0])

	assert.Equal(t, 2, cards[1].Index)
	assert.Equal(t, "서아", cards[1].Hangul)
	assert.Empty(t, cards[1].Extra)
}
