package codec

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/alexanderramin/wallplanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, p := range []domain.PaperPreset{domain.PresetA3, domain.PresetLetter, domain.PresetA4} {
		s, err := domain.WithPaperPreset(p)
		require.NoError(t, err)

		encoded, err := Encode(s)
		require.NoError(t, err)

		got, ok := Decode(encoded)
		require.True(t, ok)
		assert.Equal(t, s, *got)
	}
}

func TestEncodeDecode_RoundTripUnicodeAndFractions(t *testing.T) {
	s := domain.DefaultSettings()
	s.Columns = append(s.Columns, domain.PlannerColumn{ID: "col-ü", Label: "Café ☕ 日記", WidthMm: 33.3})
	s.LineWeightPt = 0.35
	s.WeekendTextStyle = domain.WeekendBlack
	s.FontFamily = domain.FontMono
	s.ShowMiniCalendars = false

	encoded, err := Encode(s)
	require.NoError(t, err)

	got, ok := Decode(encoded)
	require.True(t, ok)
	assert.Equal(t, s, *got)
}

func TestEncode_IsURLSafe(t *testing.T) {
	s := domain.DefaultSettings()
	s.Columns[0].Label = "???>>>~~~"
	encoded, err := Encode(s)
	require.NoError(t, err)

	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, "/")
	assert.NotContains(t, encoded, "=")
}

func TestEncode_Deterministic(t *testing.T) {
	s := domain.DefaultSettings()
	a, err := Encode(s)
	require.NoError(t, err)
	b, err := Encode(s.Clone())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecode_AcceptsPadding(t *testing.T) {
	s := domain.DefaultSettings()
	encoded, err := Encode(s)
	require.NoError(t, err)

	padded := encoded + strings.Repeat("=", (4-len(encoded)%4)%4)
	got, ok := Decode(padded)
	require.True(t, ok)
	assert.Equal(t, s, *got)
}

func TestDecode_InvalidInputReturnsAbsent(t *testing.T) {
	valid, err := Encode(domain.DefaultSettings())
	require.NoError(t, err)

	cases := map[string]string{
		"empty":        "",
		"not base64":   "%%%not-base64%%%",
		"not json":     base64.RawURLEncoding.EncodeToString([]byte("hello world")),
		"json array":   base64.RawURLEncoding.EncodeToString([]byte("[1,2,3]")),
		"wrong types":  base64.RawURLEncoding.EncodeToString([]byte(`{"pageWidthMm":"wide"}`)),
		"invalid utf8": base64.RawURLEncoding.EncodeToString([]byte{'{', 0xff, 0xfe, '}'}),
		"truncated":    valid[:len(valid)/2],
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				got, ok := Decode(input)
				assert.False(t, ok)
				assert.Nil(t, got)
			})
		})
	}
}

// Field types are checked while decoding, so a payload that is the wrong
// shape never reaches ValidateSettings.
func TestDecode_WrongFieldTypeReturnsAbsent(t *testing.T) {
	cases := map[string]string{
		"columns string":    `{"paperPreset":"letter","columns":"x"}`,
		"column width text": `{"columns":[{"id":"a","label":"A","widthMm":"wide"}]}`,
		"toggle as number":  `{"showMiniCalendars":1}`,
		"preset as number":  `{"paperPreset":3}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := Decode(base64.RawURLEncoding.EncodeToString([]byte(body)))
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestDecode_PassesThroughIncompleteSettings(t *testing.T) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"paperPreset":"a3","rowHeightMm":9}`))

	got, ok := Decode(payload)
	require.True(t, ok)
	assert.Equal(t, domain.PresetA3, got.PaperPreset)
	assert.Equal(t, 9.0, got.RowHeightMm)
	assert.Empty(t, got.Columns)
	assert.NotEmpty(t, domain.ValidateSettings(got))
}
