package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/draftmd-go/internal/types"
)

func block(text string, ranges ...types.InlineStyleRange) *types.Block {
	return &types.Block{Text: text, Type: "unstyled", InlineStyleRanges: ranges}
}

func TestMaterialize_BooleanAndPrefixStyles(t *testing.T) {
	bs := Materialize(block("abcdef",
		types.InlineStyleRange{Offset: 1, Length: 2, Style: "BOLD"},
		types.InlineStyleRange{Offset: 0, Length: 3, Style: "color-red"},
		types.InlineStyleRange{Offset: 2, Length: 2, Style: "bgcolor-blue"},
		types.InlineStyleRange{Offset: 0, Length: 1, Style: "fontsize-12"},
		types.InlineStyleRange{Offset: 0, Length: 1, Style: "fontfamily-Arial"},
	), &types.Config{})

	assert.Equal(t, 6, bs.Len())
	assert.Equal(t, "true", bs.At(Bold, 1))
	assert.Equal(t, "true", bs.At(Bold, 2))
	assert.Equal(t, "", bs.At(Bold, 0))
	assert.Equal(t, "", bs.At(Bold, 3))
	assert.Equal(t, "red", bs.At(Color, 0))
	assert.Equal(t, "red", bs.At(Color, 2))
	assert.Equal(t, "", bs.At(Color, 3))
	assert.Equal(t, "blue", bs.At(BGColor, 3))
	assert.Equal(t, "12", bs.At(FontSize, 0))
	assert.Equal(t, "Arial", bs.At(FontFamily, 0))
}

func TestMaterialize_LastRangeWins(t *testing.T) {
	bs := Materialize(block("abcd",
		types.InlineStyleRange{Offset: 0, Length: 3, Style: "color-red"},
		types.InlineStyleRange{Offset: 2, Length: 2, Style: "color-blue"},
	), &types.Config{})

	assert.Equal(t, "red", bs.At(Color, 1))
	assert.Equal(t, "blue", bs.At(Color, 2))
	assert.Equal(t, "blue", bs.At(Color, 3))
}

func TestMaterialize_UnknownStylesIgnored(t *testing.T) {
	bs := Materialize(block("ab",
		types.InlineStyleRange{Offset: 0, Length: 2, Style: "SPARKLE"},
		types.InlineStyleRange{Offset: 0, Length: 2, Style: `{"fontWeight":"bold"}`},
	), &types.Config{})

	assert.Empty(t, bs.Snapshot(0))
	assert.Empty(t, bs.Snapshot(1))
}

func TestMaterialize_RawCSS(t *testing.T) {
	cfg := &types.Config{RawCSSInlineStyles: true}
	bs := Materialize(block("ab",
		types.InlineStyleRange{Offset: 0, Length: 1, Style: `{"fontWeight":"bold","lineHeight":1.5}`},
	), cfg)

	assert.Equal(t, "font-weight:bold;line-height:1.5;", bs.At(RawCSS, 0))
	assert.Equal(t, "", bs.At(RawCSS, 1))
}

func TestMaterialize_CustomTransformExtendsBooleanSet(t *testing.T) {
	cfg := &types.Config{CustomStyleTransform: map[string][]string{
		"HIGHLIGHT": {"<mark>", "</mark>"},
	}}
	bs := Materialize(block("ab",
		types.InlineStyleRange{Offset: 0, Length: 2, Style: "HIGHLIGHT"},
	), cfg)

	assert.Equal(t, "true", bs.At("HIGHLIGHT", 0))
	assert.Contains(t, bs.BooleanFamily(), "HIGHLIGHT")
}

func TestMaterialize_RangesClampedToText(t *testing.T) {
	bs := Materialize(block("ab",
		types.InlineStyleRange{Offset: 1, Length: 50, Style: "BOLD"},
		types.InlineStyleRange{Offset: -2, Length: 3, Style: "ITALIC"},
	), &types.Config{})

	assert.Equal(t, "true", bs.At(Bold, 1))
	assert.Equal(t, "true", bs.At(Italic, 0))
	assert.Equal(t, "", bs.At(Bold, 5), "out-of-range index reads as absent")
}

func TestParseRawCSS(t *testing.T) {
	cases := []struct {
		name  string
		style string
		want  string
		ok    bool
	}{
		{"single property", `{"fontWeight":"bold"}`, "font-weight:bold;", true},
		{"author order preserved", `{"marginLeft":"5px","color":"red"}`, "margin-left:5px;color:red;", true},
		{"number value", `{"opacity":0.5}`, "opacity:0.5;", true},
		{"bool value", `{"visible":true}`, "visible:true;", true},
		{"empty object", `{}`, "", true},
		{"not json", "BOLD", "", false},
		{"array", `[1]`, "", false},
		{"nested object", `{"a":{"b":1}}`, "", false},
		{"null value", `{"a":null}`, "", false},
		{"trailing garbage", `{"a":"b"} x`, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseRawCSS(tc.style)
			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
