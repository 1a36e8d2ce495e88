package prompt

import (
	"strings"
	"unicode"
)

// decorative covers the flag and pictograph markers stored with language
// presets, plus the joiners and variation selectors that glue them together.
var decorative = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200d, Hi: 0x200d, Stride: 1},
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1},
		{Lo: 0xfe00, Hi: 0xfe0f, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f1e0, Hi: 0x1f1ff, Stride: 1},
		{Lo: 0x1f300, Hi: 0x1f64f, Stride: 1},
		{Lo: 0x1f680, Hi: 0x1f6ff, Stride: 1},
		{Lo: 0x1f900, Hi: 0x1f9ff, Stride: 1},
	},
}

// LanguageName strips the decorative marker from a language preset:
// "🇯🇵 Japanese" becomes "Japanese". Plain names pass through untouched.
func LanguageName(language string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.Is(decorative, r) {
			return -1
		}
		return r
	}, language)
	return strings.Join(strings.Fields(stripped), " ")
}
