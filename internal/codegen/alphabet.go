// Package codegen builds randomized code-drill sequences.
package codegen

// Alphabet is a fixed symbol set for code drills. KeyMap maps a physical
// key to the symbol it produces; a nil KeyMap means the symbol is typed
// directly.
type Alphabet struct {
	Name    string
	Symbols []rune
	KeyMap  map[rune]rune
}

// Alphabet names.
const (
	TypeEnglish = "english"
	TypeZhuyin  = "zhuyin"
	TypeCangjie = "cangjie"
)

var english = Alphabet{
	Name:    TypeEnglish,
	Symbols: []rune("abcdefghijklmnopqrstuvwxyz"),
}

var zhuyin = Alphabet{
	Name:    TypeZhuyin,
	Symbols: []rune("ㄅㄆㄇㄈㄉㄊㄋㄌㄍㄎㄏㄐㄑㄒㄓㄔㄕㄖㄗㄘㄙㄧㄨㄩㄚㄛㄜㄝㄞㄟㄠㄡㄢㄣㄤㄥㄦ"),
	KeyMap: map[rune]rune{
		'1': 'ㄅ', 'q': 'ㄆ', 'a': 'ㄇ', 'z': 'ㄈ',
		'2': 'ㄉ', 'w': 'ㄊ', 's': 'ㄋ', 'x': 'ㄌ',
		'e': 'ㄍ', 'd': 'ㄎ', 'c': 'ㄏ',
		'r': 'ㄐ', 'f': 'ㄑ', 'v': 'ㄒ',
		'5': 'ㄓ', 't': 'ㄔ', 'g': 'ㄕ', 'b': 'ㄖ',
		'y': 'ㄗ', 'h': 'ㄘ', 'n': 'ㄙ',
		'u': 'ㄧ', 'j': 'ㄨ', 'm': 'ㄩ',
		'8': 'ㄚ', 'i': 'ㄛ', 'k': 'ㄜ', ',': 'ㄝ',
		'9': 'ㄞ', 'o': 'ㄟ', 'l': 'ㄠ', '.': 'ㄡ',
		'0': 'ㄢ', 'p': 'ㄣ', ';': 'ㄤ',
		'-': 'ㄥ', '/': 'ㄦ',
	},
}

var cangjie = Alphabet{
	Name:    TypeCangjie,
	Symbols: []rune("日月金木水火土竹戈十大中一弓人心手口尸廿山女田難卜符"),
	KeyMap: map[rune]rune{
		'a': '日', 'b': '月', 'c': '金', 'd': '木', 'e': '水',
		'f': '火', 'g': '土', 'h': '竹', 'i': '戈', 'j': '十',
		'k': '大', 'l': '中', 'm': '一', 'n': '弓', 'o': '人',
		'p': '心', 'q': '手', 'r': '口', 's': '尸', 't': '廿',
		'u': '山', 'v': '女', 'w': '田', 'x': '難', 'y': '卜', 'z': '符',
	},
}

// Lookup returns the alphabet for the given name.
func Lookup(name string) (Alphabet, bool) {
	switch name {
	case TypeEnglish:
		return english, true
	case TypeZhuyin:
		return zhuyin, true
	case TypeCangjie:
		return cangjie, true
	}
	return Alphabet{}, false
}

// Names lists the selectable alphabet names.
func Names() []string {
	return []string{TypeEnglish, TypeZhuyin, TypeCangjie}
}

// SymbolForKey resolves a pressed key to the symbol it produces. For
// alphabets without a key map the key itself is the symbol.
func (a Alphabet) SymbolForKey(key rune) (rune, bool) {
	if a.KeyMap == nil {
		return toLowerASCII(key), true
	}
	sym, ok := a.KeyMap[key]
	return sym, ok
}

// KeyForSymbol returns the physical key that produces the symbol, used
// to render drill hints.
func (a Alphabet) KeyForSymbol(sym rune) (rune, bool) {
	if a.KeyMap == nil {
		return sym, true
	}
	for key, s := range a.KeyMap {
		if s == sym {
			return key, true
		}
	}
	return 0, false
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
