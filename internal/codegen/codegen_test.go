package codegen

import "testing"

func TestGenerateLengthAndMembership(t *testing.T) {
	gen := New()
	for _, name := range Names() {
		alphabet, ok := Lookup(name)
		if !ok {
			t.Fatalf("alphabet %q not found", name)
		}
		seq := []rune(gen.Generate(alphabet, 50))
		if len(seq) != 50 {
			t.Fatalf("%s: expected 50 symbols, got %d", name, len(seq))
		}
		members := map[rune]struct{}{}
		for _, s := range alphabet.Symbols {
			members[s] = struct{}{}
		}
		for _, r := range seq {
			if _, ok := members[r]; !ok {
				t.Fatalf("%s: symbol %q not in alphabet", name, r)
			}
		}
	}
}

func TestGenerateDefaultLength(t *testing.T) {
	gen := New()
	alphabet, _ := Lookup(TypeCangjie)
	if got := len([]rune(gen.Generate(alphabet, 0))); got != DefaultLength {
		t.Fatalf("expected default length %d, got %d", DefaultLength, got)
	}
}

func TestSymbolForKeyMapped(t *testing.T) {
	alphabet, _ := Lookup(TypeCangjie)
	sym, ok := alphabet.SymbolForKey('a')
	if !ok || sym != '日' {
		t.Fatalf("expected 'a' to map to 日, got %q ok=%v", sym, ok)
	}
	if _, ok := alphabet.SymbolForKey('!'); ok {
		t.Fatalf("unmapped key must not resolve")
	}
}

func TestSymbolForKeyIdentity(t *testing.T) {
	alphabet, _ := Lookup(TypeEnglish)
	sym, ok := alphabet.SymbolForKey('Q')
	if !ok || sym != 'q' {
		t.Fatalf("expected identity map with lowering, got %q ok=%v", sym, ok)
	}
}

func TestKeyForSymbolRoundTrip(t *testing.T) {
	alphabet, _ := Lookup(TypeZhuyin)
	key, ok := alphabet.KeyForSymbol('ㄅ')
	if !ok || key != '1' {
		t.Fatalf("expected ㄅ on key '1', got %q ok=%v", key, ok)
	}
	if _, ok := alphabet.KeyForSymbol('卜'); ok {
		t.Fatalf("foreign symbol must not resolve")
	}
}
