package hashtable

import (
	"testing"
)

func TestPositionHashKnownValues(t *testing.T) {
	// "cat": 99^2 + (97+1)^2 + (116+2)^2
	if h := PositionHash("cat"); h != 33329 {
		t.Errorf("Expected PositionHash(cat) = 33329, got %d", h)
	}

	if h := PositionHash("a"); h != 97*97 {
		t.Errorf("Expected PositionHash(a) = 9409, got %d", h)
	}

	if h := PositionHash(""); h != 0 {
		t.Errorf("Expected PositionHash of empty key to be 0, got %d", h)
	}
}

func TestPositionHashUsesCodepoints(t *testing.T) {
	// U+00E9 is two bytes in UTF-8 but a single codepoint.
	if h := PositionHash("é"); h != 233*233 {
		t.Errorf("Expected PositionHash(é) = 54289, got %d", h)
	}
}

func TestPositionHashDeterminism(t *testing.T) {
	keys := []string{"", "a", "cat", "dog", "teach", "cheat", "héllo"}
	for _, key := range keys {
		first := PositionHash(key)
		for i := 0; i < 5; i++ {
			if h := PositionHash(key); h != first {
				t.Errorf("Expected stable hash for %q, got %d then %d", key, first, h)
			}
		}
	}
}

func TestPositionHashDistinguishesAnagrams(t *testing.T) {
	// Anagrams sum the same codepoints; the positional term must separate them.
	if PositionHash("teach") == PositionHash("cheat") {
		t.Error("Expected teach and cheat to hash differently")
	}
	if PositionHash("listen") == PositionHash("silent") {
		t.Error("Expected listen and silent to hash differently")
	}
}

func TestXXHashDeterminism(t *testing.T) {
	for _, key := range []string{"", "cat", "teach"} {
		if XXHash(key) != XXHash(key) {
			t.Errorf("Expected stable xxHash for %q", key)
		}
	}

	if XXHash("cat") == XXHash("dog") {
		t.Error("Expected cat and dog to get distinct xxHash values")
	}
}

func TestXXH3Determinism(t *testing.T) {
	for _, key := range []string{"", "cat", "teach"} {
		if XXH3(key) != XXH3(key) {
			t.Errorf("Expected stable XXH3 for %q", key)
		}
	}

	if XXH3("cat") == XXH3("dog") {
		t.Error("Expected cat and dog to get distinct XXH3 values")
	}
}
