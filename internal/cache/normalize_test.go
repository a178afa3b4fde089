package cache

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase and strip question marks",
			input:    "¿Cuánto CUESTA la cuenta?",
			expected: "cuánto cuesta la cuenta",
		},
		{
			name:     "strip exclamation marks",
			input:    "¡Quiero empezar ya!",
			expected: "quiero empezar ya",
		},
		{
			name:     "collapse whitespace",
			input:    "  cuanto \t cuesta \n apex  ",
			expected: "cuanto cuesta apex",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "already normalized",
			input:    "cuanto cuesta apex",
			expected: "cuanto cuesta apex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"¿Cuánto cuesta la evaluación de Apex?",
		"  REGLAS   de  drawdown  ",
		"¡¿qué?!",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalize_TruncatesLongQuestions(t *testing.T) {
	long := strings.Repeat("pregunta muy larga ", 50)
	got := Normalize(long)
	if len([]rune(got)) > maxNormalizedLen {
		t.Errorf("normalized length %d exceeds bound %d", len([]rune(got)), maxNormalizedLen)
	}
	if strings.HasSuffix(got, " ") {
		t.Error("truncation left trailing whitespace")
	}
}

func TestExactKey(t *testing.T) {
	a := exactKey("cuanto cuesta apex", "apex")
	b := exactKey("cuanto cuesta apex", "apex")
	if a != b {
		t.Error("same input must produce same key")
	}
	if a == exactKey("cuanto cuesta apex", "bulenox") {
		t.Error("firm must be part of the key")
	}
	if a == exactKey("cuanto cuesta bulenox", "apex") {
		t.Error("question must be part of the key")
	}
	if len(a) != 64 {
		t.Errorf("expected hex sha256 key, got length %d", len(a))
	}
}

func TestFirmSlot(t *testing.T) {
	if got := firmSlot(""); got != firmGeneral {
		t.Errorf("empty firm must map to %q, got %q", firmGeneral, got)
	}
	if got := firmSlot("  Apex "); got != "apex" {
		t.Errorf("expected trimmed lowercase slot, got %q", got)
	}
}

func TestBuildEmbedding(t *testing.T) {
	emb := BuildEmbedding("cuanto cuesta la cuenta de apex")
	if _, ok := emb["la"]; ok {
		t.Error("short words must be dropped")
	}
	if _, ok := emb["de"]; ok {
		t.Error("short words must be dropped")
	}
	for _, word := range []string{"cuanto", "cuesta", "cuenta", "apex"} {
		if emb[word] != 1 {
			t.Errorf("expected frequency 1 for %q, got %v", word, emb[word])
		}
	}

	if got := BuildEmbedding("repite repite repite"); got["repite"] != 3 {
		t.Errorf("expected frequency 3, got %v", got["repite"])
	}
}

func TestBuildEmbedding_FoldsAccents(t *testing.T) {
	a := BuildEmbedding("cuánto cuesta la evaluación apex")
	b := BuildEmbedding("cuanto cuesta la evaluacion apex")
	if sim := CosineSimilarity(a, b); sim != 1 {
		t.Errorf("accented and plain spellings must score 1, got %.3f", sim)
	}
}

func TestCosineSimilarity(t *testing.T) {
	a := BuildEmbedding("cuanto cuesta la evaluacion apex")
	b := BuildEmbedding("cuanto cuesta evaluacion apex")
	if sim := CosineSimilarity(a, b); sim != 1 {
		t.Errorf("identical word sets must score 1, got %.3f", sim)
	}

	c := BuildEmbedding("reglas noticias overnight")
	if sim := CosineSimilarity(a, c); sim != 0 {
		t.Errorf("disjoint word sets must score 0, got %.3f", sim)
	}

	d := BuildEmbedding("cuanto cuesta retirar ganancias")
	sim := CosineSimilarity(a, d)
	if sim <= 0 || sim >= 1 {
		t.Errorf("partial overlap must score strictly between 0 and 1, got %.3f", sim)
	}

	if sim := CosineSimilarity(Embedding{}, a); sim != 0 {
		t.Errorf("empty embedding must score 0, got %.3f", sim)
	}
}
