package cache

import (
	"math"
	"strings"
)

// BuildEmbedding computes the sparse term-frequency vector of a normalized
// question. Words shorter than the minimum length carry no signal in Spanish
// (articles, prepositions) and are dropped. Vowel accents fold away so that
// "cuánto" and "cuanto" land on the same term; ñ stays distinct.
func BuildEmbedding(normalized string) Embedding {
	emb := Embedding{}
	for _, word := range strings.Fields(normalized) {
		if len([]rune(word)) < minEmbeddingWordLen {
			continue
		}
		emb[foldAccents(word)]++
	}
	return emb
}

func foldAccents(word string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'á':
			return 'a'
		case 'é':
			return 'e'
		case 'í':
			return 'i'
		case 'ó':
			return 'o'
		case 'ú', 'ü':
			return 'u'
		}
		return r
	}, word)
}

// CosineSimilarity returns the cosine of the angle between two term-frequency
// vectors, in [0,1] for non-negative frequencies. Empty vectors yield 0.
func CosineSimilarity(a, b Embedding) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for word, fa := range a {
		normA += fa * fa
		if fb, ok := b[word]; ok {
			dot += fa * fb
		}
	}
	for _, fb := range b {
		normB += fb * fb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
