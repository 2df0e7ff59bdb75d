package compare

import (
	"sort"
	"strings"
)

// stopWords are tokens too common in regulatory titles to carry signal
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "the": {}, "of": {}, "for": {}, "to": {},
	"in": {}, "on": {}, "amendment": {}, "framework": {}, "regulatory": {},
	"plan": {}, "fishery": {}, "management": {},
}

// tokenize splits text into a lowercase token set with stop words removed
func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(strings.ToLower(text)) {
		token := strings.Trim(field, ".,;:()[]\"'")
		if token == "" {
			continue
		}
		if _, skip := stopWords[token]; skip {
			continue
		}
		tokens[token] = struct{}{}
	}
	return tokens
}

// jaccard computes set similarity between two token sets
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Similarity scores two actions on their title and FMP token sets
func Similarity(titleA, fmpA, titleB, fmpB string) float64 {
	return jaccard(tokenize(titleA+" "+fmpA), tokenize(titleB+" "+fmpB))
}

// rank sorts scored entries by descending score with a stable tiebreak on key
// so results are deterministic for fixed inputs
func rank[T any](entries []T, score func(T) float64, key func(T) string) {
	sort.Slice(entries, func(i, j int) bool {
		si, sj := score(entries[i]), score(entries[j])
		if si != sj {
			return si > sj
		}
		return key(entries[i]) < key(entries[j])
	})
}
