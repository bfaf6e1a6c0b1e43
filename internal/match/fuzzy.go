package match

import "github.com/sahilm/fuzzy"

// Fuzzy is the default oracle, backed by sahilm/fuzzy. Matching is a
// case-insensitive subsequence match with bonuses for word starts,
// camel case and adjacent characters.
type Fuzzy struct{}

// Match implements Oracle.
func (Fuzzy) Match(query, candidate string) (Result, bool) {
	if query == "" {
		return Result{}, true
	}
	matches := fuzzy.Find(query, []string{candidate})
	if len(matches) == 0 {
		return Result{}, false
	}
	m := matches[0]
	positions := m.MatchedIndexes
	if !isASCII(candidate) {
		positions = byteToRune(candidate, sortedCopy(positions))
	} else {
		positions = sortedCopy(positions)
	}
	return Result{Score: m.Score, Positions: positions}, true
}
