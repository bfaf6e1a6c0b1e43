package match

import (
	"strings"
	"sync"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

var fzfInit sync.Once

// FZF is an oracle using fzf's v2 scoring algorithm with smart case:
// a query containing an upper-case letter matches case-sensitively.
//
// An FZF value owns a scratch slab and must not be shared between goroutines.
type FZF struct {
	slab *util.Slab
}

// NewFZF creates an fzf-backed oracle.
func NewFZF() *FZF {
	fzfInit.Do(func() { algo.Init("default") })
	return &FZF{slab: util.MakeSlab(100*1024, 2048)}
}

// Match implements Oracle.
func (f *FZF) Match(query, candidate string) (Result, bool) {
	if query == "" {
		return Result{}, true
	}
	caseSensitive := strings.IndexFunc(query, unicode.IsUpper) >= 0
	pattern := []rune(query)
	if !caseSensitive {
		pattern = []rune(strings.ToLower(query))
	}
	chars := util.ToChars([]byte(candidate))
	res, pos := algo.FuzzyMatchV2(caseSensitive, false, true, &chars, pattern, true, f.slab)
	if res.Start < 0 || res.Score <= 0 {
		return Result{}, false
	}
	var positions []int
	if pos != nil {
		positions = sortedCopy(*pos)
	}
	return Result{Score: res.Score, Positions: positions}, true
}
