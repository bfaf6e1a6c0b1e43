package keymap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShadowed is returned when one binding is a prefix of another, which
// would make the longer one unreachable.
var ErrShadowed = errors.New("key sequence shadows another binding")

// Result is the outcome of feeding one key to a Resolver.
type Result int

const (
	NoMatch Result = iota // the key is not bound; the pending prefix was dropped
	Pending               // the key extends a bound prefix; more keys needed
	Matched               // a full sequence was completed
)

type node struct {
	action   Action
	children map[string]*node
}

// Resolver maps key sequences to actions. It remembers a pending prefix
// between calls to Feed.
type Resolver struct {
	root     *node
	pending  *node
	prefix   []string
	byAction map[Action][]string // action -> sequences (for help/documentation)
}

// NewResolver builds the sequence trie for bindings.
func NewResolver(bindings []Binding) (*Resolver, error) {
	r := &Resolver{
		root:     &node{children: make(map[string]*node)},
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, seq := range b.Keys {
			keys, err := ParseSequence(seq)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Action, err)
			}
			if err := r.insert(keys, b.Action); err != nil {
				return nil, fmt.Errorf("%s %q: %w", b.Action, seq, err)
			}
			r.byAction[b.Action] = append(r.byAction[b.Action], strings.Join(keys, " "))
		}
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	r.pending = r.root
	return r, nil
}

func (r *Resolver) insert(keys []string, action Action) error {
	n := r.root
	for i, k := range keys {
		if n.action != "" {
			return ErrShadowed
		}
		child, ok := n.children[k]
		if !ok {
			child = &node{children: make(map[string]*node)}
			n.children[k] = child
		}
		n = child
		if i == len(keys)-1 {
			if len(n.children) > 0 {
				return ErrShadowed
			}
			if n.action != "" && n.action != action {
				return fmt.Errorf("%w: already bound to %s", ErrShadowed, n.action)
			}
			n.action = action
		}
	}
	return nil
}

// Feed advances the pending sequence by one key. A key that does not
// continue the pending prefix drops it and is tried as a new sequence.
func (r *Resolver) Feed(key string) (Action, Result) {
	next, ok := r.pending.children[key]
	if !ok && r.pending != r.root {
		r.Reset()
		next, ok = r.root.children[key]
	}
	if !ok {
		r.Reset()
		return "", NoMatch
	}
	if next.action != "" {
		r.Reset()
		return next.action, Matched
	}
	r.pending = next
	r.prefix = append(r.prefix, key)
	return "", Pending
}

// Prefix returns the keys of the pending sequence.
func (r *Resolver) Prefix() []string {
	return r.prefix
}

// Reset drops the pending sequence.
func (r *Resolver) Reset() {
	r.pending = r.root
	r.prefix = nil
}

// KeysFor returns the sequences bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
