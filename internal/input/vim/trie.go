package vim

import (
	"fmt"

	"github.com/floatingskies/mark-mark/internal/input/key"
)

// Trie indexes table entries by key sequence. Each edge is one key in
// Event.String() notation, so "<C-r>" and "<lt>" are single edges.
type Trie struct {
	root *trieNode
	size int
}

type trieNode struct {
	children map[string]*trieNode
	entry    *Entry
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[string]*trieNode)}
}

// NewTrie builds a trie from entries. A later entry with the same keys
// replaces an earlier one.
func NewTrie(entries []Entry) (*Trie, error) {
	t := &Trie{root: newTrieNode()}
	for _, e := range entries {
		if err := t.Insert(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustNewTrie is NewTrie for the built-in tables.
func MustNewTrie(entries []Entry) *Trie {
	t, err := NewTrie(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Insert adds an entry.
func (t *Trie) Insert(e Entry) error {
	tokens, err := Tokens(e.Keys)
	if err != nil {
		return fmt.Errorf("table entry %q: %w", e.Keys, err)
	}
	node := t.root
	for _, tok := range tokens {
		child, ok := node.children[tok]
		if !ok {
			child = newTrieNode()
			node.children[tok] = child
		}
		node = child
	}
	if node.entry == nil {
		t.size++
	}
	entry := e
	node.entry = &entry
	return nil
}

func (t *Trie) find(tokens []string) *trieNode {
	node := t.root
	for _, tok := range tokens {
		child, ok := node.children[tok]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// Lookup returns the entry whose keys are exactly tokens.
func (t *Trie) Lookup(tokens []string) (Entry, bool) {
	node := t.find(tokens)
	if node == nil || node.entry == nil {
		return Entry{}, false
	}
	return *node.entry, true
}

// HasLonger reports whether some entry strictly extends tokens.
func (t *Trie) HasLonger(tokens []string) bool {
	node := t.find(tokens)
	return node != nil && len(node.children) > 0
}

// HasPath reports whether tokens is an entry or a prefix of one.
func (t *Trie) HasPath(tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	return t.find(tokens) != nil
}

// Len returns the number of entries.
func (t *Trie) Len() int {
	return t.size
}

// Walk calls fn for every entry, in no particular order.
func (t *Trie) Walk(fn func(Entry)) {
	var walk func(n *trieNode)
	walk = func(n *trieNode) {
		if n.entry != nil {
			fn(*n.entry)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
}

// Tokens splits a key sequence written in table notation into trie edges.
func Tokens(keys string) ([]string, error) {
	events, err := key.ParseSequence(keys)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(events))
	for i, ev := range events {
		tokens[i] = ev.String()
	}
	return tokens, nil
}
