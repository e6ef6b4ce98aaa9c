// Package dict loads the pinyin-to-character dictionary and expands a
// pinyin sequence into candidate character-string words, constrained
// by a reverse trie of words the language model actually knows.
package dict

import (
	"bufio"
	"os"
	"strings"

	"github.com/mengyao/hanyin/internal/trie"
)

// Dict maps a pinyin syllable to the set of characters it may spell.
type Dict struct {
	entries map[string]map[rune]struct{}
}

// Load reads a dict file and returns a Dict.
//
// The file is pinyin-keyed: each line's first whitespace-separated
// token is a pinyin syllable, and every subsequent token's first rune
// is added as a candidate character for that syllable. Lines that
// contribute no candidates (a pinyin token alone, or a blank line) are
// skipped.
func Load(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := &Dict{entries: make(map[string]map[rune]struct{})}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		key := fields[0]
		bucket, ok := d.entries[key]
		if !ok {
			bucket = make(map[rune]struct{})
			d.entries[key] = bucket
		}
		for _, tok := range fields[1:] {
			runes := []rune(tok)
			if len(runes) == 0 {
				continue
			}
			bucket[runes[0]] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// Query returns the candidate characters for pinyin, and whether any
// entry exists for it at all.
func (d *Dict) Query(pinyin string) (map[rune]struct{}, bool) {
	bucket, ok := d.entries[pinyin]
	return bucket, ok
}

// candidate pairs a partial word (built so far, left edge first) with
// the trie node reached by following its characters in reverse.
type candidate struct {
	word string
	node *trie.Node
}

// BuildWords enumerates every character string of length len(pinyins)
// that is consistent with each pinyin's candidate set and, for
// len(pinyins) > 1, survives as a path in the reverse trie from the
// root. When len(pinyins) == 1 the trie constraint does not apply: every
// character pronounceable as pinyins[0] is returned.
//
// The walk proceeds right-to-left: it seeds from the last pinyin, then
// Cartesian-products each preceding pinyin's candidates against the
// surviving (partial word, trie node) pairs, keeping only those whose
// next character is a valid trie child. If any pinyin has no
// candidates at all, the result is empty.
func (d *Dict) BuildWords(pinyins []string, root *trie.Node) []string {
	if len(pinyins) == 0 {
		return nil
	}

	last, ok := d.Query(pinyins[len(pinyins)-1])
	if !ok {
		return nil
	}

	if len(pinyins) == 1 {
		words := make([]string, 0, len(last))
		for c := range last {
			words = append(words, string(c))
		}
		return words
	}

	candidates := make([]candidate, 0, len(last))
	for c := range last {
		node, ok := root.Child(c)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{word: string(c), node: node})
	}

	for i := len(pinyins) - 2; i >= 0; i-- {
		bucket, ok := d.Query(pinyins[i])
		if !ok {
			return nil
		}
		next := make([]candidate, 0, len(candidates)*len(bucket))
		for _, cand := range candidates {
			for c := range bucket {
				node, ok := cand.node.Child(c)
				if !ok {
					continue
				}
				next = append(next, candidate{word: string(c) + cand.word, node: node})
			}
		}
		candidates = next
		if len(candidates) == 0 {
			return nil
		}
	}

	words := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		words = append(words, cand.word)
	}
	return words
}
