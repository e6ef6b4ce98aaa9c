// Package model implements the serializable n-gram language model:
// unigram, bigram, and trigram count tables, their transfer-score
// formula, and the lazily rebuilt reverse trie used to constrain
// candidate words during decoding.
package model

import (
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/mengyao/hanyin/internal/config"
	"github.com/mengyao/hanyin/internal/trie"
)

// sentinel is the empty-string "no/unknown predecessor" context token.
const sentinel = ""

// Engine is the trained statistical artifact. Counter, TwoGram,
// ThreeGram, and Total persist; Trie is derived at load time by
// InitTrie and is never serialized.
type Engine struct {
	Counter   map[string]int64                       `json:"counter"`
	TwoGram   map[string]map[string]int64            `json:"two_gram"`
	ThreeGram map[string]map[string]map[string]int64 `json:"three_gram"`
	Total     int64                                  `json:"total"`

	trie    *trie.Node
	scoring config.Scoring
}

// New returns an empty Engine with the given scoring configuration.
func New(scoring config.Scoring) *Engine {
	return &Engine{
		Counter:   make(map[string]int64),
		TwoGram:   make(map[string]map[string]int64),
		ThreeGram: make(map[string]map[string]map[string]int64),
		scoring:   scoring,
	}
}

// Load deserializes an Engine document from path and calls InitTrie on
// it before returning. A malformed model document is fatal to the
// caller, not something to paper over.
func Load(path string, scoring config.Scoring) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, scoring)
}

// Decode deserializes an Engine document from r and initializes its
// trie.
func Decode(r io.Reader, scoring config.Scoring) (*Engine, error) {
	eng := &Engine{scoring: scoring}
	if err := json.NewDecoder(r).Decode(eng); err != nil {
		return nil, err
	}
	eng.InitTrie()
	return eng, nil
}

// Save serializes the Engine (excluding the derived trie) to path.
func (e *Engine) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return e.Encode(f)
}

// Encode serializes the Engine to w.
func (e *Engine) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(e)
}

// InitTrie rebuilds the reverse trie from every word key in Counter.
// It is idempotent: calling it twice without intervening mutation of
// Counter produces an equal trie, since Build always starts from an
// empty root and Insert is idempotent per word.
func (e *Engine) InitTrie() {
	words := make([]string, 0, len(e.Counter))
	for w := range e.Counter {
		words = append(words, w)
	}
	e.trie = trie.Build(words)
}

// Trie returns the engine's reverse trie. It is nil until InitTrie has
// been called (by New+Extract, or by Load/Decode).
func (e *Engine) Trie() *trie.Node {
	return e.trie
}

// Scoring returns the engine's scoring configuration.
func (e *Engine) Scoring() config.Scoring {
	return e.scoring
}

// Score computes the transfer score of word to following context (a, b):
//
//	(counter[to]          * Laplace + 1)
//	+ (two_gram[b][to]     * Laplace + 1) * Double
//	+ (three_gram[a][b][to] * Laplace + 1) * Triple
//
// Missing lookups contribute 0 before the "+1" additive smoothing is
// applied, so each bracketed term is at least 1 and, for non-negative
// counts, the result is always >= 1 + Double + Triple.
func (e *Engine) Score(a, b, to string) float64 {
	unigram := float64(e.Counter[to]*e.scoring.Laplace+1)

	bigram := 0.0
	if bucket, ok := e.TwoGram[b]; ok {
		bigram = float64(bucket[to]*e.scoring.Laplace + 1)
	} else {
		bigram = 1
	}

	trigram := 0.0
	if mid, ok := e.ThreeGram[a]; ok {
		if bucket, ok := mid[b]; ok {
			trigram = float64(bucket[to]*e.scoring.Laplace + 1)
		} else {
			trigram = 1
		}
	} else {
		trigram = 1
	}

	return unigram + bigram*float64(e.scoring.Double) + trigram*float64(e.scoring.Triple)
}
