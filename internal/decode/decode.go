// Package decode implements the Viterbi-style dynamic-programming
// search over pinyin syllables: at each position, every word length
// up to MaxWordLen is tried, candidate words are expanded via the
// dictionary/trie, and transitions are scored against the trigram
// model. States are collapsed by (previous word, word before that)
// context only, keeping the single best-scoring path into each
// context pair rather than tracking every distinct path string --
// cheaper than full-path collapse, and the context pair is all Score
// ever consults.
package decode

import (
	"math"
	"strings"

	"github.com/mengyao/hanyin/internal/dict"
	"github.com/mengyao/hanyin/internal/model"
)

// sentinel is the "no/unknown predecessor" context token.
const sentinel = ""

// keySep separates the two context words inside a collapsed state key.
// It cannot appear inside a dictionary word.
const keySep = "\x1f"

// pathState is one surviving lattice state: the decoded string built
// so far, and its accumulated log-space score.
type pathState struct {
	path  string
	score float64
}

// Decode converts pinyins into its most likely Chinese character
// rendering using eng's trigram model and d's candidate expansion.
// Empty input, or input for which no complete candidate path survives
// (an out-of-vocabulary pinyin with no bridging multi-character
// candidate anywhere), decodes to the empty string, not an error.
func Decode(pinyins []string, eng *model.Engine, d *dict.Dict) string {
	n := len(pinyins)
	if n == 0 {
		return ""
	}

	root := eng.Trie()
	maxWordLen := eng.Scoring().MaxWordLen
	if maxWordLen < 1 {
		maxWordLen = 1
	}

	dp := make([]map[string]pathState, n+1)
	dp[0] = map[string]pathState{contextKey(sentinel, sentinel): {path: "", score: 0}}

	for j := 1; j <= n; j++ {
		dp[j] = make(map[string]pathState)

		maxLen := maxWordLen
		if maxLen > j {
			maxLen = j
		}
		for l := 1; l <= maxLen; l++ {
			i := j - l
			prev := dp[i]
			if len(prev) == 0 {
				continue
			}
			candidates := d.BuildWords(pinyins[i:j], root)
			if len(candidates) == 0 {
				continue
			}
			for key, state := range prev {
				a, b := splitContextKey(key)
				for _, word := range candidates {
					sc := eng.Score(a, b, word)
					logScore := state.score + math.Log(sc)

					newKey := contextKey(b, word)
					if cur, ok := dp[j][newKey]; !ok || logScore > cur.score {
						dp[j][newKey] = pathState{path: state.path + word, score: logScore}
					}
				}
			}
		}

		normalize(dp[j])
	}

	best, ok := argmax(dp[n])
	if !ok {
		return ""
	}
	return best.path
}

// contextKey encodes the (a, b) context pair as a collapsed map key.
func contextKey(a, b string) string {
	return a + keySep + b
}

// splitContextKey reverses contextKey.
func splitContextKey(key string) (string, string) {
	parts := strings.SplitN(key, keySep, 2)
	if len(parts) != 2 {
		return sentinel, sentinel
	}
	return parts[0], parts[1]
}

// normalize shifts every score in states by the maximum score present,
// so magnitudes stay bounded across a long decode without changing
// which state is the argmax at this or any later step.
func normalize(states map[string]pathState) {
	if len(states) == 0 {
		return
	}
	max := math.Inf(-1)
	for _, s := range states {
		if s.score > max {
			max = s.score
		}
	}
	for k, s := range states {
		s.score -= max
		states[k] = s
	}
}

// argmax returns the highest-scoring state in states.
func argmax(states map[string]pathState) (pathState, bool) {
	best := pathState{score: math.Inf(-1)}
	found := false
	for _, s := range states {
		if !found || s.score > best.score {
			best = s
			found = true
		}
	}
	return best, found
}
