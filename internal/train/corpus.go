package train

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mengyao/hanyin/internal/charset"
	"github.com/mengyao/hanyin/internal/segment"
)

// IngestCorpus reads every regular file directly under dir, segments
// each line into word tokens, and folds them into a sliding trigram
// window. Files are fanned out across workers goroutines, each
// producing a private Store shard that is merged into the result.
//
// A token whose runes are not all in allow is treated as ε, resetting
// the trigram context rather than being silently dropped, so a single
// disallowed token cannot wrongly splice its neighbors into a false
// trigram.
func IngestCorpus(dir string, seg *segment.Segmenter, allow charset.Set, workers int, logger zerolog.Logger) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string)
	results := make(chan *Store, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			shard := New()
			for path := range jobs {
				if err := ingestFile(path, seg, allow, shard, logger); err != nil {
					logger.Error().Err(err).Str("file", path).Msg("corpus file load failed")
				}
			}
			results <- shard
		}()
	}

	for _, p := range paths {
		jobs <- p
	}
	close(jobs)

	wg.Wait()
	close(results)

	merged := New()
	for shard := range results {
		merged.Merge(shard)
	}
	return merged, nil
}

// ingestFile folds one corpus file's lines into shard.
func ingestFile(path string, seg *segment.Segmenter, allow charset.Set, shard *Store, logger zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw, ok := ParseRaw(scanner.Text())
		if !ok {
			logger.Debug().Str("file", path).Int("line", lineNo).Msg("skipped malformed corpus line")
			continue
		}
		ingestLine(raw.Text, seg, allow, shard)
	}
	return scanner.Err()
}

// ingestLine segments text and slides a trigram window across its
// tokens, feeding each (w-2, w-1, w0) into shard.AddTuple.
func ingestLine(text string, seg *segment.Segmenter, allow charset.Set, shard *Store) {
	w2, w1 := epsilon, epsilon
	for _, token := range seg.Cut(text) {
		w0 := token
		if !allow.AllowsWord(w0) {
			w0 = epsilon
		}
		shard.AddTuple(w2, w1, w0)
		w2, w1 = w1, w0
	}
}
