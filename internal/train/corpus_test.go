package train

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mengyao/hanyin/internal/charset"
	"github.com/mengyao/hanyin/internal/segment"
)

func writeCorpusFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func testSegmenter(t *testing.T) *segment.Segmenter {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")
	if err := os.WriteFile(path, []byte("你 100\n说 80\n什么 200\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	pd, err := segment.LoadPrefixDict(path)
	if err != nil {
		t.Fatalf("LoadPrefixDict: %v", err)
	}
	return segment.New(pd)
}

func testCharset(t *testing.T, chars string) charset.Set {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "chars.txt")
	if err := os.WriteFile(path, []byte(chars), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	set, err := charset.Load(path)
	if err != nil {
		t.Fatalf("charset.Load: %v", err)
	}
	return set
}

func TestIngestLineBuildsSlidingWindow(t *testing.T) {
	seg := testSegmenter(t)
	allow := testCharset(t, "你说什么")
	shard := New()

	ingestLine("你说什么", seg, allow, shard)

	if got := shard.counts[Tuple{W2: epsilon, W1: epsilon, W0: "你"}]; got != 1 {
		t.Errorf("first tuple = %d, want 1 (counts=%v)", got, shard.counts)
	}
	if got := shard.counts[Tuple{W2: epsilon, W1: "你", W0: "说"}]; got != 1 {
		t.Errorf("second tuple = %d, want 1", got)
	}
	if got := shard.counts[Tuple{W2: "你", W1: "说", W0: "什么"}]; got != 1 {
		t.Errorf("third tuple = %d, want 1", got)
	}
}

func TestIngestLineResetsContextOnDisallowedToken(t *testing.T) {
	seg := testSegmenter(t)
	allow := testCharset(t, "你什么") // "说" deliberately excluded.
	shard := New()

	ingestLine("你说什么", seg, allow, shard)

	// The disallowed "说" becomes epsilon, which forces its own
	// grandparent to epsilon and cannot predict "什么" as if "说" were
	// real context.
	if got := shard.counts[Tuple{W2: epsilon, W1: epsilon, W0: "什么"}]; got != 1 {
		t.Errorf("expected disallowed token to break context, counts=%v", shard.counts)
	}
	if _, ok := shard.counts[Tuple{W2: "你", W1: "说", W0: "什么"}]; ok {
		t.Errorf("disallowed token must not survive as context, counts=%v", shard.counts)
	}
}

func TestIngestCorpusMergesAcrossFiles(t *testing.T) {
	seg := testSegmenter(t)
	allow := testCharset(t, "你说什么")
	dir := t.TempDir()
	writeCorpusFile(t, dir, "a.txt", "你说什么\n")
	writeCorpusFile(t, dir, "b.txt", "你说什么\n")

	store, err := IngestCorpus(dir, seg, allow, 2, zerolog.Nop())
	if err != nil {
		t.Fatalf("IngestCorpus: %v", err)
	}

	if got := store.counts[Tuple{W2: "你", W1: "说", W0: "什么"}]; got != 2 {
		t.Errorf("expected counts merged across both files, got %d (counts=%v)", got, store.counts)
	}
}

func TestIngestCorpusSkipsMalformedJSONLine(t *testing.T) {
	seg := testSegmenter(t)
	allow := testCharset(t, "你说什么")
	dir := t.TempDir()
	writeCorpusFile(t, dir, "a.txt", "{bad json\n你说什么\n")

	store, err := IngestCorpus(dir, seg, allow, 1, zerolog.Nop())
	if err != nil {
		t.Fatalf("IngestCorpus: %v", err)
	}
	if got := store.counts[Tuple{W2: "你", W1: "说", W0: "什么"}]; got != 1 {
		t.Errorf("expected well-formed line still ingested, got %d", got)
	}
}

func TestIngestCorpusEmptyDir(t *testing.T) {
	seg := testSegmenter(t)
	allow := testCharset(t, "你说什么")
	dir := t.TempDir()

	store, err := IngestCorpus(dir, seg, allow, 3, zerolog.Nop())
	if err != nil {
		t.Fatalf("IngestCorpus: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store for empty dir, Len()=%d", store.Len())
	}
}
