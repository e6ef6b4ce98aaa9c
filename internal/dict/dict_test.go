package dict

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/mengyao/hanyin/internal/trie"
)

func writeDict(t *testing.T, content string) *Dict {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dict file: %v", err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return d
}

func TestQuery(t *testing.T) {
	d := writeDict(t, "ni 你\nshuo 说\nshen 什 深\nme 么\n")

	bucket, ok := d.Query("shen")
	if !ok {
		t.Fatalf("expected shen to be present")
	}
	if _, ok := bucket['什']; !ok {
		t.Errorf("expected 什 among shen candidates")
	}
	if _, ok := bucket['深']; !ok {
		t.Errorf("expected 深 among shen candidates")
	}

	if _, ok := d.Query("foo"); ok {
		t.Errorf("did not expect foo to be present")
	}
}

func sortedStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}

func TestBuildWordsSingleCharNoTrieConstraint(t *testing.T) {
	d := writeDict(t, "shen 什 深\n")
	root := trie.New() // empty trie: a single-char query must not be filtered by it.

	got := d.BuildWords([]string{"shen"}, root)
	want := []string{"什", "深"}
	if !reflect.DeepEqual(sortedStrings(got), sortedStrings(want)) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBuildWordsMultiCharTrieConstrained(t *testing.T) {
	d := writeDict(t, "shen 什 深\nme 么 么\n")
	root := trie.Build([]string{"什么"}) // only 什么 is a known word; 深么 is not.

	got := d.BuildWords([]string{"shen", "me"}, root)
	want := []string{"什么"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBuildWordsEmptyWhenPinyinUnknown(t *testing.T) {
	d := writeDict(t, "shen 什 深\n")
	root := trie.Build([]string{"什么"})

	got := d.BuildWords([]string{"shen", "foo"}, root)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestBuildWordsEmptyWhenNoTriePathSurvives(t *testing.T) {
	d := writeDict(t, "shen 深\nme 么\n")
	root := trie.Build([]string{"什么"}) // 深么 is not a known word.

	got := d.BuildWords([]string{"shen", "me"}, root)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestBuildWordsEmptyInput(t *testing.T) {
	d := writeDict(t, "shen 深\n")
	root := trie.New()
	if got := d.BuildWords(nil, root); got != nil {
		t.Fatalf("expected nil for empty pinyin list, got %v", got)
	}
}
