package trie

import "testing"

func TestInsertAndChild(t *testing.T) {
	root := New()
	root.Insert("你好")

	// Reversed insertion: root -> '好' -> '你'.
	haoNode, ok := root.Child('好')
	if !ok {
		t.Fatalf("expected child '好' at root")
	}
	if _, ok := haoNode.Child('你'); !ok {
		t.Fatalf("expected child '你' under '好'")
	}
	if _, ok := root.Child('你'); ok {
		t.Fatalf("did not expect '你' directly at root")
	}
}

func TestBuildIdempotentOnDuplicateWords(t *testing.T) {
	root := Build([]string{"什么", "什么", "你说"})

	meNode, ok := root.Child('么')
	if !ok {
		t.Fatalf("expected child '么' at root")
	}
	if _, ok := meNode.Child('什'); !ok {
		t.Fatalf("expected child '什' under '么'")
	}

	shuoNode, ok := root.Child('说')
	if !ok {
		t.Fatalf("expected child '说' at root")
	}
	if _, ok := shuoNode.Child('你'); !ok {
		t.Fatalf("expected child '你' under '说'")
	}
}

func TestEmptyWordIsNoop(t *testing.T) {
	root := New()
	root.Insert("")
	if len(root.Children) != 0 {
		t.Fatalf("expected no children after inserting empty word, got %d", len(root.Children))
	}
}
