package history

import "testing"

func TestUndoRedoAreInverses(t *testing.T) {
	var h Stack
	texts := []string{"", "h", "he", "hel", "hell", "hello"}
	cur := texts[0]
	for _, next := range texts[1:] {
		h.Record(cur)
		cur = next
	}
	for i := len(texts) - 2; i >= 0; i-- {
		prev, ok := h.Undo(cur)
		if !ok {
			t.Fatalf("undo %d: expected entry", i)
		}
		if prev != texts[i] {
			t.Fatalf("undo %d: got %q want %q", i, prev, texts[i])
		}
		cur = prev
	}
	if _, ok := h.Undo(cur); ok {
		t.Fatalf("expected undo history to be exhausted")
	}
	for i := 1; i < len(texts); i++ {
		next, ok := h.Redo(cur)
		if !ok || next != texts[i] {
			t.Fatalf("redo %d: got %q,%v want %q", i, next, ok, texts[i])
		}
		cur = next
	}
	if cur != "hello" {
		t.Fatalf("expected final text restored, got %q", cur)
	}
}

func TestRecordClearsRedo(t *testing.T) {
	var h Stack
	h.Record("")
	cur := "a"
	prev, _ := h.Undo(cur)
	cur = prev
	if !h.CanRedo() {
		t.Fatalf("expected redo after undo")
	}
	h.Record(cur)
	cur = "b"
	if h.CanRedo() {
		t.Fatalf("expected redo cleared by edit")
	}
	if _, ok := h.Redo(cur); ok {
		t.Fatalf("redo after edit must be a no-op")
	}
}

func TestEmptyStackIsNoop(t *testing.T) {
	h := New()
	if _, ok := h.Undo("x"); ok {
		t.Fatalf("undo on empty stack reported ok")
	}
	if _, ok := h.Redo("x"); ok {
		t.Fatalf("redo on empty stack reported ok")
	}
	if u, r := h.Len(); u != 0 || r != 0 {
		t.Fatalf("empty stack changed: %d/%d", u, r)
	}
}

func TestReset(t *testing.T) {
	var h Stack
	h.Record("a")
	h.Record("b")
	h.Undo("c")
	h.Reset()
	if h.CanUndo() || h.CanRedo() {
		t.Fatalf("expected empty history after reset")
	}
}

func TestRecordReleasesRedoSnapshots(t *testing.T) {
	var h Stack
	h.Record("a")
	h.Record("ab")
	h.Undo("abc")
	h.Undo("ab")
	if h.redo == nil {
		t.Fatalf("expected redo entries after undo")
	}
	h.Record("a")
	if h.redo != nil {
		t.Fatalf("redo backing array kept after edit: len=%d cap=%d", len(h.redo), cap(h.redo))
	}
}
