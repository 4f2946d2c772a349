package tokenizer

import "testing"

func TestNewRejectsUnknownEncoding(t *testing.T) {
	t.Parallel()
	if _, err := New("no-such-encoding"); err == nil {
		t.Fatalf("expected error for unknown encoding")
	}
}

func TestCountEmptyText(t *testing.T) {
	t.Parallel()
	// Empty text never reaches the encoder, so no encoding tables are needed.
	tok := &TikToken{}
	n, err := tok.Count("")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 tokens for empty text, got %d", n)
	}
}
