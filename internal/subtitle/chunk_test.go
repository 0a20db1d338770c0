package subtitle

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestChunkEmptyScriptDeclined(t *testing.T) {
	for _, script := range []string{"", "   ", "\n\t  \n"} {
		blocks, err := Chunk(script, Options{})
		if !errors.Is(err, ErrEmptyScript) {
			t.Fatalf("script %q: expected ErrEmptyScript, got %v", script, err)
		}
		if blocks != nil {
			t.Fatalf("script %q: expected no blocks, got %d", script, len(blocks))
		}
	}
}

func TestChunkShortScriptSingleBlock(t *testing.T) {
	blocks, err := Chunk("  A short script.  ", Options{})
	if err != nil {
		t.Fatalf("chunk failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.Index != 1 || b.Text != "A short script." {
		t.Fatalf("unexpected block %#v", b)
	}
	if b.Start != 0 || b.End != 30*time.Second {
		t.Fatalf("expected [0s,30s), got [%v,%v)", b.Start, b.End)
	}
}

func TestChunkPrefersSentenceBoundary(t *testing.T) {
	// A period at position 479 sits inside the 500-char window, so the first
	// block must cut after it even though more characters would fit.
	first := strings.Repeat("a", 479) + "."
	rest := strings.Repeat("b", 600)
	blocks, err := Chunk(first+" "+rest, Options{})
	if err != nil {
		t.Fatalf("chunk failed: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if blocks[0].Text != first {
		t.Fatalf("first block should end at the period: got %d chars", len(blocks[0].Text))
	}
	if len(blocks[1].Text) != 500 || len(blocks[2].Text) != 100 {
		t.Fatalf("periodless text should cut at the hard limit: %d/%d", len(blocks[1].Text), len(blocks[2].Text))
	}
	if blocks[2].Start != 60*time.Second || blocks[2].End != 90*time.Second {
		t.Fatalf("third block should span [60s,90s), got [%v,%v)", blocks[2].Start, blocks[2].End)
	}
}

func TestChunkCustomOptions(t *testing.T) {
	blocks, err := Chunk("abcdefghij klmno", Options{MaxChunkLength: 10, BlockDuration: 5 * time.Second})
	if err != nil {
		t.Fatalf("chunk failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Text != "abcdefghij" || blocks[1].Text != "klmno" {
		t.Fatalf("unexpected texts %q / %q", blocks[0].Text, blocks[1].Text)
	}
	if blocks[1].Start != 5*time.Second || blocks[1].End != 10*time.Second {
		t.Fatalf("custom duration not applied: [%v,%v)", blocks[1].Start, blocks[1].End)
	}
}

func TestChunkCountsRunesNotBytes(t *testing.T) {
	// 600 two-byte runes: a byte-based cut would split a character.
	script := strings.Repeat("ã", 600)
	blocks, err := Chunk(script, Options{})
	if err != nil {
		t.Fatalf("chunk failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if got := len([]rune(blocks[0].Text)); got != 500 {
		t.Fatalf("first block should hold 500 runes, got %d", got)
	}
	for _, b := range blocks {
		if !strings.HasPrefix(b.Text, "ã") || !strings.HasSuffix(b.Text, "ã") {
			t.Fatalf("block text corrupted: %q...", b.Text[:4])
		}
	}
}

func TestChunkPeriodAtFirstPositionIgnored(t *testing.T) {
	// A period at index 0 of the window would produce an empty block, so the
	// cut falls back to the hard limit.
	script := "." + strings.Repeat("x", 520)
	blocks, err := Chunk(script, Options{})
	if err != nil {
		t.Fatalf("chunk failed: %v", err)
	}
	if len(blocks[0].Text) != 500 {
		t.Fatalf("expected a hard cut at 500, got %d", len(blocks[0].Text))
	}
}
