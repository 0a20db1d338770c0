package subtitle

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatSRTExactOutput(t *testing.T) {
	blocks := []Block{
		{Index: 1, Start: 0, End: 30 * time.Second, Text: "Primeira fala."},
		{Index: 2, Start: 30 * time.Second, End: 60 * time.Second, Text: "Segunda fala."},
	}
	want := "1\n00:00:00,000 --> 00:00:30,000\nPrimeira fala.\n\n" +
		"2\n00:00:30,000 --> 00:01:00,000\nSegunda fala.\n\n"
	if got := FormatSRT(blocks); got != want {
		t.Fatalf("unexpected SRT output:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatSRTHourRollover(t *testing.T) {
	blocks := []Block{{Index: 1, Start: 3661 * time.Second, End: 3691 * time.Second, Text: "x"}}
	want := "1\n01:01:01,000 --> 01:01:31,000\nx\n\n"
	if got := FormatSRT(blocks); got != want {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", DefaultFileName)
	blocks, err := Chunk("Uma fala curta.", Options{})
	if err != nil {
		t.Fatalf("chunk failed: %v", err)
	}
	if err := WriteFile(path, blocks); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(raw) != FormatSRT(blocks) {
		t.Fatalf("file content mismatch:\n%q", string(raw))
	}
}
