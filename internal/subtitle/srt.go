package subtitle

import (
	"fmt"
	"strings"
	"time"

	"video-dashboard/internal/statestore"
)

// DefaultFileName is the suggested output name for generated subtitles.
const DefaultFileName = "legendas.srt"

// FormatSRT renders blocks as a SubRip document: index line, timing line with
// comma-separated milliseconds (always 000 here), the text, and a blank
// separator after every block.
func FormatSRT(blocks []Block) string {
	var b strings.Builder
	for _, block := range blocks {
		fmt.Fprintf(&b, "%d\n", block.Index)
		fmt.Fprintf(&b, "%s --> %s\n", formatTimestamp(block.Start), formatTimestamp(block.End))
		b.WriteString(block.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// WriteFile writes the SRT document atomically.
func WriteFile(path string, blocks []Block) error {
	return statestore.WriteBytes(path, []byte(FormatSRT(blocks)))
}

func formatTimestamp(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d,000", hours, minutes, seconds)
}
