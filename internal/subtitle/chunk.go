// Package subtitle segments a script into fixed-duration caption blocks and
// renders them in SubRip (SRT) format.
package subtitle

import (
	"errors"
	"strings"
	"time"
)

const (
	// DefaultMaxChunkLength bounds how many characters one caption block holds.
	DefaultMaxChunkLength = 500
	// DefaultBlockDuration is the fixed display window per block; timing is
	// per-block constant, not proportional to text length.
	DefaultBlockDuration = 30 * time.Second
)

// ErrEmptyScript signals a declined chunking request: nothing to segment, no
// blocks produced.
var ErrEmptyScript = errors.New("script is empty")

// Block is one time-coded caption. Start and End are offsets from the top of
// the video; Index is 1-based as SRT requires.
type Block struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

type Options struct {
	MaxChunkLength int
	BlockDuration  time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxChunkLength <= 0 {
		o.MaxChunkLength = DefaultMaxChunkLength
	}
	if o.BlockDuration <= 0 {
		o.BlockDuration = DefaultBlockDuration
	}
	return o
}

// Chunk splits a script into caption blocks. Each slice of up to
// MaxChunkLength characters is cut back to its last period when one exists
// past the first character, so blocks prefer to end on sentence boundaries.
// Block n spans [(n-1)*d, n*d). An empty or whitespace-only script yields
// ErrEmptyScript and no blocks. Lengths count runes, not bytes, so a cut
// never lands inside a multi-byte character.
func Chunk(script string, opts Options) ([]Block, error) {
	opts = opts.withDefaults()
	remaining := []rune(strings.TrimSpace(script))
	if len(remaining) == 0 {
		return nil, ErrEmptyScript
	}

	blocks := make([]Block, 0, len(remaining)/opts.MaxChunkLength+1)
	start := time.Duration(0)
	for len(remaining) > 0 {
		cut := len(remaining)
		if cut > opts.MaxChunkLength {
			cut = opts.MaxChunkLength
			if p := lastPeriod(remaining[:cut]); p > 0 {
				cut = p + 1
			}
		}
		text := strings.TrimSpace(string(remaining[:cut]))
		remaining = trimLeadingSpace(remaining[cut:])

		end := start + opts.BlockDuration
		blocks = append(blocks, Block{
			Index: len(blocks) + 1,
			Start: start,
			End:   end,
			Text:  text,
		})
		start = end
	}
	return blocks, nil
}

func lastPeriod(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == '.' {
			return i
		}
	}
	return -1
}

func trimLeadingSpace(runes []rune) []rune {
	i := 0
	for i < len(runes) && (runes[i] == ' ' || runes[i] == '\t' || runes[i] == '\n' || runes[i] == '\r') {
		i++
	}
	return runes[i:]
}
