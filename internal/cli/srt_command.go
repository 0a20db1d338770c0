package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"video-dashboard/internal/subtitle"
)

func runSRT(args []string) error {
	fs := flag.NewFlagSet("srt", flag.ContinueOnError)
	state := addStateFlag(fs)
	video := fs.String("video", "", "video id, unique id prefix, or #number")
	out := fs.String("out", subtitle.DefaultFileName, "output .srt path")
	maxLen := fs.Int("max-chunk", 0, "maximum characters per subtitle block (default 500)")
	blockSecs := fs.Int("block-seconds", 0, "seconds per subtitle block (default 30)")
	stdout := fs.Bool("stdout", false, "print the SRT instead of writing a file")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*video) == "" {
		return errors.New("--video is required")
	}

	lib, _, err := loadLibrary(*state)
	if err != nil {
		return err
	}
	v, err := resolveVideo(lib, *video)
	if err != nil {
		return err
	}

	blocks, err := subtitle.Chunk(v.Script, subtitle.Options{
		MaxChunkLength: *maxLen,
		BlockDuration:  time.Duration(*blockSecs) * time.Second,
	})
	if errors.Is(err, subtitle.ErrEmptyScript) {
		// A script-less video is a normal state, not a failure.
		fmt.Println("script is empty; nothing to generate")
		return nil
	}
	if err != nil {
		return err
	}

	if *stdout {
		fmt.Print(subtitle.FormatSRT(blocks))
		return nil
	}
	if err := subtitle.WriteFile(*out, blocks); err != nil {
		return err
	}
	fmt.Printf("subtitles written: %s (%d blocks)\n", *out, len(blocks))
	return nil
}
