package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"video-dashboard/internal/links"
)

func runCopy(args []string) error {
	fs := flag.NewFlagSet("copy", flag.ContinueOnError)
	state := addStateFlag(fs)
	video := fs.String("video", "", "video id, unique id prefix, or #number")
	field := fs.String("field", "title", "field to copy: title|tags|description|script|chapters")
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

	var text string
	switch strings.ToLower(strings.TrimSpace(*field)) {
	case "title":
		text = v.Title
	case "tags":
		text = v.Tags
	case "description":
		text = v.Description
	case "script":
		text = v.Script
	case "chapters":
		text = v.Chapters
	default:
		return fmt.Errorf("unknown field %q (want title|tags|description|script|chapters)", *field)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("field %s of %q is empty", *field, v.Title)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Printf("copied %s of %q (%d characters)\n", *field, v.Title, len([]rune(text)))
	return nil
}

func runOpen(args []string) error {
	fs := flag.NewFlagSet("open", flag.ContinueOnError)
	store := fs.String("store", "", "store: "+strings.Join(links.Stores(), "|"))
	query := fs.String("query", "", "product name to search for")
	printOnly := fs.Bool("print", false, "print the URL instead of opening the browser")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*store) == "" || strings.TrimSpace(*query) == "" {
		return errors.New("--store and --query are required")
	}

	url, err := links.SearchURL(strings.TrimSpace(*store), strings.TrimSpace(*query))
	if err != nil {
		return err
	}
	if *printOnly {
		fmt.Println(url)
		return nil
	}
	if err := links.Open(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	fmt.Printf("opened: %s\n", url)
	return nil
}
