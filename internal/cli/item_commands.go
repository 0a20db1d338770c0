package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"video-dashboard/internal/model"
	"video-dashboard/internal/workflow"
)

func runNew(args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	state := addStateFlag(fs)
	title := fs.String("title", "", "video title (prefixed with the product count)")
	postDate := fs.String("post-date", "", "planned post date, YYYY-MM-DD (default: day after the latest draft)")
	number := fs.Int("number", 0, "video number (default: next free number)")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	lib, path, err := loadLibrary(*state)
	if err != nil {
		return err
	}

	v := lib.NewDraft()
	if *number > 0 {
		v.VideoNumber = *number
	}
	if t := strings.TrimSpace(*title); t != "" {
		// The leading digits are the product-count prefix, kept in sync
		// with the product slots.
		v.Title = workflow.RetitleForProductCount(t, len(v.Products))
	}
	if d := strings.TrimSpace(*postDate); d != "" {
		if _, err := time.Parse(model.PostDateLayout, d); err != nil {
			return fmt.Errorf("invalid --post-date %q: want YYYY-MM-DD", d)
		}
		v.PostDate = d
	}

	stored, _, err := lib.SaveEdited(v)
	if err != nil {
		return err
	}
	if err := saveLibrary(lib, path); err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(stored)
	}

	fmt.Printf("draft created: %s\n", stored.Title)
	fmt.Printf("id: %s\n", stored.ID)
	fmt.Printf("number: %d\n", stored.VideoNumber)
	fmt.Printf("post_date: %s\n", stored.PostDate)
	fmt.Printf("next: video-dashboard show --video %s\n", stored.ID)
	return nil
}

func runEdit(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	state := addStateFlag(fs)
	video := fs.String("video", "", "video id, unique id prefix, or #number")
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")
	tags := fs.String("tags", "", "new tags (free text)")
	script := fs.String("script", "", "new script text")
	scriptFile := fs.String("script-file", "", "read the script from a file instead of --script")
	thumbnail := fs.String("thumbnail", "", "thumbnail path or URL")
	chapters := fs.String("chapters", "", "chapter markers text")
	postDate := fs.String("post-date", "", "planned post date, YYYY-MM-DD (empty clears it)")
	number := fs.Int("number", 0, "video number")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*video) == "" {
		return errors.New("--video is required")
	}

	lib, path, err := loadLibrary(*state)
	if err != nil {
		return err
	}
	v, err := resolveVideo(lib, *video)
	if err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["title"] {
		v.Title = *title
	}
	if set["description"] {
		v.Description = *description
	}
	if set["tags"] {
		v.Tags = *tags
	}
	if set["script"] {
		v.Script = *script
	}
	if set["script-file"] {
		raw, err := os.ReadFile(*scriptFile)
		if err != nil {
			return fmt.Errorf("read script file: %w", err)
		}
		v.Script = string(raw)
	}
	if set["thumbnail"] {
		v.Thumbnail = *thumbnail
	}
	if set["chapters"] {
		v.Chapters = *chapters
	}
	if set["post-date"] {
		d := strings.TrimSpace(*postDate)
		if d != "" {
			if _, err := time.Parse(model.PostDateLayout, d); err != nil {
				return fmt.Errorf("invalid --post-date %q: want YYYY-MM-DD", d)
			}
		}
		v.PostDate = d
	}
	if set["number"] {
		v.VideoNumber = *number
	}

	stored, promoted, err := lib.SaveEdited(v)
	if err != nil {
		return err
	}
	if err := saveLibrary(lib, path); err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(struct {
			Video    model.Video `json:"video"`
			Promoted bool        `json:"promoted"`
		}{stored, promoted})
	}

	fmt.Printf("saved: %s\n", stored.Title)
	if promoted {
		fmt.Println("promoted to published")
	}
	return nil
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	state := addStateFlag(fs)
	video := fs.String("video", "", "video id, unique id prefix, or #number")
	task := fs.String("task", "", "checklist task key")
	undo := fs.Bool("undo", false, "mark the task incomplete instead of complete")
	post := fs.Bool("post", false, "toggle a post-publication task instead")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*video) == "" || strings.TrimSpace(*task) == "" {
		return errors.New("--video and --task are required")
	}

	lib, path, err := loadLibrary(*state)
	if err != nil {
		return err
	}
	v, err := resolveVideo(lib, *video)
	if err != nil {
		return err
	}
	completed := !*undo

	if *post {
		if err := lib.SetPostPublicationTask(v.ID, *task, completed); err != nil {
			return err
		}
		if err := saveLibrary(lib, path); err != nil {
			return err
		}
		fmt.Printf("post-publication task %s: %s\n", *task, doneWord(completed))
		return nil
	}

	stored, promoted, err := lib.SetTaskCompleted(v.ID, *task, completed)
	if err != nil {
		return err
	}
	if err := saveLibrary(lib, path); err != nil {
		return err
	}
	if *jsonOut {
		return printJSON(struct {
			Video    model.Video `json:"video"`
			Promoted bool        `json:"promoted"`
		}{stored, promoted})
	}

	fmt.Printf("task %s: %s\n", *task, doneWord(completed))
	if promoted {
		fmt.Printf("promoted to published: %s\n", stored.Title)
	}
	return nil
}

func runShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	state := addStateFlag(fs)
	video := fs.String("video", "", "video id, unique id prefix, or #number")
	jsonOut := fs.Bool("json", false, "print JSON output")
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
	if *jsonOut {
		return printJSON(v)
	}

	status := "draft"
	if lib.IsPublished(v.ID) {
		status = "published"
	}
	fmt.Printf("%s [%s]\n", v.Title, status)
	fmt.Printf("id: %s\n", v.ID)
	if v.VideoNumber > 0 {
		fmt.Printf("number: %d\n", v.VideoNumber)
	}
	if v.PostDate != "" {
		fmt.Printf("post_date: %s\n", v.PostDate)
	}
	if status == "draft" {
		fmt.Printf("stage: %s\n", workflow.ClassifyStage(v, lib.Stages()))
	}
	if v.Description != "" {
		fmt.Printf("description: %s\n", firstLine(v.Description))
	}
	if v.Tags != "" {
		fmt.Printf("tags: %s\n", v.Tags)
	}
	if v.Thumbnail != "" {
		fmt.Printf("thumbnail: %s\n", v.Thumbnail)
	}
	if v.Script != "" {
		fmt.Printf("script: %d characters\n", len([]rune(v.Script)))
	}

	fmt.Println("checklist:")
	for _, item := range v.Checklist {
		fmt.Printf("  [%s] %s (%s)\n", checkMark(item.Completed), item.Label, item.Key)
	}
	if len(v.PostPublicationChecklist) > 0 {
		fmt.Println("post-publication:")
		for _, item := range v.PostPublicationChecklist {
			fmt.Printf("  [%s] %s (%s)\n", checkMark(item.Completed), item.Label, item.Key)
		}
	}

	named := 0
	for _, p := range v.Products {
		if strings.TrimSpace(p.Name) != "" {
			named++
		}
	}
	if named > 0 {
		fmt.Printf("products: %d named\n", named)
	}
	return nil
}

func runDelete(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	state := addStateFlag(fs)
	video := fs.String("video", "", "video id, unique id prefix, or #number")
	yes := fs.Bool("yes", false, "skip confirmation")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*video) == "" {
		return errors.New("--video is required")
	}

	lib, path, err := loadLibrary(*state)
	if err != nil {
		return err
	}
	v, err := resolveVideo(lib, *video)
	if err != nil {
		return err
	}
	if !*yes {
		ok, err := promptConfirm(fmt.Sprintf("delete %q?", v.Title))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("aborted")
			return nil
		}
	}
	if err := lib.Remove(v.ID); err != nil {
		return err
	}
	if err := saveLibrary(lib, path); err != nil {
		return err
	}
	fmt.Printf("deleted: %s\n", v.Title)
	return nil
}

func checkMark(done bool) string {
	if done {
		return "x"
	}
	return " "
}

func doneWord(done bool) string {
	if done {
		return "done"
	}
	return "pending"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
