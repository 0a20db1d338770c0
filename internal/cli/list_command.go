package cli

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"video-dashboard/internal/model"
)

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	state := addStateFlag(fs)
	published := fs.Bool("published", false, "show only published videos")
	drafts := fs.Bool("drafts", false, "show only drafts")
	search := fs.String("search", "", "filter by case-insensitive title match")
	jsonOut := fs.Bool("json", false, "print JSON output")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}

	lib, _, err := loadLibrary(*state)
	if err != nil {
		return err
	}

	showDrafts := !*published || *drafts
	showPublished := !*drafts || *published

	if *jsonOut {
		out := struct {
			Drafts    []model.Video `json:"drafts,omitempty"`
			Published []model.Video `json:"published,omitempty"`
		}{}
		if showDrafts {
			out.Drafts = lib.SearchDrafts(*search)
		}
		if showPublished {
			out.Published = lib.SearchPublished(*search)
		}
		return printJSON(out)
	}

	overdue := map[string]bool{}
	for _, v := range lib.OverdueDrafts(time.Now()) {
		overdue[v.ID] = true
	}

	if showDrafts {
		order, grouped := lib.DraftsByStage()
		query := strings.ToLower(strings.TrimSpace(*search))
		total := 0
		for _, stage := range order {
			var rows []model.Video
			for _, v := range grouped[stage] {
				if query != "" && !strings.Contains(strings.ToLower(v.Title), query) {
					continue
				}
				rows = append(rows, v)
			}
			if len(rows) == 0 {
				continue
			}
			fmt.Println(stageHeaderStyle.Render(stage))
			for _, v := range rows {
				printVideoRow(v, overdue[v.ID])
				total++
			}
		}
		if total == 0 {
			fmt.Println("no drafts")
			fmt.Println("next: video-dashboard new --title <title>")
		}
	}

	if showPublished {
		rows := lib.SearchPublished(*search)
		if showDrafts {
			fmt.Println()
		}
		fmt.Println(stageHeaderStyle.Render("Published"))
		if len(rows) == 0 {
			fmt.Println("no published videos")
		}
		for _, v := range rows {
			printVideoRow(v, false)
		}
	}
	return nil
}

func printVideoRow(v model.Video, overdue bool) {
	done := 0
	for _, item := range v.Checklist {
		if item.Completed {
			done++
		}
	}
	line := fmt.Sprintf("  %-10s %s", shortID(v.ID), v.Title)
	if len(v.Checklist) > 0 {
		line += fmt.Sprintf("  (%d/%d)", done, len(v.Checklist))
	}
	if v.PostDate != "" {
		line += "  " + v.PostDate
	}
	if overdue {
		line += "  " + overdueStyle.Render("overdue")
	}
	fmt.Println(line)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
