package library

import (
	"sort"
	"strings"
	"time"

	"video-dashboard/internal/model"
	"video-dashboard/internal/workflow"
)

// SortedDrafts orders drafts the way the planning views show them: scheduled
// drafts first by ascending post date, then unscheduled drafts by descending
// ID so newer items surface first.
func (l *Library) SortedDrafts() []model.Video {
	drafts := l.Drafts()
	sort.SliceStable(drafts, func(i, j int) bool {
		a, b := drafts[i], drafts[j]
		aDated := strings.TrimSpace(a.PostDate) != ""
		bDated := strings.TrimSpace(b.PostDate) != ""
		switch {
		case aDated && bDated:
			return a.PostDate < b.PostDate
		case aDated:
			return true
		case bDated:
			return false
		default:
			return a.ID > b.ID
		}
	})
	return drafts
}

// DraftsByStage groups drafts under their classified stage name, in template
// stage order. Stages without drafts are omitted.
func (l *Library) DraftsByStage() ([]string, map[string][]model.Video) {
	grouped := make(map[string][]model.Video)
	for _, v := range l.SortedDrafts() {
		name := workflow.ClassifyStage(v, l.data.StagesConfig)
		grouped[name] = append(grouped[name], v)
	}

	order := make([]string, 0, len(l.data.StagesConfig)+1)
	seen := make(map[string]bool, len(l.data.StagesConfig))
	for _, stage := range l.data.StagesConfig {
		if seen[stage.Name] {
			continue
		}
		seen[stage.Name] = true
		if len(grouped[stage.Name]) > 0 {
			order = append(order, stage.Name)
		}
	}
	if len(grouped[workflow.FinishedStageName]) > 0 && !seen[workflow.FinishedStageName] {
		order = append(order, workflow.FinishedStageName)
	}
	return order, grouped
}

// OverdueDrafts returns drafts whose post date has passed relative to now.
func (l *Library) OverdueDrafts(now time.Time) []model.Video {
	today := now.Format(model.PostDateLayout)
	out := make([]model.Video, 0, 4)
	for _, v := range l.data.Drafts {
		date := strings.TrimSpace(v.PostDate)
		if date != "" && date < today {
			out = append(out, v)
		}
	}
	return out
}

// NextVideoNumber suggests the numbering for a new draft: one past the
// highest number currently in drafts, starting at 1.
func (l *Library) NextVideoNumber() int {
	max := 0
	for _, v := range l.data.Drafts {
		if v.VideoNumber > max {
			max = v.VideoNumber
		}
	}
	return max + 1
}

// DefaultPostDate suggests the day after the latest scheduled draft, or
// tomorrow when nothing is scheduled.
func (l *Library) DefaultPostDate() string {
	latest := ""
	for _, v := range l.data.Drafts {
		date := strings.TrimSpace(v.PostDate)
		if date > latest {
			latest = date
		}
	}
	if latest == "" {
		return time.Now().AddDate(0, 0, 1).Format(model.PostDateLayout)
	}
	t, err := time.Parse(model.PostDateLayout, latest)
	if err != nil {
		return time.Now().AddDate(0, 0, 1).Format(model.PostDateLayout)
	}
	return t.AddDate(0, 0, 1).Format(model.PostDateLayout)
}

// SearchPublished filters published videos by case-insensitive title match.
// An empty query returns everything.
func (l *Library) SearchPublished(query string) []model.Video {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return l.Published()
	}
	out := make([]model.Video, 0, 8)
	for _, v := range l.data.PublishedVideos {
		if strings.Contains(strings.ToLower(v.Title), q) {
			out = append(out, v)
		}
	}
	return out
}

// SearchDrafts filters the sorted draft list by case-insensitive title match.
func (l *Library) SearchDrafts(query string) []model.Video {
	q := strings.ToLower(strings.TrimSpace(query))
	sorted := l.SortedDrafts()
	if q == "" {
		return sorted
	}
	out := make([]model.Video, 0, 8)
	for _, v := range sorted {
		if strings.Contains(strings.ToLower(v.Title), q) {
			out = append(out, v)
		}
	}
	return out
}
