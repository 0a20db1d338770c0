package statestore

import (
	"os"
	"path/filepath"
	"testing"

	"video-dashboard/internal/model"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dashboard.json")

	data, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(data.Drafts) != 0 || len(data.PublishedVideos) != 0 {
		t.Fatalf("expected empty collections, got %d/%d", len(data.Drafts), len(data.PublishedVideos))
	}
	if len(data.StagesConfig) != 4 {
		t.Fatalf("expected the 4 default stages, got %d", len(data.StagesConfig))
	}
	if data.Theme != model.ThemeDark {
		t.Fatalf("expected dark theme default, got %q", data.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "dashboard.json")

	data := model.DefaultAppData()
	data.Theme = model.ThemeLight
	draft := model.NewDraft(data.StagesConfig, "2026-09-01", 7)
	draft.Title = "5 Melhores Air Fryers"
	data.Drafts = []model.Video{draft}

	if err := Save(path, data); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Theme != model.ThemeLight {
		t.Fatalf("theme lost: %q", loaded.Theme)
	}
	if len(loaded.Drafts) != 1 || loaded.Drafts[0].ID != draft.ID {
		t.Fatalf("draft lost: %#v", loaded.Drafts)
	}
	if loaded.Drafts[0].PostDate != "2026-09-01" || loaded.Drafts[0].VideoNumber != 7 {
		t.Fatalf("fields lost: %#v", loaded.Drafts[0])
	}
}

func TestLoadReconcilesChecklistsAgainstStages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.json")

	// A state file from an older template: one stale key, one missing key,
	// one surviving completion.
	doc := `{
		"drafts": [{
			"id": "v1",
			"title": "x",
			"checklist": [
				{"key": "stale", "label": "Gone", "completed": true},
				{"key": "cutting", "label": "old label", "completed": true}
			]
		}],
		"publishedVideos": [],
		"stagesConfig": [{
			"id": "production",
			"name": "Production",
			"tasks": [
				{"key": "cutting", "label": "Cutting"},
				{"key": "editing", "label": "Editing"}
			]
		}],
		"theme": "dark"
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	data, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	checklist := data.Drafts[0].Checklist
	if len(checklist) != 2 {
		t.Fatalf("expected 2 reconciled items, got %d", len(checklist))
	}
	if checklist[0].Key != "cutting" || !checklist[0].Completed || checklist[0].Label != "Cutting" {
		t.Fatalf("cutting not reconciled: %#v", checklist[0])
	}
	if checklist[1].Key != "editing" || checklist[1].Completed {
		t.Fatalf("editing should be fresh and incomplete: %#v", checklist[1])
	}
}

func TestLoadBackfillsPostPublicationChecklist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.json")
	doc := `{"drafts": [], "publishedVideos": [{"id": "v1", "title": "x", "checklist": []}], "stagesConfig": [], "theme": "light"}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	data, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	got := data.PublishedVideos[0].PostPublicationChecklist
	if len(got) != len(model.DefaultPostPublicationChecklist()) {
		t.Fatalf("expected backfilled post-publication checklist, got %#v", got)
	}
	if data.Theme != model.ThemeLight {
		t.Fatalf("expected light theme, got %q", data.Theme)
	}
}

func TestLoadRejectsDuplicateTaskKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.json")
	doc := `{
		"drafts": [], "publishedVideos": [],
		"stagesConfig": [
			{"id": "a", "name": "A", "tasks": [{"key": "dup", "label": "One"}]},
			{"id": "b", "name": "B", "tasks": [{"key": "dup", "label": "Two"}]}
		],
		"theme": "dark"
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a validation error for duplicate task keys")
	}
}

func TestNormalizePath(t *testing.T) {
	if got := NormalizePath("  "); got != DefaultStatePath {
		t.Fatalf("expected default path, got %q", got)
	}
	if got := NormalizePath("custom.json"); got != "custom.json" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
