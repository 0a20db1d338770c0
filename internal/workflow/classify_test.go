package workflow

import (
	"testing"

	"video-dashboard/internal/model"
)

func TestClassifyFirstIncompleteStage(t *testing.T) {
	stages := testStages()
	v := model.Video{Checklist: []model.ChecklistItem{
		{Key: "outline", Completed: true},
		{Key: "draft", Completed: false},
		{Key: "review", Completed: false},
	}}
	if got := ClassifyStage(v, stages); got != "Writing" {
		t.Fatalf("expected Writing, got %q", got)
	}

	v.Checklist[1].Completed = true
	if got := ClassifyStage(v, stages); got != "Shipping" {
		t.Fatalf("expected Shipping, got %q", got)
	}
}

func TestClassifyAllCompleteStaysInLastStage(t *testing.T) {
	stages := testStages()
	v := model.Video{Checklist: []model.ChecklistItem{
		{Key: "outline", Completed: true},
		{Key: "draft", Completed: true},
		{Key: "review", Completed: true},
	}}
	if got := ClassifyStage(v, stages); got != "Shipping" {
		t.Fatalf("expected last stage name, got %q", got)
	}
}

func TestClassifyEmptyTemplate(t *testing.T) {
	if got := ClassifyStage(model.Video{}, nil); got != FinishedStageName {
		t.Fatalf("expected %q, got %q", FinishedStageName, got)
	}
}

func TestClassifyMissingKeysCountAsIncomplete(t *testing.T) {
	stages := testStages()
	v := model.Video{}
	if got := ClassifyStage(v, stages); got != "Writing" {
		t.Fatalf("expected first stage for a bare video, got %q", got)
	}
}

func TestChecklistComplete(t *testing.T) {
	v := model.Video{Checklist: []model.ChecklistItem{
		{Key: "a", Completed: true},
		{Key: "b", Completed: true},
	}}
	if !ChecklistComplete(v) {
		t.Fatal("all-complete checklist reported incomplete")
	}
	v.Checklist[1].Completed = false
	if ChecklistComplete(v) {
		t.Fatal("incomplete checklist reported complete")
	}
}

func TestChecklistCompleteEmptyIsNever(t *testing.T) {
	if ChecklistComplete(model.Video{}) {
		t.Fatal("a video without a checklist must never count as complete")
	}
	if ChecklistComplete(model.Video{Checklist: []model.ChecklistItem{}}) {
		t.Fatal("an empty checklist must never count as complete")
	}
}
