package workflow

import (
	"errors"
	"testing"

	"video-dashboard/internal/model"
)

func TestAddTaskGeneratesUniqueCustomKeys(t *testing.T) {
	stages := testStages()
	stages, err := AddTask(stages, "write", "Send Review Units Back")
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	stages, err = AddTask(stages, "ship", "Send Review Units Back!")
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	first := stages[0].Tasks[len(stages[0].Tasks)-1]
	second := stages[1].Tasks[len(stages[1].Tasks)-1]
	if first.Key != "custom-send-review-units-back" {
		t.Fatalf("unexpected key %q", first.Key)
	}
	if second.Key != "custom-send-review-units-back-2" {
		t.Fatalf("expected a counter suffix, got %q", second.Key)
	}
	if err := ValidateStages(stages); err != nil {
		t.Fatalf("resulting stages invalid: %v", err)
	}
}

func TestAddTaskRejectsEmptyLabel(t *testing.T) {
	if _, err := AddTask(testStages(), "write", "   "); !errors.Is(err, ErrTaskLabelRequired) {
		t.Fatalf("expected ErrTaskLabelRequired, got %v", err)
	}
}

func TestAddTaskUnknownStage(t *testing.T) {
	if _, err := AddTask(testStages(), "nope", "X"); !errors.Is(err, ErrStageNotFound) {
		t.Fatalf("expected ErrStageNotFound, got %v", err)
	}
}

func TestValidateStagesRejectsDuplicateTaskKey(t *testing.T) {
	stages := testStages()
	stages[1].Tasks = append(stages[1].Tasks, model.TaskTemplate{Key: "outline", Label: "Dup"})
	if err := ValidateStages(stages); !errors.Is(err, ErrDuplicateTaskKey) {
		t.Fatalf("expected ErrDuplicateTaskKey, got %v", err)
	}
}

func TestValidateStagesAcceptsDefaults(t *testing.T) {
	if err := ValidateStages(model.DefaultStages()); err != nil {
		t.Fatalf("default stages invalid: %v", err)
	}
}

func TestMoveStageBoundary(t *testing.T) {
	stages := testStages()
	if _, err := MoveStage(stages, "write", -1); !errors.Is(err, ErrStageAtListBoundary) {
		t.Fatalf("expected boundary error, got %v", err)
	}
	moved, err := MoveStage(stages, "write", 1)
	if err != nil {
		t.Fatalf("move down failed: %v", err)
	}
	if moved[0].ID != "ship" || moved[1].ID != "write" {
		t.Fatalf("unexpected order after move: %q %q", moved[0].ID, moved[1].ID)
	}
	if stages[0].ID != "write" {
		t.Fatal("input stages were mutated")
	}
}

func TestMoveTaskWithinStage(t *testing.T) {
	stages := testStages()
	moved, err := MoveTaskWithinStage(stages, "draft", -1)
	if err != nil {
		t.Fatalf("move up failed: %v", err)
	}
	if moved[0].Tasks[0].Key != "draft" || moved[0].Tasks[1].Key != "outline" {
		t.Fatalf("unexpected task order: %q %q", moved[0].Tasks[0].Key, moved[0].Tasks[1].Key)
	}
	if _, err := MoveTaskWithinStage(stages, "review", 1); !errors.Is(err, ErrTaskAtListBoundary) {
		t.Fatalf("expected boundary error, got %v", err)
	}
}

func TestMoveTaskToStageSingleOwnership(t *testing.T) {
	stages := testStages()
	moved, err := MoveTaskToStage(stages, "outline", "ship")
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if len(moved[0].Tasks) != 1 {
		t.Fatalf("task not removed from source stage: %#v", moved[0].Tasks)
	}
	last := moved[1].Tasks[len(moved[1].Tasks)-1]
	if last.Key != "outline" {
		t.Fatalf("task not appended to destination, got %q", last.Key)
	}
	if err := ValidateStages(moved); err != nil {
		t.Fatalf("single ownership violated: %v", err)
	}
}

func TestRenameTaskKeepsKey(t *testing.T) {
	stages := testStages()
	renamed, err := RenameTask(stages, "review", "Final review")
	if err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	task := renamed[1].Tasks[0]
	if task.Key != "review" || task.Label != "Final review" {
		t.Fatalf("unexpected task after rename: %#v", task)
	}
}

func TestRemoveStageAndTask(t *testing.T) {
	stages := testStages()
	without, err := RemoveStage(stages, "write")
	if err != nil {
		t.Fatalf("remove stage failed: %v", err)
	}
	if len(without) != 1 || without[0].ID != "ship" {
		t.Fatalf("unexpected stages: %#v", without)
	}

	withoutTask, err := RemoveTask(stages, "draft")
	if err != nil {
		t.Fatalf("remove task failed: %v", err)
	}
	if len(withoutTask[0].Tasks) != 1 || withoutTask[0].Tasks[0].Key != "outline" {
		t.Fatalf("unexpected tasks: %#v", withoutTask[0].Tasks)
	}
}

func TestAddStageGetsFreshSlugID(t *testing.T) {
	stages := testStages()
	added, err := AddStage(stages, "Final QA")
	if err != nil {
		t.Fatalf("add stage failed: %v", err)
	}
	last := added[len(added)-1]
	if last.ID != "stage-final-qa" {
		t.Fatalf("unexpected stage id %q", last.ID)
	}
	if last.Tasks == nil || len(last.Tasks) != 0 {
		t.Fatalf("new stage should start with an empty task list: %#v", last.Tasks)
	}
}
