package workflow

import (
	"errors"
	"fmt"
	"strings"

	"video-dashboard/internal/model"
)

var (
	ErrStageNotFound       = errors.New("stage not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrDuplicateTaskKey    = errors.New("duplicate task key")
	ErrReservedTaskKey     = errors.New("task key is reserved for a derived rule")
	ErrStageNameRequired   = errors.New("stage name is required")
	ErrTaskLabelRequired   = errors.New("task label is required")
	ErrStageAtListBoundary = errors.New("stage is already at the list boundary")
	ErrTaskAtListBoundary  = errors.New("task is already at the list boundary")
)

// ValidateStages rejects stages configs that would make reconciliation
// ambiguous: duplicate stage IDs or a task key owned by more than one stage.
// Inconsistent templates are refused at the edit/load boundary instead of
// being interpreted at reconcile time.
func ValidateStages(stages []model.Stage) error {
	stageIDs := make(map[string]bool, len(stages))
	taskKeys := make(map[string]bool, 16)
	for _, stage := range stages {
		if strings.TrimSpace(stage.ID) == "" {
			return fmt.Errorf("stage %q has an empty id", stage.Name)
		}
		if stageIDs[stage.ID] {
			return fmt.Errorf("duplicate stage id %q", stage.ID)
		}
		stageIDs[stage.ID] = true
		for _, task := range stage.Tasks {
			if strings.TrimSpace(task.Key) == "" {
				return fmt.Errorf("stage %q has a task with an empty key", stage.Name)
			}
			if taskKeys[task.Key] {
				return fmt.Errorf("%w: %q", ErrDuplicateTaskKey, task.Key)
			}
			taskKeys[task.Key] = true
		}
	}
	return nil
}

func cloneStages(stages []model.Stage) []model.Stage {
	out := make([]model.Stage, len(stages))
	for i, stage := range stages {
		out[i] = stage
		out[i].Tasks = append([]model.TaskTemplate(nil), stage.Tasks...)
	}
	return out
}

func AddStage(stages []model.Stage, name string) ([]model.Stage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrStageNameRequired
	}
	out := cloneStages(stages)
	existing := make(map[string]bool, len(out))
	for _, stage := range out {
		existing[stage.ID] = true
	}
	out = append(out, model.Stage{
		ID:    uniqueSlug("stage", name, existing),
		Name:  name,
		Tasks: []model.TaskTemplate{},
	})
	return out, nil
}

func RemoveStage(stages []model.Stage, stageID string) ([]model.Stage, error) {
	out := cloneStages(stages)
	for i, stage := range out {
		if stage.ID == stageID {
			return append(out[:i], out[i+1:]...), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrStageNotFound, stageID)
}

func RenameStage(stages []model.Stage, stageID, name string) ([]model.Stage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrStageNameRequired
	}
	out := cloneStages(stages)
	for i := range out {
		if out[i].ID == stageID {
			out[i].Name = name
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrStageNotFound, stageID)
}

// MoveStage shifts a stage one position. delta must be -1 (up) or +1 (down).
func MoveStage(stages []model.Stage, stageID string, delta int) ([]model.Stage, error) {
	if delta != -1 && delta != 1 {
		return nil, fmt.Errorf("move delta must be -1 or +1, got %d", delta)
	}
	out := cloneStages(stages)
	for i := range out {
		if out[i].ID != stageID {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(out) {
			return nil, ErrStageAtListBoundary
		}
		out[i], out[j] = out[j], out[i]
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrStageNotFound, stageID)
}

// AddTask appends a custom task to a stage. The key is derived from the label
// ("custom-<slug>", made unique) so it stays stable under later renames.
// Reserved derivation keys can never be claimed by custom tasks.
func AddTask(stages []model.Stage, stageID, label string) ([]model.Stage, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrTaskLabelRequired
	}
	out := cloneStages(stages)
	existing := make(map[string]bool, 16)
	for _, stage := range out {
		for _, task := range stage.Tasks {
			existing[task.Key] = true
		}
	}
	key := uniqueSlug("custom", label, existing)
	if IsReservedKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrReservedTaskKey, key)
	}
	for i := range out {
		if out[i].ID == stageID {
			out[i].Tasks = append(out[i].Tasks, model.TaskTemplate{Key: key, Label: label})
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrStageNotFound, stageID)
}

func RemoveTask(stages []model.Stage, key string) ([]model.Stage, error) {
	out := cloneStages(stages)
	for i := range out {
		for j, task := range out[i].Tasks {
			if task.Key == key {
				out[i].Tasks = append(out[i].Tasks[:j], out[i].Tasks[j+1:]...)
				return out, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTaskNotFound, key)
}

// RenameTask changes a task's label only; keys are immutable so completion
// flags on existing checklists survive the rename.
func RenameTask(stages []model.Stage, key, label string) ([]model.Stage, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrTaskLabelRequired
	}
	out := cloneStages(stages)
	for i := range out {
		for j := range out[i].Tasks {
			if out[i].Tasks[j].Key == key {
				out[i].Tasks[j].Label = label
				return out, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTaskNotFound, key)
}

// MoveTaskWithinStage shifts a task one position inside its owning stage.
func MoveTaskWithinStage(stages []model.Stage, key string, delta int) ([]model.Stage, error) {
	if delta != -1 && delta != 1 {
		return nil, fmt.Errorf("move delta must be -1 or +1, got %d", delta)
	}
	out := cloneStages(stages)
	for i := range out {
		for j, task := range out[i].Tasks {
			if task.Key != key {
				continue
			}
			k := j + delta
			if k < 0 || k >= len(out[i].Tasks) {
				return nil, ErrTaskAtListBoundary
			}
			out[i].Tasks[j], out[i].Tasks[k] = out[i].Tasks[k], out[i].Tasks[j]
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTaskNotFound, key)
}

// MoveTaskToStage moves a task to the end of another stage. Single ownership
// is preserved by construction: remove from source, then append to the
// destination.
func MoveTaskToStage(stages []model.Stage, key, destStageID string) ([]model.Stage, error) {
	out := cloneStages(stages)
	var moved *model.TaskTemplate
	for i := range out {
		for j, task := range out[i].Tasks {
			if task.Key == key {
				t := task
				moved = &t
				out[i].Tasks = append(out[i].Tasks[:j], out[i].Tasks[j+1:]...)
				break
			}
		}
		if moved != nil {
			break
		}
	}
	if moved == nil {
		return nil, fmt.Errorf("%w: %q", ErrTaskNotFound, key)
	}
	for i := range out {
		if out[i].ID == destStageID {
			out[i].Tasks = append(out[i].Tasks, *moved)
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrStageNotFound, destStageID)
}

// uniqueSlug builds "<prefix>-<slug-of-text>" and suffixes a counter until the
// result is absent from taken.
func uniqueSlug(prefix, text string, taken map[string]bool) string {
	slug := slugify(text)
	if slug == "" {
		slug = prefix
	}
	base := prefix + "-" + slug
	if !taken[base] {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !taken[candidate] {
			return candidate
		}
	}
}

func slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	var b strings.Builder
	prevDash := false
	for _, r := range s {
		isAlphaNum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlphaNum {
			b.WriteRune(r)
			prevDash = false
			continue
		}
		if !prevDash {
			b.WriteRune('-')
			prevDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
