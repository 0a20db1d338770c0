// Package workflow implements the checklist state engine: template
// reconciliation, derived task completion, stage classification, and the edit
// operations on the stages config itself.
package workflow

import "video-dashboard/internal/model"

// FlattenTasks returns the template's tasks in stage order then task order.
// This flatten order is the canonical checklist order everywhere.
func FlattenTasks(stages []model.Stage) []model.TaskTemplate {
	out := make([]model.TaskTemplate, 0, 16)
	for _, stage := range stages {
		out = append(out, stage.Tasks...)
	}
	return out
}

// Reconcile rebuilds a checklist against the current stages config. It is a
// total replacement, not a merge: stale keys are dropped, new keys start
// incomplete, labels always mirror the template, and the output order equals
// the template flatten order. Completion flags survive by key. Inputs are
// never mutated.
func Reconcile(stages []model.Stage, existing []model.ChecklistItem) []model.ChecklistItem {
	completed := make(map[string]bool, len(existing))
	for _, item := range existing {
		completed[item.Key] = item.Completed
	}

	tasks := FlattenTasks(stages)
	out := make([]model.ChecklistItem, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, model.ChecklistItem{
			Key:       task.Key,
			Label:     task.Label,
			Completed: completed[task.Key],
		})
	}
	return out
}

// ChecklistsEqual reports value equality over the full ordered sequence. The
// edit pipeline uses it to skip redundant checklist writebacks.
func ChecklistsEqual(a, b []model.ChecklistItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
