package workflow

import "video-dashboard/internal/model"

// FinishedStageName is returned when the stages config is empty.
const FinishedStageName = "Finished"

// ClassifyStage names the first stage whose tasks are not all complete on the
// video's checklist. A video that has cleared every stage stays in the last
// stage by name.
func ClassifyStage(v model.Video, stages []model.Stage) string {
	completed := make(map[string]bool, len(v.Checklist))
	for _, item := range v.Checklist {
		completed[item.Key] = item.Completed
	}

	for _, stage := range stages {
		for _, task := range stage.Tasks {
			if !completed[task.Key] {
				return stage.Name
			}
		}
	}
	if len(stages) == 0 {
		return FinishedStageName
	}
	return stages[len(stages)-1].Name
}

// ChecklistComplete reports whether every entry across all stages is done.
// Videos with no checklist at all are never considered complete; an item that
// lost its checklist is malformed and must not be silently promoted.
func ChecklistComplete(v model.Video) bool {
	if len(v.Checklist) == 0 {
		return false
	}
	for _, item := range v.Checklist {
		if !item.Completed {
			return false
		}
	}
	return true
}
