// Package statestore persists the dashboard state document as a single JSON
// file with atomic writes, and batches rapid edits through a debounced saver.
package statestore

import (
	"errors"
	"os"
	"strings"

	"video-dashboard/internal/model"
	"video-dashboard/internal/workflow"
)

const DefaultStatePath = "config/dashboard.json"

func NormalizePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return DefaultStatePath
	}
	return p
}

// Load reads the state document. A missing file yields the built-in defaults;
// anything else unreadable is an error. Loaded videos are reconciled against
// the loaded stages config so a state file written by an older template still
// comes up with checklists in canonical shape, and videos promoted before the
// post-publication checklist existed receive the default one.
func Load(path string) (model.AppData, error) {
	path = NormalizePath(path)

	var data model.AppData
	if err := ReadJSON(path, &data); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultAppData(), nil
		}
		return model.AppData{}, err
	}

	if data.Drafts == nil {
		data.Drafts = []model.Video{}
	}
	if data.PublishedVideos == nil {
		data.PublishedVideos = []model.Video{}
	}
	if len(data.StagesConfig) == 0 {
		data.StagesConfig = model.DefaultStages()
	}
	data.Theme = model.NormalizeTheme(data.Theme)

	if err := workflow.ValidateStages(data.StagesConfig); err != nil {
		return model.AppData{}, err
	}
	for i := range data.Drafts {
		data.Drafts[i].Checklist = workflow.Reconcile(data.StagesConfig, data.Drafts[i].Checklist)
	}
	for i := range data.PublishedVideos {
		data.PublishedVideos[i].Checklist = workflow.Reconcile(data.StagesConfig, data.PublishedVideos[i].Checklist)
		if len(data.PublishedVideos[i].PostPublicationChecklist) == 0 {
			data.PublishedVideos[i].PostPublicationChecklist = model.DefaultPostPublicationChecklist()
		}
	}
	return data, nil
}

func Save(path string, data model.AppData) error {
	return WriteJSON(NormalizePath(path), data)
}
