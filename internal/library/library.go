// Package library owns the two video collections (drafts and published) and
// runs the edit pipeline: reconcile -> derive -> upsert -> promote. All
// methods are synchronous; callers persist the resulting snapshot themselves.
package library

import (
	"errors"
	"fmt"

	"video-dashboard/internal/logging"
	"video-dashboard/internal/model"
	"video-dashboard/internal/workflow"

	"github.com/rs/zerolog"
)

var (
	ErrNotFound    = errors.New("video not found")
	ErrDerivedTask = errors.New("task completion is derived from video fields and cannot be toggled")
)

type Library struct {
	data model.AppData
	log  zerolog.Logger
}

func New(data model.AppData) *Library {
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
	return &Library{
		data: data,
		log:  logging.Component("library"),
	}
}

// Data returns the current state snapshot in the persisted document shape.
func (l *Library) Data() model.AppData {
	out := l.data
	out.Drafts = append([]model.Video(nil), l.data.Drafts...)
	out.PublishedVideos = append([]model.Video(nil), l.data.PublishedVideos...)
	out.StagesConfig = append([]model.Stage(nil), l.data.StagesConfig...)
	return out
}

func (l *Library) Stages() []model.Stage {
	return append([]model.Stage(nil), l.data.StagesConfig...)
}

func (l *Library) Theme() string {
	return l.data.Theme
}

func (l *Library) SetTheme(theme string) {
	l.data.Theme = model.NormalizeTheme(theme)
}

func (l *Library) Drafts() []model.Video {
	return append([]model.Video(nil), l.data.Drafts...)
}

func (l *Library) Published() []model.Video {
	return append([]model.Video(nil), l.data.PublishedVideos...)
}

func (l *Library) Get(id string) (model.Video, bool) {
	for _, v := range l.data.Drafts {
		if v.ID == id {
			return v, true
		}
	}
	for _, v := range l.data.PublishedVideos {
		if v.ID == id {
			return v, true
		}
	}
	return model.Video{}, false
}

func (l *Library) IsPublished(id string) bool {
	for _, v := range l.data.PublishedVideos {
		if v.ID == id {
			return true
		}
	}
	return false
}

// Remove deletes a video from whichever collection holds it.
func (l *Library) Remove(id string) error {
	for i, v := range l.data.Drafts {
		if v.ID == id {
			l.data.Drafts = append(l.data.Drafts[:i], l.data.Drafts[i+1:]...)
			return nil
		}
	}
	for i, v := range l.data.PublishedVideos {
		if v.ID == id {
			l.data.PublishedVideos = append(l.data.PublishedVideos[:i], l.data.PublishedVideos[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// NewDraft builds a fresh draft with the library's defaults applied: next
// video number, suggested post date, and a derived checklist.
func (l *Library) NewDraft() model.Video {
	v := model.NewDraft(l.data.StagesConfig, l.DefaultPostDate(), l.NextVideoNumber())
	v.Checklist = workflow.Derive(v)
	return v
}

// SaveEdited runs the edit pipeline for one video and stores the result. A
// video with an unknown ID is inserted at the front of drafts. Returns the
// stored video and whether the save promoted it out of drafts.
func (l *Library) SaveEdited(v model.Video) (model.Video, bool, error) {
	if v.ID == "" {
		v.ID = model.NewID()
	}
	v.Checklist = workflow.Reconcile(l.data.StagesConfig, v.Checklist)
	if derived := workflow.Derive(v); !workflow.ChecklistsEqual(derived, v.Checklist) {
		v.Checklist = derived
	}

	if l.IsPublished(v.ID) {
		for i := range l.data.PublishedVideos {
			if l.data.PublishedVideos[i].ID == v.ID {
				l.data.PublishedVideos[i] = v
			}
		}
		return v, false, nil
	}

	replaced := false
	for i := range l.data.Drafts {
		if l.data.Drafts[i].ID == v.ID {
			l.data.Drafts[i] = v
			replaced = true
			break
		}
	}
	if !replaced {
		l.data.Drafts = append([]model.Video{v}, l.data.Drafts...)
	}

	promoted := l.PromoteEligible()
	for _, p := range promoted {
		if p.ID == v.ID {
			return p, true, nil
		}
	}
	stored, _ := l.Get(v.ID)
	return stored, false, nil
}

// SetTaskCompleted toggles an operator-controlled checklist entry. Entries
// governed by a derivation rule are refused; their state belongs to the rule.
func (l *Library) SetTaskCompleted(id, key string, completed bool) (model.Video, bool, error) {
	if workflow.IsReservedKey(key) {
		return model.Video{}, false, fmt.Errorf("%w: %q", ErrDerivedTask, key)
	}
	v, ok := l.Get(id)
	if !ok {
		return model.Video{}, false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	found := false
	checklist := append([]model.ChecklistItem(nil), v.Checklist...)
	for i := range checklist {
		if checklist[i].Key == key {
			checklist[i].Completed = completed
			found = true
		}
	}
	if !found {
		return model.Video{}, false, fmt.Errorf("task %q is not on the checklist of %s", key, id)
	}
	v.Checklist = checklist
	return l.SaveEdited(v)
}

// SetPostPublicationTask toggles an entry on a published video's
// post-publication checklist. These are always operator-controlled.
func (l *Library) SetPostPublicationTask(id, key string, completed bool) error {
	for i := range l.data.PublishedVideos {
		if l.data.PublishedVideos[i].ID != id {
			continue
		}
		items := append([]model.ChecklistItem(nil), l.data.PublishedVideos[i].PostPublicationChecklist...)
		for j := range items {
			if items[j].Key == key {
				items[j].Completed = completed
				l.data.PublishedVideos[i].PostPublicationChecklist = items
				return nil
			}
		}
		return fmt.Errorf("post-publication task %q not found on %s", key, id)
	}
	return fmt.Errorf("%w: %s (not published)", ErrNotFound, id)
}

// ApplyStages replaces the stages config and reconciles every video in both
// collections against it, re-deriving rule-governed entries, then promotes
// any draft the new template leaves fully complete.
func (l *Library) ApplyStages(stages []model.Stage) error {
	if err := workflow.ValidateStages(stages); err != nil {
		return err
	}
	l.data.StagesConfig = append([]model.Stage(nil), stages...)
	for i := range l.data.Drafts {
		l.data.Drafts[i].Checklist = workflow.Reconcile(stages, l.data.Drafts[i].Checklist)
		l.data.Drafts[i].Checklist = workflow.Derive(l.data.Drafts[i])
	}
	for i := range l.data.PublishedVideos {
		l.data.PublishedVideos[i].Checklist = workflow.Reconcile(stages, l.data.PublishedVideos[i].Checklist)
		l.data.PublishedVideos[i].Checklist = workflow.Derive(l.data.PublishedVideos[i])
	}
	l.PromoteEligible()
	return nil
}

// PromoteEligible moves every fully-completed draft to the front of the
// published collection, assigning the default post-publication checklist.
// It iterates a stable snapshot of the eligible IDs, is a no-op for videos
// already published, and never fails: a malformed draft (no checklist) is
// simply left where it is.
func (l *Library) PromoteEligible() []model.Video {
	eligible := make([]string, 0, 2)
	for _, v := range l.data.Drafts {
		if workflow.ChecklistComplete(v) {
			eligible = append(eligible, v.ID)
		}
	}

	promoted := make([]model.Video, 0, len(eligible))
	for _, id := range eligible {
		for i, v := range l.data.Drafts {
			if v.ID != id {
				continue
			}
			l.data.Drafts = append(l.data.Drafts[:i], l.data.Drafts[i+1:]...)
			v.PostPublicationChecklist = model.DefaultPostPublicationChecklist()
			l.data.PublishedVideos = append([]model.Video{v}, l.data.PublishedVideos...)
			promoted = append(promoted, v)
			l.log.Debug().Str("id", v.ID).Str("title", v.Title).Msg("draft promoted to published")
			break
		}
	}
	return promoted
}
