package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"video-dashboard/internal/library"
	"video-dashboard/internal/model"
	"video-dashboard/internal/statestore"
	"video-dashboard/internal/workflow"
)

func testUIModel(t *testing.T, drafts ...model.Video) uiModel {
	t.Helper()
	data := model.DefaultAppData()
	data.Drafts = drafts
	lib := library.New(data)
	search := textinput.New()
	search.Prompt = "/"
	return uiModel{
		lib:    lib,
		saver:  statestore.NewSaver(filepath.Join(t.TempDir(), "dashboard.json"), time.Hour),
		styles: stylesForTheme(lib.Theme()),
		search: search,
		width:  100,
		height: 30,
	}
}

func uncheckedDraft(id string) model.Video {
	return model.Video{
		ID:        id,
		Title:     "5 Fryers",
		Checklist: workflow.Reconcile(model.DefaultStages(), nil),
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUIToggleDerivedTaskRefused(t *testing.T) {
	m := testUIModel(t, uncheckedDraft("v1"))

	// Task cursor starts on productType, which is rule-governed.
	model2, _ := m.updateBrowse(tea.KeyMsg{Type: tea.KeySpace})
	m2 := model2.(uiModel)
	if !strings.Contains(m2.statusMessage, "follows the video fields") {
		t.Fatalf("expected a refusal message, got %q", m2.statusMessage)
	}
	v, _ := m2.lib.Get("v1")
	if v.Checklist[0].Completed {
		t.Fatal("derived task must not toggle")
	}
}

func TestUIToggleManualTask(t *testing.T) {
	m := testUIModel(t, uncheckedDraft("v1"))

	// Walk the task cursor to productImages, the first manual task.
	for i := 0; i < 4; i++ {
		model2, _ := m.updateBrowse(tea.KeyMsg{Type: tea.KeyRight})
		m = model2.(uiModel)
	}
	model2, _ := m.updateBrowse(tea.KeyMsg{Type: tea.KeySpace})
	m2 := model2.(uiModel)

	v, _ := m2.lib.Get("v1")
	done := false
	for _, item := range v.Checklist {
		if item.Key == "productImages" {
			done = item.Completed
		}
	}
	if !done {
		t.Fatalf("productImages should be complete, status %q", m2.statusMessage)
	}
}

func TestUIDeleteConfirmFlow(t *testing.T) {
	m := testUIModel(t, uncheckedDraft("v1"))

	model2, _ := m.updateBrowse(keyRunes("d"))
	m2 := model2.(uiModel)
	if m2.mode != uiModeDeleteConfirm {
		t.Fatalf("expected delete confirm mode, got %d", m2.mode)
	}

	model3, _ := m2.updateDeleteConfirm(keyRunes("n"))
	m3 := model3.(uiModel)
	if m3.mode != uiModeBrowse {
		t.Fatal("n should cancel")
	}
	if len(m3.lib.Drafts()) != 1 {
		t.Fatal("cancel must not delete")
	}

	model4, _ := m3.updateBrowse(keyRunes("d"))
	model5, _ := model4.(uiModel).updateDeleteConfirm(keyRunes("y"))
	m5 := model5.(uiModel)
	if len(m5.lib.Drafts()) != 0 {
		t.Fatal("y should delete the draft")
	}
}

func TestUIFormSaveRunsEditPipeline(t *testing.T) {
	m := testUIModel(t, uncheckedDraft("v1"))

	model2, _ := m.updateBrowse(keyRunes("e"))
	m2 := model2.(uiModel)
	if m2.mode != uiModeForm || m2.form == nil {
		t.Fatal("expected the edit form")
	}

	for i := range m2.form.Fields {
		if m2.form.Fields[i].Key == "tags" {
			m2.form.Fields[i].Value = "air fryer, cozinha"
		}
	}
	model3, _ := m2.updateForm(tea.KeyMsg{Type: tea.KeyCtrlS})
	m3 := model3.(uiModel)
	if m3.mode != uiModeBrowse {
		t.Fatalf("expected browse mode after save, form error %q", errOf(m3.form))
	}
	v, _ := m3.lib.Get("v1")
	for _, item := range v.Checklist {
		if item.Key == "tags" && !item.Completed {
			t.Fatal("tags task should derive complete after the save")
		}
	}
}

func errOf(f *videoForm) string {
	if f == nil {
		return ""
	}
	return f.Error
}

func TestUIThemeToggle(t *testing.T) {
	m := testUIModel(t)
	model2, _ := m.updateBrowse(keyRunes("t"))
	m2 := model2.(uiModel)
	if m2.lib.Theme() != model.ThemeLight {
		t.Fatalf("expected light theme, got %q", m2.lib.Theme())
	}
	model3, _ := m2.updateBrowse(keyRunes("t"))
	m3 := model3.(uiModel)
	if m3.lib.Theme() != model.ThemeDark {
		t.Fatalf("expected dark theme, got %q", m3.lib.Theme())
	}
}

func TestUISearchFiltersList(t *testing.T) {
	a := uncheckedDraft("v1")
	a.Title = "air fryer review"
	b := uncheckedDraft("v2")
	b.Title = "geladeira review"
	m := testUIModel(t, a, b)

	model2, _ := m.updateBrowse(keyRunes("/"))
	m2 := model2.(uiModel)
	if m2.mode != uiModeSearch {
		t.Fatal("expected search mode")
	}
	m2.search.SetValue("fryer")
	model3, _ := m2.updateSearch(tea.KeyMsg{Type: tea.KeyEnter})
	m3 := model3.(uiModel)
	got := m3.visible()
	if len(got) != 1 || got[0].ID != "v1" {
		t.Fatalf("expected only the matching draft, got %#v", got)
	}
}
