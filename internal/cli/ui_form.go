package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"video-dashboard/internal/model"
)

type videoFormField struct {
	Key   string
	Label string
	Help  string
	Value string
	IsInt bool
}

// videoForm edits one video's fields. The checklist itself is never edited
// here; derivation and reconciliation rebuild it on save.
type videoForm struct {
	Base  model.Video
	IsNew bool
	Title string

	Fields []videoFormField
	Index  int
	Input  textinput.Model
	Error  string
}

func newVideoForm(v model.Video, isNew bool, width int) *videoForm {
	f := &videoForm{Base: v, IsNew: isNew}
	if isNew {
		f.Title = "New Draft"
	} else {
		f.Title = "Edit: " + v.Title
	}
	f.Fields = []videoFormField{
		{Key: "title", Label: "Title", Help: "The number prefix tracks the product count", Value: v.Title},
		{Key: "number", Label: "Video Number", Help: "0 leaves the video unnumbered", Value: strconv.Itoa(v.VideoNumber), IsInt: true},
		{Key: "post_date", Label: "Post Date", Help: "YYYY-MM-DD; empty means unscheduled", Value: v.PostDate},
		{Key: "description", Label: "Description", Value: v.Description},
		{Key: "tags", Label: "Tags", Help: "Free text; filling it completes the tags task", Value: v.Tags},
		{Key: "thumbnail", Label: "Thumbnail", Help: "Path or URL", Value: v.Thumbnail},
		{Key: "chapters", Label: "Chapters", Value: v.Chapters},
		{Key: "script", Label: "Script", Help: "Paste the full script; srt generates subtitles from it", Value: v.Script},
	}

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0
	input.Width = clampInt(width-8, 20, 120)
	f.Input = input
	f.loadFieldIntoInput()
	f.Input.Focus()
	return f
}

func (f *videoForm) resize(width int) {
	f.Input.Width = clampInt(width-8, 20, 120)
}

func (f *videoForm) currentField() videoFormField {
	if len(f.Fields) == 0 {
		return videoFormField{}
	}
	f.Index = clampInt(f.Index, 0, len(f.Fields)-1)
	return f.Fields[f.Index]
}

func (f *videoForm) commitInput() {
	if f == nil || len(f.Fields) == 0 {
		return
	}
	f.Fields[f.Index].Value = f.Input.Value()
}

func (f *videoForm) loadFieldIntoInput() {
	if f == nil || len(f.Fields) == 0 {
		return
	}
	f.Input.SetValue(f.Fields[f.Index].Value)
	f.Input.CursorEnd()
}

// toVideo applies the field values on top of the base video.
func (f *videoForm) toVideo() (model.Video, error) {
	v := f.Base
	vals := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		val := field.Value
		if field.IsInt {
			val = strings.TrimSpace(val)
			if val == "" {
				val = "0"
			}
			if n, err := strconv.Atoi(val); err != nil || n < 0 {
				return model.Video{}, fmt.Errorf("%s must be an integer >= 0", strings.ToLower(field.Label))
			}
		}
		vals[field.Key] = val
	}

	if d := strings.TrimSpace(vals["post_date"]); d != "" {
		if _, err := time.Parse(model.PostDateLayout, d); err != nil {
			return model.Video{}, fmt.Errorf("post date must be YYYY-MM-DD")
		}
	}

	v.Title = vals["title"]
	v.PostDate = strings.TrimSpace(vals["post_date"])
	v.Description = vals["description"]
	v.Tags = vals["tags"]
	v.Thumbnail = vals["thumbnail"]
	v.Chapters = vals["chapters"]
	v.Script = vals["script"]

	number, _ := strconv.Atoi(strings.TrimSpace(defaultIfEmpty(vals["number"], "0")))
	v.VideoNumber = number
	return v, nil
}

func (m uiModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = uiModeBrowse
		return m, nil
	}

	key := msg.String()
	switch key {
	case "ctrl+c", "esc":
		m.mode = uiModeBrowse
		m.form = nil
		m.statusMessage = "edit cancelled"
		return m, nil
	case "up", "shift+tab":
		m.form.commitInput()
		if m.form.Index > 0 {
			m.form.Index--
		}
		m.form.loadFieldIntoInput()
		return m, nil
	case "down", "tab":
		m.form.commitInput()
		if m.form.Index < len(m.form.Fields)-1 {
			m.form.Index++
		}
		m.form.loadFieldIntoInput()
		return m, nil
	case "enter", "ctrl+s":
		m.form.commitInput()
		if key == "enter" && m.form.Index < len(m.form.Fields)-1 {
			m.form.Index++
			m.form.loadFieldIntoInput()
			return m, nil
		}
		v, err := m.form.toVideo()
		if err != nil {
			m.form.Error = err.Error()
			return m, nil
		}
		stored, promoted, err := m.lib.SaveEdited(v)
		if err != nil {
			m.form.Error = err.Error()
			return m, nil
		}
		m.mode = uiModeBrowse
		m.form = nil
		m.markDirty()
		m.clampCursor()
		if promoted {
			m.statusMessage = "published: " + stored.Title
		} else {
			m.statusMessage = "saved: " + stored.Title
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form.Input, cmd = m.form.Input.Update(msg)
	m.form.Fields[m.form.Index].Value = m.form.Input.Value()
	return m, cmd
}

func (m uiModel) viewForm() string {
	if m.form == nil {
		return ""
	}
	header := m.styles.Title.Render(m.form.Title)
	hints := m.styles.Muted.Render("tab/shift+tab or up/down: move | enter: next/save | ctrl+s: save | esc: cancel")

	lines := make([]string, 0, len(m.form.Fields)+6)
	for i, f := range m.form.Fields {
		prefix := "  "
		if i == m.form.Index {
			prefix = "> "
		}
		display := firstLine(strings.TrimSpace(f.Value))
		if display == "" {
			display = m.styles.Muted.Render("(empty)")
		}
		line := fmt.Sprintf("%s%s: %s", prefix, f.Label, display)
		lines = append(lines, wrapOrTrim(line, maxInt(m.width-6, 20)))
	}

	curr := m.form.currentField()
	inputLabel := fmt.Sprintf("\n%s\n", curr.Label)
	inputHelp := ""
	if strings.TrimSpace(curr.Help) != "" {
		inputHelp = m.styles.Muted.Render(curr.Help) + "\n"
	}
	status := ""
	if strings.TrimSpace(m.form.Error) != "" {
		status = "\n" + m.styles.Error.Render(m.form.Error)
	}

	panel := m.styles.Panel.Width(maxInt(m.width, 40)).Render(strings.Join(lines, "\n") + inputLabel + inputHelp + m.form.Input.View() + status)
	return lipgloss.JoinVertical(lipgloss.Left, header, hints, panel)
}
