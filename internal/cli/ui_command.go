package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"video-dashboard/internal/library"
	"video-dashboard/internal/model"
	"video-dashboard/internal/statestore"
	"video-dashboard/internal/workflow"
)

type uiMode int

const (
	uiModeBrowse uiMode = iota
	uiModeForm
	uiModeDeleteConfirm
	uiModeSearch
)

type uiTab int

const (
	uiTabDrafts uiTab = iota
	uiTabPublished
)

type uiModel struct {
	lib    *library.Library
	saver  *statestore.Saver
	styles uiStyles

	tab        uiTab
	cursor     int
	taskCursor int
	width      int
	height     int
	mode       uiMode
	form       *videoForm

	search textinput.Model
	query  string

	confirmDeleteID    string
	confirmDeleteTitle string
	statusMessage      string
}

func runUI(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	state := addStateFlag(fs)
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !stdinIsTTY() {
		return errors.New("ui requires an interactive terminal (TTY)")
	}

	lib, path, err := loadLibrary(*state)
	if err != nil {
		return err
	}

	search := textinput.New()
	search.Prompt = "/"
	search.CharLimit = 128

	m := uiModel{
		lib:    lib,
		saver:  statestore.NewSaver(path, statestore.DefaultQuietInterval),
		styles: stylesForTheme(lib.Theme()),
		search: search,
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "tty") {
			return errors.New("ui requires an interactive terminal (TTY)")
		}
		return err
	}
	fm, ok := finalModel.(uiModel)
	if !ok {
		return nil
	}
	if err := fm.saver.Flush(); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (m uiModel) Init() tea.Cmd {
	return nil
}

// visible returns the videos under the current tab and search query.
func (m uiModel) visible() []model.Video {
	if m.tab == uiTabPublished {
		return m.lib.SearchPublished(m.query)
	}
	return m.groupedDrafts()
}

// groupedDrafts flattens the stage-grouped draft view so the cursor walks it
// in display order.
func (m uiModel) groupedDrafts() []model.Video {
	order, grouped := m.lib.DraftsByStage()
	q := strings.ToLower(strings.TrimSpace(m.query))
	out := make([]model.Video, 0, 16)
	for _, stage := range order {
		for _, v := range grouped[stage] {
			if q != "" && !strings.Contains(strings.ToLower(v.Title), q) {
				continue
			}
			out = append(out, v)
		}
	}
	return out
}

func (m uiModel) selected() (model.Video, bool) {
	videos := m.visible()
	if m.cursor < 0 || m.cursor >= len(videos) {
		return model.Video{}, false
	}
	return videos[m.cursor], true
}

// selectedTasks is the toggle target list: the checklist, plus the
// post-publication checklist on the published tab.
func (m uiModel) selectedTasks() []model.ChecklistItem {
	v, ok := m.selected()
	if !ok {
		return nil
	}
	tasks := append([]model.ChecklistItem(nil), v.Checklist...)
	if m.tab == uiTabPublished {
		tasks = append(tasks, v.PostPublicationChecklist...)
	}
	return tasks
}

func (m *uiModel) markDirty() {
	m.saver.Mark(m.lib.Data())
}

func (m *uiModel) clampCursor() {
	total := len(m.visible())
	if total == 0 {
		m.cursor = 0
		m.taskCursor = 0
		return
	}
	m.cursor = clampInt(m.cursor, 0, total-1)
	tasks := len(m.selectedTasks())
	if tasks == 0 {
		m.taskCursor = 0
	} else {
		m.taskCursor = clampInt(m.taskCursor, 0, tasks-1)
	}
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.form != nil {
			m.form.resize(m.width)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case uiModeBrowse:
		return m.updateBrowse(keyMsg)
	case uiModeForm:
		return m.updateForm(keyMsg)
	case uiModeDeleteConfirm:
		return m.updateDeleteConfirm(keyMsg)
	case uiModeSearch:
		return m.updateSearch(keyMsg)
	default:
		return m, nil
	}
}

func (m uiModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		if m.tab == uiTabDrafts {
			m.tab = uiTabPublished
		} else {
			m.tab = uiTabDrafts
		}
		m.cursor = 0
		m.taskCursor = 0
		m.statusMessage = ""
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.taskCursor = 0
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
			m.taskCursor = 0
		}
		return m, nil
	case "left", "h":
		if m.taskCursor > 0 {
			m.taskCursor--
		}
		return m, nil
	case "right", "l":
		if m.taskCursor < len(m.selectedTasks())-1 {
			m.taskCursor++
		}
		return m, nil
	case " ", "space":
		return m.toggleSelectedTask()
	case "enter", "e":
		v, ok := m.selected()
		if !ok {
			m.statusMessage = "nothing selected"
			return m, nil
		}
		m.mode = uiModeForm
		m.form = newVideoForm(v, false, m.width)
		m.statusMessage = ""
		return m, nil
	case "n":
		m.mode = uiModeForm
		m.form = newVideoForm(m.lib.NewDraft(), true, m.width)
		m.statusMessage = ""
		return m, nil
	case "d":
		v, ok := m.selected()
		if !ok {
			m.statusMessage = "select a video to delete"
			return m, nil
		}
		m.mode = uiModeDeleteConfirm
		m.confirmDeleteID = v.ID
		m.confirmDeleteTitle = v.Title
		return m, nil
	case "/":
		m.mode = uiModeSearch
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		m.search.Focus()
		return m, nil
	case "t":
		if m.lib.Theme() == model.ThemeDark {
			m.lib.SetTheme(model.ThemeLight)
		} else {
			m.lib.SetTheme(model.ThemeDark)
		}
		m.styles = stylesForTheme(m.lib.Theme())
		m.markDirty()
		m.statusMessage = "theme: " + m.lib.Theme()
		return m, nil
	}
	return m, nil
}

func (m uiModel) toggleSelectedTask() (tea.Model, tea.Cmd) {
	v, ok := m.selected()
	if !ok {
		return m, nil
	}
	tasks := m.selectedTasks()
	if len(tasks) == 0 {
		m.statusMessage = "no tasks on this video"
		return m, nil
	}
	task := tasks[clampInt(m.taskCursor, 0, len(tasks)-1)]

	if m.taskCursor >= len(v.Checklist) {
		// Beyond the checklist lies the post-publication list.
		if err := m.lib.SetPostPublicationTask(v.ID, task.Key, !task.Completed); err != nil {
			m.statusMessage = "error: " + err.Error()
			return m, nil
		}
		m.markDirty()
		m.statusMessage = fmt.Sprintf("%s: %s", task.Label, doneWord(!task.Completed))
		return m, nil
	}

	if workflow.IsReservedKey(task.Key) {
		m.statusMessage = fmt.Sprintf("%q follows the video fields; edit the video instead", task.Label)
		return m, nil
	}
	_, promoted, err := m.lib.SetTaskCompleted(v.ID, task.Key, !task.Completed)
	if err != nil {
		m.statusMessage = "error: " + err.Error()
		return m, nil
	}
	m.markDirty()
	if promoted {
		m.statusMessage = "published: " + v.Title
		m.clampCursor()
	} else {
		m.statusMessage = fmt.Sprintf("%s: %s", task.Label, doneWord(!task.Completed))
	}
	return m, nil
}

func (m uiModel) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "n":
		m.mode = uiModeBrowse
		m.confirmDeleteID = ""
		m.confirmDeleteTitle = ""
		m.statusMessage = "delete cancelled"
		return m, nil
	case "y", "enter":
		id := m.confirmDeleteID
		title := m.confirmDeleteTitle
		m.mode = uiModeBrowse
		m.confirmDeleteID = ""
		m.confirmDeleteTitle = ""
		if id == "" {
			m.statusMessage = "delete cancelled"
			return m, nil
		}
		if err := m.lib.Remove(id); err != nil {
			m.statusMessage = "error: " + err.Error()
			return m, nil
		}
		m.markDirty()
		m.clampCursor()
		m.statusMessage = "deleted: " + title
		return m, nil
	}
	return m, nil
}

func (m uiModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.mode = uiModeBrowse
		m.search.Blur()
		return m, nil
	case "enter":
		m.query = strings.TrimSpace(m.search.Value())
		m.mode = uiModeBrowse
		m.search.Blur()
		m.cursor = 0
		m.taskCursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m uiModel) View() string {
	if m.width <= 0 {
		m.width = 100
	}
	if m.height <= 0 {
		m.height = 30
	}

	switch m.mode {
	case uiModeForm:
		return m.viewForm()
	case uiModeDeleteConfirm:
		return m.viewDeleteConfirm()
	default:
		return m.viewBrowse()
	}
}

func (m uiModel) viewBrowse() string {
	tabs := "drafts | published"
	if m.tab == uiTabPublished {
		tabs = "drafts | " + m.styles.Selected.Render("published")
	} else {
		tabs = m.styles.Selected.Render("drafts") + " | published"
	}
	header := m.styles.Title.Render("video-dashboard") + "  " + tabs + "\n" +
		m.styles.Muted.Render("up/down: video | left/right: task | space: toggle | enter/e: edit | n: new | d: delete | /: search | tab: switch | t: theme | q: quit")

	if m.width < 90 {
		list := m.renderListPanel(m.width)
		details := m.renderDetailsPanel(m.width)
		body := lipgloss.JoinVertical(lipgloss.Left, list, details)
		return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderStatusLine(m.width))
	}

	leftW := clampInt(m.width/2, 34, 60)
	rightW := m.width - leftW - 1
	list := m.renderListPanel(leftW)
	details := m.renderDetailsPanel(rightW)
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, details)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderStatusLine(m.width))
}

func (m uiModel) renderListPanel(width int) string {
	videos := m.visible()
	maxRows := clampInt(m.height-12, 4, 20)
	start, end := listWindow(len(videos), m.cursor, maxRows)

	overdue := map[string]bool{}
	for _, v := range m.lib.OverdueDrafts(time.Now()) {
		overdue[v.ID] = true
	}
	stageOf := map[string]string{}
	if m.tab == uiTabDrafts {
		for _, v := range videos {
			stageOf[v.ID] = workflow.ClassifyStage(v, m.lib.Stages())
		}
	}

	lines := make([]string, 0, maxRows+4)
	if len(videos) == 0 {
		if m.query != "" {
			lines = append(lines, m.styles.Muted.Render("no matches for /"+m.query))
		} else if m.tab == uiTabDrafts {
			lines = append(lines, m.styles.Muted.Render("No drafts yet."))
			lines = append(lines, m.styles.Muted.Render("Press n to create one."))
		} else {
			lines = append(lines, m.styles.Muted.Render("Nothing published yet."))
		}
	}
	if start > 0 {
		lines = append(lines, m.styles.Muted.Render("..."))
	}
	prevStage := ""
	for i := start; i < end; i++ {
		v := videos[i]
		if m.tab == uiTabDrafts {
			if stage := stageOf[v.ID]; stage != prevStage {
				lines = append(lines, m.styles.Title.Render(stage))
				prevStage = stage
			}
		}
		done := completedCount(v.Checklist)
		line := fmt.Sprintf("%s (%d/%d)", v.Title, done, len(v.Checklist))
		if v.PostDate != "" {
			line += "  " + v.PostDate
		}
		line = truncateRunes(line, maxInt(width-6, 10))
		if i == m.cursor {
			line = m.styles.Selected.Width(maxInt(width-4, 6)).Render(line)
		} else if overdue[v.ID] {
			line = m.styles.Overdue.Render(line)
		}
		lines = append(lines, line)
	}
	if end < len(videos) {
		lines = append(lines, m.styles.Muted.Render("..."))
	}

	return m.styles.Panel.Width(width).Render(strings.Join(lines, "\n"))
}

func (m uiModel) renderDetailsPanel(width int) string {
	v, ok := m.selected()
	if !ok {
		return m.styles.Panel.Width(width).Render(m.styles.Muted.Render("Select a video."))
	}

	lines := []string{v.Title, ""}
	if v.VideoNumber > 0 {
		lines = append(lines, kv("number", fmt.Sprintf("%d", v.VideoNumber)))
	}
	lines = append(lines, kv("post_date", defaultIfEmpty(v.PostDate, "(unscheduled)")))
	if m.tab == uiTabDrafts {
		lines = append(lines, kv("stage", workflow.ClassifyStage(v, m.lib.Stages())))
	}
	lines = append(lines, kv("tags", defaultIfEmpty(firstLine(v.Tags), "(none)")))
	lines = append(lines, kv("thumbnail", yesNo(strings.TrimSpace(v.Thumbnail) != "")))
	lines = append(lines, kv("script", fmt.Sprintf("%d characters", len([]rune(v.Script)))))
	lines = append(lines, "")

	tasks := m.selectedTasks()
	for i, task := range tasks {
		if i == len(v.Checklist) {
			lines = append(lines, "", m.styles.Muted.Render("post-publication"))
		}
		mark := "[ ]"
		if task.Completed {
			mark = "[x]"
		}
		row := fmt.Sprintf("%s %s", mark, task.Label)
		if i < len(v.Checklist) && workflow.IsReservedKey(task.Key) {
			row += " *"
		}
		switch {
		case i == m.taskCursor:
			row = m.styles.Selected.Render(row)
		case task.Completed:
			row = m.styles.Done.Render(row)
		}
		lines = append(lines, row)
	}
	if len(tasks) > 0 {
		lines = append(lines, "", m.styles.Muted.Render("* follows the video fields"))
	}

	for i := range lines {
		lines[i] = wrapOrTrim(lines[i], maxInt(width-6, 12))
	}
	return m.styles.Panel.Width(width).Render(strings.Join(lines, "\n"))
}

func (m uiModel) renderStatusLine(width int) string {
	if m.mode == uiModeSearch {
		return m.search.View()
	}
	msg := strings.TrimSpace(m.statusMessage)
	if msg == "" {
		switch m.tab {
		case uiTabPublished:
			msg = "Tip: space toggles post-publication tasks too."
		default:
			msg = "Tip: derived tasks complete themselves when the fields are filled."
		}
		if m.query != "" {
			msg = fmt.Sprintf("filter: %q (press / then enter on empty to clear)", m.query)
		}
	}
	style := m.styles.Muted
	if strings.HasPrefix(strings.ToLower(msg), "error:") {
		style = m.styles.Error
	} else if strings.HasPrefix(strings.ToLower(msg), "published:") || strings.HasPrefix(strings.ToLower(msg), "saved") {
		style = m.styles.OK
	}
	return style.Width(width).Render(truncateRunes(msg, maxInt(width-2, 10)))
}

func (m uiModel) viewDeleteConfirm() string {
	text := fmt.Sprintf(
		"Delete '%s'?\n\nThis removes the video and its checklist.\n\nPress y or Enter to confirm, n or Esc to cancel.",
		m.confirmDeleteTitle,
	)
	boxW := clampInt(m.width-8, 36, 80)
	boxH := clampInt(m.height-6, 8, 12)
	panel := m.styles.Panel.Width(boxW).Height(boxH).Render(text)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
