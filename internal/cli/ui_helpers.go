package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"video-dashboard/internal/model"
)

// Styles shared by the plain list command and used as the dark palette of the
// interactive UI.
var (
	stageHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	overdueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

type uiStyles struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	OK       lipgloss.Style
	Panel    lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Overdue  lipgloss.Style
}

func stylesForTheme(theme string) uiStyles {
	if theme == model.ThemeLight {
		return uiStyles{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("90")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
			OK:       lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
			Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("97")).Bold(true),
			Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			Overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
		}
	}
	return uiStyles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		OK:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}

func kv(k, v string) string {
	return fmt.Sprintf("%s: %s", k, v)
}

func listWindow(total, cursor, maxRows int) (int, int) {
	if total <= maxRows {
		return 0, total
	}
	half := maxRows / 2
	start := cursor - half
	if start < 0 {
		start = 0
	}
	end := start + maxRows
	if end > total {
		end = total
		start = end - maxRows
	}
	return start, end
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

func wrapOrTrim(s string, width int) string {
	if width <= 0 {
		return s
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncateRunes(s, width)
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func completedCount(items []model.ChecklistItem) int {
	n := 0
	for _, item := range items {
		if item.Completed {
			n++
		}
	}
	return n
}

func defaultIfEmpty(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
