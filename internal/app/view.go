package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/windsurf-recent/internal/recent"
	"github.com/marcus/windsurf-recent/internal/styles"
	"github.com/mattn/go-runewidth"
)

const (
	headerHeight = 2
	footerHeight = 1
)

// View renders the entire picker UI.
func (m Model) View() string {
	if !m.ready || m.loading {
		return styles.Muted.Render("Loading recent projects...")
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	vis := m.visible()
	if len(vis) == 0 {
		b.WriteString(m.renderEmpty())
	} else {
		b.WriteString(m.renderList(vis))
	}

	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	return b.String()
}

// renderHeader renders the title bar and, while filtering, the filter input.
func (m Model) renderHeader() string {
	title := styles.Header.Render(" Windsurf Recent Projects ")

	count := styles.Muted.Render(fmt.Sprintf("%d project(s)", len(m.visible())))

	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(count)
	if spacing < 1 {
		spacing = 1
	}
	line := title + strings.Repeat(" ", spacing) + count

	if m.filtering || m.filter.Value() != "" {
		return line + "\n" + m.filter.View()
	}
	return line + "\n"
}

// renderEmpty renders the fixed empty-state view.
func (m Model) renderEmpty() string {
	var sb strings.Builder
	sb.WriteString("\n")
	if m.filter.Value() != "" {
		sb.WriteString(styles.Muted.Render("  No projects match the filter."))
		sb.WriteString("\n\n")
		sb.WriteString(styles.Muted.Render("  Press "))
		sb.WriteString(styles.KeyHint.Render("esc"))
		sb.WriteString(styles.Muted.Render(" to clear it"))
		return sb.String()
	}
	sb.WriteString(styles.Title.Render("  No recent projects"))
	sb.WriteString("\n\n")
	sb.WriteString(styles.Muted.Render("  Open a folder in Windsurf and it will show up here."))
	return sb.String()
}

// renderList renders one row per visible project in extraction order.
func (m Model) renderList(vis []recent.Project) string {
	var sb strings.Builder

	rows := m.visibleRows()
	for i := m.scroll; i < len(vis) && i < m.scroll+rows; i++ {
		p := vis[i]
		isSelected := i == m.cursor

		prefix := "  "
		if isSelected {
			prefix = styles.Title.Render("> ")
		}

		name := displayName(p)
		path := abbreviateHome(p.Path)

		maxPath := m.width - lipgloss.Width(prefix) - runewidth.StringWidth(name) - 3
		if maxPath < 0 {
			maxPath = 0
		}
		path = runewidth.Truncate(path, maxPath, "…")

		var line string
		if isSelected {
			line = prefix + styles.Selected.Render(name) + "  " + styles.Muted.Render(path)
		} else {
			line = prefix + name + "  " + styles.Muted.Render(path)
		}
		sb.WriteString(line)
		if i < len(vis)-1 && i < m.scroll+rows-1 {
			sb.WriteString("\n")
		}
	}

	remaining := len(vis) - (m.scroll + rows)
	if remaining > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Muted.Render(fmt.Sprintf("  ↓ %d more below", remaining)))
	}

	return sb.String()
}

// renderFooter renders key hints and the toast, if any.
func (m Model) renderFooter() string {
	hints := styles.KeyHint.Render("enter") + styles.Footer.Render(" open  ") +
		styles.KeyHint.Render("c") + styles.Footer.Render(" copy path  ") +
		styles.KeyHint.Render("/") + styles.Footer.Render(" filter  ") +
		styles.KeyHint.Render("q") + styles.Footer.Render(" quit")

	var status string
	if m.toast != "" {
		if m.toastErr {
			status = styles.StatusError.Render(m.toast)
		} else {
			status = styles.StatusOK.Render(m.toast)
		}
	}

	spacing := m.width - lipgloss.Width(hints) - lipgloss.Width(status)
	if spacing < 1 {
		spacing = 1
	}

	return hints + strings.Repeat(" ", spacing) + status
}

// visibleRows is the number of list rows that fit the current height.
func (m Model) visibleRows() int {
	rows := m.height - headerHeight - 2
	if m.showFooter {
		rows -= footerHeight
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// abbreviateHome shortens the user's home prefix to "~" for display only;
// the verbatim path is what gets opened and copied.
func abbreviateHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}
	return path
}
