// Package app implements the interactive picker over Windsurf's recent
// projects. The model has exactly two states: loading until the one-shot
// extraction completes, then ready with whatever list (possibly empty) was
// produced. Nothing re-enters loading; there is no refresh.
package app

import (
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/windsurf-recent/internal/launcher"
	"github.com/marcus/windsurf-recent/internal/recent"
	"github.com/marcus/windsurf-recent/internal/storage"
)

const (
	toastDuration = 3 * time.Second

	// quitDelay keeps the success toast on screen before the UI dismisses
	// itself after a launch.
	quitDelay = 600 * time.Millisecond
)

// Model is the Bubble Tea model for the picker.
type Model struct {
	logger      *slog.Logger
	storagePath string
	showFooter  bool

	width  int
	height int
	ready  bool

	loading  bool
	projects []recent.Project

	cursor int
	scroll int

	filter    textinput.Model
	filtering bool

	toast    string
	toastErr bool
	toastSeq int

	quitting bool
}

// New creates the picker model. storagePath points at Windsurf's
// storage.json; the file is read once, at Init.
func New(storagePath string, showFooter bool, logger *slog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "filter projects"
	ti.Prompt = "/ "
	ti.CharLimit = 128

	return Model{
		logger:      logger,
		storagePath: storagePath,
		showFooter:  showFooter,
		loading:     true,
		filter:      ti,
	}
}

// Init triggers the single extraction pass.
func (m Model) Init() tea.Cmd {
	return loadProjects(m.storagePath, m.logger)
}

// loadProjects reads and parses the storage file and extracts the recent
// project list. It always completes: absence and malformed input degrade
// to an empty list, logged for diagnostics only.
func loadProjects(path string, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		raw, err := storage.Load(path)
		if err != nil {
			if storage.IsMissing(err) {
				logger.Debug("storage file absent", "path", path)
			} else {
				logger.Warn("storage file unreadable", "path", path, "error", err)
			}
			return projectsLoadedMsg{}
		}
		projects := recent.Extract(raw)
		logger.Debug("extracted recent projects", "count", len(projects))
		return projectsLoadedMsg{projects: projects}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case projectsLoadedMsg:
		m.loading = false
		m.projects = msg.projects
		return m, nil

	case ToastMsg:
		m.toast = msg.Message
		m.toastErr = msg.IsError
		m.toastSeq++
		seq := m.toastSeq
		return m, tea.Tick(msg.Duration, func(time.Time) tea.Msg {
			return toastExpiredMsg{seq: seq}
		})

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
			m.toastErr = false
		}
		return m, nil

	case launchResultMsg:
		return m.handleLaunchResult(msg)

	case quitAfterToastMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleLaunchResult(msg launchResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("launch failed", "path", msg.project.Path, "error", msg.err)
		text := "Failed to open " + displayName(msg.project)
		if !launcher.Installed() {
			text = "Windsurf does not appear to be installed"
		}
		return m, ShowToast(text, toastDuration, true)
	}

	m.quitting = true
	cmd := tea.Batch(
		ShowToast("Opened "+displayName(msg.project)+" in Windsurf", toastDuration, false),
		tea.Tick(quitDelay, func(time.Time) tea.Msg { return quitAfterToastMsg{} }),
	)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if msg.String() == "esc" && m.filter.Value() != "" {
			m.filter.SetValue("")
			m.cursor = 0
			m.scroll = 0
			return m, nil
		}
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}
	case "g":
		m.cursor = 0
		m.scroll = 0
	case "G":
		if n := len(m.visible()); n > 0 {
			m.cursor = n - 1
			m.ensureCursorVisible()
		}

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case "enter":
		if p, ok := m.selected(); ok && !m.quitting {
			return m, launchProject(p)
		}

	case "c":
		if p, ok := m.selected(); ok {
			return m, copyPath(p)
		}
	}

	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.cursor = 0
		m.scroll = 0
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.cursor = 0
		m.scroll = 0
	}
	return m, cmd
}

// visible returns the projects matching the current filter query, in
// extraction order.
func (m Model) visible() []recent.Project {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return m.projects
	}
	var out []recent.Project
	for _, p := range m.projects {
		if strings.Contains(strings.ToLower(p.Label), query) ||
			strings.Contains(strings.ToLower(p.Path), query) {
			out = append(out, p)
		}
	}
	return out
}

func (m Model) selected() (recent.Project, bool) {
	vis := m.visible()
	if m.cursor < 0 || m.cursor >= len(vis) {
		return recent.Project{}, false
	}
	return vis[m.cursor], true
}

func (m *Model) ensureCursorVisible() {
	rows := m.visibleRows()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+rows {
		m.scroll = m.cursor - rows + 1
	}
}

// launchProject opens p in Windsurf off the UI loop and reports back.
func launchProject(p recent.Project) tea.Cmd {
	return func() tea.Msg {
		return launchResultMsg{project: p, err: launcher.Open(p.Path)}
	}
}

// copyPath puts the project path on the system clipboard.
func copyPath(p recent.Project) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(p.Path); err != nil {
			return ToastMsg{Message: "Failed to copy path", Duration: toastDuration, IsError: true}
		}
		return ToastMsg{Message: "Copied path to clipboard", Duration: toastDuration}
	}
}

func displayName(p recent.Project) string {
	if p.Label != "" {
		return p.Label
	}
	return p.Path
}
