package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/windsurf-recent/internal/recent"
)

// Message types for tea.Cmd
type (
	// projectsLoadedMsg carries the one-shot extraction result.
	projectsLoadedMsg struct {
		projects []recent.Project
	}

	// ToastMsg displays a temporary message in the footer.
	ToastMsg struct {
		Message  string
		Duration time.Duration
		IsError  bool
	}

	// toastExpiredMsg clears the toast identified by seq.
	toastExpiredMsg struct {
		seq int
	}

	// launchResultMsg reports the outcome of opening a project in Windsurf.
	launchResultMsg struct {
		project recent.Project
		err     error
	}

	// quitAfterToastMsg dismisses the UI once the success toast was visible.
	quitAfterToastMsg struct{}
)

// ShowToast returns a command to show a toast message.
func ShowToast(msg string, duration time.Duration, isError bool) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  msg,
			Duration: duration,
			IsError:  isError,
		}
	}
}
