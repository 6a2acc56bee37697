package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface modal overlays implement, keeping the
// root model logic generic.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	IsVisible() bool
	Show()
	Hide()
}
