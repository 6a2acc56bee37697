package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Help is a visible flag plus the key bindings to show.
type Help struct {
	visible  bool
	bindings []key.Binding
}

// NewHelpDialog creates a help dialog showing the given bindings.
func NewHelpDialog(bindings []key.Binding) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
	}
}

func (d *Help) Init() tea.Cmd { return nil }

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter", "esc", "?":
			d.visible = false
			return d, nil
		}
	}
	return d, nil
}

func (d *Help) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Keys"))
	b.WriteString("\n\n")
	for _, kb := range d.bindings {
		h := kb.Help()
		b.WriteString(fmt.Sprintf("%-8s %s\n", h.Key, h.Desc))
	}
	b.WriteString("\nenter/esc to close")

	return box.Render(b.String())
}

func (d *Help) IsVisible() bool { return d.visible }
func (d *Help) Show()           { d.visible = true }
func (d *Help) Hide()           { d.visible = false }
