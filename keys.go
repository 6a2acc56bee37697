package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit           key.Binding
	CycleX         key.Binding
	CycleY         key.Binding
	ToggleXLog     key.Binding
	ToggleYLog     key.Binding
	YearBack       key.Binding
	YearForward    key.Binding
	Countries      key.Binding
	ClearCountries key.Binding
	BrushMode      key.Binding
	ClearBrush     key.Binding
	StartAnim      key.Binding
	StopAnim       key.Binding
	ToggleTable    key.Binding
	SaveSnapshot   key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	CycleX: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "next x indicator"),
	),
	CycleY: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "next y indicator"),
	),
	ToggleXLog: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "toggle log scale on x"),
	),
	ToggleYLog: key.NewBinding(
		key.WithKeys("Y"),
		key.WithHelp("Y", "toggle log scale on y"),
	),
	YearBack: key.NewBinding(
		key.WithKeys("[", "left"),
		key.WithHelp("[/←", "previous year"),
	),
	YearForward: key.NewBinding(
		key.WithKeys("]", "right"),
		key.WithHelp("]/→", "next year"),
	),
	Countries: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "filter countries"),
	),
	ClearCountries: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "clear country filter"),
	),
	BrushMode: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "brush points"),
	),
	ClearBrush: key.NewBinding(
		key.WithKeys("B"),
		key.WithHelp("B", "clear brush"),
	),
	StartAnim: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "animate years"),
	),
	StopAnim: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop animation"),
	),
	ToggleTable: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle data table"),
	),
	SaveSnapshot: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "write snapshot"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.CycleX,
		k.CycleY,
		k.YearBack,
		k.YearForward,
		k.Countries,
		k.BrushMode,
		k.StartAnim,
		k.StopAnim,
		k.ToggleTable,
	}
}
