package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel carries the terminal dimensions shared by every screen.
type CommonModel struct {
	Width  int
	Height int
}

// BackMsg asks the root model to return to the main menu.
type BackMsg struct{}

// Back is the tea.Cmd a screen issues when the user leaves it.
func Back() tea.Msg {
	return BackMsg{}
}
