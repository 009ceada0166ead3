package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

type ConfirmController struct {
	active   bool
	message  string
	selected int
}

func NewConfirmController() *ConfirmController {
	return &ConfirmController{}
}

func (c *ConfirmController) IsOpen() bool {
	return c != nil && c.active
}

func (c *ConfirmController) Open(message string) {
	if c == nil {
		return
	}
	c.active = true
	c.message = strings.TrimSpace(message)
	c.selected = 0
}

func (c *ConfirmController) Close() {
	if c == nil {
		return
	}
	c.active = false
	c.message = ""
	c.selected = 0
}

// HandleKey consumes keys while the dialog is open. The second return
// carries the user's decision once one is made.
func (c *ConfirmController) HandleKey(msg tea.KeyMsg) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "q", "n":
		return true, confirmChoiceCancel
	case "left", "h":
		c.selected = 0
		return true, confirmChoiceNone
	case "right", "l":
		c.selected = 1
		return true, confirmChoiceNone
	case "y":
		return true, confirmChoiceConfirm
	case "enter":
		if c.selected == 0 {
			return true, confirmChoiceConfirm
		}
		return true, confirmChoiceCancel
	default:
		return true, confirmChoiceNone
	}
}

func (c *ConfirmController) View(width int) string {
	if !c.IsOpen() {
		return ""
	}
	confirm := confirmButtonStyle.Render("Yes")
	cancel := confirmButtonStyle.Render("No")
	if c.selected == 0 {
		confirm = confirmSelectedStyle.Render("Yes")
	} else {
		cancel = confirmSelectedStyle.Render("No")
	}
	body := c.message + "\n\n" + confirm + "  " + cancel
	box := confirmBoxStyle.Render(body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
