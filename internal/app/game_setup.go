package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thurn/dotdq/internal/ui/components"
	"github.com/thurn/dotdq/internal/ui/theme"
)

// opponentAgentNames cycles through the catalog of agents GameSetup can
// assign to West, North, and East.
var opponentAgentNames = []string{"uct1", "alpha_beta_10", "first_available_action"}

// GameSetup is the game setup screen.
type GameSetup struct {
	menu         *components.Menu
	agentIndex   int
	width        int
	height       int
}

// NewGameSetup creates a new game setup screen.
func NewGameSetup() *GameSetup {
	items := []components.MenuItem{
		{
			Label:       "Start Round",
			Description: "Deal a new round with current settings",
		},
		{
			Label:       "Opponent agent: " + opponentAgentNames[0],
			Description: "Cycle the search agent playing West, North, and East",
		},
		{
			Label:       "Back to Menu",
			Description: "Return to the main menu",
		},
	}

	return &GameSetup{
		menu: components.NewMenu("", items),
	}
}

// Init implements tea.Model
func (g *GameSetup) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (g *GameSetup) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width = msg.Width
		g.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			g.menu.MoveUp()
		case "down", "j":
			g.menu.MoveDown()
		case "enter", " ":
			return g.handleSelect()
		case "q", "esc":
			return g, Navigate(ScreenMainMenu)
		}
	}

	return g, nil
}

// handleSelect handles menu selection.
func (g *GameSetup) handleSelect() (tea.Model, tea.Cmd) {
	switch g.menu.Selected {
	case 0: // Start Round
		return g, NavigateWithData(ScreenGamePlay, g.opponentAgentName())
	case 1: // Opponent agent toggle
		g.agentIndex = (g.agentIndex + 1) % len(opponentAgentNames)
		g.menu.Items[1].Label = "Opponent agent: " + g.opponentAgentName()
	case 2: // Back
		return g, Navigate(ScreenMainMenu)
	}

	return g, nil
}

func (g *GameSetup) opponentAgentName() string {
	return opponentAgentNames[g.agentIndex]
}

// View implements tea.Model
func (g *GameSetup) View() string {
	width := g.width
	height := g.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	title := theme.Current.Title.Render("Round Setup")

	menuBox := theme.Current.ContentBox.
		Width(48).
		Render(g.menu.Render())

	help := theme.Current.Help.Render("↑/↓: Navigate • Enter: Select/Toggle • Esc: Back")

	innerContent := title + "\n\n" +
		menuBox + "\n\n" +
		help

	centeredContent := lipgloss.Place(width-4, height-4, lipgloss.Center, lipgloss.Center, innerContent)
	screenBox := theme.Current.ScreenBorder.
		Width(width - 2).
		Height(height - 2).
		Render(centeredContent)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, screenBox)
}
