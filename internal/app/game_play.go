package app

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thurn/dotdq/internal/agent"
	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/deal"
	"github.com/thurn/dotdq/internal/delegate"
	"github.com/thurn/dotdq/internal/round"
	"github.com/thurn/dotdq/internal/ui/components"
	"github.com/thurn/dotdq/internal/ui/theme"
)

const agentTurnDelay = 500 * time.Millisecond
const agentMoveTime = 200 * time.Millisecond

const turnPulseDelay = 300 * time.Millisecond

// seatPrograms cycles the three installed programs across the four seats so
// every round gives each player something to try activating.
var seatPrograms = []delegate.ProgramName{"Starfall", "Obsidian", "Eviction"}

// GamePlay is the main round-playing screen: User plays interactively, West,
// North, and East are all driven by the same search agent.
type GamePlay struct {
	round         *round.Round
	opponent      agent.Agent
	opponentName  string
	selectedCard  int
	message       string
	tableView     *components.TableView
	width         int
	height        int

	waitingForTrickAck bool
	completedTrick     *round.CompletedTrick

	waitingForRoundAck bool

	turnPulseFrame int
}

// NewGamePlay creates a new game play screen. opponentAgentName names one of
// the agent.Agent catalog constructors (see resolveOpponentAgent); an
// unrecognized or empty name falls back to Uct1.
func NewGamePlay(opponentAgentName string) *GamePlay {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	programOwners := make(map[card.PlayerName][]delegate.ProgramName, len(card.Players))
	for i, player := range card.Players {
		programOwners[player] = []delegate.ProgramName{seatPrograms[i%len(seatPrograms)]}
	}

	r := deal.NewRound(deal.Config{Rand: rng, ProgramOwners: programOwners})

	gp := &GamePlay{
		round:        r,
		opponent:     resolveOpponentAgent(opponentAgentName, rng),
		opponentName: opponentAgentName,
		tableView:    components.NewTableView(),
	}
	gp.updateTableView()

	return gp
}

// resolveOpponentAgent maps a CLI-style agent name onto an agent.Agent,
// mirroring cmd/dotdq/main.go's resolveAgent; every catalog agent is
// accepted, and an unrecognized name falls back to Uct1.
func resolveOpponentAgent(name string, rng *rand.Rand) agent.Agent {
	switch name {
	case "alpha_beta_10":
		return agent.AlphaBetaDepth10()
	case "alpha_beta_13":
		return agent.AlphaBetaDepth13()
	case "uct1_iterations_250":
		return agent.Uct1Iterations250(rng)
	case "uct1_max_tricks":
		return agent.Uct1MaxTricks(rng)
	case "first_available_action":
		return agent.FirstAvailableAction
	default:
		return agent.Uct1(rng)
	}
}

// Init implements tea.Model
func (g *GamePlay) Init() tea.Cmd {
	pulseCmd := tea.Tick(turnPulseDelay, func(t time.Time) tea.Msg {
		return turnPulseTickMsg{}
	})
	return tea.Batch(g.processAgentTurn(), pulseCmd)
}

// Update implements tea.Model
func (g *GamePlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width = msg.Width
		g.height = msg.Height

	case tea.KeyMsg:
		return g.handleKeyPress(msg)

	case agentMoveMsg:
		g.updateTableView()
		g.message = fmt.Sprintf("%s played %s", msg.actor, msg.action)
		return g, tea.Tick(agentTurnDelay, func(t time.Time) tea.Msg {
			return agentContinueMsg{}
		})

	case agentContinueMsg:
		return g, g.processAgentTurn()

	case humanTurnMsg:
		g.updateTableView()
		return g, nil

	case trickDoneMsg:
		g.waitingForTrickAck = true
		trick := msg.trick
		g.completedTrick = &trick
		g.tableView.CurrentTrick = toPlayedCardViews(trick.Trick.Cards())
		verb := "wins"
		if trick.Winner == card.User {
			verb = "win"
		}
		g.message = fmt.Sprintf("%s %s the trick", trick.Winner, verb)
		return g, nil

	case roundCompleteMsg:
		g.waitingForRoundAck = true
		g.completedTrick = nil
		scores := g.round.Scores()
		g.message = fmt.Sprintf(
			"Round over. You: %d • West: %d • North: %d • East: %d",
			scores[card.User], scores[card.West], scores[card.North], scores[card.East],
		)
		return g, nil

	case turnPulseTickMsg:
		g.turnPulseFrame++
		g.tableView.TurnPulseFrame = g.turnPulseFrame
		if !g.waitingForRoundAck {
			return g, tea.Tick(turnPulseDelay, func(t time.Time) tea.Msg {
				return turnPulseTickMsg{}
			})
		}
		return g, nil
	}

	return g, nil
}

func toPlayedCardViews(cards []round.PlayedCard) []components.PlayedCardView {
	out := make([]components.PlayedCardView, len(cards))
	for i, pc := range cards {
		out[i] = components.PlayedCardView{Player: pc.Player, Card: pc.Card}
	}
	return out
}

// handleKeyPress handles keyboard input
func (g *GamePlay) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if g.waitingForRoundAck {
		switch msg.String() {
		case "enter", " ", "q", "esc":
			return g, Navigate(ScreenMainMenu)
		}
		return g, nil
	}

	if g.waitingForTrickAck {
		switch msg.String() {
		case "enter", " ":
			g.waitingForTrickAck = false
			g.completedTrick = nil
			g.updateTableView()
			if g.round.IsComplete() {
				return g, func() tea.Msg { return roundCompleteMsg{} }
			}
			return g, g.processAgentTurn()
		case "q", "esc":
			return g, Navigate(ScreenMainMenu)
		}
		return g, nil
	}

	turn, live := g.round.CurrentTurn()
	isYourTurn := live && turn == card.User

	switch msg.String() {
	case "q", "esc":
		return g, Navigate(ScreenMainMenu)

	case "left", "h":
		if isYourTurn && g.selectedCard > 0 {
			g.selectedCard--
		}

	case "right", "l":
		if isYourTurn {
			hand := g.round.Hand(card.User).Cards()
			if g.selectedCard < len(hand)-1 {
				g.selectedCard++
			}
		}

	case "enter", " ":
		return g.handlePlaySelectedCard()

	case "a":
		return g.handleActivateProgram()
	}

	return g, nil
}

// handlePlaySelectedCard plays User's currently selected card, if it is a
// legal action right now.
func (g *GamePlay) handlePlaySelectedCard() (tea.Model, tea.Cmd) {
	turn, live := g.round.CurrentTurn()
	if !live || turn != card.User {
		return g.showTempMessage("Not your turn")
	}

	hand := g.round.Hand(card.User).Cards()
	if g.selectedCard < 0 || g.selectedCard >= len(hand) {
		return g, nil
	}
	selected := hand[g.selectedCard]

	legalCards := g.legalCardsFor(card.User)
	legal := false
	for _, c := range legalCards {
		if c == selected {
			legal = true
			break
		}
	}
	if !legal {
		return g.showTempMessage(fmt.Sprintf("Can't play %s right now", selected))
	}

	return g.applyUserAction(round.PlayCard(selected))
}

// handleActivateProgram activates the first currently-activatable program
// User owns, if any.
func (g *GamePlay) handleActivateProgram() (tea.Model, tea.Cmd) {
	turn, live := g.round.CurrentTurn()
	if !live || turn != card.User {
		return g.showTempMessage("Not your turn")
	}

	for _, action := range g.round.LegalActions(card.User) {
		if action.Kind == round.ActionActivateProgram {
			return g.applyUserAction(action)
		}
	}
	return g.showTempMessage("No program to activate")
}

// applyUserAction applies action on behalf of User, then either waits for a
// trick acknowledgment or continues to the agent seats.
func (g *GamePlay) applyUserAction(action round.Action) (tea.Model, tea.Cmd) {
	historyLen := len(g.round.CompletedTricks())
	g.round.ApplyAction(card.User, action)
	g.selectedCard = 0

	if completed := g.round.CompletedTricks(); len(completed) > historyLen {
		result := completed[len(completed)-1]
		g.tableView.CurrentTrick = toPlayedCardViews(result.Trick.Cards())
		return g, func() tea.Msg { return trickDoneMsg{trick: result} }
	}

	g.updateTableView()
	return g, g.processAgentTurn()
}

// legalCardsFor extracts just the PlayCard cards from player's legal actions.
func (g *GamePlay) legalCardsFor(player card.PlayerName) []card.Card {
	var cards []card.Card
	for _, action := range g.round.LegalActions(player) {
		if action.Kind == round.ActionPlayCard {
			cards = append(cards, action.Card)
		}
	}
	return cards
}

// showTempMessage shows a message without changing any game state.
func (g *GamePlay) showTempMessage(msg string) (tea.Model, tea.Cmd) {
	g.message = msg
	return g, nil
}

// processAgentTurn advances the round by one action for whichever seat's
// turn it is, if not User's.
func (g *GamePlay) processAgentTurn() tea.Cmd {
	return func() tea.Msg {
		turn, live := g.round.CurrentTurn()
		if !live {
			return roundCompleteMsg{}
		}
		if turn == card.User {
			return humanTurnMsg{}
		}

		historyLen := len(g.round.CompletedTricks())
		action := g.opponent.PickAction(g.round, turn, agent.Config{
			Deadline: time.Now().Add(agentMoveTime),
		})
		g.round.ApplyAction(turn, action)

		if completed := g.round.CompletedTricks(); len(completed) > historyLen {
			return trickDoneMsg{trick: completed[len(completed)-1]}
		}
		return agentMoveMsg{actor: turn, action: action}
	}
}

// programBadge reports the most notable activation state across every
// program player owns, mapped to the shell's rendering-layer badge enum.
// CurrentlyActive takes priority over everything else, then CanActivate,
// then PreviouslyActivated; a player with no owned programs (or none in an
// interesting state) gets NoBadge.
func programBadge(r *round.Round, player card.PlayerName) components.ProgramBadge {
	badge := components.NoBadge
	for _, name := range r.ProgramsOwnedBy(player) {
		id := delegate.ProgramId{Name: name, Owner: player}
		switch r.ActivationState(id) {
		case round.CurrentlyActive:
			return components.ActiveBadge
		case round.CanActivate:
			badge = components.ActivatableBadge
		case round.PreviouslyActivated:
			if badge == components.NoBadge {
				badge = components.UsedBadge
			}
		}
	}
	return badge
}

// updateTableView refreshes the table view from the round's current state.
func (g *GamePlay) updateTableView() {
	trump, hasTrump := g.round.Trump()
	if hasTrump {
		g.tableView.Trump = &trump
	} else {
		g.tableView.Trump = nil
	}

	if turn, live := g.round.CurrentTurn(); live {
		g.tableView.CurrentPlayer = turn
		g.tableView.HasCurrentTurn = true
	} else {
		g.tableView.HasCurrentTurn = false
	}

	g.tableView.TurnPulseFrame = g.turnPulseFrame
	g.tableView.TrickNumber = g.round.TrickNumber()

	for _, player := range card.Players {
		g.tableView.PlayerHands[player] = g.round.Hand(player).Len()
		g.tableView.TricksWon[player] = g.round.TricksWon(player)
		g.tableView.Contracts[player] = g.round.Contract(player)

		g.tableView.ProgramBadges[player] = programBadge(g.round, player)
	}

	g.tableView.CurrentTrick = toPlayedCardViews(g.round.CurrentTrick().Cards())
}

// View implements tea.Model
func (g *GamePlay) View() string {
	width := g.width
	height := g.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 30
	}

	tableStr := g.tableView.Render()

	hand := g.round.Hand(card.User).Cards()
	turn, live := g.round.CurrentTurn()
	isYourTurn := live && turn == card.User

	var legalCards []card.Card
	selectedIdx := -1
	if isYourTurn && !g.waitingForTrickAck && !g.waitingForRoundAck {
		legalCards = g.legalCardsFor(card.User)
		selectedIdx = g.selectedCard
	}

	tricksStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))
	tricksStr := tricksStyle.Render(fmt.Sprintf("(%d/%d)", g.round.TricksWon(card.User), g.round.Contract(card.User)))
	playerName := theme.Current.Primary.Render("You") + " " + tricksStr

	handCards := components.RenderHand(hand, selectedIdx, legalCards)
	handStr := lipgloss.JoinVertical(lipgloss.Center, playerName, handCards)
	handStr = lipgloss.NewStyle().Height(7).Render(handStr)

	phaseStr := g.getPhaseMessage()
	if g.message != "" {
		phaseStr = g.message
	}

	helpStr := g.getHelpText()

	tableWidth := lipgloss.Width(tableStr)
	centeredHand := lipgloss.PlaceHorizontal(tableWidth, lipgloss.Center, handStr)
	centerContent := tableStr + centeredHand

	innerContent := centerContent + "\n" +
		theme.Current.Accent.Render(phaseStr) + "\n" +
		theme.Current.Help.Render(helpStr)

	centeredContent := lipgloss.Place(width-4, height-4, lipgloss.Center, lipgloss.Center, innerContent)
	screenBox := theme.Current.ScreenBorder.
		Width(width - 2).
		Height(height - 2).
		Render(centeredContent)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, screenBox)
}

// getPhaseMessage returns a message describing whose turn it is.
func (g *GamePlay) getPhaseMessage() string {
	if g.waitingForRoundAck {
		return "Round complete"
	}
	turn, live := g.round.CurrentTurn()
	if !live {
		return "Round complete"
	}
	if turn == card.User {
		return "Your turn: select a card to play"
	}
	return fmt.Sprintf("Waiting for %s to play...", turn)
}

// getHelpText returns context-appropriate help text.
func (g *GamePlay) getHelpText() string {
	if g.waitingForRoundAck {
		return "Enter: Return to menu"
	}
	if g.waitingForTrickAck {
		return "Enter: Continue"
	}
	return "←/→: Select card • Enter: Play • A: Activate program • Esc: Quit"
}

// Messages for async operations
type agentMoveMsg struct {
	actor  card.PlayerName
	action round.Action
}
type agentContinueMsg struct{}
type humanTurnMsg struct{}
type trickDoneMsg struct {
	trick round.CompletedTrick
}
type roundCompleteMsg struct{}
type turnPulseTickMsg struct{}
