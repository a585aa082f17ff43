package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/ui/theme"
)

// maxFaceDownShown caps how many overlapping face-down cards are drawn for a
// hand, so a 13-card hand doesn't blow out the side-player column height.
const maxFaceDownShown = 6

// CardPlayAnim represents a card being played animation
type CardPlayAnim struct {
	Card        card.Card
	FromPlayer  card.PlayerName
	Frame       int
	TotalFrames int
}

// TrickCollectAnim represents cards being collected after a trick
type TrickCollectAnim struct {
	Winner      card.PlayerName
	Cards       []PlayedCardView
	Frame       int
	TotalFrames int
}

// PlayedCardView is the rendering-layer mirror of round.PlayedCard, kept
// independent of the round package so components has no dependency on it.
type PlayedCardView struct {
	Player card.PlayerName
	Card   card.Card
}

// ProgramBadge is the rendering-layer mirror of round.ActivationStateKind,
// kept independent of the round package so components has no dependency on
// it.
type ProgramBadge int

const (
	NoBadge ProgramBadge = iota
	ActivatableBadge
	ActiveBadge
	UsedBadge
)

// TableView represents the game table visualization: User at the bottom,
// West to the left, North across the table, East to the right.
type TableView struct {
	Width          int
	Height         int
	Trump          *card.Suit
	CurrentTrick   []PlayedCardView
	PlayerHands    map[card.PlayerName]int
	CurrentPlayer  card.PlayerName
	HasCurrentTurn bool
	PlayerNames    map[card.PlayerName]string
	TricksWon      map[card.PlayerName]int
	Contracts      map[card.PlayerName]int
	ProgramBadges  map[card.PlayerName]ProgramBadge // most notable owned-program state
	TurnPulseFrame int                              // animation frame for turn indicator pulse
	TrickNumber    int                              // 0-indexed trick currently in progress

	// Animation states
	CardPlayAnim     *CardPlayAnim
	TrickCollectAnim *TrickCollectAnim
}

// NewTableView creates a new table view
func NewTableView() *TableView {
	return &TableView{
		Width: 60,
		Height: 20,
		PlayerNames: map[card.PlayerName]string{
			card.User:  "You",
			card.West:  "West",
			card.North: "North",
			card.East:  "East",
		},
		PlayerHands:   map[card.PlayerName]int{card.User: 13, card.West: 13, card.North: 13, card.East: 13},
		TricksWon:     map[card.PlayerName]int{},
		Contracts:     map[card.PlayerName]int{},
		ProgramBadges: map[card.PlayerName]ProgramBadge{},
	}
}

// Render returns the visual representation of the table
func (t *TableView) Render() string {
	var sb strings.Builder

	sb.WriteString(t.renderTopPlayer())
	sb.WriteString("\n")

	sb.WriteString(t.renderMiddle())
	sb.WriteString("\n")

	sb.WriteString(t.renderTrumpIndicator())
	sb.WriteString("\n")

	return sb.String()
}

// RenderTricksTable renders a small 1x2 table for tricks won against contract
func RenderTricksTable(tricksWon, contract int) string {
	bc := lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))
	numStyle := lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	label := fmt.Sprintf(" %d/%d ", tricksWon, contract)
	return bc.Render("┌────────┬─────┐") + "\n" +
		bc.Render("│") + " Tricks " + bc.Render("│") + numStyle.Render(label) + bc.Render("│") + "\n" +
		bc.Render("└────────┴─────┘")
}

func (t *TableView) playerHeader(player card.PlayerName) string {
	name := t.PlayerNames[player]

	indicator := ""
	if t.HasCurrentTurn && t.CurrentPlayer == player {
		indicator = t.renderTurnIndicator()
	}

	return fmt.Sprintf("%s%s%s", name, indicator, t.renderProgramBadge(player))
}

// renderProgramBadge renders player's most notable owned-program state:
// a bold purple "ACTIVE" badge while currently active, a plain "READY"
// badge while activatable, a dim "USED" badge once exhausted, and nothing
// when the player cannot activate anything right now.
func (t *TableView) renderProgramBadge(player card.PlayerName) string {
	switch t.ProgramBadges[player] {
	case ActiveBadge:
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000")).
			Background(lipgloss.Color("#9B59B6")).
			Bold(true).
			Padding(0, 1)
		return " " + style.Render("ACTIVE")
	case ActivatableBadge:
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9B59B6")).
			Bold(true).
			Padding(0, 1)
		return " " + style.Render("READY")
	case UsedBadge:
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7F8C8D")).
			Padding(0, 1)
		return " " + style.Render("USED")
	default:
		return ""
	}
}

// renderTopPlayer renders North's area, across the table from User.
func (t *TableView) renderTopPlayer() string {
	header := t.playerHeader(card.North)
	header = lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, header)

	tricksTable := RenderTricksTable(t.TricksWon[card.North], t.Contracts[card.North])
	tricksTable = lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, tricksTable)

	cardDisplay := RenderFaceDown(min(t.PlayerHands[card.North], maxFaceDownShown))
	cardDisplay = lipgloss.PlaceHorizontal(t.Width, lipgloss.Center, cardDisplay)

	content := header + "\n" + tricksTable + "\n" + cardDisplay

	return lipgloss.NewStyle().Height(10).Render(content)
}

// renderMiddle renders the middle section with West, the trick area, and East.
func (t *TableView) renderMiddle() string {
	leftPlayer := t.renderSidePlayer(card.West, true)
	trickArea := t.renderTrickArea()
	rightPlayer := t.renderSidePlayer(card.East, false)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		leftPlayer,
		"  ",
		trickArea,
		"  ",
		rightPlayer,
	)
}

// renderSidePlayer renders West or East.
func (t *TableView) renderSidePlayer(player card.PlayerName, isLeft bool) string {
	header := t.playerHeader(player)
	tricksTable := RenderTricksTable(t.TricksWon[player], t.Contracts[player])
	cardDisplay := RenderFaceDownVertical(min(t.PlayerHands[player], maxFaceDownShown), isLeft)

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(tricksTable)
	sb.WriteString("\n")
	sb.WriteString(cardDisplay)

	style := lipgloss.NewStyle().Width(16).Height(16)
	if isLeft {
		style = style.Align(lipgloss.Right)
	} else {
		style = style.Align(lipgloss.Left)
	}

	return style.Render(sb.String())
}

// renderTrickArea renders the center area with played cards
func (t *TableView) renderTrickArea() string {
	cardWidth := 7
	cardHeight := 5
	totalWidth := cardWidth*3 + 4

	renderCard := func(player card.PlayerName) string {
		if t.CardPlayAnim != nil && t.CardPlayAnim.FromPlayer == player {
			cv := NewCardView(t.CardPlayAnim.Card)
			return cv.Render()
		}

		if t.TrickCollectAnim != nil {
			for _, pc := range t.TrickCollectAnim.Cards {
				if pc.Player == player {
					progress := float64(t.TrickCollectAnim.Frame) / float64(t.TrickCollectAnim.TotalFrames)
					if progress > 0.75 {
						return lipgloss.NewStyle().Width(cardWidth).Height(cardHeight).Render("")
					} else if progress > 0.5 {
						cv := NewCardView(pc.Card)
						cv.Style = CardStyleDisabled
						return cv.Render()
					}
					cv := NewCardView(pc.Card)
					return cv.Render()
				}
			}
		}

		for _, pc := range t.CurrentTrick {
			if pc.Player == player {
				cv := NewCardView(pc.Card)
				return cv.Render()
			}
		}
		return lipgloss.NewStyle().Width(cardWidth).Height(cardHeight).Render("")
	}

	topCard := renderCard(card.North)
	leftCard := renderCard(card.West)
	rightCard := renderCard(card.East)
	bottomCard := renderCard(card.User)

	topRow := lipgloss.NewStyle().Height(cardHeight).Render(
		lipgloss.PlaceHorizontal(totalWidth, lipgloss.Center, topCard),
	)

	middleRow := lipgloss.NewStyle().Height(cardHeight).Render(
		lipgloss.JoinHorizontal(lipgloss.Center,
			leftCard,
			lipgloss.NewStyle().Width(cardWidth+4).Render(""),
			rightCard,
		),
	)

	bottomRow := lipgloss.NewStyle().Height(cardHeight).Render(
		lipgloss.PlaceHorizontal(totalWidth, lipgloss.Center, bottomCard),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, topRow, middleRow, bottomRow)

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3498DB")).
		Padding(0, 1)

	return style.Render(content)
}

// renderTrumpIndicator shows the current trump (or "no trump") and trick number.
func (t *TableView) renderTrumpIndicator() string {
	var parts []string

	trickStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3498DB")).
		Bold(true)
	parts = append(parts, trickStyle.Render(fmt.Sprintf("Trick %d", t.TrickNumber+1)))

	if t.Trump == nil {
		parts = append(parts, theme.Current.Muted.Render("No trump"))
	} else {
		trumpStyle := theme.Current.CardBlack
		if *t.Trump == card.Hearts || *t.Trump == card.Diamonds {
			trumpStyle = theme.Current.CardRed
		}
		parts = append(parts, fmt.Sprintf("Trump: %s", trumpStyle.Render(t.Trump.Symbol()+" "+t.Trump.String())))
	}

	return strings.Join(parts, "  •  ")
}

// min returns the minimum of two integers
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// renderTurnIndicator returns an animated turn indicator
func (t *TableView) renderTurnIndicator() string {
	indicators := []string{"◀", "◁", "◀", "◂"}
	colors := []string{"#E74C3C", "#FF6B6B", "#E74C3C", "#C0392B"}

	frame := t.TurnPulseFrame % len(indicators)
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors[frame])).
		Bold(frame%2 == 0)

	return " " + style.Render(indicators[frame])
}
