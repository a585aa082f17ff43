// Package round implements the round state machine: hands, the current
// trick, completed tricks, contracts, trump, turn order, and the
// program-delegate state that can override trick-winner resolution and
// follow-suit legality.
package round

import (
	"fmt"

	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/delegate"
	"github.com/thurn/dotdq/internal/gamestate"
)

// Round is a single deal: four 13-card hands, a trump suit (or none), each
// player's contract, the trick in progress, the tricks completed so far,
// and the state of every program installed for this round.
type Round struct {
	hands     map[card.PlayerName]card.Hand
	trump     *card.Suit
	contracts map[card.PlayerName]int

	currentTrick    Trick
	completedTricks []CompletedTrick

	delegates     *PlayPhaseDelegates
	programOwners map[card.PlayerName][]delegate.ProgramName
	programState  map[delegate.ProgramId]delegate.ProgramState
}

// New constructs a Round from already-dealt hands and contracts, installing
// the given per-player program assignments. trump may be nil.
func New(hands map[card.PlayerName]card.Hand, trump *card.Suit, contracts map[card.PlayerName]int, programOwners map[card.PlayerName][]delegate.ProgramName) *Round {
	r := &Round{
		hands:         hands,
		trump:         trump,
		contracts:     contracts,
		currentTrick:  NewTrick(),
		delegates:     NewPlayPhaseDelegates(),
		programOwners: programOwners,
		programState:  make(map[delegate.ProgramId]delegate.ProgramState),
	}
	r.installPrograms()
	return r
}

// installPrograms iterates players x that player's owned programs and
// installs each one's play-phase hooks, stamping the owner's identity into
// the install slot before the program's installer registers its hooks.
func (r *Round) installPrograms() {
	for _, player := range card.Players {
		for _, name := range r.programOwners[player] {
			def := programDefinition(name)
			r.delegates.install(&def, player)
			id := delegate.ProgramId{Name: name, Owner: player}
			if _, ok := r.programState[id]; !ok {
				r.programState[id] = delegate.ProgramState{Kind: delegate.Inactive}
			}
		}
	}
}

// Clone returns a deep copy of the round suitable for search agents to
// mutate without affecting the original.
func (r *Round) Clone() *Round {
	hands := make(map[card.PlayerName]card.Hand, len(r.hands))
	for p, h := range r.hands {
		hands[p] = h
	}
	contracts := make(map[card.PlayerName]int, len(r.contracts))
	for p, c := range r.contracts {
		contracts[p] = c
	}
	var trump *card.Suit
	if r.trump != nil {
		s := *r.trump
		trump = &s
	}
	completed := make([]CompletedTrick, len(r.completedTricks))
	copy(completed, r.completedTricks)
	trickCopy := Trick{cards: append([]PlayedCard(nil), r.currentTrick.cards...)}
	programState := make(map[delegate.ProgramId]delegate.ProgramState, len(r.programState))
	for id, s := range r.programState {
		programState[id] = s
	}
	programOwners := make(map[card.PlayerName][]delegate.ProgramName, len(r.programOwners))
	for p, names := range r.programOwners {
		programOwners[p] = append([]delegate.ProgramName(nil), names...)
	}

	clone := &Round{
		hands:           hands,
		trump:           trump,
		contracts:       contracts,
		currentTrick:    trickCopy,
		completedTricks: completed,
		programOwners:   programOwners,
		programState:    programState,
	}
	// Hook registrations are immutable function values keyed by ProgramId;
	// it is safe (and required, to preserve trick_winner/must_follow_suit
	// overrides) for the clone to share the same Delegates rather than
	// re-running every program's installer.
	clone.delegates = r.delegates
	return clone
}

// Hand returns player's current hand.
func (r *Round) Hand(player card.PlayerName) card.Hand {
	return r.hands[player]
}

// Trump returns the round's trump suit, and false if there is none.
func (r *Round) Trump() (card.Suit, bool) {
	if r.trump == nil {
		return 0, false
	}
	return *r.trump, true
}

// SetTrump changes the round's trump suit. Used by programs such as
// Obsidian that mutate trump on activation.
func (r *Round) SetTrump(suit card.Suit) {
	s := suit
	r.trump = &s
}

// Contract returns player's committed trick count for this round.
func (r *Round) Contract(player card.PlayerName) int {
	return r.contracts[player]
}

// CurrentTrick returns the trick currently being played.
func (r *Round) CurrentTrick() *Trick {
	return &r.currentTrick
}

// CompletedTricks returns every trick finished so far, in chronological
// order.
func (r *Round) CompletedTricks() []CompletedTrick {
	return r.completedTricks
}

// TrickNumber returns the 0-indexed number of the trick currently in
// progress (equivalently, the count of completed tricks).
func (r *Round) TrickNumber() int {
	return len(r.completedTricks)
}

// TricksWon returns the number of completed tricks player has won.
func (r *Round) TricksWon(player card.PlayerName) int {
	count := 0
	for _, t := range r.completedTricks {
		if t.Winner == player {
			count++
		}
	}
	return count
}

// MetContract reports whether player has won at least their contract
// number of tricks so far.
func (r *Round) MetContract(player card.PlayerName) bool {
	return r.TricksWon(player) >= r.contracts[player]
}

// CurrentTurn returns the player to act, and false if the round is
// complete (every hand empty).
func (r *Round) CurrentTurn() (card.PlayerName, bool) {
	for _, player := range card.Players {
		if !r.hands[player].IsEmpty() {
			return r.nextToPlay(), true
		}
	}
	return 0, false
}

// nextToPlay computes whose turn it is, assuming the round is not yet
// complete.
func (r *Round) nextToPlay() card.PlayerName {
	if r.currentTrick.IsEmpty() {
		if len(r.completedTricks) == 0 {
			return card.User
		}
		return r.completedTricks[len(r.completedTricks)-1].Winner
	}
	last := r.currentTrick.cards[len(r.currentTrick.cards)-1]
	return last.Player.Next()
}

// HasLead reports whether player is the one who will lead the next trick:
// the current trick is empty and player won the last completed trick
// (defaulting to User before the very first trick).
func (r *Round) HasLead(player card.PlayerName) bool {
	if !r.currentTrick.IsEmpty() {
		return false
	}
	if len(r.completedTricks) == 0 {
		return player == card.User
	}
	return r.completedTricks[len(r.completedTricks)-1].Winner == player
}

// IsComplete reports whether every hand is empty.
func (r *Round) IsComplete() bool {
	_, ok := r.CurrentTurn()
	return !ok
}

// Scores returns each player's final score. Only meaningful once the round
// is complete; see contractValue for the step function used here.
func (r *Round) Scores() map[card.PlayerName]int {
	scores := make(map[card.PlayerName]int, 4)
	for _, player := range card.Players {
		scores[player] = contractValue(r.contracts[player]) * boolToInt(r.MetContract(player))
	}
	return scores
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// contractValue implements the fixed scoring step function for a contract.
func contractValue(contract int) int {
	switch {
	case contract <= 0:
		return 0
	case contract >= 13:
		return 2500
	default:
		table := [...]int{0, 10, 20, 30, 50, 100, 150, 200, 400, 700, 1000, 1500, 2000}
		return table[contract]
	}
}

// Status implements the GameStateNode contract: the search agents read
// this instead of poking at hands/tricks directly.
// TricksWon and Contract are always populated (not just while in progress)
// so an Evaluator can score a node without importing this package.
func (r *Round) Status() gamestate.Status {
	tricksWon := make(map[card.PlayerName]int, 4)
	for _, player := range card.Players {
		tricksWon[player] = r.TricksWon(player)
	}
	contracts := make(map[card.PlayerName]int, 4)
	for p, c := range r.contracts {
		contracts[p] = c
	}
	if turn, live := r.CurrentTurn(); live {
		return gamestate.Status{Kind: gamestate.InProgress, Turn: turn, TricksWon: tricksWon, Contract: contracts}
	}
	return gamestate.Status{Kind: gamestate.Completed, Scores: r.Scores(), TricksWon: tricksWon, Contract: contracts}
}

// Delegates exposes the round's installed hook containers.
func (r *Round) Delegates() *PlayPhaseDelegates {
	return r.delegates
}

// ProgramState returns the current state of the given program instance.
func (r *Round) ProgramState(id delegate.ProgramId) delegate.ProgramState {
	return r.programState[id]
}

// SetProgramState persists a new state for the given program instance.
func (r *Round) SetProgramState(id delegate.ProgramId, state delegate.ProgramState) {
	r.programState[id] = state
}

// ProgramsOwnedBy returns the program names owned by player this round.
func (r *Round) ProgramsOwnedBy(player card.PlayerName) []delegate.ProgramName {
	return r.programOwners[player]
}

// ProgramDefinitionText returns the descriptive text registered for name,
// for shell display.
func ProgramDefinitionText(name delegate.ProgramName) string {
	return programDefinition(name).Text
}

func (r *Round) String() string {
	turn, live := r.CurrentTurn()
	if !live {
		return "Round{complete}"
	}
	return fmt.Sprintf("Round{turn=%s trick=%d}", turn, r.TrickNumber())
}
