package round

import (
	"fmt"

	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/delegate"
)

// ActionKind distinguishes the two kinds of action a player may take.
type ActionKind int

const (
	ActionPlayCard ActionKind = iota
	ActionActivateProgram
)

// Action is one of PlayCard(c) or ActivateProgram(id). Exactly one of Card
// / ProgramID is meaningful, selected by Kind.
type Action struct {
	Kind     ActionKind
	Card     card.Card
	ProgramID delegate.ProgramId
}

// PlayCard builds a PlayCard action.
func PlayCard(c card.Card) Action {
	return Action{Kind: ActionPlayCard, Card: c}
}

// ActivateProgram builds an ActivateProgram action.
func ActivateProgram(id delegate.ProgramId) Action {
	return Action{Kind: ActionActivateProgram, ProgramID: id}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionPlayCard:
		return fmt.Sprintf("PlayCard(%s)", a.Card)
	case ActionActivateProgram:
		return fmt.Sprintf("ActivateProgram(%s/%s)", a.ProgramID.Name, a.ProgramID.Owner)
	default:
		return "InvalidAction"
	}
}

// mustFollowSuit runs the MustFollowSuit delegate chain, starting from the
// default true.
func (r *Round) mustFollowSuit(player card.PlayerName) bool {
	arg := MustFollowSuitQuery{Player: player, TrickNumber: r.TrickNumber()}
	return r.delegates.MustFollowSuit.Run(r, r.ProgramState, arg, true)
}

// canPlayCard reports whether player may legally play c right now.
func (r *Round) canPlayCard(player card.PlayerName, c card.Card) bool {
	turn, live := r.CurrentTurn()
	if !live || turn != player {
		return false
	}
	if !r.hands[player].Contains(c) {
		return false
	}
	led, hasLed := r.currentTrick.LeadSuit()
	if !hasLed {
		return true
	}
	if c.Suit == led {
		return true
	}
	if !r.hands[player].HasSuit(led) {
		return true
	}
	return !r.mustFollowSuit(player)
}

// canActivateProgram reports whether player may activate the given program
// right now.
func (r *Round) canActivateProgram(id delegate.ProgramId) bool {
	turn, live := r.CurrentTurn()
	if !live || turn != id.Owner {
		return false
	}
	return r.delegates.CanActivate.Run(r, id, r.ProgramState(id), false)
}

// ActivationStateKind is the closed set of UI-facing activation states for
// one program instance.
type ActivationStateKind int

const (
	CannotActivate ActivationStateKind = iota
	CurrentlyActive
	PreviouslyActivated
	CanActivate
)

func (k ActivationStateKind) String() string {
	switch k {
	case CannotActivate:
		return "CannotActivate"
	case CurrentlyActive:
		return "CurrentlyActive"
	case PreviouslyActivated:
		return "PreviouslyActivated"
	case CanActivate:
		return "CanActivate"
	default:
		return "Unknown"
	}
}

// ActivationState reports id's current state for UI display: CannotActivate
// takes priority over every other state, then CurrentlyActive, then
// PreviouslyActivated for a program that has run but is no longer active,
// then CanActivate for one that has never run.
func (r *Round) ActivationState(id delegate.ProgramId) ActivationStateKind {
	if !r.canActivateProgram(id) {
		return CannotActivate
	}
	state := r.ProgramState(id)
	if r.delegates.CurrentlyActive.Run(r, id, state, false) {
		return CurrentlyActive
	}
	if state.Kind != delegate.Inactive {
		return PreviouslyActivated
	}
	return CanActivate
}

// LegalActions returns every action available to player in the current
// state: one PlayCard per legal card, plus one ActivateProgram per
// currently-activatable owned program.
func (r *Round) LegalActions(player card.PlayerName) []Action {
	turn, live := r.CurrentTurn()
	if !live || turn != player {
		return nil
	}
	var actions []Action
	for _, c := range r.hands[player].Cards() {
		if r.canPlayCard(player, c) {
			actions = append(actions, PlayCard(c))
		}
	}
	for _, name := range r.programOwners[player] {
		id := delegate.ProgramId{Name: name, Owner: player}
		if r.canActivateProgram(id) {
			actions = append(actions, ActivateProgram(id))
		}
	}
	return actions
}

// ApplyAction executes action on behalf of player, mutating the round in
// place. It panics if action is not currently legal for player: callers
// are expected to have already filtered via LegalActions.
func (r *Round) ApplyAction(player card.PlayerName, action Action) {
	switch action.Kind {
	case ActionPlayCard:
		if !r.canPlayCard(player, action.Card) {
			panic(fmt.Sprintf("round: illegal action %s for %s", action, player))
		}
		r.playCard(player, action.Card)
	case ActionActivateProgram:
		if !r.canActivateProgram(action.ProgramID) {
			panic(fmt.Sprintf("round: illegal action %s for %s", action, player))
		}
		r.activateProgram(action.ProgramID)
	default:
		panic(fmt.Sprintf("round: invalid action kind %d", action.Kind))
	}
}

// playCard removes c from player's hand and adds it to the current trick.
func (r *Round) playCard(player card.PlayerName, c card.Card) {
	r.hands[player] = r.hands[player].Remove(c)
	r.currentTrick.Play(player, c)
	if r.currentTrick.IsComplete() {
		winner := r.resolveTrickWinner()
		r.completedTricks = append(r.completedTricks, CompletedTrick{Trick: r.currentTrick, Winner: winner})
		r.currentTrick = NewTrick()
	}
}

// resolveTrickWinner computes the raw suit/trump/rank winner and then
// threads it through the TrickWinner delegate chain.
func (r *Round) resolveTrickWinner() card.PlayerName {
	raw := r.currentTrick.rawWinner(r.trump)
	return r.delegates.TrickWinner.Run(r, r.ProgramState, r.TrickNumber(), raw)
}

// activateProgram runs the activated mutation hook and persists its
// resulting Context.State back into the round's program-state map.
func (r *Round) activateProgram(id delegate.ProgramId) {
	newState := r.delegates.Activated.Run(r, id, r.ProgramState(id))
	r.SetProgramState(id, newState)
}
