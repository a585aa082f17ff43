// Package alphabeta implements a depth-limited negamax agent with
// alpha-beta pruning and iterative deepening, using the same
// iterative-deepening/deadline scaffolding shape as the pack's
// chessvariantengine search machinery (TimeControl-style deadline checks).
//
// The search operates directly on *round.Round and round.Action: the set
// of state-node implementations is closed to exactly one type, so there is
// no dynamic-dispatch interface here.
package alphabeta

import (
	"errors"
	"math"
	"time"

	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/gamestate"
	"github.com/thurn/dotdq/internal/round"
)

// ErrSearchTimeout is returned (via panic, see Config.PanicOnTimeout) when
// the deadline expires mid-search and the caller asked to be told.
var ErrSearchTimeout = errors.New("alphabeta: search deadline exceeded")

// Config configures one PickAction call: the agent's depth and evaluator
// are fixed at construction, so only the per-call deadline and timeout
// policy vary.
type Config struct {
	Deadline       time.Time
	PanicOnTimeout bool
}

// Agent is a configured alpha-beta searcher for a fixed maximum depth and
// evaluator. Multiple named agents (AlphaBetaDepth10, AlphaBetaDepth13) are
// just different MaxDepth values sharing this one implementation.
type Agent struct {
	MaxDepth  int
	Evaluator func(r *round.Round, player card.PlayerName) int
}

// New builds an alpha-beta agent with the given search depth and
// evaluator.
func New(maxDepth int, evaluator func(r *round.Round, player card.PlayerName) int) *Agent {
	return &Agent{MaxDepth: maxDepth, Evaluator: evaluator}
}

type searchState struct {
	deadline       time.Time
	panicOnTimeout bool
	player         card.PlayerName
	evaluator      func(r *round.Round, player card.PlayerName) int
}

// PickAction runs iterative-deepening negamax up to a.MaxDepth, stopping
// early if cfg.Deadline fires, and returns the best action found at the
// deepest depth that finished in time.
func (a *Agent) PickAction(r *round.Round, player card.PlayerName, cfg Config) round.Action {
	legal := r.LegalActions(player)
	if len(legal) == 0 {
		panic("alphabeta: no legal actions for player to move")
	}
	best := legal[0]
	state := &searchState{deadline: cfg.Deadline, panicOnTimeout: cfg.PanicOnTimeout, player: player, evaluator: a.Evaluator}

	for depth := 1; depth <= a.MaxDepth; depth++ {
		action, ok := a.searchRoot(state, r, legal, depth)
		if !ok {
			break
		}
		best = action
	}
	return best
}

// searchRoot performs one iterative-deepening pass at the given depth,
// returning the best root action and whether the pass completed before the
// deadline.
func (a *Agent) searchRoot(state *searchState, r *round.Round, legal []round.Action, depth int) (round.Action, bool) {
	if timedOut(state) {
		return round.Action{}, false
	}
	best := legal[0]
	bestScore := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, action := range legal {
		child := r.Clone()
		child.ApplyAction(state.player, action)
		score, ok := negamax(state, child, depth-1, alpha, beta, state.player)
		if !ok {
			return round.Action{}, false
		}
		if score > bestScore {
			bestScore = score
			best = action
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, true
}

// negamax recurses over the game tree with alpha-beta pruning. The second
// return value is false if the deadline expired during this subtree
// (propagated up so the caller abandons the in-progress depth).
func negamax(state *searchState, r *round.Round, depth int, alpha, beta float64, player card.PlayerName) (float64, bool) {
	if timedOut(state) {
		return 0, false
	}
	status := r.Status()
	if status.Kind == gamestate.Completed {
		return marginScore(status, player), true
	}
	if depth == 0 {
		return float64(state.evaluator(r, player)), true
	}
	turn := status.Turn
	legal := r.LegalActions(turn)
	if len(legal) == 0 {
		// No legal actions for the player to move is an internal
		// invariant violation: every InProgress state has a live turn
		// with at least one legal action (PlayCard of some card in hand).
		panic("alphabeta: no legal actions in non-terminal state")
	}
	maximizing := turn == player
	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	for _, action := range legal {
		child := r.Clone()
		child.ApplyAction(turn, action)
		score, ok := negamax(state, child, depth-1, alpha, beta, player)
		if !ok {
			return 0, false
		}
		if maximizing {
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score < best {
				best = score
			}
			if score < beta {
				beta = score
			}
		}
		if alpha >= beta {
			break
		}
	}
	return best, true
}

// marginScore implements the terminal-state margin form from §4.4 step 1:
// score[player] - max(score[other]).
func marginScore(status gamestate.Status, player card.PlayerName) float64 {
	maxOther := math.Inf(-1)
	for p, s := range status.Scores {
		if p == player {
			continue
		}
		if float64(s) > maxOther {
			maxOther = float64(s)
		}
	}
	return float64(status.Scores[player]) - maxOther
}

func timedOut(state *searchState) bool {
	if !time.Now().Before(state.deadline) {
		if state.panicOnTimeout {
			panic(ErrSearchTimeout)
		}
		return true
	}
	return false
}
