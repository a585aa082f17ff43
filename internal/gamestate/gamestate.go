// Package gamestate defines the generic state-node abstraction the search
// agents are written against, plus the small set of concrete
// StateEvaluator implementations. Grounded on
// original_source/src/ai/src/game/definitions.rs's GameStateNode impl for
// PlayPhaseData and core/win_loss_evaluator.rs /
// ai/src/game/evaluators.rs for the evaluators.
package gamestate

import "github.com/thurn/dotdq/internal/card"

// StatusKind distinguishes an in-progress round from a completed one.
type StatusKind int

const (
	InProgress StatusKind = iota
	Completed
)

// Status reports whether a state is still live (and whose turn it is) or
// finished (and every player's final score). TricksWon and Contract are
// populated in both phases so in-progress evaluators (TrickEvaluator) can
// score a node without a direct dependency on the round package.
type Status struct {
	Kind      StatusKind
	Turn      card.PlayerName
	Scores    map[card.PlayerName]int
	TricksWon map[card.PlayerName]int
	Contract  map[card.PlayerName]int
}

// Evaluator scores a state from a given player's perspective, used as the
// leaf heuristic for depth-limited search or the payoff at terminal nodes
// during MCTS playouts.
type Evaluator func(status Status, player card.PlayerName) int

// WinLossEvaluator returns +1 if player has (a share of) the highest final
// score, -1 otherwise, 0 while the round is still in progress.
func WinLossEvaluator(status Status, player card.PlayerName) int {
	if status.Kind == InProgress {
		return 0
	}
	max := minInt
	for _, s := range status.Scores {
		if s > max {
			max = s
		}
	}
	if status.Scores[player] == max {
		return 1
	}
	return -1
}

const minInt = -1 << 62

// TrickEvaluator returns the player's final score at a terminal state;
// while in progress, returns tricks won so far, or -1 if the player has
// already won more tricks than their contract calls for (discourages
// overshoot).
func TrickEvaluator(status Status, player card.PlayerName) int {
	if status.Kind == Completed {
		return status.Scores[player]
	}
	tricksWon, contract := status.TricksWon[player], status.Contract[player]
	if tricksWon > contract {
		return -1
	}
	return tricksWon
}

// MaxTricksEvaluator always returns the player's current trick count,
// regardless of phase. Used to estimate an agent's own contract bid.
func MaxTricksEvaluator(status Status, player card.PlayerName) int {
	return status.TricksWon[player]
}
