// Package agent provides the fixed catalog of playable search agents:
// AlphaBetaDepth10, AlphaBetaDepth13, Uct1, Uct1Iterations250,
// Uct1MaxTricks, and FirstAvailableAction.
//
// Grounded on original_source/src/ai/src/game/agents.rs's AgentName enum and
// get_agent dispatch, and AgentData::omniscient's pairing of a search
// algorithm with an evaluator into one named constant. Rust expresses each
// pairing as a const generic-monomorphized AgentData value; since the set
// of agents is fixed and small, this is re-expressed as a small set of
// constructor functions returning a common Agent interface rather than a
// generic type parameterized over algorithm and evaluator.
package agent

import (
	"math/rand"
	"time"

	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/gamestate"
	"github.com/thurn/dotdq/internal/round"
	"github.com/thurn/dotdq/internal/search/alphabeta"
	"github.com/thurn/dotdq/internal/search/mcts"
)

// Config mirrors original_source's AgentConfig: a wall-clock deadline for
// one PickAction call, and whether exceeding it is a fatal error or a
// silent best-known-action fallback.
type Config struct {
	Deadline       time.Time
	PanicOnTimeout bool
}

// Agent picks the next action for player to take from r's current state.
type Agent interface {
	Name() string
	PickAction(r *round.Round, player card.PlayerName, cfg Config) round.Action
}

// alphaBetaAgent adapts *alphabeta.Agent to the Agent interface.
type alphaBetaAgent struct {
	name  string
	inner *alphabeta.Agent
}

func (a *alphaBetaAgent) Name() string { return a.name }

func (a *alphaBetaAgent) PickAction(r *round.Round, player card.PlayerName, cfg Config) round.Action {
	return a.inner.PickAction(r, player, alphabeta.Config{Deadline: cfg.Deadline, PanicOnTimeout: cfg.PanicOnTimeout})
}

// uct1Agent adapts *mcts.Agent to the Agent interface.
type uct1Agent struct {
	name  string
	inner *mcts.Agent
}

func (a *uct1Agent) Name() string { return a.name }

func (a *uct1Agent) PickAction(r *round.Round, player card.PlayerName, cfg Config) round.Action {
	return a.inner.PickAction(r, player, mcts.Config{Deadline: cfg.Deadline, PanicOnTimeout: cfg.PanicOnTimeout})
}

// AlphaBetaDepth10 mirrors original_source's ALPHA_BETA_AGENT: depth-10
// negamax scored by TrickEvaluator.
func AlphaBetaDepth10() Agent {
	return &alphaBetaAgent{
		name: "ALPHA_BETA",
		inner: alphabeta.New(10, func(state *round.Round, player card.PlayerName) int {
			return gamestate.TrickEvaluator(state.Status(), player)
		}),
	}
}

// AlphaBetaDepth13 is the same algorithm and evaluator at a 13-ply search
// depth, for matchups that can afford the larger search.
func AlphaBetaDepth13() Agent {
	return &alphaBetaAgent{
		name: "ALPHA_BETA_DEPTH_13",
		inner: alphabeta.New(13, func(state *round.Round, player card.PlayerName) int {
			return gamestate.TrickEvaluator(state.Status(), player)
		}),
	}
}

// Uct1 mirrors original_source's UCT1_AGENT: unbounded-depth UCT1 rollouts
// scored by TrickEvaluator, iteration count governed purely by the
// deadline.
func Uct1(rng *rand.Rand) Agent {
	return &uct1Agent{
		name:  "UCT1",
		inner: mcts.New(0, 0, gamestate.TrickEvaluator, rng),
	}
}

// Uct1Iterations250 caps the search to 250 playouts regardless of how much
// of the deadline remains, useful for reproducible matchup benchmarks.
func Uct1Iterations250(rng *rand.Rand) Agent {
	return &uct1Agent{
		name:  "UCT1_ITERATIONS_250",
		inner: mcts.New(250, 0, gamestate.TrickEvaluator, rng),
	}
}

// Uct1MaxTricks scores rollouts with MaxTricksEvaluator, cutting each
// rollout off after 13 plies (a full round is 52 card plays), an agent
// variant that optimizes current trick count rather than final
// contract-adjusted score.
func Uct1MaxTricks(rng *rand.Rand) Agent {
	return &uct1Agent{
		name:  "UCT1_MAX_TRICKS",
		inner: mcts.New(0, 13, gamestate.MaxTricksEvaluator, rng),
	}
}

// firstAvailableAction always plays the first action LegalActions returns;
// used as a trivial opponent and as a deterministic baseline in tests.
type firstAvailableAction struct{}

func (firstAvailableAction) Name() string { return "FIRST_AVAILABLE_ACTION" }

func (firstAvailableAction) PickAction(r *round.Round, player card.PlayerName, _ Config) round.Action {
	legal := r.LegalActions(player)
	if len(legal) == 0 {
		panic("agent: no legal actions available")
	}
	return legal[0]
}

// FirstAvailableAction is the trivial fixed-choice agent.
var FirstAvailableAction Agent = firstAvailableAction{}
