// Package matchup runs one or more rounds between four seated agents and
// reports final scores.
//
// Grounded on original_source/src/ai/src/testing/run_matchup.rs's Args,
// Verbosity, and match loop (deal, drive GameStatus::InProgress until
// Completed, report result, clear_action_line's progress-line redraw),
// adapted from its 2-seat (user vs. opponent) GameStatus::Completed{winner}
// shape to a 4-seat scores-map shape: every seat can carry a distinct
// agent, and a match's outcome is reported as all four final scores
// rather than a single winner. Logging uses zerolog in place of the
// original's println!.
//
// Independent matches may run concurrently, unlike the original which
// runs matches strictly sequentially; the worker-pool fan-out here is
// grounded on BigInteger28-Azen's goroutine+sync.WaitGroup pattern in
// pkg/engine/engine.go's BestMove (split total work across N workers,
// launch with a WaitGroup, collect per-worker results after Wait).
package matchup

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/thurn/dotdq/internal/agent"
	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/deal"
	"github.com/thurn/dotdq/internal/delegate"
	"github.com/thurn/dotdq/internal/gamestate"
	"github.com/thurn/dotdq/internal/round"
)

// Verbosity controls how much is logged while matches run, matching the
// original's None < Matches < Actions ordering.
type Verbosity int

const (
	None Verbosity = iota
	Matches
	Actions
)

// Seats maps each of the four players to the agent playing that seat.
type Seats map[card.PlayerName]agent.Agent

// Config mirrors original_source's Args: how many matches to run, the
// per-move deadline, how much to log, and the search-timeout failure
// policy, plus an added Workers field for concurrent match running.
type Config struct {
	Matches              int
	MoveTime             time.Duration
	Verbosity            Verbosity
	PanicOnSearchTimeout bool
	// Workers bounds how many matches run concurrently; 0 or 1 runs
	// sequentially in the calling goroutine.
	Workers int
}

// Result reports one match's final scores.
type Result struct {
	MatchNumber int
	Scores      map[card.PlayerName]int
}

// Run plays cfg.Matches independent rounds with the given seat assignments
// and returns every match's final scores, in match-number order regardless
// of which worker finished first.
//
// A seat's agent is typically shared across every match (the same *Uct1
// Agent instance, say, carrying one *rand.Rand), and independent matches
// may run concurrently here: without serialization, concurrent workers
// would race on that shared *rand.Rand. Each seat's agent is therefore
// wrapped in a one-slot-mailbox guard (a capacity-1 buffered channel used
// as a mutex) so only one PickAction call against a given agent instance
// runs at a time, regardless of which match it came from.
func Run(cfg Config, seats Seats, logger zerolog.Logger) []Result {
	if cfg.Workers <= 1 {
		return runSequential(cfg, seats, logger)
	}
	return runConcurrent(cfg, guardSeats(seats), logger)
}

// guardSeats wraps every seat's agent in a mailbox guard, for use when
// matches may run concurrently against shared agent instances.
func guardSeats(seats Seats) Seats {
	guarded := make(Seats, len(seats))
	for player, a := range seats {
		guarded[player] = newMailboxAgent(a)
	}
	return guarded
}

// mailboxAgent serializes PickAction calls against a wrapped agent using a
// capacity-1 buffered channel as a one-slot mailbox: acquiring the single
// token before calling PickAction, returning it after.
type mailboxAgent struct {
	inner   agent.Agent
	mailbox chan struct{}
}

func newMailboxAgent(inner agent.Agent) *mailboxAgent {
	mailbox := make(chan struct{}, 1)
	mailbox <- struct{}{}
	return &mailboxAgent{inner: inner, mailbox: mailbox}
}

func (m *mailboxAgent) Name() string { return m.inner.Name() }

func (m *mailboxAgent) PickAction(r *round.Round, player card.PlayerName, cfg agent.Config) round.Action {
	<-m.mailbox
	defer func() { m.mailbox <- struct{}{} }()
	return m.inner.PickAction(r, player, cfg)
}

func runSequential(cfg Config, seats Seats, logger zerolog.Logger) []Result {
	results := make([]Result, cfg.Matches)
	for i := 0; i < cfg.Matches; i++ {
		results[i] = playMatch(i+1, cfg, seats, logger)
	}
	return results
}

// runConcurrent splits the match count across cfg.Workers goroutines, each
// running its assigned matches sequentially, then collects every result
// after waiting for all workers to finish.
func runConcurrent(cfg Config, seats Seats, logger zerolog.Logger) []Result {
	results := make([]Result, cfg.Matches)
	perWorker := cfg.Matches / cfg.Workers
	if perWorker < 1 {
		perWorker = 1
	}

	var wg sync.WaitGroup
	start := 0
	for w := 0; w < cfg.Workers && start < cfg.Matches; w++ {
		end := start + perWorker
		if w == cfg.Workers-1 || end > cfg.Matches {
			end = cfg.Matches
		}
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			for i := from; i < to; i++ {
				results[i] = playMatch(i+1, cfg, seats, logger)
			}
		}(start, end)
		start = end
	}
	wg.Wait()
	return results
}

// playMatch deals a fresh round and drives it to completion, asking
// whichever seat is on turn for its next action each step until the round
// reports Completed.
func playMatch(matchNumber int, cfg Config, seats Seats, logger zerolog.Logger) Result {
	if cfg.Verbosity >= Matches {
		logger.Info().Int("match", matchNumber).Msg("starting match")
	}

	r := deal.NewRound(deal.Config{
		Rand:          rand.New(rand.NewSource(int64(matchNumber))),
		ProgramOwners: map[card.PlayerName][]delegate.ProgramName{},
	})

	for {
		status := r.Status()
		if status.Kind == gamestate.Completed {
			if cfg.Verbosity >= Matches {
				logger.Info().
					Int("match", matchNumber).
					Interface("scores", status.Scores).
					Msg("match complete")
			}
			return Result{MatchNumber: matchNumber, Scores: status.Scores}
		}

		turn := status.Turn
		a, ok := seats[turn]
		if !ok {
			panic(fmt.Sprintf("matchup: no agent assigned to seat %s", turn))
		}
		action := a.PickAction(r, turn, agent.Config{
			Deadline:       time.Now().Add(cfg.MoveTime),
			PanicOnTimeout: cfg.PanicOnSearchTimeout,
		})
		r.ApplyAction(turn, action)
		if cfg.Verbosity >= Actions {
			logger.Debug().
				Int("match", matchNumber).
				Str("player", turn.String()).
				Str("agent", a.Name()).
				Str("action", action.String()).
				Msg("action performed")
		}
	}
}
