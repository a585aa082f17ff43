package matchup

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/thurn/dotdq/internal/agent"
	"github.com/thurn/dotdq/internal/card"
)

func firstAvailableSeats() Seats {
	return Seats{
		card.User:  agent.FirstAvailableAction,
		card.West:  agent.FirstAvailableAction,
		card.North: agent.FirstAvailableAction,
		card.East:  agent.FirstAvailableAction,
	}
}

func TestRunSequentialReturnsOneResultPerMatch(t *testing.T) {
	cfg := Config{Matches: 3, MoveTime: 50 * time.Millisecond}
	results := Run(cfg, firstAvailableSeats(), zerolog.Nop())

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for i, r := range results {
		if r.MatchNumber != i+1 {
			t.Errorf("results[%d].MatchNumber = %d, want %d", i, r.MatchNumber, i+1)
		}
		if len(r.Scores) != 4 {
			t.Errorf("results[%d].Scores has %d entries, want 4", i, len(r.Scores))
		}
	}
}

func TestRunConcurrentMatchesResultOrderingMatchesSequential(t *testing.T) {
	cfg := Config{Matches: 6, MoveTime: 50 * time.Millisecond, Workers: 3}
	results := Run(cfg, firstAvailableSeats(), zerolog.Nop())

	if len(results) != 6 {
		t.Fatalf("len(results) = %d, want 6", len(results))
	}
	for i, r := range results {
		if r.MatchNumber != i+1 {
			t.Errorf("results[%d].MatchNumber = %d, want %d (worker split must not scramble ordering)", i, r.MatchNumber, i+1)
		}
	}
}

func TestRunConcurrentAndSequentialAgreeForTheSameSeed(t *testing.T) {
	seq := Run(Config{Matches: 2, MoveTime: 50 * time.Millisecond}, firstAvailableSeats(), zerolog.Nop())
	conc := Run(Config{Matches: 2, MoveTime: 50 * time.Millisecond, Workers: 2}, firstAvailableSeats(), zerolog.Nop())

	for i := range seq {
		for player := range seq[i].Scores {
			if seq[i].Scores[player] != conc[i].Scores[player] {
				t.Errorf("match %d: sequential score %d != concurrent score %d for %s",
					i+1, seq[i].Scores[player], conc[i].Scores[player], player)
			}
		}
	}
}
