package agent

import (
	"math/rand"
	"testing"
	"time"

	"github.com/thurn/dotdq/internal/deal"
)

func TestFirstAvailableActionPlaysALegalAction(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := deal.NewRound(deal.Config{Rand: rng})

	turn, live := r.CurrentTurn()
	if !live {
		t.Fatal("freshly dealt round should not be complete")
	}

	action := FirstAvailableAction.PickAction(r, turn, Config{Deadline: time.Now().Add(time.Second)})

	legal := r.LegalActions(turn)
	found := false
	for _, a := range legal {
		if a == action {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("PickAction returned %s, which is not in LegalActions(%s)", action, turn)
	}
}

func TestFirstAvailableActionPlaysARoundToCompletion(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	r := deal.NewRound(deal.Config{Rand: rng})

	for i := 0; i < 13*4+1; i++ {
		turn, live := r.CurrentTurn()
		if !live {
			return
		}
		action := FirstAvailableAction.PickAction(r, turn, Config{Deadline: time.Now().Add(time.Second)})
		r.ApplyAction(turn, action)
	}

	t.Fatal("round did not complete within 52 plays")
}

func TestAgentCatalogNames(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	tests := []struct {
		agent    Agent
		expected string
	}{
		{AlphaBetaDepth10(), "ALPHA_BETA"},
		{AlphaBetaDepth13(), "ALPHA_BETA_DEPTH_13"},
		{Uct1(rng), "UCT1"},
		{Uct1Iterations250(rng), "UCT1_ITERATIONS_250"},
		{Uct1MaxTricks(rng), "UCT1_MAX_TRICKS"},
		{FirstAvailableAction, "FIRST_AVAILABLE_ACTION"},
	}

	for _, tt := range tests {
		if got := tt.agent.Name(); got != tt.expected {
			t.Errorf("Name() = %s, want %s", got, tt.expected)
		}
	}
}
