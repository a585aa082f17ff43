package mcts

import (
	"math/rand"
	"testing"
	"time"

	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/gamestate"
	"github.com/thurn/dotdq/internal/round"
)

func oneCardEachHand() map[card.PlayerName]card.Hand {
	return map[card.PlayerName]card.Hand{
		card.User:  card.NewHand(card.NewCard(card.Hearts, card.Two)),
		card.West:  card.NewHand(card.NewCard(card.Hearts, card.King)),
		card.North: card.NewHand(card.NewCard(card.Hearts, card.Queen)),
		card.East:  card.NewHand(card.NewCard(card.Hearts, card.Jack)),
	}
}

func TestPickActionOnlyOptionWhenSingleCardInHand(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	r := round.New(oneCardEachHand(), nil, map[card.PlayerName]int{}, nil)

	agent := New(50, 0, gamestate.TrickEvaluator, rng)
	action := agent.PickAction(r, card.User, Config{Deadline: time.Now().Add(time.Second)})

	want := round.PlayCard(card.NewCard(card.Hearts, card.Two))
	if action != want {
		t.Errorf("PickAction() = %s, want %s (the only card in hand)", action, want)
	}
}

func TestPickActionRespectsIterationBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	r := round.New(oneCardEachHand(), nil, map[card.PlayerName]int{}, nil)

	agent := New(10, 0, gamestate.TrickEvaluator, rng)
	deadline := time.Now().Add(time.Second)
	action := agent.PickAction(r, card.User, Config{Deadline: deadline})

	if !time.Now().Before(deadline) {
		t.Errorf("PickAction ran until the deadline; an iteration budget of 10 should end the search first")
	}

	legal := r.LegalActions(card.User)
	found := false
	for _, a := range legal {
		if a == action {
			found = true
		}
	}
	if !found {
		t.Fatalf("PickAction returned %s, not among LegalActions %v", action, legal)
	}
}

func TestPickActionPanicsWithNoLegalActions(t *testing.T) {
	hands := map[card.PlayerName]card.Hand{
		card.User:  card.NewHand(),
		card.West:  card.NewHand(card.NewCard(card.Hearts, card.King)),
		card.North: card.NewHand(card.NewCard(card.Hearts, card.Queen)),
		card.East:  card.NewHand(card.NewCard(card.Hearts, card.Jack)),
	}
	r := round.New(hands, nil, map[card.PlayerName]int{}, nil)

	defer func() {
		if recover() == nil {
			t.Fatal("PickAction should panic when the player has no legal actions")
		}
	}()

	rng := rand.New(rand.NewSource(1))
	agent := New(10, 0, gamestate.TrickEvaluator, rng)
	agent.PickAction(r, card.User, Config{Deadline: time.Now().Add(time.Second)})
}
