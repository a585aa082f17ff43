package alphabeta

import (
	"testing"
	"time"

	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/gamestate"
	"github.com/thurn/dotdq/internal/round"
)

func trickEvaluator(r *round.Round, player card.PlayerName) int {
	return gamestate.TrickEvaluator(r.Status(), player)
}

func oneCardEachHand() map[card.PlayerName]card.Hand {
	return map[card.PlayerName]card.Hand{
		card.User:  card.NewHand(card.NewCard(card.Hearts, card.Two)),
		card.West:  card.NewHand(card.NewCard(card.Hearts, card.King)),
		card.North: card.NewHand(card.NewCard(card.Hearts, card.Queen)),
		card.East:  card.NewHand(card.NewCard(card.Hearts, card.Jack)),
	}
}

func TestPickActionReturnsALegalAction(t *testing.T) {
	contracts := map[card.PlayerName]int{card.User: 1, card.West: 0, card.North: 0, card.East: 0}
	r := round.New(oneCardEachHand(), nil, contracts, nil)

	agent := New(4, trickEvaluator)
	action := agent.PickAction(r, card.User, Config{Deadline: time.Now().Add(time.Second)})

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

func TestPickActionOnlyOptionWhenSingleCardInHand(t *testing.T) {
	contracts := map[card.PlayerName]int{}
	r := round.New(oneCardEachHand(), nil, contracts, nil)

	agent := New(4, trickEvaluator)
	action := agent.PickAction(r, card.User, Config{Deadline: time.Now().Add(time.Second)})

	want := round.PlayCard(card.NewCard(card.Hearts, card.Two))
	if action != want {
		t.Errorf("PickAction() = %s, want %s (the only card in hand)", action, want)
	}
}

// rankOfLastPlay evaluates a position by the rank of the most recently
// played card, so a maximizing agent comparing two immediate root actions
// should always prefer playing the higher-ranked card.
func rankOfLastPlay(r *round.Round, player card.PlayerName) int {
	cards := r.CurrentTrick().Cards()
	if len(cards) == 0 {
		return 0
	}
	return int(cards[len(cards)-1].Card.Rank)
}

func TestPickActionPrefersTheHigherScoringRootAction(t *testing.T) {
	hands := map[card.PlayerName]card.Hand{
		card.User:  card.NewHand(card.NewCard(card.Hearts, card.Ace), card.NewCard(card.Hearts, card.Two)),
		card.West:  card.NewHand(card.NewCard(card.Hearts, card.King)),
		card.North: card.NewHand(card.NewCard(card.Hearts, card.Queen)),
		card.East:  card.NewHand(card.NewCard(card.Hearts, card.Jack)),
	}
	r := round.New(hands, nil, map[card.PlayerName]int{}, nil)

	agent := New(1, rankOfLastPlay)
	action := agent.PickAction(r, card.User, Config{Deadline: time.Now().Add(time.Second)})

	want := round.PlayCard(card.NewCard(card.Hearts, card.Ace))
	if action != want {
		t.Errorf("PickAction() = %s, want %s (the higher-ranked, higher-scoring choice)", action, want)
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

	agent := New(4, trickEvaluator)
	agent.PickAction(r, card.User, Config{Deadline: time.Now().Add(time.Second)})
}
