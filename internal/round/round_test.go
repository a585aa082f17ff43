package round

import (
	"testing"

	"github.com/thurn/dotdq/internal/card"
)

func allHandsOf(suit card.Suit) map[card.PlayerName]card.Hand {
	hands := make(map[card.PlayerName]card.Hand, 4)
	ranks := []card.Rank{card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven,
		card.Eight, card.Nine, card.Ten, card.Jack, card.Queen, card.King, card.Ace}
	for i, player := range card.Players {
		var cards []card.Card
		for j := 0; j < 13; j++ {
			cards = append(cards, card.NewCard(suit, ranks[(j+i*3)%13]))
		}
		hands[player] = card.NewHand(cards...)
	}
	return hands
}

func newTestRound(contracts map[card.PlayerName]int) *Round {
	hands := allHandsOf(card.Hearts)
	return New(hands, nil, contracts, nil)
}

func TestNewRoundStartsWithUserToPlay(t *testing.T) {
	r := newTestRound(map[card.PlayerName]int{card.User: 3, card.West: 3, card.North: 3, card.East: 4})
	turn, live := r.CurrentTurn()
	if !live {
		t.Fatal("fresh round should not be complete")
	}
	if turn != card.User {
		t.Errorf("CurrentTurn() = %s, want User", turn)
	}
	if !r.HasLead(card.User) {
		t.Error("User should have the lead before any trick is played")
	}
}

func TestApplyActionAdvancesTurnOrder(t *testing.T) {
	r := newTestRound(map[card.PlayerName]int{card.User: 3, card.West: 3, card.North: 3, card.East: 4})

	for _, player := range card.Players {
		turn, live := r.CurrentTurn()
		if !live || turn != player {
			t.Fatalf("expected %s to act, got turn=%s live=%v", player, turn, live)
		}
		hand := r.Hand(player).Cards()
		r.ApplyAction(player, PlayCard(hand[0]))
	}

	if r.TrickNumber() != 1 {
		t.Errorf("TrickNumber() = %d, want 1 after a full trick", r.TrickNumber())
	}
	if len(r.CompletedTricks()) != 1 {
		t.Fatalf("len(CompletedTricks()) = %d, want 1", len(r.CompletedTricks()))
	}
}

func TestApplyActionPanicsOnIllegalCard(t *testing.T) {
	r := newTestRound(map[card.PlayerName]int{card.User: 3, card.West: 3, card.North: 3, card.East: 4})

	defer func() {
		if recover() == nil {
			t.Fatal("ApplyAction should panic on an illegal action")
		}
	}()

	notInHand := card.NewCard(card.Clubs, card.Two)
	r.ApplyAction(card.User, PlayCard(notInHand))
}

func TestMustFollowSuitRestrictsLegalActions(t *testing.T) {
	hands := map[card.PlayerName]card.Hand{
		card.User:  card.NewHand(card.NewCard(card.Hearts, card.Two)),
		card.West:  card.NewHand(card.NewCard(card.Hearts, card.Three), card.NewCard(card.Clubs, card.Four)),
		card.North: card.NewHand(card.NewCard(card.Hearts, card.Five)),
		card.East:  card.NewHand(card.NewCard(card.Hearts, card.Six)),
	}
	r := New(hands, nil, map[card.PlayerName]int{}, nil)

	r.ApplyAction(card.User, PlayCard(card.NewCard(card.Hearts, card.Two)))

	legal := r.legalCardsForTest(card.West)
	if len(legal) != 1 || legal[0].Suit != card.Hearts {
		t.Fatalf("West must follow hearts, got legal cards %v", legal)
	}
}

func (r *Round) legalCardsForTest(player card.PlayerName) []card.Card {
	var cards []card.Card
	for _, a := range r.LegalActions(player) {
		if a.Kind == ActionPlayCard {
			cards = append(cards, a.Card)
		}
	}
	return cards
}

func TestContractValueStepFunction(t *testing.T) {
	tests := []struct {
		contract int
		expected int
	}{
		{0, 0},
		{-1, 0},
		{1, 10},
		{5, 100},
		{12, 2000},
		{13, 2500},
		{20, 2500},
	}
	for _, tt := range tests {
		if got := contractValue(tt.contract); got != tt.expected {
			t.Errorf("contractValue(%d) = %d, want %d", tt.contract, got, tt.expected)
		}
	}
}

func TestScoresOnlyAwardedOnMetContract(t *testing.T) {
	hands := map[card.PlayerName]card.Hand{
		card.User:  card.NewHand(card.NewCard(card.Hearts, card.Ace)),
		card.West:  card.NewHand(card.NewCard(card.Hearts, card.Two)),
		card.North: card.NewHand(card.NewCard(card.Hearts, card.Three)),
		card.East:  card.NewHand(card.NewCard(card.Hearts, card.Four)),
	}
	contracts := map[card.PlayerName]int{card.User: 1, card.West: 1, card.North: 0, card.East: 0}
	r := New(hands, nil, contracts, nil)

	for _, player := range card.Players {
		hand := r.Hand(player).Cards()
		r.ApplyAction(player, PlayCard(hand[0]))
	}

	if !r.IsComplete() {
		t.Fatal("round with one card per hand should be complete after one trick")
	}

	scores := r.Scores()
	if scores[card.User] != 10 {
		t.Errorf("User met a 1-trick contract, want score 10, got %d", scores[card.User])
	}
	if scores[card.West] != 0 {
		t.Errorf("West did not win a trick against a 1-trick contract, want score 0, got %d", scores[card.West])
	}
	if scores[card.North] != 0 || scores[card.East] != 0 {
		t.Errorf("North/East had a 0-trick contract and won nothing, want 0 each, got %d/%d", scores[card.North], scores[card.East])
	}
}

func TestTrumpDefaultsToNoneAndCanBeSet(t *testing.T) {
	r := newTestRound(map[card.PlayerName]int{})
	if _, ok := r.Trump(); ok {
		t.Fatal("fresh round constructed with nil trump should report none")
	}
	r.SetTrump(card.Spades)
	suit, ok := r.Trump()
	if !ok || suit != card.Spades {
		t.Fatalf("Trump() = (%s, %v), want (Spades, true)", suit, ok)
	}
}
