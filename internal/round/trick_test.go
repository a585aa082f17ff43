package round

import (
	"testing"

	"github.com/thurn/dotdq/internal/card"
)

func TestTrickLeadSuitAndLeader(t *testing.T) {
	tr := NewTrick()
	if _, ok := tr.LeadSuit(); ok {
		t.Fatal("empty trick should have no lead suit")
	}
	if _, ok := tr.Leader(); ok {
		t.Fatal("empty trick should have no leader")
	}

	tr.Play(card.West, card.NewCard(card.Diamonds, card.Nine))
	suit, ok := tr.LeadSuit()
	if !ok || suit != card.Diamonds {
		t.Fatalf("LeadSuit() = (%s, %v), want (Diamonds, true)", suit, ok)
	}
	leader, ok := tr.Leader()
	if !ok || leader != card.West {
		t.Fatalf("Leader() = (%s, %v), want (West, true)", leader, ok)
	}
}

func TestTrickIsCompleteAfterFourPlays(t *testing.T) {
	tr := NewTrick()
	for i, player := range card.Players {
		if tr.IsComplete() {
			t.Fatalf("trick reported complete after only %d plays", i)
		}
		tr.Play(player, card.NewCard(card.Clubs, card.Two))
	}
	if !tr.IsComplete() {
		t.Fatal("trick with four plays should be complete")
	}
}

func TestRawWinnerHighestOfLedSuitWinsWithNoTrump(t *testing.T) {
	tr := NewTrick()
	tr.Play(card.User, card.NewCard(card.Hearts, card.Nine))
	tr.Play(card.West, card.NewCard(card.Clubs, card.Ace)) // off suit, cannot win
	tr.Play(card.North, card.NewCard(card.Hearts, card.King))
	tr.Play(card.East, card.NewCard(card.Hearts, card.Two))

	if winner := tr.rawWinner(nil); winner != card.North {
		t.Errorf("rawWinner(nil) = %s, want North (highest heart)", winner)
	}
}

func TestRawWinnerTrumpBeatsLedSuit(t *testing.T) {
	trump := card.Spades
	tr := NewTrick()
	tr.Play(card.User, card.NewCard(card.Hearts, card.Ace))
	tr.Play(card.West, card.NewCard(card.Spades, card.Two)) // lowest trump still wins
	tr.Play(card.North, card.NewCard(card.Hearts, card.King))
	tr.Play(card.East, card.NewCard(card.Clubs, card.Ace))

	if winner := tr.rawWinner(&trump); winner != card.West {
		t.Errorf("rawWinner(&Spades) = %s, want West (only trump in trick)", winner)
	}
}

func TestRawWinnerPanicsOnEmptyTrick(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("rawWinner should panic on an empty trick")
		}
	}()
	tr := NewTrick()
	tr.rawWinner(nil)
}
