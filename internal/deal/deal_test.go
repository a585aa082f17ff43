package deal

import (
	"math/rand"
	"testing"

	"github.com/thurn/dotdq/internal/card"
)

func TestNewRoundDealsThirteenCardsPerSeat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := NewRound(Config{Rand: rng})

	for _, player := range card.Players {
		if got := r.Hand(player).Len(); got != 13 {
			t.Errorf("Hand(%s).Len() = %d, want 13", player, got)
		}
	}
}

func TestNewRoundDealsEveryCardExactlyOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	r := NewRound(Config{Rand: rng})

	seen := make(map[card.Card]bool, 52)
	for _, player := range card.Players {
		for _, c := range r.Hand(player).Cards() {
			if seen[c] {
				t.Fatalf("%s dealt to more than one seat", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != 52 {
		t.Errorf("dealt %d distinct cards, want 52", len(seen))
	}
}

func TestNewRoundIsDeterministicForAGivenSeed(t *testing.T) {
	cfgA := Config{Rand: rand.New(rand.NewSource(42))}
	cfgB := Config{Rand: rand.New(rand.NewSource(42))}

	a := NewRound(cfgA)
	b := NewRound(cfgB)

	for _, player := range card.Players {
		if a.Hand(player) != b.Hand(player) {
			t.Errorf("hands for %s diverged between two rounds seeded identically", player)
		}
	}
	trumpA, okA := a.Trump()
	trumpB, okB := b.Trump()
	if okA != okB || trumpA != trumpB {
		t.Errorf("trump diverged between two rounds seeded identically: (%s,%v) vs (%s,%v)", trumpA, okA, trumpB, okB)
	}
}

func TestNewRoundUserLeadsFirstTrick(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := NewRound(Config{Rand: rng})

	turn, live := r.CurrentTurn()
	if !live || turn != card.User {
		t.Errorf("CurrentTurn() = (%s, %v), want (User, true) for a freshly dealt round", turn, live)
	}
}
