package round

import "github.com/thurn/dotdq/internal/card"

// PlayedCard records one card played to a trick by a player.
type PlayedCard struct {
	Player card.PlayerName
	Card   card.Card
}

// Trick is an ordered sequence of up to four (player, card) pairs.
type Trick struct {
	cards []PlayedCard
}

// NewTrick returns an empty trick.
func NewTrick() Trick {
	return Trick{}
}

// Play appends a card played by player to the trick.
func (t *Trick) Play(player card.PlayerName, c card.Card) {
	t.cards = append(t.cards, PlayedCard{Player: player, Card: c})
}

// Cards returns the cards played so far, in play order.
func (t *Trick) Cards() []PlayedCard {
	return t.cards
}

// Size returns the number of cards played to this trick.
func (t *Trick) Size() int {
	return len(t.cards)
}

// IsEmpty reports whether no card has been played to this trick yet.
func (t *Trick) IsEmpty() bool {
	return len(t.cards) == 0
}

// IsComplete reports whether all four seats have played to this trick.
func (t *Trick) IsComplete() bool {
	return len(t.cards) == 4
}

// LeadSuit returns the suit of the first card played, and false if the
// trick is still empty.
func (t *Trick) LeadSuit() (card.Suit, bool) {
	if len(t.cards) == 0 {
		return 0, false
	}
	return t.cards[0].Card.Suit, true
}

// Leader returns the player who led this trick, and false if empty.
func (t *Trick) Leader() (card.PlayerName, bool) {
	if len(t.cards) == 0 {
		return 0, false
	}
	return t.cards[0].Player, true
}

// rawWinner computes the trick's tentative winner: trump beats everything
// else, else the led suit beats everything else, else compare by rank. It
// panics if the trick is empty, since resolving the winner of an empty
// trick is an internal invariant violation.
func (t *Trick) rawWinner(trump *card.Suit) card.PlayerName {
	if len(t.cards) == 0 {
		panic("round: cannot resolve winner of an empty trick")
	}
	led, _ := t.LeadSuit()
	best := t.cards[0]
	for _, pc := range t.cards[1:] {
		if beats(pc.Card, best.Card, led, trump) {
			best = pc
		}
	}
	return best.Player
}

// beats reports whether a outranks b under the led-suit/trump ordering.
func beats(a, b card.Card, led card.Suit, trump *card.Suit) bool {
	aTrump := trump != nil && a.Suit == *trump
	bTrump := trump != nil && b.Suit == *trump
	if aTrump != bTrump {
		return aTrump
	}
	if aTrump && bTrump {
		return a.Rank > b.Rank
	}
	aLed := a.Suit == led
	bLed := b.Suit == led
	if aLed != bLed {
		return aLed
	}
	if aLed && bLed {
		return a.Rank > b.Rank
	}
	return false
}

// CompletedTrick records a finished trick together with its resolved
// winner.
type CompletedTrick struct {
	Trick  Trick
	Winner card.PlayerName
}
