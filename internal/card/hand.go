package card

import "math/bits"

// Hand is a dense 64-bit set of cards (only the low 52 bits are ever used).
// Membership, insertion, removal and cardinality are all O(1) bit
// operations, and iteration visits only the set bits, which matters because
// the search agents clone and mutate hands at a very high rate.
type Hand uint64

// NewHand builds a Hand containing the given cards.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h = h.Add(c)
	}
	return h
}

// Add returns a new Hand with c inserted.
func (h Hand) Add(c Card) Hand {
	return h | (1 << uint(c.Index()))
}

// Remove returns a new Hand with c removed.
func (h Hand) Remove(c Card) Hand {
	return h &^ (1 << uint(c.Index()))
}

// Contains reports whether c is a member of h.
func (h Hand) Contains(c Card) bool {
	return h&(1<<uint(c.Index())) != 0
}

// Len returns the number of cards in h.
func (h Hand) Len() int {
	return bits.OnesCount64(uint64(h))
}

// IsEmpty reports whether h has no cards.
func (h Hand) IsEmpty() bool {
	return h == 0
}

// Cards returns the cards in h in ascending Index order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.Len())
	remaining := uint64(h)
	for remaining != 0 {
		idx := bits.TrailingZeros64(remaining)
		cards = append(cards, CardAt(idx))
		remaining &= remaining - 1
	}
	return cards
}

// CardsOfSuit returns the cards in h belonging to the given suit, ascending
// by rank.
func (h Hand) CardsOfSuit(suit Suit) []Card {
	var out []Card
	for _, c := range h.Cards() {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// HasSuit reports whether h contains any card of the given suit.
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h.Cards() {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// FullDeck is a Hand containing all 52 cards.
const FullDeck Hand = (1 << 52) - 1
