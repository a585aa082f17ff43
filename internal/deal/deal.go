// Package deal builds a fresh round.Round: shuffling and dealing the
// 52-card deck into four 13-card hands, choosing a trump suit, running a
// simple per-seat contract auction, and installing each player's assigned
// programs. round.New itself takes the contracts as already fixed, but a
// runnable engine needs something upstream of it to produce them.
//
// Grounded on the euchre deck's Shuffle/DrawN for the shuffle-and-deal
// shape, adapted from a 24-card euchre deck to the full 52-card deck this
// game uses, and from euchre's order-up/call-trump bidding to a simple
// sequential per-player integer-contract auction.
package deal

import (
	"math/rand"

	"github.com/thurn/dotdq/internal/card"
	"github.com/thurn/dotdq/internal/delegate"
	"github.com/thurn/dotdq/internal/round"
)

const handSize = 13

// Config controls how a round is constructed: the RNG used to shuffle
// (nil means crypto-unseeded, non-reproducible shuffling via the package
// default source), and the programs assigned to each seat for the round.
type Config struct {
	Rand          *rand.Rand
	ProgramOwners map[card.PlayerName][]delegate.ProgramName
}

// NewRound shuffles a full 52-card deck, deals 13 cards to each of the four
// seats in turn order, runs the contract auction, and installs cfg's
// program assignments, returning a ready-to-play Round.
func NewRound(cfg Config) *round.Round {
	deck := shuffledDeck(cfg.Rand)
	hands := dealHands(deck)
	trump := chooseTrump(cfg.Rand)
	contracts := runAuction(hands, cfg.Rand)
	return round.New(hands, trump, contracts, cfg.ProgramOwners)
}

// shuffledDeck returns all 52 cards in a random order (Fisher-Yates via
// rng.Shuffle), mirroring Deck.Shuffle's in-place swap loop.
func shuffledDeck(rng *rand.Rand) []card.Card {
	cards := make([]card.Card, 0, 52)
	for _, suit := range card.Suits {
		for _, r := range card.Ranks {
			cards = append(cards, card.NewCard(suit, r))
		}
	}
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

// dealHands deals handSize cards to each player in fixed turn order.
func dealHands(deck []card.Card) map[card.PlayerName]card.Hand {
	if len(deck) != len(card.Players)*handSize {
		panic("deal: deck size does not match player count * hand size")
	}
	hands := make(map[card.PlayerName]card.Hand, len(card.Players))
	offset := 0
	for _, player := range card.Players {
		hands[player] = card.NewHand(deck[offset : offset+handSize]...)
		offset += handSize
	}
	return hands
}

// chooseTrump picks uniformly among {no trump, Clubs, Diamonds, Hearts,
// Spades}.
func chooseTrump(rng *rand.Rand) *card.Suit {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	choice := intn(len(card.Suits) + 1)
	if choice == len(card.Suits) {
		return nil
	}
	suit := card.Suits[choice]
	return &suit
}

// runAuction assigns each player a contract: the number of tricks they
// estimate they can win, approximated here by counting the player's own
// high cards (Jack or better) as a simple bidding heuristic, since the
// actual bidding conversation between seats is out of scope for this
// engine. Contracts are not balanced against each other; the deck holds
// sixteen cards of Jack rank or higher, so the four contracts always sum
// to 16.
func runAuction(hands map[card.PlayerName]card.Hand, rng *rand.Rand) map[card.PlayerName]int {
	contracts := make(map[card.PlayerName]int, len(card.Players))
	for _, player := range card.Players {
		contracts[player] = estimateContract(hands[player])
	}
	return contracts
}

// estimateContract counts cards of Jack rank or higher as a crude proxy
// for trick-taking strength.
func estimateContract(hand card.Hand) int {
	count := 0
	for _, c := range hand.Cards() {
		if c.Rank >= card.Jack {
			count++
		}
	}
	return count
}
