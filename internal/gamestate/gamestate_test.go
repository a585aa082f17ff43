package gamestate

import (
	"testing"

	"github.com/thurn/dotdq/internal/card"
)

func TestWinLossEvaluatorInProgressIsZero(t *testing.T) {
	status := Status{Kind: InProgress}
	if got := WinLossEvaluator(status, card.User); got != 0 {
		t.Errorf("WinLossEvaluator(in-progress) = %d, want 0", got)
	}
}

func TestWinLossEvaluatorPicksHighestScore(t *testing.T) {
	status := Status{
		Kind:   Completed,
		Scores: map[card.PlayerName]int{card.User: 100, card.West: 50},
	}
	if got := WinLossEvaluator(status, card.User); got != 1 {
		t.Errorf("WinLossEvaluator for the leader = %d, want 1", got)
	}
	if got := WinLossEvaluator(status, card.West); got != -1 {
		t.Errorf("WinLossEvaluator for the trailer = %d, want -1", got)
	}
}

func TestTrickEvaluatorInProgressReturnsTricksWon(t *testing.T) {
	status := Status{
		Kind:      InProgress,
		TricksWon: map[card.PlayerName]int{card.User: 2},
		Contract:  map[card.PlayerName]int{card.User: 5},
	}
	if got := TrickEvaluator(status, card.User); got != 2 {
		t.Errorf("TrickEvaluator(in-progress, under contract) = %d, want 2", got)
	}
}

func TestTrickEvaluatorPenalizesOvershoot(t *testing.T) {
	status := Status{
		Kind:      InProgress,
		TricksWon: map[card.PlayerName]int{card.User: 6},
		Contract:  map[card.PlayerName]int{card.User: 5},
	}
	if got := TrickEvaluator(status, card.User); got != -1 {
		t.Errorf("TrickEvaluator(overshoot) = %d, want -1", got)
	}
}

func TestTrickEvaluatorCompletedReturnsFinalScore(t *testing.T) {
	status := Status{
		Kind:   Completed,
		Scores: map[card.PlayerName]int{card.User: 700},
	}
	if got := TrickEvaluator(status, card.User); got != 700 {
		t.Errorf("TrickEvaluator(completed) = %d, want 700", got)
	}
}

func TestMaxTricksEvaluatorIgnoresPhase(t *testing.T) {
	status := Status{
		Kind:      Completed,
		TricksWon: map[card.PlayerName]int{card.User: 9},
	}
	if got := MaxTricksEvaluator(status, card.User); got != 9 {
		t.Errorf("MaxTricksEvaluator = %d, want 9", got)
	}
}
